package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/attendance-tracker/internal/application/report"
	"github.com/jhoicas/attendance-tracker/pkg/logger"
)

// ReportHandler descargas del reporte de asistencia.
type ReportHandler struct {
	uc  *report.ReportUseCase
	log *logger.Logger
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase, log *logger.Logger) *ReportHandler {
	return &ReportHandler{uc: uc, log: log}
}

// PDF godoc
// @Summary      Reporte de asistencia en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        employee_id  query     string  false  "filtrar por empleado"
// @Success      200          {file}    binary
// @Failure      500          {object}  dto.ErrorResponse
// @Router       /api/attendance/report.pdf [get]
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	doc, err := h.uc.PDF(c.UserContext(), c.Query("employee_id"))
	if err != nil {
		return errorResponse(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="asistencia.pdf"`)
	return c.Send(doc)
}

// XML godoc
// @Summary      Exportar asistencia en XML
// @Tags         reports
// @Produce      application/xml
// @Param        employee_id  query     string  false  "filtrar por empleado"
// @Success      200          {file}    binary
// @Failure      500          {object}  dto.ErrorResponse
// @Router       /api/attendance/export.xml [get]
func (h *ReportHandler) XML(c *fiber.Ctx) error {
	doc, err := h.uc.XML(c.UserContext(), c.Query("employee_id"))
	if err != nil {
		return errorResponse(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXMLCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="asistencia.xml"`)
	return c.Send(doc)
}
