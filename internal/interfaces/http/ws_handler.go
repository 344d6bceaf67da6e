package http

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/attendance-tracker/internal/application/dto"
	"github.com/jhoicas/attendance-tracker/internal/infrastructure/realtime"
	"github.com/jhoicas/attendance-tracker/pkg/logger"
)

const (
	wsPingInterval = 30 * time.Second
	wsWriteTimeout = 10 * time.Second
)

// WSHandler canal en vivo: cada visor recibe tramas {"event","data"} del hub.
type WSHandler struct {
	hub *realtime.Hub
	log *logger.Logger
}

// NewWSHandler construye el handler.
func NewWSHandler(hub *realtime.Hub, log *logger.Logger) *WSHandler {
	return &WSHandler{hub: hub, log: log}
}

// RequireUpgrade rechaza con 426 lo que no sea un handshake WebSocket.
func (h *WSHandler) RequireUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return c.Status(fiber.StatusUpgradeRequired).JSON(dto.ErrorResponse{Code: "UPGRADE_REQUIRED", Message: "se requiere WebSocket"})
}

// Serve godoc
// @Summary      Canal de actualizaciones en vivo
// @Description  Eventos: employeeUpdate, employeeDeleted, attendanceUpdate, locationUpdate.
// @Tags         realtime
// @Failure      426  {object}  dto.ErrorResponse
// @Router       /ws [get]
func (h *WSHandler) Serve() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		sub := h.hub.Subscribe()
		defer h.hub.Unsubscribe(sub)

		// Los visores no envían nada útil; leer sirve para detectar el cierre.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		ping := time.NewTicker(wsPingInterval)
		defer ping.Stop()
		for {
			select {
			case <-done:
				return
			case frame, ok := <-sub.Send():
				if !ok {
					return
				}
				_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
				if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
					h.log.Debug().Err(err).Uint64("subscriber", sub.ID()).Msg("escritura al visor fallida")
					return
				}
			case <-ping.C:
				_ = conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	})
}
