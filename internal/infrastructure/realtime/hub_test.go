package realtime_test

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/attendance-tracker/internal/infrastructure/realtime"
)

func decode(t *testing.T, frame []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(frame, &m))
	return m
}

func TestHub_PublishLlegaATodosLosVisores(t *testing.T) {
	hub := realtime.NewHub(4, nil)
	a := hub.Subscribe()
	b := hub.Subscribe()
	assert.Equal(t, 2, hub.Subscribers())

	hub.Publish("employeeDeleted", "emp-1")

	for _, s := range []*realtime.Subscriber{a, b} {
		m := decode(t, <-s.Send())
		assert.Equal(t, "employeeDeleted", m["event"])
		assert.Equal(t, "emp-1", m["data"])
	}
}

func TestHub_SinVisoresNoFalla(t *testing.T) {
	hub := realtime.NewHub(1, nil)
	assert.NotPanics(t, func() { hub.Publish("locationUpdate", map[string]any{"latitude": 1.0}) })
}

func TestHub_ColaLlenaDescartaSinBloquear(t *testing.T) {
	hub := realtime.NewHub(2, nil)
	slow := hub.Subscribe()
	fast := hub.Subscribe()

	for i := 0; i < 5; i++ {
		hub.Publish("attendanceUpdate", i)
		<-fast.Send()
	}

	assert.Len(t, slow.Send(), 2)
	assert.Equal(t, uint64(3), hub.Dropped())
}

func TestHub_UnsubscribeCierraElCanal(t *testing.T) {
	hub := realtime.NewHub(1, nil)
	s := hub.Subscribe()
	hub.Unsubscribe(s)
	hub.Unsubscribe(s)

	_, ok := <-s.Send()
	assert.False(t, ok)
	assert.Equal(t, 0, hub.Subscribers())

	hub.Publish("employeeUpdate", nil)
}

func TestHub_PublishConcurrenteConAltasYBajas(t *testing.T) {
	hub := realtime.NewHub(8, nil)
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s := hub.Subscribe()
			hub.Unsubscribe(s)
		}()
		go func() {
			defer wg.Done()
			hub.Publish("employeeUpdate", nil)
		}()
	}
	wg.Wait()
	assert.Equal(t, 0, hub.Subscribers())
}
