package workers

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-web-bootstrap/internal/logger"
	"github.com/MKhiriev/go-web-bootstrap/internal/mock"
	"github.com/MKhiriev/go-web-bootstrap/internal/store"
)

func newBufferLogger(buf *bytes.Buffer) *logger.Logger {
	return &logger.Logger{Logger: zerolog.New(buf)}
}

func TestConnectionMonitor_Transitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockPinger(ctrl)
	errDown := errors.New("connection refused")

	gomock.InOrder(
		db.EXPECT().PingContext(gomock.Any()).Return(errDown),
		db.EXPECT().PingContext(gomock.Any()).Return(nil),
		db.EXPECT().PingContext(gomock.Any()).Return(errDown),
		db.EXPECT().PingContext(gomock.Any()).Return(errDown),
		db.EXPECT().PingContext(gomock.Any()).Return(nil),
		db.EXPECT().PingContext(gomock.Any()).Return(nil),
	)

	var buf bytes.Buffer
	registry := prometheus.NewRegistry()
	m := NewConnectionMonitor(map[string]store.Pinger{"database": db}, time.Minute, registry, newBufferLogger(&buf))

	ctx := context.Background()
	wantGauge := []float64{0, 1, 0, 0, 1, 1}
	for i, want := range wantGauge {
		m.check(ctx)
		assert.Equal(t, want, testutil.ToFloat64(m.up.WithLabelValues("database")), "check %d", i)
	}

	var messages []string
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		for _, msg := range []string{"connection error", "connection open", "connection disconnected", "connection still down", "connection reconnected"} {
			if strings.Contains(line, `"message":"`+msg+`"`) {
				messages = append(messages, msg)
			}
		}
	}
	assert.Equal(t, []string{
		"connection error",
		"connection open",
		"connection disconnected",
		"connection still down",
		"connection reconnected",
	}, messages)
	assert.Equal(t, 1, testutil.CollectAndCount(registry, "webbootstrap_connection_up"))
}

func TestConnectionMonitor_FirstSuccessLogsOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockPinger(ctrl)
	sessions := mock.NewMockPinger(ctrl)
	db.EXPECT().PingContext(gomock.Any()).Return(nil)
	sessions.EXPECT().PingContext(gomock.Any()).Return(nil)

	var buf bytes.Buffer
	m := NewConnectionMonitor(map[string]store.Pinger{"database": db, "sessions": sessions}, time.Minute, nil, newBufferLogger(&buf))
	m.check(context.Background())

	out := buf.String()
	assert.Contains(t, out, `"target":"database","message":"connection open"`)
	assert.Contains(t, out, `"target":"sessions","message":"connection open"`)
}

func TestConnectionMonitor_RunStopsOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	db := mock.NewMockPinger(ctrl)
	db.EXPECT().PingContext(gomock.Any()).Return(nil).MinTimes(1)

	m := NewConnectionMonitor(map[string]store.Pinger{"database": db}, 10*time.Millisecond, nil, logger.Nop())

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop")
	}
}
