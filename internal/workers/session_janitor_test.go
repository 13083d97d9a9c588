package workers

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-web-bootstrap/internal/logger"
	"github.com/MKhiriev/go-web-bootstrap/internal/mock"
)

func TestSessionJanitor_Sweep(t *testing.T) {
	tests := []struct {
		name    string
		removed int64
		err     error
		wantLog string
	}{
		{name: "expired sessions removed", removed: 3, wantLog: `"removed":3`},
		{name: "nothing to remove", removed: 0},
		{name: "store failure is logged", err: errors.New("connection reset"), wantLog: "error removing expired sessions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sessions := mock.NewMockSessionStore(ctrl)
			sessions.EXPECT().DeleteExpired(gomock.Any()).Return(tt.removed, tt.err)

			var buf bytes.Buffer
			NewSessionJanitor(sessions, time.Hour, newBufferLogger(&buf)).sweep(context.Background())

			if tt.wantLog == "" {
				assert.Empty(t, buf.String())
				return
			}
			assert.Contains(t, buf.String(), tt.wantLog)
		})
	}
}

func TestSessionJanitor_RunSweepsPeriodically(t *testing.T) {
	ctrl := gomock.NewController(t)
	sessions := mock.NewMockSessionStore(ctrl)

	swept := make(chan struct{}, 8)
	sessions.EXPECT().DeleteExpired(gomock.Any()).DoAndReturn(func(context.Context) (int64, error) {
		select {
		case swept <- struct{}{}:
		default:
		}
		return 0, nil
	}).MinTimes(2)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewSessionJanitor(sessions, 5*time.Millisecond, logger.Nop()).Run(ctx)
		close(done)
	}()

	<-swept
	<-swept
	cancel()
	<-done
}
