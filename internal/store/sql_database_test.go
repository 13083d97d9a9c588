package store

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-web-bootstrap/internal/logger"
	"github.com/MKhiriev/go-web-bootstrap/migrations"
)

func TestNewDB_PlaceholderByDialect(t *testing.T) {
	tests := []struct {
		name    string
		dialect string
		want    string
	}{
		{name: "postgres", dialect: migrations.DialectPostgres, want: "SELECT data FROM sessions WHERE session_id = $1"},
		{name: "sqlite", dialect: migrations.DialectSQLite, want: "SELECT data FROM sessions WHERE session_id = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, _, err := sqlmock.New()
			require.NoError(t, err)
			t.Cleanup(func() { conn.Close() })

			db := newDB(conn, tt.dialect, nil, logger.Nop())

			query, args, err := db.builder.Select("data").From("sessions").Where(sq.Eq{"session_id": "abc"}).ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{"abc"}, args)
			assert.Equal(t, tt.dialect, db.Dialect())
		})
	}
}

func TestNewConnect_UnsupportedDSN(t *testing.T) {
	_, err := NewConnect(context.Background(), "mongodb://localhost/test", logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}
