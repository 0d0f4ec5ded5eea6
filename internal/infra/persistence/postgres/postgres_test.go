package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolMonitor_Report(t *testing.T) {
	tests := []struct {
		name      string
		prev, cur sql.DBStats
		wantLevel string
	}{
		{
			name: "no new waits",
			prev: sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
			cur:  sql.DBStats{WaitCount: 3, WaitDuration: time.Second},
		},
		{
			name:      "short waits",
			prev:      sql.DBStats{WaitCount: 1},
			cur:       sql.DBStats{WaitCount: 3, WaitDuration: 10 * time.Millisecond},
			wantLevel: "DEBUG",
		},
		{
			name:      "contention",
			prev:      sql.DBStats{WaitCount: 1, WaitDuration: time.Millisecond},
			cur:       sql.DBStats{WaitCount: 5, WaitDuration: 81 * time.Millisecond, MaxOpenConnections: 10, InUse: 10},
			wantLevel: "WARN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger()
			m := &poolMonitor{logger: logger, warnAt: 50 * time.Millisecond}

			m.report(context.Background(), tt.prev, tt.cur)

			lines := decodeLogLines(t, buf)
			if tt.wantLevel == "" {
				assert.Empty(t, lines)

				return
			}
			require.Len(t, lines, 1)
			assert.Equal(t, tt.wantLevel, lines[0]["level"])
			assert.Equal(t, "Database pool wait", lines[0]["msg"])
		})
	}
}

func TestPoolMonitor_AverageWait(t *testing.T) {
	logger, buf := newBufferLogger()
	m := &poolMonitor{logger: logger, warnAt: time.Hour}

	m.report(context.Background(), sql.DBStats{}, sql.DBStats{WaitCount: 4, WaitDuration: 40 * time.Millisecond})

	lines := decodeLogLines(t, buf)
	require.Len(t, lines, 1)
	assert.InDelta(t, float64(10*time.Millisecond), lines[0]["avgWait"], 0)
}

func TestPoolMonitor_DisabledReturnsImmediately(t *testing.T) {
	logger, _ := newBufferLogger()
	calls := 0
	m := &poolMonitor{logger: logger, interval: -1, stats: func() sql.DBStats {
		calls++

		return sql.DBStats{}
	}}

	m.run(context.Background())

	assert.Zero(t, calls)
}
