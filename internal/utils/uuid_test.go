package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTraceID_IsUUIDv7(t *testing.T) {
	parsed, err := uuid.Parse(NewTraceID())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestNewTraceID_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 100)
	for range 100 {
		id := NewTraceID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate id generated: %s", id)
		seen[id] = struct{}{}
	}
}

func TestTraceIDOrNew(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		keep      bool
	}{
		{name: "uuid", candidate: "0190b3a4-6f1e-7c3a-9d2b-5e8f7a6b4c3d", keep: true},
		{name: "dotted token", candidate: "req_42.retry-1", keep: true},
		{name: "empty", candidate: ""},
		{name: "too long", candidate: strings.Repeat("a", maxTraceIDLength+1)},
		{name: "header injection", candidate: "abc\r\nSet-Cookie: x"},
		{name: "json breaking", candidate: `abc","admin":"true`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TraceIDOrNew(tt.candidate)
			if tt.keep {
				assert.Equal(t, tt.candidate, got)
				return
			}

			assert.NotEqual(t, tt.candidate, got)
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}
