package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		env     string
		level   string
		wantErr bool
	}{
		{"dev debug", "dev", "debug", false},
		{"prod info", "prod", "info", false},
		{"unknown env falls back to prod", "something", "warn", false},
		{"invalid level", "prod", "loud", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.env, tt.level)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, l)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestNopDiscards(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	// must not panic with nil or populated fields
	l.Debug(nil, "debug")
	l.Info(map[string]any{"k": "v"}, "info")
	l.Warn(nil, "warn")
	l.Error(nil, "error")
}

func TestZapFields(t *testing.T) {
	assert.Empty(t, zapFields(nil))
	assert.Len(t, zapFields(map[string]any{"a": 1, "b": "x"}), 2)
}
