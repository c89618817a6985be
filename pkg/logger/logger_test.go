package logger

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"DEBUG", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"error", log.ErrorLevel},
		{"fatal", log.FatalLevel},
		{"", log.InfoLevel},
		{"verbose", log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew_EnvOverridesLevel(t *testing.T) {
	t.Setenv(EnvLevel, "error")

	var buf bytes.Buffer
	l := New(Options{Level: "debug", Output: &buf})

	assert.Equal(t, log.ErrorLevel, l.GetLevel())
	l.Info("hidden")
	assert.Empty(t, buf.String())
}

func TestNew_JSONFormat(t *testing.T) {
	t.Setenv(EnvLevel, "")

	var buf bytes.Buffer
	l := New(Options{Level: "info", Format: "json", Output: &buf})
	l.Info("region killed", "region", "us-east-1")

	assert.Contains(t, buf.String(), `"region":"us-east-1"`)
	assert.Contains(t, buf.String(), `"msg":"region killed"`)
}
