package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{" WARN ", zapcore.WarnLevel},
		{"", zapcore.InfoLevel},
		{"chatty", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, err := New(tt.level, false)
			if err != nil {
				t.Fatalf("New(%q) error: %v", tt.level, err)
			}
			if !logger.Core().Enabled(tt.want) {
				t.Errorf("level %v not enabled for %q", tt.want, tt.level)
			}
			if tt.want > zapcore.DebugLevel && logger.Core().Enabled(tt.want-1) {
				t.Errorf("level %v unexpectedly enabled for %q", tt.want-1, tt.level)
			}
		})
	}
}

func TestNew_Development(t *testing.T) {
	logger, err := New("info", true)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	logger.Info("ready")
}
