package utils

import (
	"bytes"
	"testing"
)

func TestFprintHelpers(t *testing.T) {
	tests := []struct {
		name  string
		print func(*bytes.Buffer, string)
		want  string
	}{
		{"success", func(b *bytes.Buffer, m string) { FprintSuccess(b, m) }, "\033[32m done\033[0m\n"},
		{"error", func(b *bytes.Buffer, m string) { FprintError(b, m) }, "\033[31m done\033[0m\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(&buf, "done")
			if got := buf.String(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
