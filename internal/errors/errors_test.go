package errors

import (
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, ""},
		{"plain error", fmt.Errorf("storage not initialized"), "Error: storage not initialized"},
		{"wrapped error", fmt.Errorf("load reminders: %w", fmt.Errorf("no such file")), "Error: load reminders: no such file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.err); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}
