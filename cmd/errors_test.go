package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestPrintError(t *testing.T) {
	tests := []struct {
		name         string
		userMsg      string
		technicalErr error
		verbose      bool
		expectedOut  string
	}{
		{
			name:         "normal mode without error",
			userMsg:      "OOPS!!! Please provide a valid task number.",
			technicalErr: nil,
			verbose:      false,
			expectedOut:  "OOPS!!! Please provide a valid task number.",
		},
		{
			name:         "verbose mode with error",
			userMsg:      "Error saving tasks to file",
			technicalErr: &testError{msg: "rename data/sejong.txt.tmp: permission denied"},
			verbose:      true,
			expectedOut:  "Error: rename data/sejong.txt.tmp: permission denied",
		},
		{
			name:         "normal mode with technical error",
			userMsg:      "Error saving tasks to file",
			technicalErr: &testError{msg: "rename data/sejong.txt.tmp: permission denied"},
			verbose:      false,
			expectedOut:  "Error saving tasks to file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Set("verbose", tt.verbose)
			defer viper.Set("verbose", false)

			var buf bytes.Buffer
			PrintError(&buf, tt.userMsg, tt.technicalErr)
			output := strings.TrimSpace(buf.String())

			if output != tt.expectedOut {
				t.Errorf("PrintError() output = %q, want %q", output, tt.expectedOut)
			}
		})
	}
}

func TestLogError(t *testing.T) {
	tests := []struct {
		name        string
		msg         string
		err         error
		verbose     bool
		shouldPrint bool
	}{
		{
			name:        "verbose mode with error",
			msg:         "close log file",
			err:         &testError{msg: "error details"},
			verbose:     true,
			shouldPrint: true,
		},
		{
			name:        "verbose mode without error",
			msg:         "close log file",
			err:         nil,
			verbose:     true,
			shouldPrint: true,
		},
		{
			name:        "non-verbose mode",
			msg:         "close log file",
			err:         &testError{msg: "error details"},
			verbose:     false,
			shouldPrint: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Set("verbose", tt.verbose)
			defer viper.Set("verbose", false)

			var buf bytes.Buffer
			LogError(&buf, tt.msg, tt.err)
			output := strings.TrimSpace(buf.String())

			if tt.shouldPrint && !strings.Contains(output, "[DEBUG]") {
				t.Errorf("LogError() should have printed debug output")
			}
			if !tt.shouldPrint && output != "" {
				t.Errorf("LogError() should not have printed anything, got: %q", output)
			}
		})
	}
}

// testError is a simple error type for testing
type testError struct {
	msg string
}

func (e *testError) Error() string {
	return e.msg
}
