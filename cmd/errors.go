/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/viper"
)

// errReported marks a failure whose message was already printed. Execute
// only sets the exit status for it.
var errReported = errors.New("error already reported")

// PrintError prints an error message without exiting, allowing for recovery.
// It prints the user-friendly message by default. If the --verbose flag is
// set, it prints the full technical error instead.
func PrintError(w io.Writer, userMsg string, technicalErr error) {
	if viper.GetBool("verbose") && technicalErr != nil {
		// In verbose mode, print the detailed, underlying technical error.
		fmt.Fprintf(w, "Error: %v\n", technicalErr)
	} else {
		// By default, print the clean, user-friendly message.
		fmt.Fprintln(w, userMsg)
	}
}

// LogError prints a debug line when verbose mode is on.
func LogError(w io.Writer, msg string, err error) {
	if viper.GetBool("verbose") {
		if err != nil {
			fmt.Fprintf(w, "[DEBUG] %s: %v\n", msg, err)
		} else {
			fmt.Fprintf(w, "[DEBUG] %s\n", msg)
		}
	}
}
