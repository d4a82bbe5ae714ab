/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/josephgoksu/sejong/types"
	"github.com/spf13/cobra"
)

var execCmd = &cobra.Command{
	Use:   "exec <command>...",
	Short: "Run a single command and exit",
	Long: `Run one command against the task file and print the reply. The
arguments are joined with spaces, so quoting is optional:

  sejong exec todo read book
  sejong exec "deadline return book /by 2019-12-02"
  sejong exec find book /status pending

The exit status is 1 when the command fails.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		line := strings.Join(args, " ")
		resp := newSession().Handle(line)

		if resp.Text != "" {
			fmt.Fprintln(cmd.OutOrStdout(), resp.Text)
		}
		if resp.Err != nil {
			PrintError(cmd.ErrOrStderr(), types.UserMessage(resp.Err), resp.Err)
			return errReported
		}
		return nil
	},
}

func init() {
	// Everything after the first argument belongs to the command line,
	// including tokens such as /by.
	execCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(execCmd)
}
