/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/josephgoksu/sejong/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Chat with Sejong in a full-screen window",
	Long: `Open a full-screen chat window. Commands are the same as in the terminal
conversation. An empty line shows the greeting again; bye or Esc quits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("tui needs an interactive terminal; run 'sejong' or 'sejong exec' instead")
		}
		return ui.RunChat(newSession(), ui.NewTheme(GetConfig().UI.Theme))
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
