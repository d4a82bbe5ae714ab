/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/josephgoksu/sejong/internal/app"
	"github.com/josephgoksu/sejong/store"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// dataFile overrides data.file from the configuration.
	dataFile string
	// version is the application version.
	version = "1.0.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sejong",
	Short: "Sejong - a personal task-tracking assistant",
	Long: `Sejong keeps a list of todos, deadlines and events that you manage by
typing short commands:

  todo read book
  deadline return book /by 2019-12-02
  event project meeting /from 2019-12-01 /to 2019-12-03
  list, mark 2, unmark 2, delete 3
  find book /type deadline /status pending /date 2019-12-02
  bye

Run without arguments to start a conversation in the terminal.`,
	Version:           version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initRuntime,
	PersistentPostRun: func(*cobra.Command, []string) { closeRuntime() },
	Args:              cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		session := newSession()

		prompt := ""
		if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			prompt = "> "
		}
		return session.Run(cmd.InOrStdin(), cmd.OutOrStdout(), prompt)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			PrintError(rootCmd.ErrOrStderr(), fmt.Sprintf("Error: %v", err), err)
		}
		os.Exit(1)
	}
}

// GetVersion returns the application version.
func GetVersion() string {
	return version
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.sejong.yaml or $HOME/.sejong.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output and debug logging")
	rootCmd.PersistentFlags().StringVarP(&dataFile, "data", "d", "", "task file (default is ./data/sejong.txt)")
}

// bindFlags binds persistent flags to Viper. It runs on every invocation so
// tests that execute rootCmd repeatedly keep their bindings.
func bindFlags(cmd *cobra.Command) {
	flags := cmd.Root().PersistentFlags()
	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("data.file", flags.Lookup("data"))
}

// newSession loads the task file named by the configuration.
func newSession() *app.Session {
	cfg := GetConfig()

	opts := []store.Option{store.WithLogger(appLogger)}
	if cfg.Data.Lock {
		opts = append(opts, store.WithFileLock())
	}
	return app.NewSession(store.NewStorage(cfg.Data.File, opts...), appLogger)
}
