/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/josephgoksu/sejong/internal/config"
	"github.com/josephgoksu/sejong/internal/logger"
	"github.com/josephgoksu/sejong/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// GlobalAppConfig holds the global application configuration instance.
	GlobalAppConfig types.AppConfig

	appLogger = slog.New(slog.DiscardHandler)
	logCloser io.Closer
)

// initRuntime reads the configuration, opens the log file and prepares
// crash reporting before any command runs.
func initRuntime(cmd *cobra.Command, _ []string) error {
	bindFlags(cmd)

	cfg, err := config.Load(viper.GetViper(), cfgFile)
	if err != nil {
		return err
	}
	GlobalAppConfig = *cfg

	if GlobalAppConfig.Verbose && GlobalAppConfig.Config != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", GlobalAppConfig.Config)
	}

	log, closer, err := logger.New(GlobalAppConfig.Log, GlobalAppConfig.Verbose)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	if GlobalAppConfig.Log.File == "" && GlobalAppConfig.Verbose {
		// No log file configured: show debug records on stderr.
		log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	appLogger, logCloser = log, closer

	logger.SetBasePath(config.DataDir(GlobalAppConfig.Data.File))
	logger.SetDataFile(GlobalAppConfig.Data.File)
	logger.SetVersion(GetVersion())
	logger.SetCommand(cmd.CommandPath())

	appLogger.Debug("configuration loaded", "config", GlobalAppConfig.Config, "data", GlobalAppConfig.Data.File)
	return nil
}

func closeRuntime() {
	if logCloser == nil {
		return
	}
	if err := logCloser.Close(); err != nil {
		LogError(os.Stderr, "close log file", err)
	}
	logCloser = nil
}

// GetConfig returns a pointer to the global types.AppConfig instance.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}
