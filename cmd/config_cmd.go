/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/josephgoksu/sejong/internal/config"
	"github.com/josephgoksu/sejong/internal/logger"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and create the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter .sejong.yaml",
	Long: `Write a configuration file with the default settings. The file goes to the
current directory unless --global is given, in which case it is written to
$HOME/.sejong.yaml.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		global, _ := cmd.Flags().GetBool("global")

		path := config.ConfigName + ".yaml"
		if global {
			p, err := config.GlobalConfigPath()
			if err != nil {
				return fmt.Errorf("resolve home directory: %w", err)
			}
			path = p
		}

		if err := config.WriteConfig(path, config.DefaultAppConfig(), force); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Wrote", path)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file in use and the task file location",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		used := cfg.Config
		if used == "" {
			used = "(none, using defaults)"
		}
		data, err := filepath.Abs(cfg.Data.File)
		if err != nil {
			data = cfg.Data.File
		}
		crashes, err := logger.ListCrashLogs()
		if err != nil {
			return fmt.Errorf("list crash logs: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "config:  %s\n", used)
		fmt.Fprintf(out, "data:    %s\n", data)
		fmt.Fprintf(out, "crashes: %s (%d saved)\n", logger.CrashDir(), len(crashes))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := yaml.Marshal(GetConfig())
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# sejong %s effective configuration\n", GetVersion())
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	configInitCmd.Flags().Bool("force", false, "overwrite an existing file")
	configInitCmd.Flags().Bool("global", false, "write to $HOME/.sejong.yaml")

	configCmd.AddCommand(configInitCmd, configPathCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}
