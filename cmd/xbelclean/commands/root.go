// Package commands implements the CLI commands for xbelclean.
package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "xbelclean",
	Short: "Remove entries from the recently-used.xbel manifest",
	Long: `Xbelclean rewrites the freedesktop.org "recently used files"
manifest, removing every bookmark whose location falls under one of the
given path prefixes. Retained entries are kept byte for byte: attribute
order, quoting, escaping and indentation are never touched.

Examples:
  # Forget everything ever opened under two directories
  xbelclean clean /home/me/Private /tmp/scratch

  # Preview the result on stdout without touching the file
  xbelclean clean --dry-run /home/me/Private

  # Operate on a copy instead of the live manifest
  xbelclean clean --file ./recently-used.xbel /home/me/Private`,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "config file (default $HOME/.xbelclean.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "only log errors")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".xbelclean")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("XBELCLEAN")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
