package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/xbelclean/internal/config"
	"github.com/jmylchreest/xbelclean/internal/logger"
	"github.com/jmylchreest/xbelclean/internal/recentfile"
)

var cleanCmd = &cobra.Command{
	Use:   "clean [prefix...]",
	Short: "Rewrite the manifest, forgetting entries under the given prefixes",
	Long: `Clean removes every bookmark whose file:// location starts with one
of the given path prefixes. Prefixes from the command line are merged
with the "paths" list in the config file and an optional --paths-file.

Matching is a plain string prefix: /home/me/Priv also covers
/home/me/Private. Entries with trash://, mtp://, ftp:// or sftp://
locations are always kept; any other scheme aborts the run without
modifying the manifest.

Examples:
  xbelclean clean /home/me/Private
  xbelclean clean --dry-run /home/me/Private /tmp/scratch
  xbelclean clean --paths-file forget.yaml`,
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	flags := cleanCmd.Flags()
	flags.StringP("file", "f", "", "manifest to rewrite (default: $XDG_DATA_HOME/recently-used.xbel)")
	flags.String("paths-file", "", "YAML file with additional removal prefixes")
	flags.Bool("dry-run", false, "write the filtered manifest to stdout instead of replacing the file")

	_ = viper.BindPFlag("manifest", flags.Lookup("file"))
}

func runClean(cmd *cobra.Command, args []string) error {
	logger.Init(logger.Options{
		Debug: viper.GetBool("debug"),
		Quiet: viper.GetBool("quiet"),
	})

	cfg, err := config.FromViper()
	if err != nil {
		logger.Error("invalid configuration", "error", err)
		return err
	}

	prefixes := append([]string(nil), cfg.Paths...)
	prefixes = append(prefixes, args...)

	if pathsFile, _ := cmd.Flags().GetString("paths-file"); pathsFile != "" {
		extra, err := config.FromFile(pathsFile)
		if err != nil {
			logger.Error("failed to load paths file", "path", pathsFile, "error", err)
			return err
		}
		logger.Debug("loaded paths file", "path", pathsFile, "count", len(extra.Paths))
		prefixes = append(prefixes, extra.Paths...)
	}

	if len(prefixes) == 0 {
		return cmd.Help()
	}
	// Command-line prefixes go through the same validation as the
	// config file ones.
	if err := (config.Config{Paths: prefixes}).Validate(); err != nil {
		logger.Error("invalid prefixes", "error", err)
		return err
	}

	manifest := cfg.Manifest
	if manifest == "" {
		manifest = recentfile.Locate()
	}
	logger.Debug("cleaning manifest", "path", manifest, "prefixes", prefixes)

	if dryRun, _ := cmd.Flags().GetBool("dry-run"); dryRun {
		if err := recentfile.Preview(manifest, os.Stdout, prefixes); err != nil {
			logger.Error("preview failed", "path", manifest, "error", err)
			return err
		}
		return nil
	}

	if err := recentfile.Rewrite(manifest, prefixes); err != nil {
		logger.Error("clean failed", "path", manifest, "error", err)
		return err
	}
	logger.Info("manifest rewritten", "path", manifest, "prefixes", len(prefixes))
	return nil
}
