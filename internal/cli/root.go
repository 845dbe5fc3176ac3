package cli

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/go-flatfile/flatfile/internal/config"
)

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Flatfile parses and formats fixed-width flat files",
		Long:         `Flatfile converts between fixed-width flat-file records and structured formats (JSON, YAML, CSV). Field layouts are declared on the command line with repeated --field and --spacer flags.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s %s\n", appName, version, commit))

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/flatfile/config.toml)")

	root.AddCommand(c.parseCommand())
	root.AddCommand(c.formatCommand())
	root.AddCommand(c.inspectCommand())

	return root
}

// setup loads the config file and applies the effective log level. With no
// --config flag a missing default file runs on built-in defaults.
func (c *CLI) setup() error {
	path := c.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			c.Logger.Debug("no config dir", "err", err)
			p = ""
		}
		path = p
	}

	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return err
		}
		c.cfg = cfg
	}

	level := log.InfoLevel
	if c.cfg.LogLevel != "" {
		lvl, err := log.ParseLevel(c.cfg.LogLevel)
		if err != nil {
			return errors.Wrapf(err, "config %s", path)
		}
		level = lvl
	}
	if c.verbose {
		level = log.DebugLevel
	}
	c.SetLogLevel(level)
	return nil
}
