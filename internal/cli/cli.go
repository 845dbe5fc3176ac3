// Package cli implements the flatfile command-line interface.
//
// The main commands are:
//   - parse: fixed-width lines in, structured records out
//   - format: structured records in, fixed-width lines out
//   - inspect: print the resolved layout
//
// Layouts are declared with repeated --field and --spacer flags; there is no
// schema file. All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/go-flatfile/flatfile/internal/config"
)

// appName is the application name used for directories and display.
const appName = "flatfile"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev" // semantic version, injected via ldflags
	commit  = ""    // git commit SHA
)

// SetVersion sets the version information displayed by --version. It is
// called by the main package with values injected at build time.
func SetVersion(v, c string) {
	version = v
	commit = c
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	cfg        config.Config
	configPath string
	verbose    bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// firstNonEmpty returns the first value that is set. Command flags come
// first, then the config file, then the built-in default.
func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
