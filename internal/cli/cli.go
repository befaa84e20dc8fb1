package cli

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vcamkit/vcamctl/internal/bridge"
)

// Logger defines the logging interface the CLI uses.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// CLI builds and runs the vcamctl command tree against a bridge.
type CLI struct {
	bridge    bridge.Bridge
	logger    Logger
	out       io.Writer
	parseable bool
	root      *cobra.Command
}

// New creates the command tree. Output defaults to stdout; tests inject a
// buffer through SetOutput.
func New(b bridge.Bridge, logger Logger) *CLI {
	if logger == nil {
		logger = noopLogger{}
	}

	c := &CLI{
		bridge: b,
		logger: logger,
		out:    os.Stdout,
	}

	c.root = &cobra.Command{
		Use:   "vcamctl",
		Short: "Manage virtual camera devices",
		Long: `vcamctl manages the virtual camera device registry: devices, their
capture formats and controls, and the global driver settings.`,
		// Errors are reported once by the caller.
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	c.root.PersistentFlags().BoolVarP(&c.parseable, "parseable", "p", false,
		"Use a machine-friendly output format")

	c.root.AddCommand(
		c.devicesCmd(),
		c.addDeviceCmd(),
		c.removeDeviceCmd(),
		c.removeDevicesCmd(),
		c.descriptionCmd(),
		c.setDescriptionCmd(),
		c.supportedFormatsCmd(),
		c.formatsCmd(),
		c.addFormatCmd(),
		c.removeFormatCmd(),
		c.removeFormatsCmd(),
		c.updateCmd(),
		c.loadCmd(),
		c.streamCmd(),
		c.controlsCmd(),
		c.getControlCmd(),
		c.setControlsCmd(),
		c.pictureCmd(),
		c.setPictureCmd(),
		c.logLevelCmd(),
		c.setLogLevelCmd(),
		c.clientsCmd(),
	)

	return c
}

// SetOutput redirects command output, primarily for tests.
func (c *CLI) SetOutput(w io.Writer) {
	c.out = w
}

// Execute runs the command tree with the given arguments.
func (c *CLI) Execute(args []string) error {
	c.root.SetArgs(args)
	return c.root.Execute()
}

// requireDevice fails early when path names no registered device, so every
// subcommand reports unknown devices the same way.
func (c *CLI) requireDevice(path string) error {
	for _, device := range c.bridge.Devices() {
		if device == path {
			return nil
		}
	}
	return fmt.Errorf("device '%s' doesn't exist", path)
}

// table writes rows as aligned columns.
func (c *CLI) table(header []string, rows [][]string) {
	w := tabwriter.NewWriter(c.out, 0, 0, 3, ' ', 0)
	printRow(w, header)
	for _, row := range rows {
		printRow(w, row)
	}
	w.Flush() //nolint:errcheck // best-effort terminal output
}

func printRow(w io.Writer, row []string) {
	for i, cell := range row {
		if i > 0 {
			fmt.Fprint(w, "\t")
		}
		fmt.Fprint(w, cell)
	}
	fmt.Fprintln(w)
}
