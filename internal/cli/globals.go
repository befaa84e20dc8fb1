package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vcamkit/vcamctl/internal/settings"
)

func (c *CLI) pictureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "picture",
		Short: "Show the placeholder picture path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(c.out, c.bridge.Picture())
			return nil
		},
	}
}

func (c *CLI) setPictureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-picture PICTURE",
		Short: "Set the placeholder picture path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.bridge.SetPicture(args[0])
			return nil
		},
	}
}

func (c *CLI) logLevelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "loglevel",
		Short: "Show the driver log level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(c.out, c.bridge.LogLevel())
			return nil
		},
	}
}

func (c *CLI) setLogLevelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-loglevel LEVEL",
		Short: "Set the driver log level",
		Long: `Set the driver log level. LEVEL is a number from 0 (emergency) to 7
(debug) or one of: emergency, fatal, critical, error, warning, notice,
info, debug.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, ok := settings.ParseLogLevel(args[0])
			if !ok {
				return fmt.Errorf("unknown log level '%s'", args[0])
			}
			c.bridge.SetLogLevel(level)
			return nil
		},
	}
}

func (c *CLI) loadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load SETTINGS.YAML",
		Short: "Replace the device setup with one described in a settings file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := settings.Load(args[0])
			if err != nil {
				return err
			}
			return settings.Apply(f, c.bridge, c.logger)
		},
	}
}

func (c *CLI) streamCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stream DEVICE FORMAT WIDTH HEIGHT FPS",
		Short: "Broadcast raw frames from stdin to a device",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireDevice(args[0]); err != nil {
				return err
			}

			format, err := parseFormatArgs(args[1:])
			if err != nil {
				return err
			}

			if err := c.bridge.DeviceStart(args[0], format); err != nil {
				return err
			}
			defer c.bridge.DeviceStop(args[0]) //nolint:errcheck // best effort on teardown

			// Frame size assumes tightly packed lines; the driver rejects
			// short writes.
			reader := bufio.NewReader(os.Stdin)
			frame := make([]byte, format.FrameSize())

			for {
				if _, err := io.ReadFull(reader, frame); err != nil {
					// EOF between frames ends the broadcast normally.
					return nil
				}
				if err := c.bridge.Write(args[0], frame); err != nil {
					return err
				}
			}
		},
	}
}
