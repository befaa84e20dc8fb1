package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vcamkit/vcamctl/internal/bridge"
	"github.com/vcamkit/vcamctl/internal/videoformat"
)

func (c *CLI) supportedFormatsCmd() *cobra.Command {
	var input, output bool

	cmd := &cobra.Command{
		Use:   "supported-formats",
		Short: "List the pixel formats the frame pipeline accepts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stream := bridge.StreamOutput
			if input && !output {
				stream = bridge.StreamInput
			}

			for _, fcc := range c.bridge.SupportedPixelFormats(stream) {
				fmt.Fprintln(c.out, fcc)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&input, "input", "i", false, "List the producer-side formats")
	cmd.Flags().BoolVarP(&output, "output", "o", false, "List the capture-side formats (default)")

	return cmd
}

func (c *CLI) formatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats DEVICE",
		Short: "List a device's capture formats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireDevice(args[0]); err != nil {
				return err
			}

			formats := c.bridge.Formats(args[0])

			if c.parseable {
				for _, f := range formats {
					fmt.Fprintf(c.out, "%s %d %d %s\n",
						f.FourCC, f.Width, f.Height, f.MinFrameRate)
				}
				return nil
			}

			rows := make([][]string, 0, len(formats))
			for i, f := range formats {
				rows = append(rows, []string{
					strconv.Itoa(i),
					f.FourCC.String(),
					strconv.Itoa(f.Width),
					strconv.Itoa(f.Height),
					f.MinFrameRate.String(),
				})
			}
			c.table([]string{"Index", "Format", "Width", "Height", "FPS"}, rows)
			return nil
		},
	}
}

// parseFormatArgs decodes the FORMAT WIDTH HEIGHT FPS argument quad.
func parseFormatArgs(args []string) (videoformat.Format, error) {
	fcc := videoformat.FourCCFromString(args[0])
	if fcc == videoformat.FourCCUnknown {
		return videoformat.Format{}, fmt.Errorf("unknown pixel format '%s'", args[0])
	}

	width, err := strconv.Atoi(args[1])
	if err != nil {
		return videoformat.Format{}, fmt.Errorf("invalid width '%s'", args[1])
	}
	height, err := strconv.Atoi(args[2])
	if err != nil {
		return videoformat.Format{}, fmt.Errorf("invalid height '%s'", args[2])
	}

	rate := videoformat.ParseFraction(args[3])
	format := videoformat.New(fcc, width, height, rate)
	if !format.IsValid() {
		return videoformat.Format{}, fmt.Errorf("invalid format '%s %s %s %s'",
			args[0], args[1], args[2], args[3])
	}
	return format, nil
}

func (c *CLI) addFormatCmd() *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:   "add-format DEVICE FORMAT WIDTH HEIGHT FPS",
		Short: "Add a capture format to a device",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireDevice(args[0]); err != nil {
				return err
			}

			format, err := parseFormatArgs(args[1:])
			if err != nil {
				return err
			}
			return c.bridge.AddFormat(args[0], format, index)
		},
	}
	cmd.Flags().IntVarP(&index, "index", "i", -1,
		"Insert at this position instead of appending")

	return cmd
}

func (c *CLI) removeFormatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-format DEVICE INDEX",
		Short: "Remove one capture format from a device",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireDevice(args[0]); err != nil {
				return err
			}

			index, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid format index '%s'", args[1])
			}
			return c.bridge.RemoveFormat(args[0], index)
		},
	}
}

func (c *CLI) removeFormatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-formats DEVICE",
		Short: "Remove every capture format from a device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireDevice(args[0]); err != nil {
				return err
			}
			return c.bridge.SetFormats(args[0], nil)
		},
	}
}
