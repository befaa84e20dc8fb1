package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vcamkit/vcamctl/internal/bridge"
)

func (c *CLI) controlsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "controls DEVICE",
		Short: "List a device's controls",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireDevice(args[0]); err != nil {
				return err
			}

			controls, err := c.bridge.Controls(args[0])
			if err != nil {
				return err
			}

			if c.parseable {
				for _, control := range controls {
					fmt.Fprintln(c.out, control.ID)
				}
				return nil
			}

			rows := make([][]string, 0, len(controls))
			for _, control := range controls {
				rows = append(rows, []string{
					control.ID,
					control.Description,
					control.Type.String(),
					strconv.Itoa(control.Minimum),
					strconv.Itoa(control.Maximum),
					strconv.Itoa(control.Step),
					strconv.Itoa(control.Default),
					strconv.Itoa(control.Value),
				})
			}
			c.table([]string{
				"Control", "Description", "Type",
				"Minimum", "Maximum", "Step", "Default", "Value",
			}, rows)
			return nil
		},
	}
}

func (c *CLI) getControlCmd() *cobra.Command {
	var description, ctype, minimum, maximum, step, dflt, menu bool

	cmd := &cobra.Command{
		Use:   "get-control DEVICE CONTROL",
		Short: "Show one control's value or metadata",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireDevice(args[0]); err != nil {
				return err
			}

			controls, err := c.bridge.Controls(args[0])
			if err != nil {
				return err
			}

			for _, control := range controls {
				if control.ID != args[1] {
					continue
				}

				anyFlag := description || ctype || minimum || maximum ||
					step || dflt || menu
				if !anyFlag {
					fmt.Fprintln(c.out, control.Value)
					return nil
				}

				if description {
					fmt.Fprintln(c.out, control.Description)
				}
				if ctype {
					fmt.Fprintln(c.out, control.Type)
				}
				if minimum {
					fmt.Fprintln(c.out, control.Minimum)
				}
				if maximum {
					fmt.Fprintln(c.out, control.Maximum)
				}
				if step {
					fmt.Fprintln(c.out, control.Step)
				}
				if dflt {
					fmt.Fprintln(c.out, control.Default)
				}
				if menu {
					for i, entry := range control.Menu {
						if c.parseable {
							fmt.Fprintln(c.out, entry)
						} else {
							fmt.Fprintf(c.out, "%d: %s\n", i, entry)
						}
					}
				}
				return nil
			}

			return fmt.Errorf("control '%s' not available", args[1])
		},
	}
	cmd.Flags().BoolVarP(&description, "description", "c", false, "Show the control description")
	cmd.Flags().BoolVarP(&ctype, "type", "t", false, "Show the control type")
	cmd.Flags().BoolVarP(&minimum, "min", "m", false, "Show the minimum value")
	cmd.Flags().BoolVarP(&maximum, "max", "M", false, "Show the maximum value")
	cmd.Flags().BoolVarP(&step, "step", "s", false, "Show the value step")
	cmd.Flags().BoolVarP(&dflt, "default", "d", false, "Show the default value")
	cmd.Flags().BoolVarP(&menu, "menu", "l", false, "Show the menu entries")

	return cmd
}

func (c *CLI) setControlsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-controls DEVICE CONTROL=VALUE...",
		Short: "Update control values",
		Long: `Update one or more control values. Integer controls accept numbers,
boolean controls accept true/false or 1/0, and menu controls accept the
entry index or its label.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireDevice(args[0]); err != nil {
				return err
			}

			values := map[string]int{}
			for _, assignment := range args[1:] {
				id, raw, found := strings.Cut(assignment, "=")
				if !found {
					return fmt.Errorf("'%s' is not a CONTROL=VALUE pair", assignment)
				}

				desc, ok := bridge.ControlDescriptor(id)
				if !ok {
					return fmt.Errorf("control '%s' not available", id)
				}

				value, err := parseControlValue(desc, raw)
				if err != nil {
					return err
				}
				values[id] = value
			}

			return c.bridge.SetControls(args[0], values)
		},
	}
}

// parseControlValue interprets a textual value according to the control's
// type: plain integers, boolean words, or menu labels.
func parseControlValue(desc bridge.Control, raw string) (int, error) {
	switch desc.Type {
	case bridge.ControlTypeBoolean:
		switch strings.ToLower(raw) {
		case "1", "true", "yes":
			return 1, nil
		case "0", "false", "no":
			return 0, nil
		}
		return 0, fmt.Errorf("'%s' is not a boolean value for %s", raw, desc.ID)

	case bridge.ControlTypeMenu:
		if n, err := strconv.Atoi(raw); err == nil {
			return n, nil
		}
		for i, entry := range desc.Menu {
			if strings.EqualFold(entry, raw) {
				return i, nil
			}
		}
		return 0, fmt.Errorf("'%s' is not a menu entry of %s", raw, desc.ID)

	default:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return 0, fmt.Errorf("'%s' is not an integer value for %s", raw, desc.ID)
		}
		return n, nil
	}
}
