package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) devicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List registered devices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			devices := c.bridge.Devices()

			if c.parseable {
				for _, path := range devices {
					fmt.Fprintln(c.out, path)
				}
				return nil
			}

			rows := make([][]string, 0, len(devices))
			for _, path := range devices {
				description, err := c.bridge.Description(path)
				if err != nil {
					return err
				}
				rows = append(rows, []string{path, description})
			}
			c.table([]string{"Path", "Description"}, rows)
			return nil
		},
	}
}

func (c *CLI) addDeviceCmd() *cobra.Command {
	var devicePath string

	cmd := &cobra.Command{
		Use:   "add-device DESCRIPTION",
		Short: "Register a new device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.bridge.AddDevice(args[0], devicePath)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&devicePath, "id", "i", "",
		"Register the device under this path instead of allocating one")

	return cmd
}

func (c *CLI) removeDeviceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-device DEVICE",
		Short: "Unregister a device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireDevice(args[0]); err != nil {
				return err
			}
			return c.bridge.RemoveDevice(args[0])
		},
	}
}

func (c *CLI) removeDevicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-devices",
		Short: "Unregister every device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.bridge.RemoveDevices()
		},
	}
}

func (c *CLI) descriptionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "description DEVICE",
		Short: "Show a device's description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireDevice(args[0]); err != nil {
				return err
			}
			description, err := c.bridge.Description(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, description)
			return nil
		},
	}
}

func (c *CLI) setDescriptionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-description DEVICE DESCRIPTION",
		Short: "Rename a device",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.requireDevice(args[0]); err != nil {
				return err
			}
			return c.bridge.SetDescription(args[0], args[1])
		},
	}
}

func (c *CLI) updateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update",
		Short: "Notify the driver that the device setup changed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.bridge.UpdateDevices()
		},
	}
}

func (c *CLI) clientsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clients",
		Short: "List processes reading from the virtual cameras",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pids := c.bridge.ClientsPIDs()

			if c.parseable {
				for _, pid := range pids {
					fmt.Fprintf(c.out, "%d %s\n", pid, c.bridge.ClientExe(pid))
				}
				return nil
			}

			rows := make([][]string, 0, len(pids))
			for _, pid := range pids {
				rows = append(rows, []string{
					fmt.Sprintf("%d", pid),
					c.bridge.ClientExe(pid),
				})
			}
			c.table([]string{"Pid", "Executable"}, rows)
			return nil
		},
	}
}
