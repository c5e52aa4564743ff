package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func (c *cli) addCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <name>...",
		Short: "Create a record",
		Long:  "Create a record. Multiple arguments are joined with spaces to form the name.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c.vm.ToggleAdd()
			c.vm.SetAddText(strings.Join(args, " "))
			if err := c.vm.SubmitAdd(cmd.Context()); err != nil {
				return errReported
			}
			return c.printRecords(c.vm.Snapshot().Records)
		},
	}
}
