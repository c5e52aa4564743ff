package main

import (
	"github.com/spf13/cobra"
)

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all records",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.vm.Fetch(cmd.Context()); err != nil {
				return errReported
			}
			return c.printRecords(c.vm.Snapshot().Records)
		},
	}
}
