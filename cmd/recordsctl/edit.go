package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func (c *cli) editCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit <id> <name>...",
		Short: "Rename a record",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}

			c.vm.BeginEdit(id)
			c.vm.SetEditText(strings.Join(args[1:], " "))
			if err := c.vm.SaveEdit(cmd.Context()); err != nil {
				return errReported
			}
			return c.printRecords(c.vm.Snapshot().Records)
		},
	}
}

func parseRecordID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid record id %q", s)
	}
	return id, nil
}
