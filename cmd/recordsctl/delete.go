package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/records/internal/console"
)

func (c *cli) deleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a record",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRecordID(args[0])
			if err != nil {
				return err
			}

			err = c.vm.Delete(cmd.Context(), id)
			switch {
			case errors.Is(err, console.ErrDeclined):
				fmt.Fprintln(c.stderr, "Cancelled.")
				return nil
			case err != nil:
				return errReported
			}

			if !c.jsonOutput {
				fmt.Fprintf(c.stdout, "Deleted %d\n", id)
			}
			return c.printRecords(c.vm.Snapshot().Records)
		},
	}

	cmd.Flags().BoolVarP(&c.assumeYes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}
