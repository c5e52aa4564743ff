package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/records/internal/console"
)

func (c *cli) healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the records service is reachable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state := c.vm.Mount(cmd.Context())
			if c.jsonOutput {
				if err := printJSON(c.stdout, map[string]string{"connection": state.String()}); err != nil {
					return err
				}
			} else {
				fmt.Fprintf(c.stdout, "Connection: %s\n", state)
			}

			if state != console.ConnConnected {
				return errReported
			}
			return nil
		},
	}
}
