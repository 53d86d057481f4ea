package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"orgdesk/pkg/workhours"
)

func newHoursCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hours",
		Short: "Work hours schedule helpers",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "preview <schedule>",
			Short: `Render a stored schedule ("Пн-Пт: 09:00-18:00; ...") on one line`,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return writeLine(cmd.OutOrStdout(), workhours.Parse(args[0]).Preview())
			},
		},
		&cobra.Command{
			Use:   "parse <schedule>",
			Short: "Print a stored schedule as JSON days",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return writeJSON(cmd.OutOrStdout(), workhours.Parse(args[0]), a.pretty)
			},
		},
		&cobra.Command{
			Use:   "format <json>",
			Short: `Serialize JSON days ({"days":[...]}) to the stored form`,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				var w workhours.WorkHours
				if err := json.Unmarshal([]byte(args[0]), &w); err != nil {
					return fmt.Errorf("decode schedule: %w", err)
				}
				if err := w.Validate(); err != nil {
					return err
				}
				return writeLine(cmd.OutOrStdout(), w.String())
			},
		},
	)
	return cmd
}
