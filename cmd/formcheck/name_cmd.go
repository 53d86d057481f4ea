package main

import (
	"github.com/spf13/cobra"

	"orgdesk/pkg/sanitizer"
)

func newNameCmd() *cobra.Command {
	var allowHyphen bool

	cmd := &cobra.Command{
		Use:   "name",
		Short: "Person name part helpers (surname, first or middle name)",
	}
	cmd.PersistentFlags().BoolVar(&allowHyphen, "hyphen", false, "Allow one hyphen, as in double-barrelled surnames")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "normalize <value>",
			Short: "Capitalize a name part",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return writeLine(cmd.OutOrStdout(), sanitizer.NormalizePersonName(args[0], allowHyphen))
			},
		},
		&cobra.Command{
			Use:   "check <value>",
			Short: "Report whether the value is a single-word name",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return verdict(cmd.OutOrStdout(), sanitizer.IsValidPersonName(args[0], allowHyphen))
			},
		},
	)
	return cmd
}

func newPositionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "position",
		Short: "Job position name helpers",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "normalize <value>...",
			Short: "Collapse spaces and capitalize the first letter of each title",
			Long:  "Prints one normalized title per line. Blank titles and repeats are dropped.",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				for _, name := range sanitizer.NormalizePositionNames(args) {
					if err := writeLine(cmd.OutOrStdout(), name); err != nil {
						return err
					}
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "check <value>",
			Short: "Report whether the value has only letters and spaces",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return verdict(cmd.OutOrStdout(), sanitizer.IsValidPositionName(args[0]))
			},
		},
	)
	return cmd
}
