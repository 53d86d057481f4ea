package main

import (
	"github.com/spf13/cobra"

	"orgdesk/pkg/sanitizer"
)

func newPhoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "phone",
		Short: "Russian mobile phone helpers",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "format <value>",
			Short: "Apply the +7 (AAA) BBB-CC-DD input mask",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return writeLine(cmd.OutOrStdout(), sanitizer.FormatPhone(args[0]))
			},
		},
		&cobra.Command{
			Use:   "check <value>",
			Short: "Report whether the value is a complete +7 number",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return verdict(cmd.OutOrStdout(), sanitizer.IsValidPhone(args[0]))
			},
		},
		&cobra.Command{
			Use:   "display <value>",
			Short: "Format a stored number for display",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return writeLine(cmd.OutOrStdout(), sanitizer.FormatPhoneDisplay(args[0]))
			},
		},
		&cobra.Command{
			Use:   "e164 <value>",
			Short: "Convert a valid number to E.164",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				e164, err := sanitizer.PhoneToE164(args[0])
				if err != nil {
					return err
				}
				return writeLine(cmd.OutOrStdout(), e164)
			},
		},
	)
	return cmd
}
