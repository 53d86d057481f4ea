package main

import (
	"github.com/spf13/cobra"

	apperrors "orgdesk/pkg/errors"
)

func newErrorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "error <code>...",
		Short: "Print the user-facing message for backend API error codes",
		Long: "Prints {code, message} for each API error code, the way the dashboard shows\n" +
			"it. Unknown codes get the generic message.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, code := range args {
				if err := writeError(cmd.OutOrStdout(), apperrors.FromCode(code), a.pretty); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
