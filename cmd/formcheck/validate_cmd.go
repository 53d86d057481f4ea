package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/spf13/cobra"

	apperrors "orgdesk/pkg/errors"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <kind> [file|-]",
		Short: "Validate a JSON form payload and print the normalized form",
		Long: "Reads a JSON form payload from a file or stdin, validates it and normalizes it.\n" +
			"Accepted forms are printed as JSON; rejected ones print {code, message, details}\n" +
			"and exit with status 1. Run \"formcheck kinds\" for the list of form kinds.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := readPayload(cmd, args[1:])
			if err != nil {
				return a.reject(cmd.OutOrStdout(), err)
			}

			out, err := a.service().Process(args[0], payload)
			if err != nil {
				return a.reject(cmd.OutOrStdout(), err)
			}
			return writeJSON(cmd.OutOrStdout(), out, a.pretty)
		},
	}
}

func readPayload(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeInvalidInput, fmt.Sprintf("cannot read form payload %q", args[0]), http.StatusBadRequest)
	}
	return data, nil
}

// reject prints an AppError body and fails the command. Errors that are not
// AppErrors are returned as they are.
func (a *app) reject(w io.Writer, err error) error {
	if !apperrors.IsAppError(err) {
		return err
	}
	appErr := apperrors.AsAppError(err)
	if werr := writeError(w, appErr, a.pretty); werr != nil {
		return werr
	}
	if appErr.Code == apperrors.CodeInternal {
		return err
	}
	return errRejected
}

func newKindsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List the form kinds accepted by validate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeLine(cmd.OutOrStdout(), strings.Join(a.service().Kinds(), "\n"))
		},
	}
}
