package main

import (
	"errors"

	"github.com/spf13/cobra"

	"orgdesk/internal/forms"
	"orgdesk/pkg/config"
	"orgdesk/pkg/locale"
	"orgdesk/pkg/validation"
)

// errRejected marks input that was checked and refused. The verdict is already
// on stdout, so main only sets the exit status.
var errRejected = errors.New("input rejected")

type app struct {
	cfg    *config.Config
	engine *validation.Engine
	lang   string
	pretty bool
}

func (a *app) service() forms.FormService {
	return forms.NewFormService(a.engine, locale.Match(a.lang), a.cfg.Log)
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	a := &app{
		cfg:    cfg,
		engine: validation.New(cfg.Log),
		lang:   cfg.Language,
		pretty: cfg.Pretty,
	}

	cmd := &cobra.Command{
		Use:           "formcheck",
		Short:         "Normalize and validate dashboard form input",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&a.lang, "lang", a.lang, "Message language (ru, en)")
	cmd.PersistentFlags().BoolVar(&a.pretty, "pretty", a.pretty, "Indent JSON output")

	cmd.AddCommand(
		newValidateCmd(a),
		newKindsCmd(a),
		newPhoneCmd(),
		newNameCmd(),
		newPositionCmd(),
		newHoursCmd(a),
		newErrorCmd(a),
	)
	return cmd
}
