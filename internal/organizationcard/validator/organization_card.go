package validator

import (
	"orgdesk/pkg/logger"
	"orgdesk/pkg/model"
	"orgdesk/pkg/validation"
)

type OrganizationCardValidator struct {
	engine *validation.Engine
	logger *logger.Logger
}

func NewOrganizationCardValidator(engine *validation.Engine, log *logger.Logger) *OrganizationCardValidator {
	return &OrganizationCardValidator{
		engine: engine,
		logger: log,
	}
}

// Validate checks the card, including every day of both schedules, and
// normalizes it in place on success. Requisites are trimmed before the digit
// rules run.
func (v *OrganizationCardValidator) Validate(c *model.OrganizationCard, lang string) error {
	c.TrimRequisites()
	if err := v.engine.Struct(c, lang); err != nil {
		v.logger.Warn("Organization card validation failed", "error", err)
		return err
	}
	c.Normalize()
	return nil
}
