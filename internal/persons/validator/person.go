package validator

import (
	"orgdesk/pkg/logger"
	"orgdesk/pkg/model"
	"orgdesk/pkg/validation"
)

type PersonValidator struct {
	engine *validation.Engine
	logger *logger.Logger
}

func NewPersonValidator(engine *validation.Engine, log *logger.Logger) *PersonValidator {
	return &PersonValidator{
		engine: engine,
		logger: log,
	}
}

// ValidateCreate checks p as typed and normalizes it in place only when every
// field passed. A rejected form is left untouched.
func (v *PersonValidator) ValidateCreate(p *model.PersonCreate, lang string) error {
	if err := v.engine.Struct(p, lang); err != nil {
		v.logger.Warn("Person validation failed", "form", "create", "error", err)
		return err
	}
	p.Normalize()
	return nil
}

func (v *PersonValidator) ValidateUpdate(p *model.PersonUpdate, lang string) error {
	if err := v.engine.Struct(p, lang); err != nil {
		v.logger.Warn("Person validation failed", "form", "update", "error", err)
		return err
	}
	p.Normalize()
	return nil
}
