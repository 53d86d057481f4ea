package validator

import (
	"orgdesk/pkg/logger"
	"orgdesk/pkg/model"
	"orgdesk/pkg/validation"
)

type DocumentValidator struct {
	engine *validation.Engine
	logger *logger.Logger
}

func NewDocumentValidator(engine *validation.Engine, log *logger.Logger) *DocumentValidator {
	return &DocumentValidator{
		engine: engine,
		logger: log,
	}
}

func (v *DocumentValidator) ValidateCreate(d *model.DocumentCreate, lang string) error {
	if err := v.engine.Struct(d, lang); err != nil {
		v.logger.Warn("Document validation failed", "form", "create", "error", err)
		return err
	}
	d.Normalize()
	return nil
}

func (v *DocumentValidator) ValidateUpdate(d *model.DocumentUpdate, lang string) error {
	if err := v.engine.Struct(d, lang); err != nil {
		v.logger.Warn("Document validation failed", "form", "update", "error", err)
		return err
	}
	d.Normalize()
	return nil
}

func (v *DocumentValidator) ValidateCategory(c *model.DocumentCategory, lang string) error {
	if err := v.engine.Struct(c, lang); err != nil {
		v.logger.Warn("Document category validation failed", "error", err)
		return err
	}
	c.Normalize()
	return nil
}
