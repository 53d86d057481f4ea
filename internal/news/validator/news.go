package validator

import (
	"orgdesk/pkg/logger"
	"orgdesk/pkg/model"
	"orgdesk/pkg/validation"
)

type NewsValidator struct {
	engine *validation.Engine
	logger *logger.Logger
}

func NewNewsValidator(engine *validation.Engine, log *logger.Logger) *NewsValidator {
	return &NewsValidator{
		engine: engine,
		logger: log,
	}
}

func (v *NewsValidator) ValidateCreate(n *model.NewsCreate, lang string) error {
	if err := v.engine.Struct(n, lang); err != nil {
		v.logger.Warn("News validation failed", "form", "create", "error", err)
		return err
	}
	n.Normalize()
	return nil
}

func (v *NewsValidator) ValidateUpdate(n *model.NewsUpdate, lang string) error {
	if err := v.engine.Struct(n, lang); err != nil {
		v.logger.Warn("News validation failed", "form", "update", "error", err)
		return err
	}
	n.Normalize()
	return nil
}
