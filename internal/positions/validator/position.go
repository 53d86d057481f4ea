package validator

import (
	"orgdesk/pkg/logger"
	"orgdesk/pkg/model"
	"orgdesk/pkg/validation"
)

type PositionValidator struct {
	engine *validation.Engine
	logger *logger.Logger
}

func NewPositionValidator(engine *validation.Engine, log *logger.Logger) *PositionValidator {
	return &PositionValidator{
		engine: engine,
		logger: log,
	}
}

func (v *PositionValidator) ValidateCreate(p *model.PositionCreate, lang string) error {
	if err := v.engine.Struct(p, lang); err != nil {
		v.logger.Warn("Position validation failed", "form", "create", "error", err)
		return err
	}
	p.Normalize()
	return nil
}

func (v *PositionValidator) ValidateUpdate(p *model.PositionUpdate, lang string) error {
	if err := v.engine.Struct(p, lang); err != nil {
		v.logger.Warn("Position validation failed", "form", "update", "error", err)
		return err
	}
	p.Normalize()
	return nil
}
