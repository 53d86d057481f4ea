package model

import "orgdesk/pkg/sanitizer"

type PositionCreate struct {
	Name string `json:"name" validate:"required,position_name"`
}

func (p *PositionCreate) Normalize() {
	p.Name = sanitizer.NormalizePositionName(p.Name)
}

type PositionUpdate struct {
	Name string `json:"name" validate:"required,position_name"`
}

func (p *PositionUpdate) Normalize() {
	p.Name = sanitizer.NormalizePositionName(p.Name)
}
