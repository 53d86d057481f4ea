package model

import "orgdesk/pkg/sanitizer"

// DocumentCreate names the uploaded file. An empty name keeps the file name,
// and CategoryName creates the category on the fly when CategoryID is unset.
type DocumentCreate struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,max=255"`
	CategoryID   *string `json:"category_id,omitempty" validate:"omitempty,uuid_rfc4122"`
	CategoryName *string `json:"category_name,omitempty" validate:"omitempty,max=100"`
}

func (d *DocumentCreate) Normalize() {
	d.Name = sanitizer.NormalizeOptionalPtr(d.Name)
	d.CategoryID = canonicalUUIDPtr(d.CategoryID)
	d.CategoryName = sanitizer.NormalizeOptionalPtr(d.CategoryName)
}

type DocumentUpdate struct {
	Name       string  `json:"name" validate:"required,max=255"`
	CategoryID *string `json:"category_id,omitempty" validate:"omitempty,uuid_rfc4122"`
}

func (d *DocumentUpdate) Normalize() {
	d.Name = sanitizer.Trim(d.Name)
	d.CategoryID = canonicalUUIDPtr(d.CategoryID)
}

type DocumentCategory struct {
	Name string `json:"name" validate:"required,max=100"`
}

func (d *DocumentCategory) Normalize() {
	d.Name = sanitizer.Trim(d.Name)
}
