package model

import "orgdesk/pkg/sanitizer"

type NewsCreate struct {
	Title       string `json:"title" validate:"required,max=255"`
	Content     string `json:"content" validate:"required"`
	IsPublished bool   `json:"is_published"`
}

func (n *NewsCreate) Normalize() {
	n.Title = sanitizer.Trim(n.Title)
	n.Content = sanitizer.Trim(n.Content)
}

// NewsUpdate may reassign the news item to another owner.
type NewsUpdate struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Content     *string `json:"content,omitempty" validate:"omitempty,min=1"`
	IsPublished *bool   `json:"is_published,omitempty"`
	OwnerID     *string `json:"owner_id,omitempty" validate:"omitempty,uuid_rfc4122"`
}

func (n *NewsUpdate) Normalize() {
	n.Title = trimPtr(n.Title)
	n.Content = trimPtr(n.Content)
	n.OwnerID = canonicalUUIDPtr(n.OwnerID)
}
