package domain

import (
	"fmt"
	"strings"
	"time"
)

// MenuItem is one orderable product on the café menu. The id is assigned at
// creation and never changes.
type MenuItem struct {
	ID          string    `json:"id"`
	Category    string    `json:"category"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description"`
	IsSpecial   bool      `json:"is_special"`
	Available   bool      `json:"available"`
	ImageURL    string    `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateMenuItemRequest carries the client-supplied fields for a new item.
// IsSpecial and Available are pointers so that an omitted field gets its
// documented default (false and true respectively).
type CreateMenuItemRequest struct {
	Category    string  `json:"category"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	IsSpecial   *bool   `json:"is_special"`
	Available   *bool   `json:"available"`
	ImageURL    string  `json:"image_url"`
}

func (r *CreateMenuItemRequest) Normalize() {
	r.Category = strings.TrimSpace(r.Category)
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.ImageURL = strings.TrimSpace(r.ImageURL)
}

func (r *CreateMenuItemRequest) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if r.Category == "" {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}
	if r.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	return nil
}

// UpdateMenuItemRequest is a partial patch; nil fields keep prior values.
type UpdateMenuItemRequest struct {
	Category    *string  `json:"category"`
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	IsSpecial   *bool    `json:"is_special"`
	Available   *bool    `json:"available"`
	ImageURL    *string  `json:"image_url"`
}

func (r *UpdateMenuItemRequest) Normalize() {
	if r.Category != nil {
		*r.Category = strings.TrimSpace(*r.Category)
	}
	if r.Name != nil {
		*r.Name = strings.TrimSpace(*r.Name)
	}
	if r.Description != nil {
		*r.Description = strings.TrimSpace(*r.Description)
	}
	if r.ImageURL != nil {
		*r.ImageURL = strings.TrimSpace(*r.ImageURL)
	}
}

func (r *UpdateMenuItemRequest) Validate() error {
	if r.Name != nil && *r.Name == "" {
		return fmt.Errorf("%w: name must not be empty", ErrValidation)
	}
	if r.Category != nil && *r.Category == "" {
		return fmt.Errorf("%w: category must not be empty", ErrValidation)
	}
	if r.Price != nil && *r.Price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	return nil
}

// IsEmpty reports whether the patch changes nothing.
func (r *UpdateMenuItemRequest) IsEmpty() bool {
	return r.Category == nil && r.Name == nil && r.Price == nil &&
		r.Description == nil && r.IsSpecial == nil && r.Available == nil &&
		r.ImageURL == nil
}
