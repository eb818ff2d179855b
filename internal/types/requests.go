package types

import (
	"github.com/go-playground/validator/v10"
)

// RankRequest represents an HTTP request to rank an inline snapshot.
type RankRequest struct {
	Snapshot Snapshot `json:"snapshot" validate:"required"`
	Limit    int      `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
	MaxHops  int      `json:"max_hops,omitempty" validate:"omitempty,min=1,max=2"`
}

// RankPostingRequest represents an HTTP request to rank a stored posting.
type RankPostingRequest struct {
	Limit   int `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
	MaxHops int `json:"max_hops,omitempty" validate:"omitempty,min=1,max=2"`
}

// Validate validates the RankRequest using the validator.
func (r *RankRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RankPostingRequest using the validator.
func (r *RankPostingRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
