package models

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ErrTitleRequired is returned when a post is submitted without a title.
var ErrTitleRequired = errors.New("title is required")

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			if fe.Field() == "Title" {
				return ErrTitleRequired
			}
		}
	}
	return err
}
