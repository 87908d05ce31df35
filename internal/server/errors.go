package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/validation"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		indexErr    *session.IndexError
		fieldErr    *session.UnknownFieldError
		categoryErr *session.UnknownCategoryError
		inputErr    *validation.InputError
	)

	switch {
	case errors.As(err, &indexErr), errors.As(err, &fieldErr), errors.As(err, &categoryErr):
		return http.StatusNotFound
	case errors.As(err, &inputErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
