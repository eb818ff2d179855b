package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrPostingNotFound indicates the posting does not exist
type ErrPostingNotFound struct {
	ID uuid.UUID
}

func (e *ErrPostingNotFound) Error() string {
	return fmt.Sprintf("posting not found: %s", e.ID)
}

// ErrRunNotFound indicates the ranking run does not exist
type ErrRunNotFound struct {
	ID uuid.UUID
}

func (e *ErrRunNotFound) Error() string {
	return fmt.Sprintf("run not found: %s", e.ID)
}

// ErrResultsNotFound indicates no results have been stored for the run
type ErrResultsNotFound struct {
	RunID uuid.UUID
}

func (e *ErrResultsNotFound) Error() string {
	return fmt.Sprintf("no results for run: %s", e.RunID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrPostingNotFound, *ErrRunNotFound, *ErrResultsNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
