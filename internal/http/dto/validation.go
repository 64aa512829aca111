package dto

import (
	"fmt"
	"strings"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ToResponse(errs []ValidationError) string {
	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "; ")
}

const maxQueryLength = 512

func validateQuery(query string) []ValidationError {
	var errs []ValidationError
	if strings.TrimSpace(query) == "" {
		errs = append(errs, ValidationError{Field: "query", Message: "is required"})
	} else if len(query) > maxQueryLength {
		errs = append(errs, ValidationError{Field: "query", Message: fmt.Sprintf("must be at most %d bytes", maxQueryLength)})
	}
	return errs
}
