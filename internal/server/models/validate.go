package models

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dmitrijs2005/orgchart/internal/common"
)

// MaxNameLength bounds every name-like column (varchar(50)).
const MaxNameLength = 50

// DateLayout is the wire and storage layout of calendar dates.
const DateLayout = "2006-01-02"

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{common.ErrorValidation}, args...)...)
}

func validateName(field, v string) error {
	if strings.TrimSpace(v) == "" {
		return validationError("%s is required", field)
	}
	if utf8.RuneCountInString(v) > MaxNameLength {
		return validationError("%s must be at most %d characters", field, MaxNameLength)
	}
	return nil
}

func validateID(field string, v int64) error {
	if v <= 0 {
		return validationError("%s must be a positive integer", field)
	}
	return nil
}

func validateDate(field, v string) error {
	if _, err := time.Parse(DateLayout, v); err != nil {
		return validationError("%s must be a date in YYYY-MM-DD format", field)
	}
	return nil
}
