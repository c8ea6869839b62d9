// Package validation holds the pure input checks shared by every entry
// point. The same check runs whether a field arrives from the public RSVP
// form or from an admin edit.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/fzambone/event-attendance/internal/apperr"
)

var (
	eventIDPattern        = regexp.MustCompile(`^[a-z0-9-]+$`)
	confirmationIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
)

// EventID checks the slug shape and returns it trimmed.
func EventID(id string) (string, error) {
	id = strings.TrimSpace(id)
	if id == "" || !eventIDPattern.MatchString(id) {
		return "", apperr.New(apperr.InvalidInput, "Invalid event id. Use only lowercase letters, numbers and hyphens.")
	}
	return id, nil
}

// Required checks that value is non-empty after trimming and returns it
// trimmed. label names the field in the error message.
func Required(value, label string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", apperr.Newf(apperr.InvalidInput, "%s is required.", label)
	}
	return value, nil
}

// Guests parses the submitted guest count, which arrives as a JSON
// number or as the string a form submit produces. The total includes the
// submitter, so anything below 1 is rejected.
func Guests(value any) (int, error) {
	var raw string
	switch v := value.(type) {
	case nil:
		raw = ""
	case string:
		raw = v
	case float64:
		raw = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		raw = fmt.Sprint(v)
	}
	guests, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || guests < 1 {
		return 0, apperr.New(apperr.InvalidInput, "Guest count must be at least 1.")
	}
	return guests, nil
}

// ConfirmationID checks the 8-4-4-4-12 hex shape of a confirmation id.
func ConfirmationID(id string) (string, error) {
	if !confirmationIDPattern.MatchString(id) {
		return "", apperr.New(apperr.InvalidInput, "Invalid confirmation id.")
	}
	return id, nil
}
