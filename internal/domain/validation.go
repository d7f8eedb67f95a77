package domain

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type ValidationKind string

const (
	KindNameNotCapitalized    ValidationKind = "name_not_capitalized"
	KindDuplicateName         ValidationKind = "duplicate_name"
	KindIncompatibleClassRole ValidationKind = "incompatible_class_role"
	KindRoleCapacityExceeded  ValidationKind = "role_capacity_exceeded"
	KindIncompleteRecord      ValidationKind = "incomplete_record"
)

type ValidationError struct {
	Kind    ValidationKind
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

// ValidationErrors carries every problem found for one record.
type ValidationErrors []ValidationError

func (errs ValidationErrors) Error() string {
	return strings.Join(errs.Messages(), "; ")
}

func (errs ValidationErrors) Messages() []string {
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		messages = append(messages, err.Message)
	}
	return messages
}

func (errs ValidationErrors) Has(kind ValidationKind) bool {
	for _, err := range errs {
		if err.Kind == kind {
			return true
		}
	}
	return false
}

// Validate runs every roster rule against record. All checks run; state is
// read but never modified.
func (c *RuleCatalog) Validate(record CandidateRecord, state *ConstraintState) ValidationErrors {
	var errs ValidationErrors

	if !StartsWithCapital(record.Name) {
		errs = append(errs, ValidationError{
			Kind:    KindNameNotCapitalized,
			Field:   KeyName,
			Message: "Name must start with a capital letter.",
		})
	}

	if state.HasName(record.Name) {
		errs = append(errs, DuplicateNameError(record.Name))
	}

	if !c.Permits(record.Role, record.Class) {
		errs = append(errs, ValidationError{
			Kind:    KindIncompatibleClassRole,
			Field:   KeyClass,
			Message: fmt.Sprintf("%s cannot be a %s.", record.Class, record.Role),
		})
	}

	if limit, ok := c.MaxCount(record.Role); ok && state.Count(record.Role)+1 > limit {
		errs = append(errs, ValidationError{
			Kind:    KindRoleCapacityExceeded,
			Field:   KeyPosition,
			Message: fmt.Sprintf("There cannot be more than %d %s.", limit, c.plural(record.Role)),
		})
	}

	return errs
}

func StartsWithCapital(name string) bool {
	if name == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(name)
	return unicode.IsUpper(first)
}

func DuplicateNameError(name string) ValidationError {
	return ValidationError{
		Kind:    KindDuplicateName,
		Field:   KeyName,
		Message: fmt.Sprintf("Names cannot be the same: %s", name),
	}
}

func IncompleteRecordError(line int, missing []string) ValidationError {
	return ValidationError{
		Kind:    KindIncompleteRecord,
		Message: fmt.Sprintf("Record at line %d is missing %s.", line, strings.Join(missing, ", ")),
	}
}
