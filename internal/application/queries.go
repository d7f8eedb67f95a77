package application

import "github.com/bnema/roster-cli/internal/domain"

// RejectedRecord is one block that was not persisted during ingestion.
type RejectedRecord struct {
	Line   int
	Name   string
	Errors domain.ValidationErrors
}

type IngestResult struct {
	Accepted []domain.Character
	Rejected []RejectedRecord
}

func (r IngestResult) AcceptedCount() int {
	return len(r.Accepted)
}

// Errors flattens every rejection message in block order.
func (r IngestResult) Errors() []string {
	var messages []string
	for _, rejected := range r.Rejected {
		messages = append(messages, rejected.Errors.Messages()...)
	}
	return messages
}

type ClassCount struct {
	Class domain.Class
	Count int
}

type RoleCount struct {
	Role   domain.Role
	Count  int
	Max    int
	Capped bool
}

type RosterView struct {
	Owner       domain.Owner
	Total       int
	Characters  []domain.Character
	ClassCounts []ClassCount
	RoleCounts  []RoleCount
}

type ExportRow struct {
	ID    domain.CharacterID
	Name  string
	Class domain.Class
	Role  domain.Role
}

type ExportReport struct {
	Owner     domain.Owner
	Rows      []ExportRow
	Truncated bool
}
