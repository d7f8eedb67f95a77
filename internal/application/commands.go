package application

import "github.com/bnema/roster-cli/internal/domain"

type AddCharacterCommand struct {
	Name  string
	Class domain.Class
	Role  domain.Role
}
