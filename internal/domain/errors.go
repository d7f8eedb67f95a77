package domain

import "errors"

var (
	ErrCharacterNotFound = errors.New("character not found")
	ErrEmptyExport       = errors.New("no characters available to export")
	ErrDuplicateName     = errors.New("character name already taken")
	ErrInvalidOwner      = errors.New("owner is required")
)
