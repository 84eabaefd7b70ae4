package storage

import "errors"

// Common storage errors
var (
	// ErrCharacterNotFound indicates that character was not found in storage
	ErrCharacterNotFound = errors.New("character not found")

	// ErrCharacterExists indicates that character with this ID already exists
	ErrCharacterExists = errors.New("character already exists")
)
