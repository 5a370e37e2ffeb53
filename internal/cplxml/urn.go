package cplxml

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ParseURN normalises a urn:uuid qualified identifier (or a bare UUID).
func ParseURN(value string) (uuid.UUID, error) {
	trimmed := strings.TrimSpace(value)
	id, err := uuid.Parse(trimmed)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid uuid %q: %w", trimmed, err)
	}
	return id, nil
}

func parseURNAt(path, value string) (uuid.UUID, error) {
	id, err := ParseURN(value)
	if err != nil {
		return uuid.Nil, &DocumentParseError{Path: path, Err: err}
	}
	return id, nil
}
