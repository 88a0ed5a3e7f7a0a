package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// AssessmentID identifies a completed wind-resource assessment
type AssessmentID ID

func (id AssessmentID) String() string { return ID(id).String() }

// ParseAssessmentID parses a string into AssessmentID
func ParseAssessmentID(s string) (AssessmentID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("assessment ID cannot be empty")
	}
	return AssessmentID(s), nil
}
