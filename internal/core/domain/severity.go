package domain

import (
	"fmt"
	"strings"
)

// ErrorSeverity is a linearly ordered severity scale.
// Collaborators compare severities to decide escalation.
type ErrorSeverity int

// Severities in ascending order.
const (
	SeverityInfo ErrorSeverity = iota
	SeverityWarning
	SeverityError
	SeverityCritical
	SeverityFatal
)

// ErrorSeverities returns every severity from least to most severe.
func ErrorSeverities() []ErrorSeverity {
	return []ErrorSeverity{SeverityInfo, SeverityWarning, SeverityError, SeverityCritical, SeverityFatal}
}

// IsValid returns true if the severity is one of the defined levels.
func (s ErrorSeverity) IsValid() bool {
	return s >= SeverityInfo && s <= SeverityFatal
}

// Level returns the numeric position on the scale.
func (s ErrorSeverity) Level() int {
	return int(s)
}

// IsMoreSevereThan reports whether s ranks strictly above other.
func (s ErrorSeverity) IsMoreSevereThan(other ErrorSeverity) bool {
	return s > other
}

// IsAtLeastAsSevereAs reports whether s ranks at or above other.
func (s ErrorSeverity) IsAtLeastAsSevereAs(other ErrorSeverity) bool {
	return s >= other
}

// String returns the string representation.
func (s ErrorSeverity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	case SeverityFatal:
		return "fatal"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// Description returns a human-readable description of the severity.
func (s ErrorSeverity) Description() string {
	switch s {
	case SeverityInfo:
		return "Informational"
	case SeverityWarning:
		return "Warning"
	case SeverityError:
		return "Error"
	case SeverityCritical:
		return "Critical"
	case SeverityFatal:
		return "Fatal"
	default:
		return "Unknown"
	}
}

// ParseErrorSeverity parses a severity name, ignoring case.
func ParseErrorSeverity(s string) (ErrorSeverity, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, sev := range ErrorSeverities() {
		if sev.String() == name {
			return sev, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown error severity %q", ErrInvalidInput, s)
}
