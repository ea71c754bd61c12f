package domain

import (
	"fmt"
	"strings"
)

// DocumentationType classifies a documentation request.
// It is a pure discriminator consumed by documentation collaborators.
type DocumentationType string

// Available documentation types.
const (
	DocumentationBasic           DocumentationType = "basic"
	DocumentationMethod          DocumentationType = "method"
	DocumentationContextual      DocumentationType = "contextual"
	DocumentationTesting         DocumentationType = "testing"
	DocumentationArchitecture    DocumentationType = "architecture"
	DocumentationAPI             DocumentationType = "api"
	DocumentationTutorial        DocumentationType = "tutorial"
	DocumentationTroubleshooting DocumentationType = "troubleshooting"
)

// DocumentationTypes returns every documentation type in declaration order.
func DocumentationTypes() []DocumentationType {
	return []DocumentationType{
		DocumentationBasic,
		DocumentationMethod,
		DocumentationContextual,
		DocumentationTesting,
		DocumentationArchitecture,
		DocumentationAPI,
		DocumentationTutorial,
		DocumentationTroubleshooting,
	}
}

// IsValid returns true if the documentation type is recognised.
func (d DocumentationType) IsValid() bool {
	switch d {
	case DocumentationBasic, DocumentationMethod, DocumentationContextual, DocumentationTesting,
		DocumentationArchitecture, DocumentationAPI, DocumentationTutorial, DocumentationTroubleshooting:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (d DocumentationType) String() string {
	return string(d)
}

// ParseDocumentationType parses a documentation type name, ignoring case.
func ParseDocumentationType(s string) (DocumentationType, error) {
	d := DocumentationType(strings.ToLower(strings.TrimSpace(s)))
	if !d.IsValid() {
		return "", fmt.Errorf("%w: unknown documentation type %q", ErrInvalidInput, s)
	}
	return d, nil
}
