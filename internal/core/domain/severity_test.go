package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorSeverity_Ordering(t *testing.T) {
	severities := ErrorSeverities()
	require.Len(t, severities, 5)

	for i := range severities {
		assert.Equal(t, i, severities[i].Level())
		for j := range severities {
			assert.Equal(t, i > j, severities[i].IsMoreSevereThan(severities[j]),
				"%s > %s", severities[i], severities[j])
			assert.Equal(t, i >= j, severities[i].IsAtLeastAsSevereAs(severities[j]),
				"%s >= %s", severities[i], severities[j])
		}
	}
}

func TestErrorSeverity_StringAndDescription(t *testing.T) {
	tests := []struct {
		severity    ErrorSeverity
		name        string
		description string
	}{
		{SeverityInfo, "info", "Informational"},
		{SeverityWarning, "warning", "Warning"},
		{SeverityError, "error", "Error"},
		{SeverityCritical, "critical", "Critical"},
		{SeverityFatal, "fatal", "Fatal"},
		{ErrorSeverity(42), "severity(42)", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.severity.String())
			assert.Equal(t, tt.description, tt.severity.Description())
		})
	}
}

func TestErrorSeverity_IsValid(t *testing.T) {
	for _, s := range ErrorSeverities() {
		assert.True(t, s.IsValid(), s.String())
	}
	assert.False(t, ErrorSeverity(-1).IsValid())
	assert.False(t, ErrorSeverity(5).IsValid())
}

func TestParseErrorSeverity(t *testing.T) {
	got, err := ParseErrorSeverity("CRITICAL")
	require.NoError(t, err)
	assert.Equal(t, SeverityCritical, got)

	got, err = ParseErrorSeverity(" warning ")
	require.NoError(t, err)
	assert.Equal(t, SeverityWarning, got)

	_, err = ParseErrorSeverity("panic")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
