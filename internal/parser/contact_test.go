package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractContact(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		expectedEmail string
		expectedPhone string
	}{
		{
			name:          "Both present",
			text:          "Jane Doe\njane.doe@example.com\n+1-555-123-4567",
			expectedEmail: "jane.doe@example.com",
			expectedPhone: "+1-555-123-4567",
		},
		{
			name:          "Email only",
			text:          "Reach me at jane@example.com",
			expectedEmail: "jane@example.com",
			expectedPhone: "",
		},
		{
			name:          "Phone only",
			text:          "Call (555) 123-4567",
			expectedEmail: "",
			expectedPhone: "(555) 123-4567",
		},
		{
			name:          "Neither present",
			text:          "A resume without contact details",
			expectedEmail: "",
			expectedPhone: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ExtractContact(tt.text)
			assert.Equal(t, tt.expectedEmail, c.Email)
			assert.Equal(t, tt.expectedPhone, c.Phone)
		})
	}
}
