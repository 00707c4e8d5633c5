package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Title   string  `validate:"required"`
	Date    string  `validate:"required,date"`
	DueDate *string `validate:"omitempty,date"`
}

func TestValidateDateTag(t *testing.T) {
	v := New()
	bad := "2024-02-30"
	good := "2024-02-29"

	tests := []struct {
		name    string
		in      sample
		wantErr bool
	}{
		{"valid", sample{Title: "Sync", Date: "2024-01-10"}, false},
		{"valid pointer", sample{Title: "Sync", Date: "2024-01-10", DueDate: &good}, false},
		{"missing title", sample{Date: "2024-01-10"}, true},
		{"slashes", sample{Title: "Sync", Date: "10/01/2024"}, true},
		{"impossible pointer date", sample{Title: "Sync", Date: "2024-01-10", DueDate: &bad}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
