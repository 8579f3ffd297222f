package types_test

import (
	"testing"

	"github.com/secmon-lab/gridselect/pkg/domain/types"
)

func TestFieldID_Validate(t *testing.T) {
	tests := []struct {
		name    string
		id      types.FieldID
		wantErr bool
	}{
		{"valid lowercase", "priority", false},
		{"valid with hyphen", "due-stage", false},
		{"valid with numbers", "tag-123", false},
		{"empty", "", true},
		{"uppercase", "Priority", true},
		{"spaces", "due stage", true},
		{"underscore", "due_stage", true},
		{"starting with hyphen", "-tag", true},
		{"ending with hyphen", "tag-", true},
		{"double hyphen", "due--stage", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.id.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("FieldID.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
