package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/gridselect/pkg/domain/types"
)

func TestFieldType_IsValid(t *testing.T) {
	tests := []struct {
		name      string
		fieldType types.FieldType
		want      bool
	}{
		{
			name:      "valid select",
			fieldType: types.FieldTypeSelect,
			want:      true,
		},
		{
			name:      "valid multi-select",
			fieldType: types.FieldTypeMultiSelect,
			want:      true,
		},
		{
			name:      "invalid type",
			fieldType: types.FieldType("text"),
			want:      false,
		},
		{
			name:      "empty type",
			fieldType: types.FieldType(""),
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.want {
				gt.B(t, tt.fieldType.IsValid()).True()
			} else {
				gt.B(t, tt.fieldType.IsValid()).False()
			}
		})
	}
}

func TestAllFieldTypes(t *testing.T) {
	fieldTypes := types.AllFieldTypes()
	gt.A(t, fieldTypes).Length(2)

	for _, fieldType := range fieldTypes {
		gt.B(t, fieldType.IsValid()).
			Describef("Field type %s should be valid", fieldType).
			True()
	}
}

func TestFieldType_String(t *testing.T) {
	gt.S(t, types.FieldTypeSelect.String()).Equal("select")
	gt.S(t, types.FieldTypeMultiSelect.String()).Equal("multi-select")
}

func TestFieldType_Cardinality(t *testing.T) {
	gt.V(t, types.FieldTypeSelect.Cardinality()).Equal(types.Single)
	gt.V(t, types.FieldTypeMultiSelect.Cardinality()).Equal(types.Multi)
	gt.V(t, types.FieldType("unknown").Cardinality()).Equal(types.Single)
}

func TestCardinality_String(t *testing.T) {
	gt.S(t, types.Single.String()).Equal("single")
	gt.S(t, types.Multi.String()).Equal("multi")
	gt.S(t, types.Cardinality(42).String()).Equal("unknown")
}
