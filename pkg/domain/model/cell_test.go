package model_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/gridselect/pkg/domain/model"
	"github.com/secmon-lab/gridselect/pkg/domain/types"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		cardinality types.Cardinality
		want        string
	}{
		{"single keeps first of many", "1,2,3", types.Single, "1"},
		{"multi keeps all", "1,2,3", types.Multi, "1,2,3"},
		{"single with one id", "1", types.Single, "1"},
		{"multi with one id", "1", types.Multi, "1"},
		{"single empty", "", types.Single, ""},
		{"multi empty", "", types.Multi, ""},
		{"single leading separator", ",2", types.Single, ""},
		{"single keeps whitespace", " a , b", types.Single, " a "},
		{"multi keeps duplicates", "a,a,b", types.Multi, "a,a,b"},
		{"single only separators", ",,,", types.Single, ""},
		{"multi trailing separator", "a,", types.Multi, "a,"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gt.S(t, model.Normalize(tt.raw, tt.cardinality)).Equal(tt.want)
		})
	}
}

func TestNormalize_SingleIsPrefixBeforeSeparator(t *testing.T) {
	inputs := []string{"", "x", "x,y", "opt-1,opt-2,opt-3", ",", "a,,b", "日本,語"}
	for _, raw := range inputs {
		want := raw
		if i := strings.Index(raw, ","); i >= 0 {
			want = raw[:i]
		}
		gt.S(t, model.Normalize(raw, types.Single)).
			Describef("raw=%q", raw).
			Equal(want)
		gt.S(t, model.Normalize(raw, types.Multi)).
			Describef("raw=%q", raw).
			Equal(raw)
	}
}

func TestNormalize_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := model.Normalize("a,b,c", types.Single); got != "a" {
					t.Errorf("unexpected value: %q", got)
				}
			}
		}()
	}
	wg.Wait()
}

func TestCellCodec(t *testing.T) {
	codecs := map[string]model.CellCodec{
		"single": &model.SingleSelectFieldConfig{},
		"multi":  &model.MultiSelectFieldConfig{},
	}

	t.Run("serialize", func(t *testing.T) {
		got, err := codecs["single"].SerializeCellData("1,2,3")
		gt.NoError(t, err)
		gt.S(t, got).Equal("1")

		got, err = codecs["multi"].SerializeCellData("1,2,3")
		gt.NoError(t, err)
		gt.S(t, got).Equal("1,2,3")

		got, err = codecs["single"].SerializeCellData("")
		gt.NoError(t, err)
		gt.S(t, got).Equal("")
	})

	t.Run("deserialize is identity", func(t *testing.T) {
		for name, codec := range codecs {
			for _, stored := range []string{"", "1", "1,2,3", " a , b "} {
				gt.S(t, codec.DeserializeCellData(stored)).
					Describef("codec=%s stored=%q", name, stored).
					Equal(stored)
			}
		}
	})
}

func TestCellValue_OptionIDs(t *testing.T) {
	gt.A(t, model.CellValue{Value: ""}.OptionIDs()).Length(0)
	gt.A(t, model.CellValue{Value: "a,b,a"}.OptionIDs()).
		Equal([]types.OptionID{"a", "b", "a"})
	gt.A(t, model.CellValue{Value: "a,"}.OptionIDs()).
		Equal([]types.OptionID{"a", ""})
}
