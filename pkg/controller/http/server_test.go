package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	httpctrl "github.com/secmon-lab/gridselect/pkg/controller/http"
	"github.com/secmon-lab/gridselect/pkg/domain/model"
	"github.com/secmon-lab/gridselect/pkg/repository/memory"
	"github.com/secmon-lab/gridselect/pkg/usecase"
)

func setupServer(t *testing.T) http.Handler {
	t.Helper()

	schema := &model.GridSchema{Fields: []model.GridField{
		{
			ID:   "priority",
			Name: "Priority",
			Config: &model.SingleSelectFieldConfig{Options: model.Options{
				{ID: "low", Name: "Low", Color: "#00ff00"},
				{ID: "high", Name: "High", Color: "#ff0000"},
			}},
		},
		{
			ID:     "tags",
			Name:   "Tags",
			Config: &model.MultiSelectFieldConfig{DisableColor: true},
		},
	}}

	uc := usecase.New(memory.New(),
		usecase.WithSchema(schema),
		usecase.WithIDGenerator(&model.SequenceGenerator{Prefix: "opt-"}),
	)
	return httpctrl.New(uc.Grid)
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

type cellBody struct {
	RowID     string   `json:"row_id"`
	FieldID   string   `json:"field_id"`
	Value     string   `json:"value"`
	OptionIDs []string `json:"option_ids"`
}

func TestServer_Cells(t *testing.T) {
	h := setupServer(t)

	t.Run("write single select collapses value", func(t *testing.T) {
		w := doRequest(t, h, http.MethodPut, "/api/rows/row-1/cells/priority", `{"value":"high,low"}`)
		gt.N(t, w.Code).Equal(http.StatusOK)

		var resp cellBody
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp)).Required()
		gt.S(t, resp.Value).Equal("high")
		gt.S(t, resp.RowID).Equal("row-1")
		gt.A(t, resp.OptionIDs).Equal([]string{"high"})
	})

	t.Run("write multi select keeps value", func(t *testing.T) {
		w := doRequest(t, h, http.MethodPut, "/api/rows/row-1/cells/tags", `{"value":"a,b,a"}`)
		gt.N(t, w.Code).Equal(http.StatusOK)
	})

	t.Run("read cell", func(t *testing.T) {
		w := doRequest(t, h, http.MethodGet, "/api/rows/row-1/cells/tags", "")
		gt.N(t, w.Code).Equal(http.StatusOK)

		var resp cellBody
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp)).Required()
		gt.S(t, resp.Value).Equal("a,b,a")
		gt.A(t, resp.OptionIDs).Equal([]string{"a", "b", "a"})
	})

	t.Run("read row", func(t *testing.T) {
		w := doRequest(t, h, http.MethodGet, "/api/rows/row-1", "")
		gt.N(t, w.Code).Equal(http.StatusOK)

		var resp map[string]string
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp)).Required()
		gt.N(t, len(resp)).Equal(2)
		gt.S(t, resp["priority"]).Equal("high")
	})

	t.Run("read rows", func(t *testing.T) {
		w := doRequest(t, h, http.MethodGet, "/api/rows?ids=row-1,row-9", "")
		gt.N(t, w.Code).Equal(http.StatusOK)

		var resp map[string]map[string]string
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp)).Required()
		gt.N(t, len(resp)).Equal(2)
		gt.S(t, resp["row-1"]["tags"]).Equal("a,b,a")
		gt.N(t, len(resp["row-9"])).Equal(0)

		w = doRequest(t, h, http.MethodGet, "/api/rows", "")
		gt.N(t, w.Code).Equal(http.StatusBadRequest)
	})

	t.Run("unknown field", func(t *testing.T) {
		w := doRequest(t, h, http.MethodPut, "/api/rows/row-1/cells/missing", `{"value":"x"}`)
		gt.N(t, w.Code).Equal(http.StatusNotFound)
	})

	t.Run("broken body", func(t *testing.T) {
		w := doRequest(t, h, http.MethodPut, "/api/rows/row-1/cells/priority", `{`)
		gt.N(t, w.Code).Equal(http.StatusBadRequest)
	})

	t.Run("delete row", func(t *testing.T) {
		w := doRequest(t, h, http.MethodDelete, "/api/rows/row-1", "")
		gt.N(t, w.Code).Equal(http.StatusNoContent)

		w = doRequest(t, h, http.MethodGet, "/api/rows/row-1/cells/priority", "")
		gt.N(t, w.Code).Equal(http.StatusNotFound)
	})
}

func TestServer_Fields(t *testing.T) {
	h := setupServer(t)

	w := doRequest(t, h, http.MethodPost, "/api/fields/tags/options", `{"name":"Docs"}`)
	gt.N(t, w.Code).Equal(http.StatusCreated)

	var created map[string]string
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &created)).Required()
	gt.S(t, created["id"]).Equal("opt-1")
	gt.S(t, created["name"]).Equal("Docs")
	gt.S(t, created["color"]).Equal("")

	w = doRequest(t, h, http.MethodPost, "/api/fields/tags/options", `{"name":""}`)
	gt.N(t, w.Code).Equal(http.StatusBadRequest)

	w = doRequest(t, h, http.MethodGet, "/api/fields", "")
	gt.N(t, w.Code).Equal(http.StatusOK)

	var fields []struct {
		ID           string `json:"id"`
		Type         string `json:"type"`
		DisableColor bool   `json:"disable_color"`
		Options      []struct {
			ID string `json:"id"`
		} `json:"options"`
	}
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &fields)).Required()
	gt.A(t, fields).Length(2).Required()
	gt.S(t, fields[0].Type).Equal("select")
	gt.A(t, fields[0].Options).Length(2)
	gt.S(t, fields[1].Type).Equal("multi-select")
	gt.B(t, fields[1].DisableColor).True()
	gt.A(t, fields[1].Options).Length(1)
}
