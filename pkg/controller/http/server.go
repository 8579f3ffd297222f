package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/gridselect/pkg/domain/interfaces"
	"github.com/secmon-lab/gridselect/pkg/domain/model"
	"github.com/secmon-lab/gridselect/pkg/domain/types"
	"github.com/secmon-lab/gridselect/pkg/usecase"
	"github.com/secmon-lab/gridselect/pkg/utils/errutil"
	"github.com/secmon-lab/gridselect/pkg/utils/logging"
)

// GridUseCase is the part of the grid use case served over HTTP
type GridUseCase interface {
	Schema() []model.GridField
	AddOption(ctx context.Context, fieldID types.FieldID, name string) (*model.SelectOption, error)
	WriteCell(ctx context.Context, rowID string, fieldID types.FieldID, raw string) (*model.CellValue, error)
	ReadCell(ctx context.Context, rowID string, fieldID types.FieldID) (string, error)
	ReadRow(ctx context.Context, rowID string) (map[types.FieldID]string, error)
	ReadRows(ctx context.Context, rowIDs []string) (map[string]map[types.FieldID]string, error)
	DeleteRow(ctx context.Context, rowID string) error
}

var _ GridUseCase = (*usecase.GridUseCase)(nil)

type Server struct {
	router *chi.Mux
	grid   GridUseCase
}

func New(grid GridUseCase) *Server {
	r := chi.NewRouter()
	s := &Server{
		router: r,
		grid:   grid,
	}

	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/fields", s.listFields)
		r.Post("/fields/{fieldID}/options", s.addOption)

		r.Get("/rows", s.readRows)
		r.Route("/rows/{rowID}", func(r chi.Router) {
			r.Get("/", s.readRow)
			r.Delete("/", s.deleteRow)
			r.Get("/cells/{fieldID}", s.readCell)
			r.Put("/cells/{fieldID}", s.writeCell)
		})
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"request_id", middleware.GetReqID(r.Context()),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

type optionResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type fieldResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Type         string           `json:"type"`
	DisableColor bool             `json:"disable_color"`
	Options      []optionResponse `json:"options"`
}

type cellRequest struct {
	Value string `json:"value"`
}

type cellResponse struct {
	RowID     string   `json:"row_id"`
	FieldID   string   `json:"field_id"`
	Value     string   `json:"value"`
	OptionIDs []string `json:"option_ids"`
}

func toCellResponse(cell model.CellValue) cellResponse {
	ids := cell.OptionIDs()
	resp := cellResponse{
		RowID:     cell.RowID,
		FieldID:   string(cell.FieldID),
		Value:     cell.Value,
		OptionIDs: make([]string, len(ids)),
	}
	for i, id := range ids {
		resp.OptionIDs[i] = string(id)
	}
	return resp
}

type optionRequest struct {
	Name string `json:"name"`
}

func toOptionResponse(opt model.SelectOption) optionResponse {
	return optionResponse{
		ID:    string(opt.ID),
		Name:  opt.Name,
		Color: opt.Color,
	}
}

func (s *Server) listFields(w http.ResponseWriter, r *http.Request) {
	fields := s.grid.Schema()
	resp := make([]fieldResponse, len(fields))
	for i, f := range fields {
		opts := f.Config.SelectOptions()
		resp[i] = fieldResponse{
			ID:           string(f.ID),
			Name:         f.Name,
			Type:         string(f.Config.FieldType()),
			DisableColor: f.Config.ColorDisabled(),
			Options:      make([]optionResponse, len(opts)),
		}
		for j, opt := range opts {
			resp[i].Options[j] = toOptionResponse(opt)
		}
	}
	writeJSON(w, r, http.StatusOK, resp)
}

func (s *Server) addOption(w http.ResponseWriter, r *http.Request) {
	var req optionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	opt, err := s.grid.AddOption(r.Context(), types.FieldID(chi.URLParam(r, "fieldID")), req.Name)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, statusOf(err))
		return
	}
	writeJSON(w, r, http.StatusCreated, toOptionResponse(*opt))
}

func (s *Server) writeCell(w http.ResponseWriter, r *http.Request) {
	var req cellRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	cell, err := s.grid.WriteCell(r.Context(), chi.URLParam(r, "rowID"), types.FieldID(chi.URLParam(r, "fieldID")), req.Value)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, statusOf(err))
		return
	}
	writeJSON(w, r, http.StatusOK, toCellResponse(*cell))
}

func (s *Server) readCell(w http.ResponseWriter, r *http.Request) {
	rowID := chi.URLParam(r, "rowID")
	fieldID := chi.URLParam(r, "fieldID")

	value, err := s.grid.ReadCell(r.Context(), rowID, types.FieldID(fieldID))
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, statusOf(err))
		return
	}
	writeJSON(w, r, http.StatusOK, toCellResponse(model.CellValue{
		RowID:   rowID,
		FieldID: types.FieldID(fieldID),
		Value:   value,
	}))
}

func (s *Server) readRow(w http.ResponseWriter, r *http.Request) {
	row, err := s.grid.ReadRow(r.Context(), chi.URLParam(r, "rowID"))
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, statusOf(err))
		return
	}
	writeJSON(w, r, http.StatusOK, row)
}

// readRows serves ?ids=a,b,c
func (s *Server) readRows(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("ids")
	if raw == "" {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(usecase.ErrRowIDRequired, "ids query is required"), http.StatusBadRequest)
		return
	}

	rows, err := s.grid.ReadRows(r.Context(), strings.Split(raw, ","))
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, statusOf(err))
		return
	}
	writeJSON(w, r, http.StatusOK, rows)
}

func (s *Server) deleteRow(w http.ResponseWriter, r *http.Request) {
	if err := s.grid.DeleteRow(r.Context(), chi.URLParam(r, "rowID")); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, statusOf(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// statusOf maps use case errors to HTTP status codes
func statusOf(err error) int {
	switch {
	case errors.Is(err, interfaces.ErrNotFound),
		errors.Is(err, model.ErrFieldNotFound):
		return http.StatusNotFound
	case errors.Is(err, usecase.ErrRowIDRequired),
		errors.Is(err, usecase.ErrInvalidRowID),
		errors.Is(err, usecase.ErrOptionNameRequired),
		errors.Is(err, model.ErrDuplicateOptionID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data) //nolint:errcheck // header already committed
}
