package words_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/wordmap/internal/words"
	"github.com/JaimeStill/wordmap/pkg/routes"
)

type fakeSystem struct {
	words       map[uuid.UUID]*words.Word
	images      map[uuid.UUID]bool
	lastFilters words.Filters
	err         error
}

func newFakeSystem() *fakeSystem {
	return &fakeSystem{
		words:  make(map[uuid.UUID]*words.Word),
		images: make(map[uuid.UUID]bool),
	}
}

func (f *fakeSystem) seed(word string, coords words.Coordinates) *words.Word {
	w := &words.Word{ID: uuid.New(), Word: word, Coordinates: coords, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	f.words[w.ID] = w
	return w
}

func (f *fakeSystem) List(ctx context.Context, filters words.Filters) ([]words.Word, error) {
	f.lastFilters = filters
	if f.err != nil {
		return nil, f.err
	}
	out := make([]words.Word, 0, len(f.words))
	for _, w := range f.words {
		out = append(out, *w)
	}
	return out, nil
}

func (f *fakeSystem) Find(ctx context.Context, id uuid.UUID) (*words.Word, error) {
	w, ok := f.words[id]
	if !ok {
		return nil, words.ErrNotFound
	}
	return w, nil
}

func (f *fakeSystem) Add(ctx context.Context, cmd words.AddCommand) (*words.Word, error) {
	if err := cmd.Normalize(); err != nil {
		return nil, err
	}
	if cmd.ImageID != nil && !f.images[*cmd.ImageID] {
		return nil, words.ErrImageNotFound
	}
	for _, w := range f.words {
		if w.Word == cmd.Word && equalIDs(w.ImageID, cmd.ImageID) {
			return nil, words.ErrDuplicate
		}
	}
	w := f.seed(cmd.Word, nil)
	w.ImageID = cmd.ImageID
	return w, nil
}

func (f *fakeSystem) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.words[id]; !ok {
		return words.ErrNotFound
	}
	delete(f.words, id)
	return nil
}

func (f *fakeSystem) SaveCoordinates(ctx context.Context, id uuid.UUID, coords words.Coordinates) (*words.Word, error) {
	w, ok := f.words[id]
	if !ok {
		return nil, words.ErrNotFound
	}
	w.Coordinates = coords
	return w, nil
}

func (f *fakeSystem) ClearCoordinates(ctx context.Context, id uuid.UUID) error {
	w, ok := f.words[id]
	if !ok {
		return words.ErrNotFound
	}
	w.Coordinates = nil
	return nil
}

func equalIDs(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func newServer(t *testing.T, sys words.System) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := words.NewHandler(sys, logger)

	table := routes.NewTable("/api")
	if err := table.Add(h.Routes()); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	return table.Handler()
}

func serve(srv http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func TestAddCommand_Normalize(t *testing.T) {
	tests := []struct {
		name    string
		word    string
		want    string
		wantErr bool
	}{
		{"trims", "  cat ", "cat", false},
		{"empty", "\t", "", true},
		{"at limit", strings.Repeat("ß", words.MaxWordLength), strings.Repeat("ß", words.MaxWordLength), false},
		{"over limit", strings.Repeat("a", words.MaxWordLength+1), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := words.AddCommand{Word: tt.word}
			err := cmd.Normalize()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Normalize() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && cmd.Word != tt.want {
				t.Errorf("Word = %q, want %q", cmd.Word, tt.want)
			}
		})
	}
}

func TestSaveCoordinatesCommand_Resolve(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		cmd     words.SaveCoordinatesCommand
		want    words.Coordinates
		wantErr bool
	}{
		{
			name: "coordinates",
			cmd:  words.SaveCoordinatesCommand{WordID: id, Coordinates: pts(1, 1, 2, 2)},
			want: pts(1, 1, 2, 2),
		},
		{
			name: "strokes ordered",
			cmd:  words.SaveCoordinatesCommand{WordID: id, Strokes: []words.Coordinates{pts(0, 0, 1, 0), pts(4, 0, 2, 0)}},
			want: pts(0, 0, 1, 0, 2, 0, 4, 0),
		},
		{
			name:    "missing word id",
			cmd:     words.SaveCoordinatesCommand{Coordinates: pts(1, 1)},
			wantErr: true,
		},
		{
			name:    "neither",
			cmd:     words.SaveCoordinatesCommand{WordID: id},
			wantErr: true,
		},
		{
			name:    "both",
			cmd:     words.SaveCoordinatesCommand{WordID: id, Coordinates: pts(1, 1), Strokes: []words.Coordinates{pts(1, 1)}},
			wantErr: true,
		},
		{
			name:    "only empty strokes",
			cmd:     words.SaveCoordinatesCommand{WordID: id, Strokes: []words.Coordinates{{}, {}}},
			wantErr: true,
		},
		{
			name:    "negative value",
			cmd:     words.SaveCoordinatesCommand{WordID: id, Coordinates: pts(-1, 1)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cmd.Resolve()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Resolve() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, words.ErrInvalid) {
					t.Errorf("error = %v, want ErrInvalid", err)
				}
				return
			}
			if fmt.Sprint(got) != fmt.Sprint(tt.want) {
				t.Errorf("Resolve() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFiltersFromQuery(t *testing.T) {
	id := uuid.New()

	f, err := words.FiltersFromQuery(url.Values{"image_id": {id.String()}, "search": {"ca"}})
	if err != nil {
		t.Fatalf("FiltersFromQuery() error = %v", err)
	}
	if f.ImageID == nil || *f.ImageID != id {
		t.Errorf("ImageID = %v, want %s", f.ImageID, id)
	}
	if f.Search == nil || *f.Search != "ca" {
		t.Errorf("Search = %v, want ca", f.Search)
	}

	empty, err := words.FiltersFromQuery(url.Values{})
	if err != nil || empty.ImageID != nil || empty.Search != nil {
		t.Errorf("empty query = %+v, %v", empty, err)
	}

	if _, err := words.FiltersFromQuery(url.Values{"image_id": {"nope"}}); !errors.Is(err, words.ErrInvalid) {
		t.Errorf("invalid image_id error = %v, want ErrInvalid", err)
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{words.ErrNotFound, http.StatusNotFound},
		{words.ErrImageNotFound, http.StatusNotFound},
		{words.ErrDuplicate, http.StatusConflict},
		{fmt.Errorf("%w: word", words.ErrInvalid), http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := words.MapHTTPStatus(tt.err); got != tt.want {
			t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestHandler_List(t *testing.T) {
	sys := newFakeSystem()
	sys.seed("cat", nil)
	srv := newServer(t, sys)

	rec := serve(srv, http.MethodGet, "/words/?search=ca", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got []words.Word
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Word != "cat" {
		t.Errorf("body = %+v", got)
	}
	if sys.lastFilters.Search == nil || *sys.lastFilters.Search != "ca" {
		t.Errorf("search filter not passed: %+v", sys.lastFilters)
	}

	if rec := serve(srv, http.MethodGet, "/words/?image_id=bad", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("bad image_id status = %d, want 400", rec.Code)
	}

	sys.err = errors.New("db down")
	if rec := serve(srv, http.MethodGet, "/words/", ""); rec.Code != http.StatusInternalServerError {
		t.Errorf("error status = %d, want 500", rec.Code)
	}
}

func TestHandler_Add(t *testing.T) {
	sys := newFakeSystem()
	imageID := uuid.New()
	sys.images[imageID] = true
	srv := newServer(t, sys)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"created", `{"word":"cat"}`, http.StatusCreated},
		{"duplicate", `{"word":" cat "}`, http.StatusConflict},
		{"same word other image", fmt.Sprintf(`{"word":"cat","image_id":%q}`, imageID), http.StatusCreated},
		{"unknown image", fmt.Sprintf(`{"word":"dog","image_id":%q}`, uuid.New()), http.StatusNotFound},
		{"empty word", `{"word":""}`, http.StatusBadRequest},
		{"malformed", `{"word":`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(srv, http.MethodPost, "/add_word/", tt.body)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestHandler_Delete(t *testing.T) {
	sys := newFakeSystem()
	byQuery := sys.seed("query", nil)
	byBody := sys.seed("body", nil)
	srv := newServer(t, sys)

	if rec := serve(srv, http.MethodDelete, "/delete_word/?id="+byQuery.ID.String(), ""); rec.Code != http.StatusNoContent {
		t.Errorf("query delete status = %d, want 204", rec.Code)
	}

	body := fmt.Sprintf(`{"id":%q}`, byBody.ID)
	if rec := serve(srv, http.MethodDelete, "/delete_word/", body); rec.Code != http.StatusNoContent {
		t.Errorf("body delete status = %d, want 204", rec.Code)
	}

	if len(sys.words) != 0 {
		t.Errorf("words remaining = %d, want 0", len(sys.words))
	}

	tests := []struct {
		name   string
		target string
		body   string
		want   int
	}{
		{"unknown", "/delete_word/?id=" + uuid.NewString(), "", http.StatusNotFound},
		{"missing", "/delete_word/", "", http.StatusBadRequest},
		{"invalid", "/delete_word/?id=abc", "", http.StatusBadRequest},
		{"wrong method", "/delete_word/?id=" + uuid.NewString(), "", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			method := http.MethodDelete
			if tt.name == "wrong method" {
				method = http.MethodGet
			}
			if rec := serve(srv, method, tt.target, tt.body); rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestHandler_SaveAndClearCoordinates(t *testing.T) {
	sys := newFakeSystem()
	w := sys.seed("cat", nil)
	srv := newServer(t, sys)

	body := fmt.Sprintf(`{"word_id":%q,"strokes":[[[0,0],[1,0]],[[5,0],[2,0]]]}`, w.ID)
	rec := serve(srv, http.MethodPost, "/add_coordinates/", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("save status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var saved words.Word
	if err := json.NewDecoder(rec.Body).Decode(&saved); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if fmt.Sprint(saved.Coordinates) != fmt.Sprint(pts(0, 0, 1, 0, 2, 0, 5, 0)) {
		t.Errorf("coordinates = %v", saved.Coordinates)
	}

	rec = serve(srv, http.MethodGet, "/coordinates/"+w.ID.String()+"/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); !strings.Contains(got, `"coordinates":[[0,0],[1,0],[2,0],[5,0]]`) {
		t.Errorf("body = %s", got)
	}

	rec = serve(srv, http.MethodDelete, "/delete_coordinate/", fmt.Sprintf(`{"word_id":%q}`, w.ID))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("clear status = %d, want 204", rec.Code)
	}
	if sys.words[w.ID] == nil {
		t.Fatal("word removed by delete_coordinate")
	}
	if sys.words[w.ID].Coordinates != nil {
		t.Errorf("coordinates = %v, want nil", sys.words[w.ID].Coordinates)
	}

	rec = serve(srv, http.MethodGet, "/coordinates/"+w.ID.String()+"/", "")
	if !strings.Contains(rec.Body.String(), `"coordinates":null`) {
		t.Errorf("cleared body = %s", rec.Body.String())
	}
}

func TestHandler_SaveCoordinates_Errors(t *testing.T) {
	sys := newFakeSystem()
	w := sys.seed("cat", nil)
	srv := newServer(t, sys)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"unknown word", fmt.Sprintf(`{"word_id":%q,"coordinates":[[1,1]]}`, uuid.New()), http.StatusNotFound},
		{"both inputs", fmt.Sprintf(`{"word_id":%q,"coordinates":[[1,1]],"strokes":[[[1,1]]]}`, w.ID), http.StatusBadRequest},
		{"empty coordinates", fmt.Sprintf(`{"word_id":%q,"coordinates":[]}`, w.ID), http.StatusBadRequest},
		{"bad point", fmt.Sprintf(`{"word_id":%q,"coordinates":[[1]]}`, w.ID), http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rec := serve(srv, http.MethodPost, "/add_coordinates/", tt.body); rec.Code != tt.want {
				t.Errorf("status = %d, want %d: %s", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}

func TestHandler_Coordinates_Errors(t *testing.T) {
	srv := newServer(t, newFakeSystem())

	if rec := serve(srv, http.MethodGet, "/coordinates/nope/", ""); rec.Code != http.StatusBadRequest {
		t.Errorf("invalid id status = %d, want 400", rec.Code)
	}
	if rec := serve(srv, http.MethodGet, "/coordinates/"+uuid.NewString()+"/", ""); rec.Code != http.StatusNotFound {
		t.Errorf("unknown id status = %d, want 404", rec.Code)
	}
}
