package handlers

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"slices"

	"github.com/baharkarakas/player-registry/internal/form"
	"github.com/baharkarakas/player-registry/internal/models"
	"github.com/baharkarakas/player-registry/internal/repository"
	"github.com/baharkarakas/player-registry/internal/services"
)

//go:embed templates/*.html
var templatesFS embed.FS

// PageHandler serves the server-rendered listing and form pages.
type PageHandler struct {
	svc  *services.PlayerService
	tmpl *template.Template
}

func NewPageHandler(svc *services.PlayerService) (*PageHandler, error) {
	tmpl, err := template.New("").Funcs(template.FuncMap{
		"has": func(list []string, v string) bool { return slices.Contains(list, v) },
	}).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &PageHandler{svc: svc, tmpl: tmpl}, nil
}

type listingPage struct {
	Players  []models.Player
	FormPath string
}

type formPage struct {
	Mode      form.Mode
	ID        string
	Values    form.Values
	Errors    map[string]string
	Action    string
	Leagues   []models.League
	Statuses  []models.Status
	Positions []models.Position
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		slog.ErrorContext(r.Context(), "render page", "template", name, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *PageHandler) Listing(w http.ResponseWriter, r *http.Request) {
	players, err := h.svc.List(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "list players", "err", err)
		http.Error(w, "could not load players", http.StatusInternalServerError)
		return
	}
	h.render(w, r, http.StatusOK, "listing.html", listingPage{
		Players:  players,
		FormPath: h.svc.ListingPath() + "/create",
	})
}

func (h *PageHandler) Form(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	h.render(w, r, http.StatusOK, "form.html", h.buildForm(r, id, h.svc.Form(r.Context(), id), nil))
}

func (h *PageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	id := r.URL.Query().Get("id")
	v := form.Values{
		Name:          r.PostForm.Get(form.FieldName),
		DOB:           r.PostForm.Get(form.FieldDOB),
		LeaguesPlayed: r.PostForm[form.FieldLeaguesPlayed],
		Height:        r.PostForm.Get(form.FieldHeight),
		Status:        r.PostForm.Get(form.FieldStatus),
		Position:      r.PostForm.Get(form.FieldPosition),
	}
	if v.LeaguesPlayed == nil {
		v.LeaguesPlayed = []string{}
	}

	nav := form.NavigatorFunc(func(path string) { http.Redirect(w, r, path, http.StatusSeeOther) })
	_, errs, err := h.svc.Submit(r.Context(), nav, id, v)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		page := h.buildForm(r, id, v, map[string]string{"": "This player no longer exists."})
		h.render(w, r, http.StatusNotFound, "form.html", page)
	case err != nil:
		page := h.buildForm(r, id, v, map[string]string{"": "The player could not be saved."})
		h.render(w, r, http.StatusInternalServerError, "form.html", page)
	case len(errs) > 0:
		h.render(w, r, http.StatusUnprocessableEntity, "form.html", h.buildForm(r, id, v, errs.Map()))
	}
}

func (h *PageHandler) buildForm(r *http.Request, id string, v form.Values, errs map[string]string) formPage {
	return formPage{
		Mode:      form.ModeOf(id),
		ID:        id,
		Values:    v,
		Errors:    errs,
		Action:    r.URL.RequestURI(),
		Leagues:   models.Leagues,
		Statuses:  models.Statuses,
		Positions: models.Positions,
	}
}
