package record

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/eventure-app/eventure/backend/internal/auth"
	recordModel "github.com/eventure-app/eventure/backend/internal/model/record"
	"github.com/eventure-app/eventure/backend/internal/store"
	"github.com/eventure-app/eventure/backend/pkg/utils"
)

// Collections is the fixed set of record collections the API exposes.
var Collections = []string{"events", "vendors", "resources", "clients", "feedback"}

// Handler serves CRUD over the document store for the allow-listed
// collections. Reads are public; writes require authentication and deletes
// require ownership or admin.
type Handler struct {
	store   store.Store
	allowed map[string]bool
}

// New creates the record handler.
func New(st store.Store) *Handler {
	allowed := make(map[string]bool, len(Collections))
	for _, c := range Collections {
		allowed[c] = true
	}
	return &Handler{store: st, allowed: allowed}
}

// RegisterRoutes mounts the collection routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/{collection}", func(r chi.Router) {
		r.Use(h.requireKnownCollection)
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Get("/{id}", h.handleGet)
		r.Put("/{id}", h.handleUpdate)
		r.Delete("/{id}", h.handleDelete)
	})
}

func (h *Handler) requireKnownCollection(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.allowed[chi.URLParam(r, "collection")] {
			utils.RespondError(w, http.StatusNotFound, "unknown collection")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")
	q := recordModel.Query{
		Field:   r.URL.Query().Get("field"),
		Value:   r.URL.Query().Get("value"),
		OrderBy: r.URL.Query().Get("orderBy"),
	}

	records, err := h.store.List(r.Context(), collection, q)
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to list records")
		return
	}
	utils.RespondJSON(w, http.StatusOK, records)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	if !auth.IsAuthenticated(r.Context()) {
		utils.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	rec, err := h.store.Create(r.Context(), chi.URLParam(r, "collection"), recordModel.Record{
		OwnerID: auth.CurrentUserID(r.Context()),
		Fields:  fields,
	})
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to create record")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, rec)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	rec, err := h.store.Get(r.Context(), chi.URLParam(r, "collection"), chi.URLParam(r, "id"))
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, rec)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	if !auth.IsAuthenticated(r.Context()) {
		utils.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	rec, err := h.store.Update(r.Context(), chi.URLParam(r, "collection"), chi.URLParam(r, "id"), fields)
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, rec)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if !auth.IsAuthenticated(ctx) {
		utils.RespondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	collection := chi.URLParam(r, "collection")
	id := chi.URLParam(r, "id")

	rec, err := h.store.Get(ctx, collection, id)
	if err != nil {
		h.respondStoreError(w, err)
		return
	}
	if rec.OwnerID != auth.CurrentUserID(ctx) && !auth.IsAdmin(ctx) {
		utils.RespondError(w, http.StatusForbidden, "not the record owner")
		return
	}

	if err := h.store.Delete(ctx, collection, id); err != nil {
		h.respondStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		utils.RespondError(w, http.StatusNotFound, "record not found")
		return
	}
	utils.RespondError(w, http.StatusInternalServerError, "store operation failed")
}
