// Package httpapi exposes the todo service over a JSON REST API.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/fernlabs/todo-api/internal/app/domain/todo"
	"github.com/fernlabs/todo-api/internal/app/services/todos"
	"github.com/fernlabs/todo-api/internal/app/storage"
)

// handler bundles the HTTP endpoints for the todo service.
type handler struct {
	todos *todos.Service
	log   *logrus.Logger
}

// NewHandler returns a router exposing the todo REST API, the OpenAPI
// document, the swagger viewer, and the health and metrics endpoints.
func NewHandler(svc *todos.Service, log *logrus.Logger) http.Handler {
	if log == nil {
		log = logrus.New()
	}
	h := &handler{todos: svc, log: log}

	r := mux.NewRouter()
	r.HandleFunc("/todos", h.listTodos).Methods(http.MethodGet)
	r.HandleFunc("/todos", h.createTodo).Methods(http.MethodPost)
	r.HandleFunc("/todos/{id}", h.getTodo).Methods(http.MethodGet)
	r.HandleFunc("/todos/{id}", h.updateTodo).Methods(http.MethodPut)
	r.HandleFunc("/todos/{id}", h.deleteTodo).Methods(http.MethodDelete)

	r.HandleFunc("/api-doc/openapi.json", h.openAPIDocument).Methods(http.MethodGet)
	r.HandleFunc("/swagger-ui", h.swaggerUI).Methods(http.MethodGet)
	r.HandleFunc("/healthz", h.healthz).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	r.Use(LoggingMiddleware(log), MetricsMiddleware())
	return r
}

func (h *handler) listTodos(w http.ResponseWriter, r *http.Request) {
	list, err := h.todos.List(r.Context())
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *handler) createTodo(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Title *string `json:"title"`
	}
	if err := decodeJSON(r.Body, &payload); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if payload.Title == nil {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}

	created, err := h.todos.Create(r.Context(), todo.NewTodo{Title: *payload.Title})
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *handler) getTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	rec, err := h.todos.Get(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *handler) updateTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var patch todo.UpdateTodo
	if err := decodeJSON(r.Body, &patch); err != nil {
		http.Error(w, fmt.Sprintf("invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	updated, err := h.todos.Update(r.Context(), id, patch)
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *handler) deleteTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	err := h.todos.Delete(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.serverError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.log.WithField("method", r.Method).
		WithField("path", r.URL.Path).
		WithError(err).
		Error("request failed")
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

// pathID parses the {id} route variable. A malformed id is a client error;
// the service is never consulted.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid todo id: %v", err), http.StatusBadRequest)
		return uuid.UUID{}, false
	}
	return id, true
}

func decodeJSON(body io.ReadCloser, dst interface{}) error {
	defer body.Close()
	return json.NewDecoder(body).Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
