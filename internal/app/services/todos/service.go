// Package todos is the domain boundary between the HTTP layer and storage.
// The operations currently forward 1:1 to the store; validation and business
// rules belong here when they arrive.
package todos

import (
	"context"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/fernlabs/todo-api/internal/app/domain/todo"
	"github.com/fernlabs/todo-api/internal/app/storage"
)

// Service exposes todo operations over a TodoStore.
type Service struct {
	store storage.TodoStore
	log   *logrus.Logger
}

// New constructs a todo service.
func New(store storage.TodoStore, log *logrus.Logger) *Service {
	if log == nil {
		log = logrus.New()
	}
	return &Service{store: store, log: log}
}

// List returns every stored todo.
func (s *Service) List(ctx context.Context) ([]todo.Todo, error) {
	return s.store.ListTodos(ctx)
}

// Create stores a new todo with a server-assigned id and completed=false.
func (s *Service) Create(ctx context.Context, next todo.NewTodo) (todo.Todo, error) {
	created, err := s.store.CreateTodo(ctx, next)
	if err != nil {
		return todo.Todo{}, err
	}
	s.log.WithField("todo_id", created.ID).Info("todo created")
	return created, nil
}

// Get looks up a todo by id.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (todo.Todo, error) {
	return s.store.GetTodo(ctx, id)
}

// Update applies a partial update; nil fields leave the stored value alone.
func (s *Service) Update(ctx context.Context, id uuid.UUID, patch todo.UpdateTodo) (todo.Todo, error) {
	return s.store.UpdateTodo(ctx, id, patch)
}

// Delete removes a todo by id.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.DeleteTodo(ctx, id); err != nil {
		return err
	}
	s.log.WithField("todo_id", id).Info("todo deleted")
	return nil
}
