package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/fernlabs/todo-api/internal/app/domain/todo"
)

// ErrNotFound reports that no todo row matched the requested id.
var ErrNotFound = errors.New("todo not found")

// TodoStore persists todo records.
type TodoStore interface {
	ListTodos(ctx context.Context) ([]todo.Todo, error)
	CreateTodo(ctx context.Context, next todo.NewTodo) (todo.Todo, error)
	GetTodo(ctx context.Context, id uuid.UUID) (todo.Todo, error)
	UpdateTodo(ctx context.Context, id uuid.UUID, patch todo.UpdateTodo) (todo.Todo, error)
	DeleteTodo(ctx context.Context, id uuid.UUID) error
}
