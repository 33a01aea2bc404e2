package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/fernlabs/todo-api/internal/app/domain/todo"
	"github.com/fernlabs/todo-api/internal/app/storage"
)

// Store is an in-memory implementation of storage.TodoStore. It is safe for
// concurrent use and is primarily intended for tests and local development.
type Store struct {
	mu    sync.RWMutex
	todos map[uuid.UUID]todo.Todo
}

var _ storage.TodoStore = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{todos: make(map[uuid.UUID]todo.Todo)}
}

func (s *Store) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]todo.Todo, 0, len(s.todos))
	for _, rec := range s.todos {
		result = append(result, rec)
	}
	return result, nil
}

func (s *Store) CreateTodo(ctx context.Context, next todo.NewTodo) (todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := todo.Todo{
		ID:        uuid.New(),
		Title:     next.Title,
		Completed: false,
	}
	s.todos[rec.ID] = rec
	return rec, nil
}

func (s *Store) GetTodo(ctx context.Context, id uuid.UUID) (todo.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.todos[id]
	if !ok {
		return todo.Todo{}, storage.ErrNotFound
	}
	return rec, nil
}

func (s *Store) UpdateTodo(ctx context.Context, id uuid.UUID, patch todo.UpdateTodo) (todo.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.todos[id]
	if !ok {
		return todo.Todo{}, storage.ErrNotFound
	}
	if patch.Title != nil {
		rec.Title = *patch.Title
	}
	if patch.Completed != nil {
		rec.Completed = *patch.Completed
	}
	s.todos[id] = rec
	return rec, nil
}

func (s *Store) DeleteTodo(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.todos[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.todos, id)
	return nil
}
