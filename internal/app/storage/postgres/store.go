package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/fernlabs/todo-api/internal/app/domain/todo"
	"github.com/fernlabs/todo-api/internal/app/storage"
)

// Store implements storage.TodoStore backed by PostgreSQL.
type Store struct {
	db *sqlx.DB
}

var _ storage.TodoStore = (*Store)(nil)

// New creates a Store using the provided database handle.
func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListTodos(ctx context.Context) ([]todo.Todo, error) {
	result := make([]todo.Todo, 0)
	err := s.db.SelectContext(ctx, &result, `
		SELECT id, title, completed
		FROM todos
	`)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *Store) CreateTodo(ctx context.Context, next todo.NewTodo) (todo.Todo, error) {
	var rec todo.Todo
	err := s.db.GetContext(ctx, &rec, `
		INSERT INTO todos (id, title, completed)
		VALUES ($1, $2, $3)
		RETURNING id, title, completed
	`, uuid.New(), next.Title, false)
	if err != nil {
		return todo.Todo{}, err
	}
	return rec, nil
}

func (s *Store) GetTodo(ctx context.Context, id uuid.UUID) (todo.Todo, error) {
	var rec todo.Todo
	err := s.db.GetContext(ctx, &rec, `
		SELECT id, title, completed
		FROM todos
		WHERE id = $1
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return todo.Todo{}, storage.ErrNotFound
	}
	if err != nil {
		return todo.Todo{}, err
	}
	return rec, nil
}

// UpdateTodo merges the patch against the current row and writes both
// columns back. The read and the write are separate statements; two
// concurrent updates against the same id race and the last writer wins.
func (s *Store) UpdateTodo(ctx context.Context, id uuid.UUID, patch todo.UpdateTodo) (todo.Todo, error) {
	existing, err := s.GetTodo(ctx, id)
	if err != nil {
		return todo.Todo{}, err
	}

	title := existing.Title
	completed := existing.Completed
	if patch.Title != nil {
		title = *patch.Title
	}
	if patch.Completed != nil {
		completed = *patch.Completed
	}

	var rec todo.Todo
	err = s.db.GetContext(ctx, &rec, `
		UPDATE todos
		SET title = $2, completed = $3
		WHERE id = $1
		RETURNING id, title, completed
	`, id, title, completed)
	if errors.Is(err, sql.ErrNoRows) {
		// Row deleted between the read and the write.
		return todo.Todo{}, storage.ErrNotFound
	}
	if err != nil {
		return todo.Todo{}, err
	}
	return rec, nil
}

func (s *Store) DeleteTodo(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `
		DELETE FROM todos WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return storage.ErrNotFound
	}
	return nil
}
