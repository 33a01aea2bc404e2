package todo

import "github.com/google/uuid"

// Todo is a single task record. IDs are server-assigned v4 UUIDs.
type Todo struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Completed bool      `json:"completed" db:"completed"`
}

// NewTodo is the payload for creating a todo. The stored record starts with
// completed=false.
type NewTodo struct {
	Title string `json:"title"`
}

// UpdateTodo is a partial update. Nil fields leave the stored value
// unchanged.
type UpdateTodo struct {
	Title     *string `json:"title"`
	Completed *bool   `json:"completed"`
}
