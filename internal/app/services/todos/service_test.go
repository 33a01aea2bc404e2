package todos

import (
	"context"
	"errors"
	"testing"

	"github.com/fernlabs/todo-api/internal/app/domain/todo"
	"github.com/fernlabs/todo-api/internal/app/storage"
	"github.com/fernlabs/todo-api/internal/app/storage/memory"
)

func TestService(t *testing.T) {
	store := memory.New()
	svc := New(store, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, todo.NewTodo{Title: "write report"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Title != "write report" || created.Completed {
		t.Fatalf("unexpected created record: %+v", created)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != created {
		t.Fatalf("get mismatch: %+v vs %+v", got, created)
	}

	done := true
	updated, err := svc.Update(ctx, created.ID, todo.UpdateTodo{Completed: &done})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if !updated.Completed || updated.Title != created.Title {
		t.Fatalf("unexpected update result: %+v", updated)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 todo, got %d", len(list))
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
