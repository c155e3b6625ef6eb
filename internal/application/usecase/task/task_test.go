// Package task contains scheduled-task use cases.
package task

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/lifetrack/backend/internal/domain/entity"
	domainerror "github.com/lifetrack/backend/internal/domain/error"
	"github.com/lifetrack/backend/internal/domain/valueobject"
)

// fakeTaskRepo is an in-memory TaskRepository for use case tests.
type fakeTaskRepo struct {
	tasks map[uuid.UUID]*entity.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[uuid.UUID]*entity.Task)}
}

func (r *fakeTaskRepo) Create(_ context.Context, task *entity.Task) error {
	r.tasks[task.ID] = task
	return nil
}

func (r *fakeTaskRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Task, error) {
	return r.tasks[id], nil
}

func (r *fakeTaskRepo) FindByUserAndRange(_ context.Context, userID uuid.UUID, start, end valueobject.LocalDate) ([]*entity.Task, error) {
	var out []*entity.Task
	for _, task := range r.tasks {
		if task.UserID != userID {
			continue
		}
		if task.Date.Before(start) || task.Date.After(end) {
			continue
		}
		out = append(out, task)
	}
	return out, nil
}

func (r *fakeTaskRepo) Update(_ context.Context, task *entity.Task) error {
	r.tasks[task.ID] = task
	return nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.tasks, id)
	return nil
}

func TestCreateTaskUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("creates a pending task", func(t *testing.T) {
		repo := newFakeTaskRepo()
		uc := NewCreateTaskUseCase(repo)

		output, err := uc.Execute(ctx, CreateTaskInput{
			UserID: userID,
			Date:   "2025-05-10",
			Time:   "09:30",
			Title:  "Dentist",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Task.Completed {
			t.Error("expected new task to be pending")
		}
		if len(repo.tasks) != 1 {
			t.Errorf("expected 1 stored task, got %d", len(repo.tasks))
		}
	})

	t.Run("rejects blank title", func(t *testing.T) {
		uc := NewCreateTaskUseCase(newFakeTaskRepo())

		_, err := uc.Execute(ctx, CreateTaskInput{UserID: userID, Date: "2025-05-10", Title: "  "})
		if !errors.Is(err, domainerror.ErrEmptyTaskTitle) {
			t.Errorf("expected ErrEmptyTaskTitle, got %v", err)
		}
	})

	t.Run("rejects malformed time", func(t *testing.T) {
		uc := NewCreateTaskUseCase(newFakeTaskRepo())

		_, err := uc.Execute(ctx, CreateTaskInput{UserID: userID, Date: "2025-05-10", Time: "25:00", Title: "Dentist"})
		if !errors.Is(err, domainerror.ErrInvalidTaskTime) {
			t.Errorf("expected ErrInvalidTaskTime, got %v", err)
		}
	})
}

func TestListTasksUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := newFakeTaskRepo()
	create := NewCreateTaskUseCase(repo)

	for _, date := range []string{"2025-05-01", "2025-05-15", "2025-06-01"} {
		if _, err := create.Execute(ctx, CreateTaskInput{UserID: userID, Date: date, Title: "t"}); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	uc := NewListTasksUseCase(repo)

	t.Run("lists tasks inside the range", func(t *testing.T) {
		output, err := uc.Execute(ctx, ListTasksInput{UserID: userID, StartDate: "2025-05-01", EndDate: "2025-05-31"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(output.Tasks) != 2 {
			t.Errorf("expected 2 tasks, got %d", len(output.Tasks))
		}
	})

	t.Run("rejects inverted range", func(t *testing.T) {
		_, err := uc.Execute(ctx, ListTasksInput{UserID: userID, StartDate: "2025-05-31", EndDate: "2025-05-01"})
		if !errors.Is(err, domainerror.ErrInvalidTaskDate) {
			t.Errorf("expected ErrInvalidTaskDate, got %v", err)
		}
	})
}

func TestToggleTaskUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := newFakeTaskRepo()
	create := NewCreateTaskUseCase(repo)

	created, err := create.Execute(ctx, CreateTaskInput{UserID: userID, Date: "2025-05-10", Title: "Dentist"})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	uc := NewToggleTaskUseCase(repo)

	t.Run("flips completion both ways", func(t *testing.T) {
		output, err := uc.Execute(ctx, ToggleTaskInput{UserID: userID, TaskID: created.Task.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !output.Task.Completed {
			t.Error("expected task completed after first toggle")
		}

		output, err = uc.Execute(ctx, ToggleTaskInput{UserID: userID, TaskID: created.Task.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Task.Completed {
			t.Error("expected task pending after second toggle")
		}
	})

	t.Run("other user's task surfaces as not found", func(t *testing.T) {
		_, err := uc.Execute(ctx, ToggleTaskInput{UserID: uuid.New(), TaskID: created.Task.ID})
		if !errors.Is(err, domainerror.ErrTaskNotFound) {
			t.Errorf("expected ErrTaskNotFound, got %v", err)
		}
	})
}

func TestDeleteTaskUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := newFakeTaskRepo()
	create := NewCreateTaskUseCase(repo)

	created, err := create.Execute(ctx, CreateTaskInput{UserID: userID, Date: "2025-05-10", Title: "Dentist"})
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	uc := NewDeleteTaskUseCase(repo)
	if err := uc.Execute(ctx, DeleteTaskInput{UserID: userID, TaskID: created.Task.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.tasks) != 0 {
		t.Errorf("expected empty repo, got %d tasks", len(repo.tasks))
	}
}
