package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard/internal/auth"
	"taskboard/internal/errors"
	"taskboard/internal/model"
	"taskboard/internal/repository"
)

// CreateTaskInput carries the caller-supplied fields of a new task.
// The owner is never part of the input: it is forced to the caller.
type CreateTaskInput struct {
	Title       string
	Description string
	Status      string
}

// UpdateTaskInput carries a partial update. Nil fields keep their prior
// value; only fields present in the request change.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
}

// TaskService handles task CRUD, gated by the ownership rules: a task
// is visible and mutable to its owner and to any admin, nobody else.
type TaskService interface {
	List(ctx context.Context, caller auth.Identity) ([]model.Task, error)
	Create(ctx context.Context, caller auth.Identity, input CreateTaskInput) (*model.Task, error)
	Get(ctx context.Context, caller auth.Identity, id uuid.UUID) (*model.Task, error)
	Update(ctx context.Context, caller auth.Identity, id uuid.UUID, input UpdateTaskInput) (*model.Task, error)
	Delete(ctx context.Context, caller auth.Identity, id uuid.UUID) error
}

type taskService struct {
	taskRepo repository.TaskRepository
}

// NewTaskService creates a new task service.
func NewTaskService(taskRepo repository.TaskRepository) TaskService {
	return &taskService{taskRepo: taskRepo}
}

// List returns all tasks for admins, each with its owner attached for
// display, and only the caller's own tasks otherwise. Creation order.
func (s *taskService) List(ctx context.Context, caller auth.Identity) ([]model.Task, error) {
	if caller.IsAdmin() {
		return s.taskRepo.ListAll(ctx)
	}
	return s.taskRepo.ListByOwner(ctx, caller.UserID)
}

// Create stores a new task owned by the caller. Any owner supplied in
// the request is ignored; a task cannot be created under another
// identity.
func (s *taskService) Create(ctx context.Context, caller auth.Identity, input CreateTaskInput) (*model.Task, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, errors.ErrEmptyTitle
	}
	if input.Status == "" {
		input.Status = model.TaskStatusPending
	}
	if !model.ValidTaskStatus(input.Status) {
		return nil, errors.ErrInvalidStatus
	}

	task := &model.Task{
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		OwnerID:     caller.UserID,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return task, nil
}

// Get returns a single task after the standard access gate.
func (s *taskService) Get(ctx context.Context, caller auth.Identity, id uuid.UUID) (*model.Task, error) {
	return s.authorize(ctx, caller, id)
}

// Update applies a partial update after the standard access gate.
// Absent fields retain their prior value. Admins may change status
// through the API; the old client-side restriction was display-only.
func (s *taskService) Update(ctx context.Context, caller auth.Identity, id uuid.UUID, input UpdateTaskInput) (*model.Task, error) {
	task, err := s.authorize(ctx, caller, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, errors.ErrEmptyTitle
		}
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.Status != nil {
		if !model.ValidTaskStatus(*input.Status) {
			return nil, errors.ErrInvalidStatus
		}
		task.Status = *input.Status
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}
	return task, nil
}

// Delete removes a task after the standard access gate. Deleting an
// already-absent task reports not-found; callers treat that as
// "already deleted".
func (s *taskService) Delete(ctx context.Context, caller auth.Identity, id uuid.UUID) error {
	if _, err := s.authorize(ctx, caller, id); err != nil {
		return err
	}
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// authorize fetches the task and applies the access gate. The existence
// check runs before the ownership check: a missing task reports
// not-found even to a caller who would not have been authorized.
func (s *taskService) authorize(ctx context.Context, caller auth.Identity, id uuid.UUID) (*model.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("find task: %w", err)
	}
	if task.OwnerID != caller.UserID && !caller.IsAdmin() {
		return nil, errors.ErrNotTaskOwner
	}
	return task, nil
}
