package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"taskboard/internal/auth"
	"taskboard/internal/errors"
	"taskboard/internal/model"
)

// MockTaskRepository is a mock implementation of TaskRepository.
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) Create(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Task, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Task), args.Error(1)
}

func (m *MockTaskRepository) ListAll(ctx context.Context) ([]model.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) ListByOwner(ctx context.Context, ownerID uint) ([]model.Task, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Task), args.Error(1)
}

func (m *MockTaskRepository) Update(ctx context.Context, task *model.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var (
	alice = auth.Identity{UserID: 1, Email: "alice@example.com", Role: model.RoleUser}
	bob   = auth.Identity{UserID: 2, Email: "bob@example.com", Role: model.RoleUser}
	root  = auth.Identity{UserID: 3, Email: "admin@example.com", Role: model.RoleAdmin}
)

func TestTaskService_List(t *testing.T) {
	aliceTask := model.Task{ID: uuid.New(), Title: "Buy milk", OwnerID: alice.UserID}

	t.Run("user sees only own tasks", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("ListByOwner", mock.Anything, alice.UserID).Return([]model.Task{aliceTask}, nil)

		svc := NewTaskService(mockRepo)
		tasks, err := svc.List(context.Background(), alice)

		assert.NoError(t, err)
		assert.Len(t, tasks, 1)
		assert.Equal(t, aliceTask.ID, tasks[0].ID)
		mockRepo.AssertExpectations(t)
		mockRepo.AssertNotCalled(t, "ListAll", mock.Anything)
	})

	t.Run("admin sees all tasks with owner attached", func(t *testing.T) {
		annotated := aliceTask
		annotated.Owner = &model.User{ID: alice.UserID, Name: "Alice", Email: alice.Email}

		mockRepo := new(MockTaskRepository)
		mockRepo.On("ListAll", mock.Anything).Return([]model.Task{annotated}, nil)

		svc := NewTaskService(mockRepo)
		tasks, err := svc.List(context.Background(), root)

		assert.NoError(t, err)
		assert.Len(t, tasks, 1)
		assert.NotNil(t, tasks[0].Owner)
		assert.Equal(t, "Alice", tasks[0].Owner.Name)
		mockRepo.AssertExpectations(t)
		mockRepo.AssertNotCalled(t, "ListByOwner", mock.Anything, mock.Anything)
	})
}

func TestTaskService_Create(t *testing.T) {
	tests := []struct {
		name          string
		caller        auth.Identity
		input         CreateTaskInput
		expectedError error
	}{
		{
			name:   "owner is forced to the caller",
			caller: alice,
			input:  CreateTaskInput{Title: "Buy milk"},
		},
		{
			name:   "explicit status is kept",
			caller: alice,
			input:  CreateTaskInput{Title: "Ship release", Status: model.TaskStatusCompleted},
		},
		{
			name:          "empty title is rejected",
			caller:        alice,
			input:         CreateTaskInput{Title: "   "},
			expectedError: errors.ErrEmptyTitle,
		},
		{
			name:          "unknown status is rejected",
			caller:        alice,
			input:         CreateTaskInput{Title: "Buy milk", Status: "archived"},
			expectedError: errors.ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockTaskRepository)
			if tt.expectedError == nil {
				mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Task")).Return(nil)
			}

			svc := NewTaskService(mockRepo)
			task, err := svc.Create(context.Background(), tt.caller, tt.input)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, task)
				mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, task)
				assert.Equal(t, tt.caller.UserID, task.OwnerID)
				if tt.input.Status == "" {
					assert.Equal(t, model.TaskStatusPending, task.Status)
				} else {
					assert.Equal(t, tt.input.Status, task.Status)
				}
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestTaskService_Update(t *testing.T) {
	taskID := uuid.New()
	completed := model.TaskStatusCompleted

	existing := func() *model.Task {
		return &model.Task{
			ID:          taskID,
			Title:       "Buy milk",
			Description: "Two liters",
			Status:      model.TaskStatusPending,
			OwnerID:     alice.UserID,
		}
	}

	t.Run("status-only update keeps title and description", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("FindByID", mock.Anything, taskID).Return(existing(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Task")).Return(nil)

		svc := NewTaskService(mockRepo)
		task, err := svc.Update(context.Background(), alice, taskID, UpdateTaskInput{Status: &completed})

		assert.NoError(t, err)
		assert.Equal(t, model.TaskStatusCompleted, task.Status)
		assert.Equal(t, "Buy milk", task.Title)
		assert.Equal(t, "Two liters", task.Description)
		mockRepo.AssertExpectations(t)
	})

	t.Run("another user cannot update the task", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("FindByID", mock.Anything, taskID).Return(existing(), nil)

		svc := NewTaskService(mockRepo)
		task, err := svc.Update(context.Background(), bob, taskID, UpdateTaskInput{Status: &completed})

		assert.Equal(t, errors.ErrNotTaskOwner, err)
		assert.Nil(t, task)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("admin can update any task including status", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("FindByID", mock.Anything, taskID).Return(existing(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Task")).Return(nil)

		svc := NewTaskService(mockRepo)
		task, err := svc.Update(context.Background(), root, taskID, UpdateTaskInput{Status: &completed})

		assert.NoError(t, err)
		assert.Equal(t, model.TaskStatusCompleted, task.Status)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing task reports not found even to a non-owner", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("FindByID", mock.Anything, taskID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewTaskService(mockRepo)
		task, err := svc.Update(context.Background(), bob, taskID, UpdateTaskInput{Status: &completed})

		// Existence check precedes the ownership check.
		assert.Equal(t, errors.ErrTaskNotFound, err)
		assert.Nil(t, task)
	})

	t.Run("blank title is rejected", func(t *testing.T) {
		blank := "  "
		mockRepo := new(MockTaskRepository)
		mockRepo.On("FindByID", mock.Anything, taskID).Return(existing(), nil)

		svc := NewTaskService(mockRepo)
		task, err := svc.Update(context.Background(), alice, taskID, UpdateTaskInput{Title: &blank})

		assert.Equal(t, errors.ErrEmptyTitle, err)
		assert.Nil(t, task)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		archived := "archived"
		mockRepo := new(MockTaskRepository)
		mockRepo.On("FindByID", mock.Anything, taskID).Return(existing(), nil)

		svc := NewTaskService(mockRepo)
		task, err := svc.Update(context.Background(), alice, taskID, UpdateTaskInput{Status: &archived})

		assert.Equal(t, errors.ErrInvalidStatus, err)
		assert.Nil(t, task)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestTaskService_Delete(t *testing.T) {
	taskID := uuid.New()
	existing := &model.Task{ID: taskID, Title: "Buy milk", OwnerID: alice.UserID}

	t.Run("owner deletes own task", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("FindByID", mock.Anything, taskID).Return(existing, nil)
		mockRepo.On("Delete", mock.Anything, taskID).Return(nil)

		svc := NewTaskService(mockRepo)
		assert.NoError(t, svc.Delete(context.Background(), alice, taskID))
		mockRepo.AssertExpectations(t)
	})

	t.Run("admin deletes any task", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("FindByID", mock.Anything, taskID).Return(existing, nil)
		mockRepo.On("Delete", mock.Anything, taskID).Return(nil)

		svc := NewTaskService(mockRepo)
		assert.NoError(t, svc.Delete(context.Background(), root, taskID))
		mockRepo.AssertExpectations(t)
	})

	t.Run("another user cannot delete the task", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("FindByID", mock.Anything, taskID).Return(existing, nil)

		svc := NewTaskService(mockRepo)
		err := svc.Delete(context.Background(), bob, taskID)

		assert.Equal(t, errors.ErrNotTaskOwner, err)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("second delete reports not found", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("FindByID", mock.Anything, taskID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewTaskService(mockRepo)
		err := svc.Delete(context.Background(), alice, taskID)

		assert.Equal(t, errors.ErrTaskNotFound, err)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestTaskService_Get(t *testing.T) {
	taskID := uuid.New()
	existing := &model.Task{ID: taskID, Title: "Buy milk", OwnerID: alice.UserID}

	t.Run("owner reads own task", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("FindByID", mock.Anything, taskID).Return(existing, nil)

		svc := NewTaskService(mockRepo)
		task, err := svc.Get(context.Background(), alice, taskID)

		assert.NoError(t, err)
		assert.Equal(t, taskID, task.ID)
	})

	t.Run("another user is refused", func(t *testing.T) {
		mockRepo := new(MockTaskRepository)
		mockRepo.On("FindByID", mock.Anything, taskID).Return(existing, nil)

		svc := NewTaskService(mockRepo)
		task, err := svc.Get(context.Background(), bob, taskID)

		assert.Equal(t, errors.ErrNotTaskOwner, err)
		assert.Nil(t, task)
	})
}
