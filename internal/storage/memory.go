package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/juannn1212/AI-Powered-Personal-Assistant/internal/models"
)

// MemoryStorage keeps tasks and habits in process memory. Used for local
// runs and tests.
type MemoryStorage struct {
	mu     sync.RWMutex
	tasks  map[string]*models.Task
	habits map[string]*models.Habit
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		tasks:  make(map[string]*models.Task),
		habits: make(map[string]*models.Habit),
	}
}

func (s *MemoryStorage) SaveTask(ctx context.Context, userID string, draft *models.TaskDraft) (*models.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	task := &models.Task{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       draft.Title,
		Description: draft.Description,
		Priority:    draft.Priority,
		Status:      draft.Status,
		DueDate:     draft.DueDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.tasks[task.ID] = task
	return task, nil
}

func (s *MemoryStorage) SaveHabit(ctx context.Context, userID string, draft *models.HabitDraft) (*models.Habit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	habit := &models.Habit{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        draft.Name,
		Description: draft.Description,
		Frequency:   draft.Frequency,
		TimeOfDay:   draft.TimeOfDay,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.habits[habit.ID] = habit
	return habit, nil
}

func (s *MemoryStorage) ListTasks(ctx context.Context, userID string) ([]*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tasks []*models.Task
	for _, t := range s.tasks {
		if t.UserID == userID {
			tasks = append(tasks, t)
		}
	}
	// Newest first
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	return tasks, nil
}

func (s *MemoryStorage) ListHabits(ctx context.Context, userID string) ([]*models.Habit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var habits []*models.Habit
	for _, h := range s.habits {
		if h.UserID == userID {
			habits = append(habits, h)
		}
	}
	sort.Slice(habits, func(i, j int) bool {
		return habits[i].CreatedAt.After(habits[j].CreatedAt)
	})
	return habits, nil
}

func (s *MemoryStorage) Close() error {
	return nil
}
