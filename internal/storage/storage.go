package storage

import (
	"context"

	"github.com/juannn1212/AI-Powered-Personal-Assistant/internal/models"
)

// Storage is the persistence collaborator that consumes the engine's
// creation intents. It assigns record IDs and timestamps; the engine itself
// never touches it.
type Storage interface {
	SaveTask(ctx context.Context, userID string, draft *models.TaskDraft) (*models.Task, error)
	SaveHabit(ctx context.Context, userID string, draft *models.HabitDraft) (*models.Habit, error)
	ListTasks(ctx context.Context, userID string) ([]*models.Task, error)
	ListHabits(ctx context.Context, userID string) ([]*models.Habit, error)
	Close() error
}
