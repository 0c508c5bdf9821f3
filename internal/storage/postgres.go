package storage

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/juannn1212/AI-Powered-Personal-Assistant/internal/models"
)

//go:embed migrations.sql
var migrations embed.FS

type DatabaseConfig struct {
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	UseInMemory bool
}

type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(config DatabaseConfig) (*PostgresStorage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %v", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %v", err)
	}

	storage := &PostgresStorage{db: db}

	// Initialize database schema
	if err := storage.initializeSchema(); err != nil {
		return nil, fmt.Errorf("error initializing database schema: %v", err)
	}

	return storage, nil
}

func (s *PostgresStorage) initializeSchema() error {
	migrationSQL, err := migrations.ReadFile("migrations.sql")
	if err != nil {
		return fmt.Errorf("error reading migrations file: %v", err)
	}

	_, err = s.db.Exec(string(migrationSQL))
	if err != nil {
		return fmt.Errorf("error executing migrations: %v", err)
	}

	return nil
}

func (s *PostgresStorage) SaveTask(ctx context.Context, userID string, draft *models.TaskDraft) (*models.Task, error) {
	query := `
		INSERT INTO tasks (id, user_id, title, description, priority, status, due_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	task := &models.Task{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       draft.Title,
		Description: draft.Description,
		Priority:    draft.Priority,
		Status:      draft.Status,
		DueDate:     draft.DueDate,
	}

	err := s.db.QueryRowContext(ctx, query,
		task.ID,
		task.UserID,
		task.Title,
		task.Description,
		task.Priority,
		task.Status,
		task.DueDate,
	).Scan(&task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error creating task: %v", err)
	}

	return task, nil
}

func (s *PostgresStorage) SaveHabit(ctx context.Context, userID string, draft *models.HabitDraft) (*models.Habit, error) {
	query := `
		INSERT INTO habits (id, user_id, name, description, frequency, time_of_day)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	habit := &models.Habit{
		ID:          uuid.New().String(),
		UserID:      userID,
		Name:        draft.Name,
		Description: draft.Description,
		Frequency:   draft.Frequency,
		TimeOfDay:   draft.TimeOfDay,
	}

	err := s.db.QueryRowContext(ctx, query,
		habit.ID,
		habit.UserID,
		habit.Name,
		habit.Description,
		habit.Frequency,
		habit.TimeOfDay,
	).Scan(&habit.CreatedAt, &habit.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("error creating habit: %v", err)
	}

	return habit, nil
}

func (s *PostgresStorage) ListTasks(ctx context.Context, userID string) ([]*models.Task, error) {
	query := `
		SELECT id, user_id, title, description, priority, status, due_date, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying tasks: %v", err)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task := &models.Task{}
		err := rows.Scan(
			&task.ID,
			&task.UserID,
			&task.Title,
			&task.Description,
			&task.Priority,
			&task.Status,
			&task.DueDate,
			&task.CreatedAt,
			&task.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning task: %v", err)
		}
		tasks = append(tasks, task)
	}

	return tasks, rows.Err()
}

func (s *PostgresStorage) ListHabits(ctx context.Context, userID string) ([]*models.Habit, error) {
	query := `
		SELECT id, user_id, name, description, frequency, time_of_day, created_at, updated_at
		FROM habits
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error querying habits: %v", err)
	}
	defer rows.Close()

	var habits []*models.Habit
	for rows.Next() {
		habit := &models.Habit{}
		err := rows.Scan(
			&habit.ID,
			&habit.UserID,
			&habit.Name,
			&habit.Description,
			&habit.Frequency,
			&habit.TimeOfDay,
			&habit.CreatedAt,
			&habit.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning habit: %v", err)
		}
		habits = append(habits, habit)
	}

	return habits, rows.Err()
}

func (s *PostgresStorage) Close() error {
	return s.db.Close()
}
