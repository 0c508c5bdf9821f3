package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/juannn1212/AI-Powered-Personal-Assistant/internal/assistant"
	"github.com/juannn1212/AI-Powered-Personal-Assistant/internal/classifier"
	"github.com/juannn1212/AI-Powered-Personal-Assistant/internal/llm"
	"github.com/juannn1212/AI-Powered-Personal-Assistant/internal/models"
	"github.com/juannn1212/AI-Powered-Personal-Assistant/internal/responder"
	"github.com/juannn1212/AI-Powered-Personal-Assistant/internal/storage"
	"github.com/juannn1212/AI-Powered-Personal-Assistant/pkg/config"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	configPath := "config.yaml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	// Load configuration
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err), zap.String("path", configPath))
	}

	// Initialize storage
	var store storage.Storage
	if cfg.Database.UseInMemory {
		logger.Info("Using in-memory storage")
		store = storage.NewMemoryStorage()
	} else {
		logger.Info("Using PostgreSQL storage")
		dbConfig := storage.DatabaseConfig{
			Host:        cfg.Database.Host,
			Port:        cfg.Database.Port,
			User:        cfg.Database.User,
			Password:    cfg.Database.Password,
			DBName:      cfg.Database.DBName,
			SSLMode:     cfg.Database.SSLMode,
			UseInMemory: cfg.Database.UseInMemory,
		}
		store, err = storage.NewPostgresStorage(dbConfig)
		if err != nil {
			logger.Fatal("Failed to initialize storage", zap.Error(err))
		}
	}
	defer store.Close()

	// Initialize classifier
	clf := classifier.New(cfg.Engine.MinConfidence, logger)

	// Optional LLM collaborator for general conversation
	var external assistant.ExternalResponder
	if cfg.OpenAI.Enabled && cfg.OpenAI.APIKey != "" {
		logger.Info("LLM responder enabled", zap.String("model", cfg.OpenAI.Model))
		external = llm.NewResponder(
			cfg.OpenAI.APIKey,
			cfg.OpenAI.Model,
			cfg.OpenAI.MaxTokens,
			cfg.OpenAI.Temperature,
			time.Duration(cfg.OpenAI.TimeoutSeconds)*time.Second,
			logger,
		)
	}

	engine := assistant.New(assistant.Config{
		MinConfidence: cfg.Engine.MinConfidence,
		HistorySize:   cfg.Engine.HistorySize,
		IntentWindow:  cfg.Engine.IntentWindow,
		MoodWindow:    cfg.Engine.MoodWindow,
		SlotMaxTokens: cfg.Engine.SlotMaxTokens,
	}, clf, responder.NewComposer(nil, nil), external, logger)

	runREPL(engine, store, logger)
}

// runREPL reads utterances from stdin and prints the assistant's replies.
// Creation intents emitted by the engine are persisted before the next turn.
func runREPL(engine *assistant.Engine, store storage.Storage, logger *zap.Logger) {
	ctx := context.Background()
	userID := uuid.New().String()
	sessionID := userID

	fmt.Println("Asistente personal listo. Escribe un mensaje (/info para el modelo, /salir para terminar).")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "/salir", "/quit":
			fmt.Println("¡Hasta pronto! 👋")
			return
		case "/info":
			for k, v := range engine.ModelInfo() {
				fmt.Printf("%s: %v\n", k, v)
			}
			continue
		}

		resp := engine.Process(ctx, sessionID, line, buildUserContext(ctx, store, userID, logger))

		fmt.Println(resp.Response)
		if len(resp.Suggestions) > 0 {
			fmt.Println("Sugerencias: " + strings.Join(resp.Suggestions, " · "))
		}

		if resp.TaskCreated != nil {
			if task, err := store.SaveTask(ctx, userID, resp.TaskCreated); err != nil {
				logger.Error("Failed to save task", zap.Error(err))
			} else {
				logger.Info("Task saved",
					zap.String("id", task.ID),
					zap.String("title", task.Title))
			}
		}
		if resp.HabitCreated != nil {
			if habit, err := store.SaveHabit(ctx, userID, resp.HabitCreated); err != nil {
				logger.Error("Failed to save habit", zap.Error(err))
			} else {
				logger.Info("Habit saved",
					zap.String("id", habit.ID),
					zap.String("name", habit.Name))
			}
		}
	}

	if err := scanner.Err(); err != nil {
		logger.Error("Input error", zap.Error(err))
	}
}

// buildUserContext surfaces stored tasks and habits so replies can mention
// them. Storage errors degrade to an empty context rather than failing the
// turn.
func buildUserContext(ctx context.Context, store storage.Storage, userID string, logger *zap.Logger) *models.UserContext {
	userCtx := &models.UserContext{}

	tasks, err := store.ListTasks(ctx, userID)
	if err != nil {
		logger.Warn("Failed to list tasks", zap.Error(err))
	}
	for _, t := range tasks {
		if t.Status == models.StatusPending {
			userCtx.RecentTaskTitles = append(userCtx.RecentTaskTitles, t.Title)
		}
	}

	habits, err := store.ListHabits(ctx, userID)
	if err != nil {
		logger.Warn("Failed to list habits", zap.Error(err))
	}
	for _, h := range habits {
		userCtx.ActiveHabitNames = append(userCtx.ActiveHabitNames, h.Name)
	}

	return userCtx
}
