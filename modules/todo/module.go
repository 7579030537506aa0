package todo

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	domain "github.com/lenilunderman/djangotodowoo/domain/todo"
	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/helper"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TodoModule provides todo persistence services via GORM + SQLite.
type TodoModule struct {
	db     *gorm.DB
	repo   *Repository
	dbPath string
}

// Compile-time interface checks.
var _ mono.Module = (*TodoModule)(nil)
var _ mono.ServiceProviderModule = (*TodoModule)(nil)
var _ mono.HealthCheckableModule = (*TodoModule)(nil)

// NewModule creates a new TodoModule.
func NewModule() *TodoModule {
	dbPath := os.Getenv("TODO_DB_PATH")
	if dbPath == "" {
		dbPath = "todowoo.db"
	}
	return &TodoModule{
		dbPath: dbPath,
	}
}

// Name returns the module name.
func (m *TodoModule) Name() string {
	return "todo"
}

// Start opens the database and runs migrations.
func (m *TodoModule) Start(_ context.Context) error {
	log.Printf("[todo] Connecting to SQLite database: %s", m.dbPath)

	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "true" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(m.dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	m.db = db

	if err := m.db.AutoMigrate(&domain.Todo{}); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	m.repo = NewRepository(m.db)

	log.Println("[todo] Module started successfully")
	return nil
}

// Stop gracefully closes the database connection.
func (m *TodoModule) Stop(_ context.Context) error {
	if m.db == nil {
		return nil
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	log.Println("[todo] Database connection closed")
	return nil
}

// Health performs a health check on the todo module.
func (m *TodoModule) Health(ctx context.Context) mono.HealthStatus {
	if m.db == nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: "database not initialized",
		}
	}

	sqlDB, err := m.db.DB()
	if err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("failed to get sql.DB: %v", err),
		}
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return mono.HealthStatus{
			Healthy: false,
			Message: fmt.Sprintf("database ping failed: %v", err),
		}
	}

	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{
			"driver": "sqlite",
			"path":   m.dbPath,
		},
	}
}

// RegisterServices registers request-reply services in the service container.
// The framework prefixes service names with "services.<module>." so "create"
// becomes "services.todo.create".
func (m *TodoModule) RegisterServices(container mono.ServiceContainer) error {
	services := map[string]func() error{
		"create": func() error {
			return helper.RegisterTypedRequestReplyService(
				container, "create", json.Unmarshal, json.Marshal, m.createTodo)
		},
		"get": func() error {
			return helper.RegisterTypedRequestReplyService(
				container, "get", json.Unmarshal, json.Marshal, m.getTodo)
		},
		"list-open": func() error {
			return helper.RegisterTypedRequestReplyService(
				container, "list-open", json.Unmarshal, json.Marshal, m.listOpenTodos)
		},
		"list-completed": func() error {
			return helper.RegisterTypedRequestReplyService(
				container, "list-completed", json.Unmarshal, json.Marshal, m.listCompletedTodos)
		},
		"update": func() error {
			return helper.RegisterTypedRequestReplyService(
				container, "update", json.Unmarshal, json.Marshal, m.updateTodo)
		},
		"complete": func() error {
			return helper.RegisterTypedRequestReplyService(
				container, "complete", json.Unmarshal, json.Marshal, m.completeTodo)
		},
		"delete": func() error {
			return helper.RegisterTypedRequestReplyService(
				container, "delete", json.Unmarshal, json.Marshal, m.deleteTodo)
		},
	}

	for name, register := range services {
		if err := register(); err != nil {
			return fmt.Errorf("failed to register %s service: %w", name, err)
		}
	}

	log.Printf("[todo] Registered services: services.todo.{create,get,list-open,list-completed,update,complete,delete}")
	return nil
}
