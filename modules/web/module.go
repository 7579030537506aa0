package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/lenilunderman/djangotodowoo/modules/auth"
	"github.com/lenilunderman/djangotodowoo/modules/todo"
	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
	flogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage/redis/v3"
	"github.com/gofiber/template/html/v2"
)

//go:embed views
var viewsFS embed.FS

// WebModule serves the HTML pages on Fiber.
type WebModule struct {
	app      *fiber.App
	store    *session.Store
	authPort auth.AuthPort
	todoPort todo.TodoPort
	addr     string
}

// Compile-time interface checks.
var _ mono.Module = (*WebModule)(nil)
var _ mono.DependentModule = (*WebModule)(nil)
var _ mono.HealthCheckableModule = (*WebModule)(nil)

// NewModule creates a new WebModule.
func NewModule() *WebModule {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	return &WebModule{
		addr: ":" + port,
	}
}

// Name returns the module name.
func (m *WebModule) Name() string {
	return "web"
}

// Dependencies returns the list of module dependencies.
func (m *WebModule) Dependencies() []string {
	return []string{"auth", "todo"}
}

// SetDependencyServiceContainer receives service containers from dependencies.
func (m *WebModule) SetDependencyServiceContainer(dependency string, container mono.ServiceContainer) {
	switch dependency {
	case "auth":
		m.authPort = auth.NewAuthAdapter(container)
	case "todo":
		m.todoPort = todo.NewTodoAdapter(container)
	}
}

// Start builds the Fiber app and begins serving.
func (m *WebModule) Start(_ context.Context) error {
	if m.authPort == nil {
		return fmt.Errorf("auth dependency not set")
	}
	if m.todoPort == nil {
		return fmt.Errorf("todo dependency not set")
	}

	m.store = newSessionStore()
	m.app = newApp(m.store, m.authPort, m.todoPort)

	go func() {
		if err := m.app.Listen(m.addr); err != nil {
			log.Printf("[web] HTTP server error: %v", err)
		}
	}()

	log.Printf("[web] HTTP server started on %s", m.addr)
	return nil
}

// Stop shuts down the HTTP server.
func (m *WebModule) Stop(_ context.Context) error {
	if m.app == nil {
		return nil
	}
	log.Println("[web] Shutting down HTTP server...")
	return m.app.Shutdown()
}

// Health returns the health status of the module.
func (m *WebModule) Health(_ context.Context) mono.HealthStatus {
	return mono.HealthStatus{
		Healthy: m.app != nil,
		Message: "operational",
		Details: map[string]any{
			"addr": m.addr,
		},
	}
}

// newSessionStore builds the cookie session store. Sessions live in memory
// unless REDIS_URL points them at a Redis instance.
func newSessionStore() *session.Store {
	cfg := session.Config{
		KeyLookup:      "cookie:todowoo_session",
		Expiration:     7 * 24 * time.Hour,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
	}
	if url := os.Getenv("REDIS_URL"); url != "" {
		cfg.Storage = redis.New(redis.Config{URL: url})
	}
	return session.New(cfg)
}

// newApp builds the Fiber application with templates, middleware, and routes.
func newApp(store *session.Store, authPort auth.AuthPort, todoPort todo.TodoPort) *fiber.App {
	views, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic(fmt.Sprintf("embedded views missing: %v", err))
	}
	engine := html.NewFileSystem(http.FS(views), ".html")

	app := fiber.New(fiber.Config{
		AppName:               "todowoo",
		DisableStartupMessage: true,
		Views:                 engine,
		ViewsLayout:           "layouts/main",
		ErrorHandler:          errorHandler,
	})

	app.Use(recover.New())
	app.Use(flogger.New(flogger.Config{
		Format: "[${time}] ${status} ${method} ${path} ${latency}\n",
	}))

	handlers := NewHandlers(store, authPort, todoPort)
	requireLogin := RequireLogin(store, authPort)

	app.Get("/health", handlers.HealthCheck)

	// Public pages
	app.Get("/", handlers.Home)
	app.Get("/signup", handlers.SignupPage)
	app.Post("/signup", handlers.Signup)
	app.Get("/login", handlers.LoginPage)
	app.Post("/login", handlers.Login)

	// Authenticated pages
	app.Post("/logout", requireLogin, handlers.Logout)
	app.Get("/current", requireLogin, handlers.CurrentTodos)
	app.Get("/completed", requireLogin, handlers.CompletedTodos)
	app.Get("/create", requireLogin, handlers.CreateTodoPage)
	app.Post("/create", requireLogin, handlers.CreateTodo)
	app.Get("/todo/:id", requireLogin, handlers.ViewTodo)
	app.Post("/todo/:id", requireLogin, handlers.UpdateTodo)
	app.Post("/todo/:id/complete", requireLogin, handlers.CompleteTodo)
	app.Post("/todo/:id/delete", requireLogin, handlers.DeleteTodo)

	return app
}

// errorHandler renders unmapped errors as a minimal error page.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	if renderErr := c.Status(code).Render("error", fiber.Map{
		"Code":    code,
		"Message": message,
	}); renderErr != nil {
		return c.Status(code).SendString(message)
	}
	return nil
}
