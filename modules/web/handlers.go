package web

import (
	"fmt"
	"log/slog"
	"strings"

	domain "github.com/lenilunderman/djangotodowoo/domain/user"
	"github.com/lenilunderman/djangotodowoo/modules/auth"
	"github.com/lenilunderman/djangotodowoo/modules/todo"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// User-visible form error messages.
const (
	msgPasswordMismatch = "The password does not match"
	msgUserTaken        = "That user has been taken"
	msgLoginFailed      = "something did not match"
	msgBadEdit          = "bad information"
	msgBadCreate        = "Bad error passed in...Please try again."
)

// Handlers contains the page handlers. Each one authenticates through the
// session (via RequireLogin), performs a single persistence call through a
// port, and redirects or re-renders with an error message.
type Handlers struct {
	store  *session.Store
	auth   auth.AuthPort
	todos  todo.TodoPort
	logger *slog.Logger
}

// NewHandlers creates a new handlers instance.
func NewHandlers(store *session.Store, authPort auth.AuthPort, todoPort todo.TodoPort) *Handlers {
	return &Handlers{
		store:  store,
		auth:   authPort,
		todos:  todoPort,
		logger: slog.Default(),
	}
}

// Home renders the public landing page (GET /).
func (h *Handlers) Home(c *fiber.Ctx) error {
	return h.render(c, "home", fiber.Map{})
}

// SignupPage renders the signup form (GET /signup).
func (h *Handlers) SignupPage(c *fiber.Ctx) error {
	return h.render(c, "signupuser", fiber.Map{})
}

// Signup handles signup form submissions (POST /signup). On success the user
// is registered, logged in, and sent to their open todos.
func (h *Handlers) Signup(c *fiber.Ctx) error {
	var form SignupForm
	if err := c.BodyParser(&form); err != nil {
		return h.render(c, "signupuser", fiber.Map{"Error": msgBadCreate})
	}

	if errs := form.Validate(); len(errs) > 0 {
		return h.render(c, "signupuser", fiber.Map{
			"Error": firstMessage(errs),
			"Form":  form,
		})
	}

	ident, err := h.auth.Register(c.UserContext(), form.Username, form.Password1)
	if err != nil {
		if msg := registerErrorMessage(err); msg != "" {
			return h.render(c, "signupuser", fiber.Map{
				"Error": msg,
				"Form":  form,
			})
		}
		h.logger.Error("signup failed", "username", form.Username, "error", err)
		return fiber.ErrInternalServerError
	}

	if err := h.signIn(c, ident); err != nil {
		return err
	}
	return c.Redirect("/current", fiber.StatusSeeOther)
}

// LoginPage renders the login form (GET /login).
func (h *Handlers) LoginPage(c *fiber.Ctx) error {
	return h.render(c, "loginuser", fiber.Map{})
}

// Login handles login form submissions (POST /login).
func (h *Handlers) Login(c *fiber.Ctx) error {
	var form LoginForm
	if err := c.BodyParser(&form); err != nil {
		return h.render(c, "loginuser", fiber.Map{"Error": msgLoginFailed})
	}

	ident, err := h.auth.Login(c.UserContext(), form.Username, form.Password)
	if err != nil {
		if strings.Contains(err.Error(), "invalid username or password") {
			return h.render(c, "loginuser", fiber.Map{
				"Error": msgLoginFailed,
				"Form":  form,
			})
		}
		h.logger.Error("login failed", "username", form.Username, "error", err)
		return fiber.ErrInternalServerError
	}

	if err := h.signIn(c, ident); err != nil {
		return err
	}
	return c.Redirect("/current", fiber.StatusSeeOther)
}

// Logout destroys the session (POST /logout).
func (h *Handlers) Logout(c *fiber.Ctx) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	if err := sess.Destroy(); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}

// CurrentTodos renders the owner's open todos (GET /current).
func (h *Handlers) CurrentTodos(c *fiber.Ctx) error {
	ident := currentUser(c)
	todos, err := h.todos.ListOpen(c.UserContext(), ident.UserID)
	if err != nil {
		h.logger.Error("failed to list open todos", "user", ident.UserID, "error", err)
		return fiber.ErrInternalServerError
	}
	return h.render(c, "currenttodos", fiber.Map{"Todos": todos})
}

// CompletedTodos renders the owner's completed todos, most recently completed
// first (GET /completed).
func (h *Handlers) CompletedTodos(c *fiber.Ctx) error {
	ident := currentUser(c)
	todos, err := h.todos.ListCompleted(c.UserContext(), ident.UserID)
	if err != nil {
		h.logger.Error("failed to list completed todos", "user", ident.UserID, "error", err)
		return fiber.ErrInternalServerError
	}
	return h.render(c, "completedtodos", fiber.Map{"Todos": todos})
}

// CreateTodoPage renders the create form (GET /create).
func (h *Handlers) CreateTodoPage(c *fiber.Ctx) error {
	return h.render(c, "createtodo", fiber.Map{})
}

// CreateTodo handles create form submissions (POST /create). Invalid input
// re-renders the form and persists nothing.
func (h *Handlers) CreateTodo(c *fiber.Ctx) error {
	ident := currentUser(c)

	var form TodoForm
	if err := c.BodyParser(&form); err != nil {
		return h.render(c, "createtodo", fiber.Map{"Error": msgBadCreate})
	}

	if errs := form.Validate(); len(errs) > 0 {
		return h.render(c, "createtodo", fiber.Map{
			"Error": msgBadCreate,
			"Form":  form,
		})
	}

	if _, err := h.todos.Create(c.UserContext(), ident.UserID, form.Title, form.Memo); err != nil {
		if strings.Contains(err.Error(), "title is required") ||
			strings.Contains(err.Error(), "title must be at most") {
			return h.render(c, "createtodo", fiber.Map{
				"Error": msgBadCreate,
				"Form":  form,
			})
		}
		h.logger.Error("failed to create todo", "user", ident.UserID, "error", err)
		return fiber.ErrInternalServerError
	}

	return c.Redirect("/current", fiber.StatusSeeOther)
}

// ViewTodo renders a single todo with editable fields (GET /todo/:id).
// Todos owned by other users are indistinguishable from missing ones.
func (h *Handlers) ViewTodo(c *fiber.Ctx) error {
	ident := currentUser(c)

	view, err := h.todos.Get(c.UserContext(), c.Params("id"), ident.UserID)
	if err != nil {
		if isNotFound(err) {
			return fiber.ErrNotFound
		}
		h.logger.Error("failed to fetch todo", "user", ident.UserID, "error", err)
		return fiber.ErrInternalServerError
	}

	return h.render(c, "viewtodo", fiber.Map{"Todo": view})
}

// UpdateTodo handles edit form submissions (POST /todo/:id). Invalid input
// re-renders the same form with the stored values intact.
func (h *Handlers) UpdateTodo(c *fiber.Ctx) error {
	ident := currentUser(c)

	view, err := h.todos.Get(c.UserContext(), c.Params("id"), ident.UserID)
	if err != nil {
		if isNotFound(err) {
			return fiber.ErrNotFound
		}
		h.logger.Error("failed to fetch todo", "user", ident.UserID, "error", err)
		return fiber.ErrInternalServerError
	}

	var form TodoForm
	if err := c.BodyParser(&form); err != nil {
		return h.render(c, "viewtodo", fiber.Map{"Todo": view, "Error": msgBadEdit})
	}

	if errs := form.Validate(); len(errs) > 0 {
		return h.render(c, "viewtodo", fiber.Map{"Todo": view, "Error": msgBadEdit})
	}

	if err := h.todos.Update(c.UserContext(), view.ID, ident.UserID, form.Title, form.Memo); err != nil {
		if isNotFound(err) {
			return fiber.ErrNotFound
		}
		h.logger.Error("failed to update todo", "user", ident.UserID, "todo", view.ID, "error", err)
		return fiber.ErrInternalServerError
	}

	return c.Redirect("/current", fiber.StatusSeeOther)
}

// CompleteTodo stamps a todo as completed (POST /todo/:id/complete).
func (h *Handlers) CompleteTodo(c *fiber.Ctx) error {
	ident := currentUser(c)

	if err := h.todos.Complete(c.UserContext(), c.Params("id"), ident.UserID); err != nil {
		if isNotFound(err) {
			return fiber.ErrNotFound
		}
		h.logger.Error("failed to complete todo", "user", ident.UserID, "error", err)
		return fiber.ErrInternalServerError
	}

	return c.Redirect("/current", fiber.StatusSeeOther)
}

// DeleteTodo permanently removes a todo (POST /todo/:id/delete).
func (h *Handlers) DeleteTodo(c *fiber.Ctx) error {
	ident := currentUser(c)

	if err := h.todos.Delete(c.UserContext(), c.Params("id"), ident.UserID); err != nil {
		if isNotFound(err) {
			return fiber.ErrNotFound
		}
		h.logger.Error("failed to delete todo", "user", ident.UserID, "error", err)
		return fiber.ErrInternalServerError
	}

	return c.Redirect("/current", fiber.StatusSeeOther)
}

// HealthCheck handles health check requests (GET /health).
func (h *Handlers) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"service": "todowoo",
	})
}

// render wraps c.Render and makes the authenticated identity available to
// the layout on every page.
func (h *Handlers) render(c *fiber.Ctx, name string, bind fiber.Map) error {
	if ident := currentUser(c); ident != nil {
		bind["User"] = ident
	}
	return c.Render(name, bind)
}

// signIn stores the identity in the session. The session ID is rotated so a
// pre-authentication ID can never name an authenticated session.
func (h *Handlers) signIn(c *fiber.Ctx, ident *domain.Identity) error {
	sess, err := h.store.Get(c)
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	if err := sess.Regenerate(); err != nil {
		return fmt.Errorf("failed to regenerate session: %w", err)
	}
	sess.Set(sessionUserKey, ident.UserID)
	if err := sess.Save(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// registerErrorMessage maps registration errors crossing the service
// container to user-visible messages. Returns "" for unexpected errors.
func registerErrorMessage(err error) string {
	errStr := err.Error()
	switch {
	case strings.Contains(errStr, "has been taken"):
		return msgUserTaken
	case strings.Contains(errStr, "username is required"):
		return "Username is required"
	case strings.Contains(errStr, "password must be at least"):
		return "Password must be at least 8 characters"
	case strings.Contains(errStr, "password must be at most"):
		return "Password must be at most 72 characters"
	default:
		return ""
	}
}

// isNotFound matches todo lookups that missed, including lookups on todos
// owned by someone else.
func isNotFound(err error) bool {
	return err != nil && strings.Contains(err.Error(), "todo not found")
}
