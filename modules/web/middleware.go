package web

import (
	"fmt"

	domain "github.com/lenilunderman/djangotodowoo/domain/user"
	"github.com/lenilunderman/djangotodowoo/modules/auth"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

const (
	// CurrentUserKey is the locals key holding the authenticated identity.
	CurrentUserKey = "current_user"

	// sessionUserKey is the session key holding the logged-in user's ID.
	sessionUserKey = "user_id"
)

// RequireLogin resolves the session into an explicit identity for the request
// and redirects anonymous visitors to the login page. Handlers behind it read
// the identity from locals instead of any ambient state.
func RequireLogin(store *session.Store, authPort auth.AuthPort) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, err := store.Get(c)
		if err != nil {
			return fmt.Errorf("failed to load session: %w", err)
		}

		userID, _ := sess.Get(sessionUserKey).(string)
		if userID == "" {
			return c.Redirect("/login", fiber.StatusSeeOther)
		}

		ident, err := authPort.GetUser(c.UserContext(), userID)
		if err != nil {
			// Stale session: the user no longer resolves.
			_ = sess.Destroy()
			return c.Redirect("/login", fiber.StatusSeeOther)
		}

		c.Locals(CurrentUserKey, ident)
		return c.Next()
	}
}

// currentUser returns the identity stored by RequireLogin, or nil.
func currentUser(c *fiber.Ctx) *domain.Identity {
	ident, _ := c.Locals(CurrentUserKey).(*domain.Identity)
	return ident
}
