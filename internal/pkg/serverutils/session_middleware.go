package serverutils

import (
	"child-screening-be/internal/repository/contract"

	"github.com/gofiber/fiber/v2"
)

// SessionCookie is the cookie carrying the opaque session token.
const SessionCookie = "session_id"

// Locals keys set by the session middleware.
const (
	LocalsSession = "session"
	LocalsUserId  = "user_id"
)

// NewSessionMiddleware guards routes that need an authenticated
// session. Absent or unknown tokens redirect to the login page, exactly
// like the form flow expects.
func NewSessionMiddleware(sessions contract.SessionRepository) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		token := ctx.Cookies(SessionCookie)
		if token == "" {
			return ctx.Redirect("/login.html", fiber.StatusFound)
		}

		session, found := sessions.Get(ctx.Context(), token)
		if !found {
			return ctx.Redirect("/login.html", fiber.StatusFound)
		}

		ctx.Locals(LocalsSession, session)
		ctx.Locals(LocalsUserId, session.UserId)
		return ctx.Next()
	}
}
