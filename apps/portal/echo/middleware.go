package echoportal

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/campusconnect/core/user"
)

const loginPath = "/login"

// requireRole guards a protected view: without a session whose role exactly equals
// `role`, the request is sent back to the login entry point and the handler never
// runs. A session valid for one role is never accepted by another role's view.
func requireRole(role user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			sess, ok := currentSession(ctx)
			if !ok || sess.Role != role {
				return redirectToLogin(ctx)
			}
			ctx.Set(contextSessionKey, sess)
			return next(ctx)
		}
	}
}

func redirectToLogin(ctx echo.Context) error {
	return ctx.Redirect(http.StatusSeeOther, loginPath)
}

func getContextSession(ctx echo.Context) (user.Session, error) {
	if sess, ok := ctx.Get(contextSessionKey).(user.Session); ok {
		return sess, nil
	}
	return user.Session{}, errSessionNotInCtx
}
