package echoportal

import (
	"net/http"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/campusconnect/core"
	"github.com/trezcool/campusconnect/core/user"
)

// The session is an HS256-signed claims token in a cookie scoped to the browser
// session (no Max-Age): closing the tab drops it, like the original demo intended.
// Exactly one session exists per client; creating a new one overwrites the old.

var contextSessionKey = "session"

// Claims represents the visitor's session transmitted via the session cookie.
type Claims struct {
	jwt.StandardClaims
	Role      user.Role `json:"role"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

func getSessionClaims(sess user.Session) *Claims {
	now := time.Now()
	return &Claims{
		StandardClaims: jwt.StandardClaims{
			Issuer:    core.Conf.GetString("appName"),
			Subject:   sess.UserID,
			ExpiresAt: now.Add(core.Conf.GetDuration("sessionExpirationDelta")).Unix(),
			IssuedAt:  now.Unix(),
		},
		Role:      sess.Role,
		Email:     sess.Email,
		FirstName: sess.FirstName,
		LastName:  sess.LastName,
	}
}

func (c *Claims) session() user.Session {
	return user.Session{
		UserID:    c.Subject,
		Role:      c.Role,
		Email:     c.Email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
	}
}

// GenerateToken generates a signed token string representing the session Claims.
func GenerateToken(claims *Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	ss, err := token.SignedString(secretKey())
	if err != nil {
		return "", errors.New("signing token")
	}
	return ss, nil
}

func secretKey() []byte {
	return []byte(core.Conf.GetString("secretKey"))
}

func sessionCookieName() string {
	return core.Conf.GetString("sessionCookieName")
}

// createSession persists the session in the client's cookie, replacing any prior one.
func createSession(ctx echo.Context, sess user.Session) error {
	token, err := GenerateToken(getSessionClaims(sess))
	if err != nil {
		return err
	}
	ctx.SetCookie(&http.Cookie{
		Name:     sessionCookieName(),
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// currentSession loads the visitor's session. An absent, malformed, tampered or
// expired cookie is simply "no session": parse failures never propagate.
func currentSession(ctx echo.Context) (user.Session, bool) {
	cookie, err := ctx.Cookie(sessionCookieName())
	if err != nil || cookie.Value == "" {
		return user.Session{}, false
	}

	claims := new(Claims)
	token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %q", t.Header["alg"])
		}
		return secretKey(), nil
	})
	if err != nil || !token.Valid || !claims.Role.Valid() {
		return user.Session{}, false
	}
	return claims.session(), true
}

// clearSession destroys the session; no partial state is left behind.
func clearSession(ctx echo.Context) {
	ctx.SetCookie(&http.Cookie{
		Name:     sessionCookieName(),
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
