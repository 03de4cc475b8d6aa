package echoportal

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/campusconnect/core"
	"github.com/trezcool/campusconnect/core/school"
	"github.com/trezcool/campusconnect/core/user"
)

// rolePages maps a session role to its protected view. A role absent from this
// map has no page and cannot get past the login form.
var rolePages = map[user.Role]string{
	user.RoleStudent: "/student",
	user.RoleParent:  "/parent",
	user.RoleTeacher: "/teacher",
	user.RoleAdmin:   "/admin",
}

type portalApi struct {
	usrSvc    *user.Service
	schoolSvc *school.Service
}

func registerPortalAPI(app *echo.Echo, usrSvc *user.Service, schoolSvc *school.Service) {
	api := portalApi{
		usrSvc:    usrSvc,
		schoolSvc: schoolSvc,
	}

	// un-authed endpoints
	app.GET("/", api.home)
	app.GET(loginPath, api.loginPage)
	app.POST(loginPath, api.login)
	app.POST("/logout", api.logout)
	app.GET("/demo-credentials", api.demoCredentials)

	// role views; each one accepts exactly its own role
	app.GET("/student", api.studentDashboard, requireRole(user.RoleStudent))
	app.GET("/parent", api.parentDashboard, requireRole(user.RoleParent))
	app.GET("/teacher", api.teacherDashboard, requireRole(user.RoleTeacher))
	app.GET("/admin", api.adminDashboard, requireRole(user.RoleAdmin))
}

// Handlers

// home routes a returning visitor to their role's view, everyone else to the login form.
func (api *portalApi) home(ctx echo.Context) error {
	if sess, ok := currentSession(ctx); ok {
		if page, ok := rolePages[sess.Role]; ok {
			return ctx.Redirect(http.StatusSeeOther, page)
		}
	}
	return redirectToLogin(ctx)
}

func (api *portalApi) loginPage(ctx echo.Context) error {
	creds, err := api.credentialRows()
	if err != nil {
		return errors.Wrap(err, "listing demo credentials")
	}
	return ctx.JSON(http.StatusOK, LoginPage{
		Title:       core.Conf.GetString("appName"),
		Credentials: creds,
	})
}

func (api *portalApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to LoginRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	sess, err := api.usrSvc.Authenticate(data.Email, data.Password)
	if err != nil {
		switch errors.Cause(err) {
		case user.ErrEmptyCredentials:
			return errMissingCredentials
		case user.ErrInvalidCredentials:
			return errAuthenticationFailed
		}
		return errors.Wrap(err, "authenticating")
	}

	if err = createSession(ctx, sess); err != nil {
		return errors.Wrap(err, "creating session")
	}
	page, ok := rolePages[sess.Role]
	if !ok {
		return errNoPageForRole
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Session: sess, Redirect: page})
}

func (api *portalApi) logout(ctx echo.Context) error {
	clearSession(ctx)
	return redirectToLogin(ctx)
}

func (api *portalApi) demoCredentials(ctx echo.Context) error {
	creds, err := api.credentialRows()
	if err != nil {
		return errors.Wrap(err, "listing demo credentials")
	}
	return ctx.JSON(http.StatusOK, creds)
}

// credentialRows lists every roster account with its password in the clear.
// This is the whole point of the demo portal; see user.User.
func (api *portalApi) credentialRows() ([]CredentialRow, error) {
	users, err := api.usrSvc.QueryAll()
	if err != nil {
		return nil, err
	}
	rows := make([]CredentialRow, 0, len(users))
	for _, usr := range users {
		rows = append(rows, CredentialRow{
			Role:     usr.Role.Label(),
			Email:    usr.Email,
			Password: usr.Password,
		})
	}
	return rows, nil
}

func (api *portalApi) studentDashboard(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	dash, err := api.schoolSvc.StudentDashboard(sess)
	if err != nil {
		return api.dashboardError(ctx, err, "building student dashboard")
	}
	return ctx.JSON(http.StatusOK, dash)
}

func (api *portalApi) parentDashboard(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	dash, err := api.schoolSvc.ParentDashboard(sess)
	if err != nil {
		return api.dashboardError(ctx, err, "building parent dashboard")
	}
	return ctx.JSON(http.StatusOK, dash)
}

func (api *portalApi) teacherDashboard(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	dash, err := api.schoolSvc.TeacherDashboard(sess)
	if err != nil {
		return api.dashboardError(ctx, err, "building teacher dashboard")
	}
	return ctx.JSON(http.StatusOK, dash)
}

func (api *portalApi) adminDashboard(ctx echo.Context) error {
	sess, err := getContextSession(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context session")
	}
	dash, err := api.schoolSvc.AdminDashboard(sess)
	if err != nil {
		return api.dashboardError(ctx, err, "building admin dashboard")
	}
	return ctx.JSON(http.StatusOK, dash)
}

// dashboardError drops a session whose user no longer resolves in the directory;
// anything else bubbles up to the error handler.
func (api *portalApi) dashboardError(ctx echo.Context, err error, msg string) error {
	if errors.Cause(err) == user.ErrNotFound {
		clearSession(ctx)
		return redirectToLogin(ctx)
	}
	return errors.Wrap(err, msg)
}
