package httpserver

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"members-portal/web"
)

// NewServer wires an echo instance with the renderer, request middleware
// and every route. Guard order on admin routes is fixed: the session guard
// always runs before the role guard.
func NewServer(h *Handler) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}
	e.Renderer = renderer

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(h.ResolveSession)

	e.GET("/", h.Home)
	e.GET("/login", h.LoginPage)
	e.POST("/logginin", h.Login)
	e.GET("/logout", h.Logout)
	e.GET("/signup", h.SignupPage)
	e.POST("/submitUser", h.SubmitUser)

	members := e.Group("/members", h.RequireSession)
	members.GET("", h.MembersPage)

	admin := e.Group("/admin", h.RequireSession, h.RequireAdmin)
	admin.GET("", h.AdminPage)

	e.POST("/promote/:username", h.Promote, h.RequireSession, h.RequireAdmin)
	e.POST("/demote/:username", h.Demote, h.RequireSession, h.RequireAdmin)

	e.StaticFS("/static", echo.MustSubFS(web.Static, "static"))

	// Registered last: anything unmatched renders the 404 view.
	e.RouteNotFound("/*", h.NotFound)

	return e, nil
}
