package handler

import (
	"context"
	"io/fs"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-action-tracker/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-action-tracker/pkg/config"
)

// HealthChecker reports whether a dependency is reachable
type HealthChecker func(ctx context.Context) error

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	logger         *zap.Logger
	meetingHandler *Meeting
	actionHandler  *Action
	pagesHandler   *Pages
	static         fs.FS
	dbHealth       HealthChecker
}

// NewRouter creates a new router with all handlers.
// static is served under /static and may be nil.
func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	meetingHandler *Meeting,
	actionHandler *Action,
	pagesHandler *Pages,
	static fs.FS,
	dbHealth HealthChecker,
) *Router {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Router{
		cfg:            cfg,
		logger:         logger,
		meetingHandler: meetingHandler,
		actionHandler:  actionHandler,
		pagesHandler:   pagesHandler,
		static:         static,
		dbHealth:       dbHealth,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.HTTPErrorHandler = ErrorHandler(rt.logger)

	// Service endpoints
	e.GET("/", rt.root)
	e.GET("/health", rt.healthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	if rt.static != nil {
		e.StaticFS("/static", rt.static)
	}

	rt.setupMeetingRoutes(e)
	rt.setupActionRoutes(e)
	rt.setupPageRoutes(e.Group("/ui"))
}

// setupMeetingRoutes configures meeting routes
func (rt *Router) setupMeetingRoutes(e *echo.Echo) {
	h := rt.meetingHandler
	meetings := e.Group("/meetings")

	meetings.POST("", h.CreateMeeting)
	meetings.GET("", h.ListMeetings)
	meetings.GET("/:id", h.GetMeeting)
	meetings.DELETE("/:id", h.DeleteMeeting)
	meetings.GET("/:id/actions", h.ListMeetingActions)
}

// setupActionRoutes configures action routes
func (rt *Router) setupActionRoutes(e *echo.Echo) {
	h := rt.actionHandler
	actions := e.Group("/actions")

	actions.POST("", h.CreateAction)
	actions.GET("", h.ListActions)
	actions.GET("/:id", h.GetAction)
	actions.PATCH("/:id", h.UpdateAction)
	actions.PATCH("/:id/complete", h.CompleteAction)
	actions.PATCH("/:id/toggle", h.ToggleAction)
	actions.DELETE("/:id", h.DeleteAction)
}

// setupPageRoutes configures the server-rendered pages
func (rt *Router) setupPageRoutes(g *echo.Group) {
	h := rt.pagesHandler
	if h == nil {
		return
	}

	g.GET("/meetings", h.ListMeetings)
	g.POST("/meetings", h.CreateMeeting)
	g.GET("/meetings/:id", h.MeetingDetail)
	g.POST("/meetings/:id/actions", h.CreateAction)
	g.POST("/meetings/:id/delete", h.DeleteMeeting)
	g.POST("/actions/:id/toggle", h.ToggleAction)
	g.POST("/actions/:id/delete", h.DeleteAction)
}

// root returns the service banner
func (rt *Router) root(c echo.Context) error {
	return c.JSON(http.StatusOK, common.BannerResponse{Message: "Meeting Action Tracker is running"})
}

// healthCheck returns health status
// @Summary      Health check
// @Tags         System
// @Produce      json
// @Success      200  {object}  common.HealthResponse
// @Failure      503  {object}  common.HealthResponse
// @Router       /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	resp := common.HealthResponse{
		Status:      "ok",
		Database:    "ok",
		Environment: rt.cfg.Server.Environment,
	}

	if rt.dbHealth != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		if err := rt.dbHealth(ctx); err != nil {
			rt.logger.Error("health.database_unreachable",
				zap.String("request_id", getRequestID(c)),
				zap.Error(err),
			)
			resp.Status = "degraded"
			resp.Database = "unreachable"
			return c.JSON(http.StatusServiceUnavailable, resp)
		}
	}

	return c.JSON(http.StatusOK, resp)
}
