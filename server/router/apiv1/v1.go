// Package apiv1 exposes the calendar over a small JSON HTTP API. The caller
// identifies itself with the X-User-Handle header; the channel adapter in
// front of the service is trusted to have verified it.
package apiv1

import (
	"github.com/labstack/echo/v4"

	"github.com/zaplanuj/terminarz/calendar"
	"github.com/zaplanuj/terminarz/internal/profile"
	"github.com/zaplanuj/terminarz/server/middleware"
	"github.com/zaplanuj/terminarz/store"
)

type APIV1Service struct {
	Profile  *profile.Profile
	Store    *store.Store
	Calendar *calendar.Service

	rateLimiter *middleware.RateLimiter
}

func NewAPIV1Service(profile *profile.Profile, store *store.Store, calendar *calendar.Service) *APIV1Service {
	return &APIV1Service{
		Profile:     profile,
		Store:       store,
		Calendar:    calendar,
		rateLimiter: middleware.NewRateLimiter(),
	}
}

// RegisterRoutes mounts the API under /api/v1.
func (s *APIV1Service) RegisterRoutes(echoServer *echo.Echo) {
	group := echoServer.Group("/api/v1", s.rateLimiter.Middleware())

	group.POST("/users", s.createUser)
	group.DELETE("/users/:handle", s.deleteUser)

	group.POST("/events", s.createEvent)
	group.GET("/events", s.listEvents)
	group.GET("/events/:code", s.getEvent)
	group.DELETE("/events/:code", s.deleteEvent)

	group.POST("/events/:code/declarations", s.declare)
	group.GET("/events/:code/declarations", s.listDeclarations)

	group.PUT("/events/:code/reminder", s.setReminder)
}
