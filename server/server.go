// Package server wires the HTTP API and the reminder runner into one
// process.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/zaplanuj/terminarz/calendar"
	"github.com/zaplanuj/terminarz/internal/profile"
	"github.com/zaplanuj/terminarz/server/router/apiv1"
	"github.com/zaplanuj/terminarz/server/runner/reminder"
	"github.com/zaplanuj/terminarz/store"
)

type Server struct {
	profile  *profile.Profile
	store    *store.Store
	calendar *calendar.Service

	echoServer     *echo.Echo
	reminderRunner *reminder.Runner
}

func NewServer(profile *profile.Profile, store *store.Store, calendarService *calendar.Service) *Server {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Use(echomw.Recover())

	apiv1.NewAPIV1Service(profile, store, calendarService).RegisterRoutes(echoServer)
	echoServer.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	var notifier reminder.Notifier = reminder.LogNotifier{}
	if profile.WebhookURL != "" {
		notifier = reminder.NewWebhookNotifier(profile.WebhookURL)
	}

	return &Server{
		profile:        profile,
		store:          store,
		calendar:       calendarService,
		echoServer:     echoServer,
		reminderRunner: reminder.NewRunner(calendarService, notifier, profile.NotifyInterval),
	}
}

// Start runs the HTTP listener and the reminder runner until ctx is
// cancelled, then shuts both down.
func (s *Server) Start(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		address := fmt.Sprintf("%s:%d", s.profile.Addr, s.profile.Port)
		slog.Info("server listening", "address", address, "version", s.profile.Version)
		if err := s.echoServer.Start(address); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})

	group.Go(func() error {
		s.reminderRunner.Run(groupCtx)
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.echoServer.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shut down http server", "error", err)
		}
		return nil
	})

	return group.Wait()
}
