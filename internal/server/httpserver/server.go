// Package httpserver exposes the user and task services over HTTP with
// JSON bodies. Route wiring lives here; all domain decisions stay in the
// services.
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/taskkeeper/internal/logging"
	"github.com/dmitrijs2005/taskkeeper/internal/server/tasks"
	"github.com/dmitrijs2005/taskkeeper/internal/server/users"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address   string
	logger    logging.Logger
	users     *users.Service
	tasks     *tasks.Service
	jwtSecret []byte
	echo      *echo.Echo
}

func NewServer(address string, l logging.Logger, us *users.Service, ts *tasks.Service, secretKey string) *Server {

	s := &Server{
		address:   address,
		logger:    l.With("module", "http_server"),
		users:     us,
		tasks:     ts,
		jwtSecret: []byte(secretKey),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.GET("/ping", s.ping)
	e.POST("/register", s.register)
	e.POST("/login", s.login)

	g := e.Group("/tasks", s.bearerAuth)
	g.GET("", s.listTasks)
	g.POST("", s.createTask)
	g.PATCH("/:id", s.toggleTask)
	g.DELETE("/:id", s.deleteTask)

	s.echo = e
	return s
}

func (s *Server) Run(ctx context.Context) error {

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
