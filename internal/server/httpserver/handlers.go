package httpserver

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/tasks"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createTaskRequest struct {
	Text     string     `json:"text"`
	Assignee string     `json:"assignee"`
	Deadline *time.Time `json:"deadline"`
}

func (s *Server) ping(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "OK"})
}

func (s *Server) register(c echo.Context) error {

	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx := c.Request().Context()

	user, err := s.users.Register(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorValidation):
			return echo.NewHTTPError(http.StatusBadRequest, "email and password are required")
		case errors.Is(err, common.ErrorAlreadyExists):
			return echo.NewHTTPError(http.StatusBadRequest, "email already registered")
		}
		s.logger.Error(ctx, err.Error())
		return echo.NewHTTPError(http.StatusInternalServerError, common.ErrorInternal.Error())
	}

	s.logger.Info(ctx, "Registered", "user_id", user.ID, "email", user.Email)
	return c.JSON(http.StatusCreated, echo.Map{"message": "registered"})
}

func (s *Server) login(c echo.Context) error {

	var req credentialsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx := c.Request().Context()

	token, err := s.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			// one message for unknown email and wrong password
			return echo.NewHTTPError(http.StatusBadRequest, "invalid email or password")
		}
		s.logger.Error(ctx, err.Error())
		return echo.NewHTTPError(http.StatusInternalServerError, common.ErrorInternal.Error())
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

func (s *Server) listTasks(c echo.Context) error {

	claims, err := s.claims(c)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()

	list, err := s.tasks.List(ctx, claims.Email)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return echo.NewHTTPError(http.StatusInternalServerError, common.ErrorInternal.Error())
	}

	if list == nil {
		list = []*tasks.Task{}
	}
	return c.JSON(http.StatusOK, list)
}

func (s *Server) createTask(c echo.Context) error {

	claims, err := s.claims(c)
	if err != nil {
		return err
	}

	var req createTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	ctx := c.Request().Context()

	task, err := s.tasks.Create(ctx, req.Text, req.Assignee, req.Deadline, claims.UserID, claims.Email)
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			return echo.NewHTTPError(http.StatusBadRequest, "text is required")
		}
		s.logger.Error(ctx, err.Error())
		return echo.NewHTTPError(http.StatusInternalServerError, common.ErrorInternal.Error())
	}

	return c.JSON(http.StatusCreated, task)
}

func (s *Server) toggleTask(c echo.Context) error {

	claims, err := s.claims(c)
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, common.ErrorNotFound.Error())
	}

	ctx := c.Request().Context()

	task, err := s.tasks.ToggleComplete(ctx, id, claims.Email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, common.ErrorNotFound.Error())
		}
		s.logger.Error(ctx, err.Error())
		return echo.NewHTTPError(http.StatusInternalServerError, common.ErrorInternal.Error())
	}

	return c.JSON(http.StatusOK, task)
}

func (s *Server) deleteTask(c echo.Context) error {

	claims, err := s.claims(c)
	if err != nil {
		return err
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, common.ErrorNotFound.Error())
	}

	ctx := c.Request().Context()

	if err := s.tasks.Delete(ctx, id, claims.UserID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, common.ErrorNotFound.Error())
		}
		s.logger.Error(ctx, err.Error())
		return echo.NewHTTPError(http.StatusInternalServerError, common.ErrorInternal.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
