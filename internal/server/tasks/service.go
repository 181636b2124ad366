// Package tasks implements the task repository, the per-caller
// authorization rules and the overdue penalty engine.
//
// Overdue handling is lazy: there is no background timer. Every list read
// first sweeps the repository; each incomplete task whose deadline has
// passed is processed exactly once, reassigning one other incomplete task
// (chosen uniformly at random among those with a different assignee) onto
// the delinquent assignee.
package tasks

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/logging"
)

type Service struct {
	repo   Repository
	logger logging.Logger

	// injectable for deterministic tests
	now  func() time.Time
	pick func(n int) int
}

func NewService(repo Repository, logger logging.Logger) *Service {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Service{
		repo:   repo,
		logger: logger.With("module", "tasks"),
		now:    time.Now,
		pick:   rng.Intn,
	}
}

// List sweeps overdue tasks and returns the caller's current tasks in
// insertion order.
func (s *Service) List(ctx context.Context, callerEmail string) ([]*Task, error) {

	moved, err := s.repo.SweepOverdue(ctx, s.now(), s.pick)
	if err != nil {
		return nil, common.ErrorInternal
	}

	for _, m := range moved {
		s.logger.Info(ctx, "penalty reassignment",
			"overdue_task", m.OverdueTaskID, "victim_task", m.VictimTaskID, "assignee", m.Assignee)
	}

	return s.repo.ListByAssignee(ctx, callerEmail)
}

// Create adds a task owned by the caller. An empty assignee defaults to
// the caller's own email. Empty text yields common.ErrorValidation.
func (s *Service) Create(ctx context.Context, text, assignee string, deadline *time.Time, ownerID int64, ownerEmail string) (*Task, error) {

	if text == "" {
		return nil, common.ErrorValidation
	}
	if assignee == "" {
		assignee = ownerEmail
	}
	if assignee == "" {
		return nil, common.ErrorValidation
	}

	task := &Task{
		Text:     text,
		Assignee: assignee,
		Deadline: deadline,
		OwnerID:  ownerID,
	}

	return s.repo.Create(ctx, task)
}

// ToggleComplete flips the completed flag. Only the current assignee may
// toggle; a missing task and a foreign task are indistinguishable and
// both yield common.ErrorNotFound. The flip runs atomically with the
// assignee check inside the repository, so a sweep interleaving with the
// toggle can never be overwritten by a stale copy.
func (s *Service) ToggleComplete(ctx context.Context, id int64, callerEmail string) (*Task, error) {

	task, err := s.repo.ToggleComplete(ctx, id, callerEmail)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return task, nil
}

// Delete removes the task. Only the owner may delete; a missing task and
// a foreign task are indistinguishable and both yield
// common.ErrorNotFound.
func (s *Service) Delete(ctx context.Context, id int64, callerUserID int64) error {

	task, err := s.repo.Get(ctx, id)
	if err != nil {
		return common.ErrorNotFound
	}
	if task.OwnerID != callerUserID {
		return common.ErrorNotFound
	}

	return s.repo.Delete(ctx, id)
}
