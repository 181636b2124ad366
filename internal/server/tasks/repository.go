package tasks

import (
	"context"
	"time"
)

type Repository interface {
	// Create stores a new task, assigning the next monotonic id and
	// stamping CreatedAt.
	Create(ctx context.Context, task *Task) (*Task, error)

	// ListByAssignee returns the tasks currently assigned to email, in
	// insertion order.
	ListByAssignee(ctx context.Context, email string) ([]*Task, error)

	// Get returns the task with the given id, or common.ErrorNotFound.
	Get(ctx context.Context, id int64) (*Task, error)

	// ToggleComplete flips the completed flag of the task with the given
	// id. The flip happens atomically with the assignee check: only when
	// the task's current assignee equals assignee. A missing task and an
	// assignee mismatch both yield common.ErrorNotFound.
	ToggleComplete(ctx context.Context, id int64, assignee string) (*Task, error)

	// Update overwrites the Completed flag of the stored task with the
	// same id and sets OverdueProcessed when the given task carries it.
	// Assignee is never written here: it changes only through
	// SweepOverdue.
	Update(ctx context.Context, task *Task) (*Task, error)

	// Delete removes the task with the given id, or returns
	// common.ErrorNotFound.
	Delete(ctx context.Context, id int64) error

	// SweepOverdue runs one atomic overdue pass as of now. Every
	// incomplete task whose deadline has passed and that has not been
	// processed before is marked processed exactly once; for each such
	// task, pick chooses a victim index among the other incomplete tasks
	// with a different assignee (insertion order), and the victim's
	// assignee becomes the delinquent assignee. With no eligible victim
	// only the flag is set.
	SweepOverdue(ctx context.Context, now time.Time, pick func(n int) int) ([]Reassignment, error)
}
