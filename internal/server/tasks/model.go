package tasks

import "time"

// Task is a single tracked item. Assignee may change over time through
// penalty reassignment; OwnerID is fixed at creation.
type Task struct {
	ID               int64      `json:"id"`
	Text             string     `json:"text"`
	Assignee         string     `json:"assignee"`
	Completed        bool       `json:"completed"`
	CreatedAt        time.Time  `json:"created_at"`
	Deadline         *time.Time `json:"deadline,omitempty"`
	OwnerID          int64      `json:"owner_id"`
	OverdueProcessed bool       `json:"overdue_processed"`
}

// Overdue reports whether the task has passed its deadline while still
// incomplete and has not been through a penalty sweep yet.
func (t *Task) Overdue(now time.Time) bool {
	return !t.Completed && !t.OverdueProcessed && t.Deadline != nil && t.Deadline.Before(now)
}

// Reassignment records one penalty applied during an overdue sweep: the
// victim task was moved onto the delinquent assignee of the overdue task.
// VictimTaskID is zero when no eligible victim existed and only the
// processed flag was set.
type Reassignment struct {
	OverdueTaskID int64
	VictimTaskID  int64
	Assignee      string
}
