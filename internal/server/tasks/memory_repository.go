package tasks

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

// MemoryRepository keeps tasks in process memory behind a single mutex,
// which also guarantees monotonic id allocation and the at-most-once
// overdue processing. Contents are lost on restart. All reads return
// copies so callers never share memory with the stored records.
type MemoryRepository struct {
	mu     sync.Mutex
	tasks  []*Task
	nextID int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

func (r *MemoryRepository) Create(ctx context.Context, task *Task) (*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := &Task{
		ID:        r.nextID,
		Text:      task.Text,
		Assignee:  task.Assignee,
		CreatedAt: time.Now(),
		Deadline:  task.Deadline,
		OwnerID:   task.OwnerID,
	}
	r.nextID++
	r.tasks = append(r.tasks, stored)

	out := *stored
	return &out, nil
}

func (r *MemoryRepository) ListByAssignee(ctx context.Context, email string) ([]*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*Task, 0)
	for _, t := range r.tasks {
		if t.Assignee == email {
			out := *t
			result = append(result, &out)
		}
	}

	return result, nil
}

func (r *MemoryRepository) Get(ctx context.Context, id int64) (*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.find(id)
	if stored == nil {
		return nil, common.ErrorNotFound
	}

	out := *stored
	return &out, nil
}

func (r *MemoryRepository) ToggleComplete(ctx context.Context, id int64, assignee string) (*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.find(id)
	if stored == nil || stored.Assignee != assignee {
		return nil, common.ErrorNotFound
	}

	stored.Completed = !stored.Completed

	out := *stored
	return &out, nil
}

func (r *MemoryRepository) Update(ctx context.Context, task *Task) (*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := r.find(task.ID)
	if stored == nil {
		return nil, common.ErrorNotFound
	}

	stored.Completed = task.Completed
	if task.OverdueProcessed {
		// the flag never reverts once set
		stored.OverdueProcessed = true
	}

	out := *stored
	return &out, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, t := range r.tasks {
		if t.ID == id {
			r.tasks = append(r.tasks[:i], r.tasks[i+1:]...)
			return nil
		}
	}

	return common.ErrorNotFound
}

func (r *MemoryRepository) SweepOverdue(ctx context.Context, now time.Time, pick func(n int) int) ([]Reassignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []Reassignment

	// Walk in insertion order over live state: a reassignment made for an
	// earlier overdue task changes the eligibility for later ones.
	for _, t := range r.tasks {
		if !t.Overdue(now) {
			continue
		}

		t.OverdueProcessed = true

		var eligible []*Task
		for _, v := range r.tasks {
			if !v.Completed && v.Assignee != t.Assignee {
				eligible = append(eligible, v)
			}
		}

		rec := Reassignment{OverdueTaskID: t.ID, Assignee: t.Assignee}
		if len(eligible) > 0 {
			victim := eligible[pick(len(eligible))]
			victim.Assignee = t.Assignee
			rec.VictimTaskID = victim.ID
		}
		result = append(result, rec)
	}

	return result, nil
}

// find returns the stored record for id. Caller must hold the lock.
func (r *MemoryRepository) find(id int64) *Task {
	for _, t := range r.tasks {
		if t.ID == id {
			return t
		}
	}
	return nil
}
