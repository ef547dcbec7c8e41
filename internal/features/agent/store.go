package agent

import (
	"errors"
	"sync"

	"github.com/tiendc/go-deepcopy"

	"go-agency/internal/features/customer"
)

// ErrTaskNotFound is returned by lookups and mutations for an unknown id.
var ErrTaskNotFound = errors.New("task not found")

// TaskPatch carries the fields a mutation wants to change. Nil fields are
// left untouched. Field combinations are not validated here.
type TaskPatch struct {
	Date          *string
	Time          *string
	Status        *TaskStatus
	CompletedAt   *string
	ResultMessage *string
}

// TaskStore owns the generated task collection. The slice keeps the
// (date, time) order produced by the generator; mutations do not re-sort.
type TaskStore struct {
	mu    sync.RWMutex
	tasks []Task
}

// NewTaskStore runs the generator once and wraps the result.
func NewTaskStore(gen *Generator, customerService customer.CustomerService, log *ActivityLog) *TaskStore {
	return &TaskStore{tasks: gen.Generate(customerService.All(), log)}
}

// All returns a deep copy so callers cannot reach store internals.
func (s *TaskStore) All() []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Task
	if err := deepcopy.Copy(&out, s.tasks); err != nil {
		// Task contains nothing deepcopy can choke on; keep the API total.
		out = make([]Task, len(s.tasks))
		copy(out, s.tasks)
	}
	return out
}

func (s *TaskStore) ByDate(date string) []Task {
	return s.filter(func(t *Task) bool { return t.Date == date })
}

// ByRange matches dates inclusively on both ends using string comparison
// over the YYYY-MM-DD form.
func (s *TaskStore) ByRange(start, end string) []Task {
	return s.filter(func(t *Task) bool { return t.Date >= start && t.Date <= end })
}

func (s *TaskStore) ByType(taskType TaskType) []Task {
	return s.filter(func(t *Task) bool { return t.Type == taskType })
}

func (s *TaskStore) ByStatus(status TaskStatus) []Task {
	return s.filter(func(t *Task) bool { return t.Status == status })
}

func (s *TaskStore) ByID(id int) (*Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			t := s.tasks[i]
			return &t, nil
		}
	}
	return nil, ErrTaskNotFound
}

// Update shallow-merges the patch into the task with the given id and
// returns a copy of the updated record.
func (s *TaskStore) Update(id int, patch TaskPatch) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		t := &s.tasks[i]
		if patch.Date != nil {
			t.Date = *patch.Date
		}
		if patch.Time != nil {
			t.Time = *patch.Time
		}
		if patch.Status != nil {
			t.Status = *patch.Status
		}
		if patch.CompletedAt != nil {
			t.CompletedAt = *patch.CompletedAt
		}
		if patch.ResultMessage != nil {
			t.ResultMessage = *patch.ResultMessage
		}
		updated := *t
		return &updated, nil
	}
	return nil, ErrTaskNotFound
}

// RetagStatus moves every task in `from` to `to` atomically and returns
// how many changed.
func (s *TaskStore) RetagStatus(from, to TaskStatus) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for i := range s.tasks {
		if s.tasks[i].Status == from {
			s.tasks[i].Status = to
			count++
		}
	}
	return count
}

func (s *TaskStore) filter(keep func(*Task) bool) []Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []Task{}
	for i := range s.tasks {
		if keep(&s.tasks[i]) {
			out = append(out, s.tasks[i])
		}
	}
	return out
}
