package agent

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"
)

// AgentService is the in-process API the UI consumes: task queries, the
// lifecycle mutations, the activity feed and the dashboard counters.
type AgentService interface {
	Tasks() []Task
	TasksForDate(date string) []Task
	TasksForRange(start, end string) []Task
	TasksByType(taskType TaskType) []Task
	TasksByStatus(status TaskStatus) []Task
	TaskByID(id int) (*Task, error)

	Approve(id int) (*Task, error)
	Reject(id int) (*Task, error)
	Postpone(id int, newDate string) (*Task, error)
	ApproveAll() int

	Stats() AgentStats
	Activity(limit int) []ActivityEntry
}

type AgentServiceImpl struct {
	Store  *TaskStore
	Log    *ActivityLog
	Logger *zap.Logger
	now    func() time.Time
}

func NewAgentService(store *TaskStore, log *ActivityLog, logger *zap.Logger) AgentService {
	return &AgentServiceImpl{
		Store:  store,
		Log:    log,
		Logger: logger,
		now:    time.Now,
	}
}

func (s *AgentServiceImpl) Tasks() []Task {
	return s.Store.All()
}

func (s *AgentServiceImpl) TasksForDate(date string) []Task {
	return s.Store.ByDate(date)
}

func (s *AgentServiceImpl) TasksForRange(start, end string) []Task {
	return s.Store.ByRange(start, end)
}

func (s *AgentServiceImpl) TasksByType(taskType TaskType) []Task {
	return s.Store.ByType(taskType)
}

func (s *AgentServiceImpl) TasksByStatus(status TaskStatus) []Task {
	return s.Store.ByStatus(status)
}

func (s *AgentServiceImpl) TaskByID(id int) (*Task, error) {
	return s.Store.ByID(id)
}

// Approve moves a task to SCHEDULED. The current status is not checked;
// approving a finished task succeeds silently.
func (s *AgentServiceImpl) Approve(id int) (*Task, error) {
	status := StatusScheduled
	task, err := s.Store.Update(id, TaskPatch{Status: &status})
	if err != nil {
		return nil, err
	}

	s.Log.Record(ActivityApproved, fmt.Sprintf("\"%s\" gorevi onaylandi (%s)", task.Title, task.CustomerName), &task.ID)
	s.Logger.Info("task approved", zap.Int("taskId", id))
	return task, nil
}

// Reject moves a task to REJECTED regardless of its current status.
func (s *AgentServiceImpl) Reject(id int) (*Task, error) {
	status := StatusRejected
	task, err := s.Store.Update(id, TaskPatch{Status: &status})
	if err != nil {
		return nil, err
	}

	s.Log.Record(ActivityRejected, fmt.Sprintf("\"%s\" gorevi reddedildi (%s)", task.Title, task.CustomerName), &task.ID)
	s.Logger.Info("task rejected", zap.Int("taskId", id))
	return task, nil
}

// Postpone reschedules a task to newDate and sends it back to approval.
func (s *AgentServiceImpl) Postpone(id int, newDate string) (*Task, error) {
	status := StatusPendingApproval
	task, err := s.Store.Update(id, TaskPatch{Date: &newDate, Status: &status})
	if err != nil {
		return nil, err
	}

	s.Log.Record(ActivityCreated, fmt.Sprintf("#%d \"%s\" gorevi %s tarihine ertelendi", task.ID, task.Title, newDate), &task.ID)
	s.Logger.Info("task postponed", zap.Int("taskId", id), zap.String("newDate", newDate))
	return task, nil
}

// ApproveAll schedules every task waiting for approval and returns how
// many changed. A summary entry is recorded only when at least one did.
func (s *AgentServiceImpl) ApproveAll() int {
	count := s.Store.RetagStatus(StatusPendingApproval, StatusScheduled)
	if count > 0 {
		s.Log.Record(ActivityApproved, fmt.Sprintf("%d gorev toplu olarak onaylandi", count), nil)
		s.Logger.Info("all pending tasks approved", zap.Int("count", count))
	}
	return count
}

// Stats computes the dashboard counters in a single pass.
func (s *AgentServiceImpl) Stats() AgentStats {
	today := s.now().Format(dateLayout)

	stats := AgentStats{}
	for _, t := range s.Store.All() {
		stats.Total++
		if t.Date == today {
			stats.TodayTasks++
		}
		switch t.Status {
		case StatusPendingApproval:
			stats.Pending++
		case StatusScheduled:
			stats.Scheduled++
		case StatusRunning:
			stats.Running++
		case StatusCompleted:
			stats.Completed++
			if t.Date == today {
				stats.CompletedToday++
			}
		case StatusFailed:
			stats.Failed++
		}
	}

	stats.SuccessRate = 100
	if attempts := stats.Completed + stats.Failed; attempts > 0 {
		stats.SuccessRate = int(math.Round(100 * float64(stats.Completed) / float64(attempts)))
	}
	return stats
}

func (s *AgentServiceImpl) Activity(limit int) []ActivityEntry {
	return s.Log.Recent(limit)
}
