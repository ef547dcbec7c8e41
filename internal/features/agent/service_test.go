package agent

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"go.uber.org/zap"

	"go-agency/internal/features/customer"
)

func newTestService(tasks []Task) (*AgentServiceImpl, *ActivityLog) {
	activityLog := NewActivityLog()
	svc := &AgentServiceImpl{
		Store:  &TaskStore{tasks: tasks},
		Log:    activityLog,
		Logger: zap.NewNop(),
		now:    fixedNow,
	}
	return svc, activityLog
}

func sampleTasks() []Task {
	return []Task{
		{ID: 1, Type: TypeBirthday, Action: ActionSMS, Title: "Dogum gunu kutlama mesaji", CustomerName: "Ahmet Yilmaz", Date: "2025-06-10", Time: "09:30", Status: StatusCompleted, CompletedAt: "2025-06-10 10:00", ResultMessage: "SMS iletildi"},
		{ID: 2, Type: TypeSurvey, Action: ActionSurveySend, Title: "Genel hizmet degerlendirme anketi", CustomerName: "Ayse Demir", Date: "2025-06-12", Time: "10:00", Status: StatusFailed, CompletedAt: "2025-06-12 11:00", ResultMessage: "Musteriye ulasilamadi"},
		{ID: 3, Type: TypeCrossSell, Action: ActionOffer, Title: "Kasko teklifi sunumu", CustomerName: "Mehmet Kaya", Date: "2025-06-15", Time: "11:00", Status: StatusRunning, PolicyNo: "KSK-123456"},
		{ID: 4, Type: TypeOccasion, Action: ActionEmail, Title: "Bayram kutlama mesaji", CustomerName: "Fatma Celik", Date: "2025-06-20", Time: "13:00", Status: StatusPendingApproval},
		{ID: 5, Type: TypeFamilyTSS, Action: ActionCall, Title: "Aile TSS paketi tanitimi", CustomerName: "Mustafa Sahin", Date: "2025-06-25", Time: "14:00", Status: StatusPendingApproval, PolicyNo: "SGL-654321"},
		{ID: 6, Type: TypeBirthday, Action: ActionCall, Title: "Dogum gunu tebrik aramasi", CustomerName: "Zeynep Arslan", Date: "2025-06-28", Time: "15:00", Status: StatusScheduled},
	}
}

func TestApprove(t *testing.T) {
	svc, activityLog := newTestService(sampleTasks())

	task, err := svc.Approve(4)
	if err != nil {
		t.Fatalf("Approve() error = %v", err)
	}
	if task.Status != StatusScheduled {
		t.Errorf("status = %d, want %d", task.Status, StatusScheduled)
	}

	recent := activityLog.Recent(1)
	if len(recent) != 1 || recent[0].Kind != ActivityApproved {
		t.Errorf("expected one approved activity entry, got %v", recent)
	}
}

func TestApproveNotFound(t *testing.T) {
	svc, activityLog := newTestService(sampleTasks())

	if _, err := svc.Approve(999); err != ErrTaskNotFound {
		t.Fatalf("Approve(999) error = %v, want ErrTaskNotFound", err)
	}
	if entries := activityLog.Recent(10); len(entries) != 0 {
		t.Errorf("no activity should be recorded for a missing task, got %d entries", len(entries))
	}
}

// Approving a finished task succeeds silently; transition legality is the
// caller's problem.
func TestApproveIgnoresCurrentStatus(t *testing.T) {
	svc, _ := newTestService(sampleTasks())

	task, err := svc.Approve(1)
	if err != nil {
		t.Fatalf("Approve() error = %v", err)
	}
	if task.Status != StatusScheduled {
		t.Errorf("status = %d, want %d", task.Status, StatusScheduled)
	}
}

func TestReject(t *testing.T) {
	svc, activityLog := newTestService(sampleTasks())

	task, err := svc.Reject(6)
	if err != nil {
		t.Fatalf("Reject() error = %v", err)
	}
	if task.Status != StatusRejected {
		t.Errorf("status = %d, want %d", task.Status, StatusRejected)
	}
	if recent := activityLog.Recent(1); recent[0].Kind != ActivityRejected {
		t.Errorf("entry kind = %s, want %s", recent[0].Kind, ActivityRejected)
	}
}

func TestPostpone(t *testing.T) {
	svc, activityLog := newTestService(sampleTasks())

	task, err := svc.Postpone(6, "2099-01-01")
	if err != nil {
		t.Fatalf("Postpone() error = %v", err)
	}
	if task.Date != "2099-01-01" {
		t.Errorf("date = %s, want 2099-01-01", task.Date)
	}
	if task.Status != StatusPendingApproval {
		t.Errorf("status = %d, want %d", task.Status, StatusPendingApproval)
	}

	recent := activityLog.Recent(1)
	if !strings.Contains(recent[0].Message, "#6") {
		t.Errorf("activity message should mention the task id: %q", recent[0].Message)
	}
}

// End-to-end over a generated store: postpone task 5 and read it back.
func TestPostponeGeneratedTask(t *testing.T) {
	activityLog := NewActivityLog()
	gen := NewGenerator(rand.New(rand.NewSource(42)), fixedNow)
	store := &TaskStore{tasks: gen.Generate(customer.Roster, activityLog)}
	svc := &AgentServiceImpl{Store: store, Log: activityLog, Logger: zap.NewNop(), now: fixedNow}

	if _, err := svc.Postpone(5, "2099-01-01"); err != nil {
		t.Fatalf("Postpone() error = %v", err)
	}

	task, err := svc.TaskByID(5)
	if err != nil {
		t.Fatalf("TaskByID(5) error = %v", err)
	}
	if task.Date != "2099-01-01" || task.Status != StatusPendingApproval {
		t.Errorf("got date=%s status=%d, want 2099-01-01 / %d", task.Date, task.Status, StatusPendingApproval)
	}
	if recent := activityLog.Recent(1); !strings.Contains(recent[0].Message, "#5") {
		t.Errorf("most recent entry should mention task 5: %q", recent[0].Message)
	}
}

func TestApproveAll(t *testing.T) {
	svc, activityLog := newTestService(sampleTasks())

	count := svc.ApproveAll()
	if count != 2 {
		t.Fatalf("ApproveAll() = %d, want 2", count)
	}
	if pending := svc.TasksByStatus(StatusPendingApproval); len(pending) != 0 {
		t.Errorf("still %d pending tasks after ApproveAll", len(pending))
	}
	if scheduled := svc.TasksByStatus(StatusScheduled); len(scheduled) != 3 {
		t.Errorf("scheduled count = %d, want 3", len(scheduled))
	}
	if recent := activityLog.Recent(10); len(recent) != 1 {
		t.Errorf("expected a single summary entry, got %d", len(recent))
	}

	// Nothing left to approve: no count, no extra entry.
	if count := svc.ApproveAll(); count != 0 {
		t.Errorf("second ApproveAll() = %d, want 0", count)
	}
	if recent := activityLog.Recent(10); len(recent) != 1 {
		t.Errorf("no entry should be recorded when nothing changed, got %d", len(recent))
	}
}

func TestQueries(t *testing.T) {
	svc, _ := newTestService(sampleTasks())

	if got := svc.TasksForDate("2025-06-15"); len(got) != 1 || got[0].ID != 3 {
		t.Errorf("TasksForDate = %v", got)
	}
	if got := svc.TasksForRange("2025-06-12", "2025-06-20"); len(got) != 3 {
		t.Errorf("TasksForRange returned %d tasks, want 3", len(got))
	}
	if got := svc.TasksByType(TypeBirthday); len(got) != 2 {
		t.Errorf("TasksByType returned %d tasks, want 2", len(got))
	}
	if _, err := svc.TaskByID(12345); err != ErrTaskNotFound {
		t.Errorf("TaskByID(12345) error = %v, want ErrTaskNotFound", err)
	}
}

func TestStoreAllReturnsCopy(t *testing.T) {
	svc, _ := newTestService(sampleTasks())

	all := svc.Tasks()
	all[0].Title = "mutated"
	all[0].Status = StatusRejected

	fresh, err := svc.TaskByID(all[0].ID)
	if err != nil {
		t.Fatalf("TaskByID() error = %v", err)
	}
	if fresh.Title == "mutated" || fresh.Status == StatusRejected {
		t.Error("mutating the returned slice reached store internals")
	}
}

func TestStats(t *testing.T) {
	tests := []struct {
		name  string
		tasks []Task
		want  AgentStats
	}{
		{
			name:  "mixed statuses",
			tasks: sampleTasks(),
			want: AgentStats{
				Total:       6,
				Pending:     2,
				Scheduled:   1,
				Running:     1,
				Completed:   1,
				Failed:      1,
				TodayTasks:  1, // task 3 on 2025-06-15
				SuccessRate: 50,
			},
		},
		{
			name: "no attempts means perfect rate",
			tasks: []Task{
				{ID: 1, Date: "2025-06-20", Status: StatusPendingApproval},
				{ID: 2, Date: "2025-06-21", Status: StatusScheduled},
			},
			want: AgentStats{Total: 2, Pending: 1, Scheduled: 1, SuccessRate: 100},
		},
		{
			name: "rate is rounded",
			tasks: []Task{
				{ID: 1, Date: "2025-06-01", Status: StatusCompleted, CompletedAt: "x", ResultMessage: "x"},
				{ID: 2, Date: "2025-06-02", Status: StatusCompleted, CompletedAt: "x", ResultMessage: "x"},
				{ID: 3, Date: "2025-06-03", Status: StatusFailed, CompletedAt: "x", ResultMessage: "x"},
			},
			want: AgentStats{Total: 3, Completed: 2, Failed: 1, SuccessRate: 67},
		},
		{
			name: "completed today",
			tasks: []Task{
				{ID: 1, Date: "2025-06-15", Status: StatusCompleted, CompletedAt: "x", ResultMessage: "x"},
			},
			want: AgentStats{Total: 1, Completed: 1, CompletedToday: 1, TodayTasks: 1, SuccessRate: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(tt.tasks)
			got := svc.Stats()
			if got != tt.want {
				t.Errorf("Stats() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStatsSuccessRateFormula(t *testing.T) {
	for _, tc := range []struct{ completed, failed, want int }{
		{0, 0, 100},
		{1, 0, 100},
		{0, 1, 0},
		{3, 1, 75},
		{1, 2, 33},
	} {
		t.Run(fmt.Sprintf("%d_%d", tc.completed, tc.failed), func(t *testing.T) {
			tasks := []Task{}
			id := 1
			for i := 0; i < tc.completed; i++ {
				tasks = append(tasks, Task{ID: id, Date: "2025-06-01", Status: StatusCompleted, CompletedAt: "x", ResultMessage: "x"})
				id++
			}
			for i := 0; i < tc.failed; i++ {
				tasks = append(tasks, Task{ID: id, Date: "2025-06-01", Status: StatusFailed, CompletedAt: "x", ResultMessage: "x"})
				id++
			}
			svc, _ := newTestService(tasks)
			if got := svc.Stats().SuccessRate; got != tc.want {
				t.Errorf("successRate = %d, want %d", got, tc.want)
			}
		})
	}
}
