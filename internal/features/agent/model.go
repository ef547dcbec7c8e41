package agent

import "time"

// TaskType identifies the outreach campaign a task belongs to.
type TaskType int

const (
	TypeBirthday TaskType = iota + 1
	TypeOccasion
	TypeSurvey
	TypeCrossSell
	TypeFamilyTSS
)

// ActionType is the channel/operation the agent performs for a task.
type ActionType int

const (
	ActionSMS ActionType = iota + 1
	ActionCall
	ActionOffer
	ActionEmail
	ActionSurveySend
)

// TaskStatus is the lifecycle state of a task. RUNNING tasks only come out
// of generation; exposed operations never move a task into RUNNING.
type TaskStatus int

const (
	StatusPendingApproval TaskStatus = iota + 1
	StatusScheduled
	StatusRunning
	StatusCompleted
	StatusFailed
	StatusRejected
)

// TaskPriority is derived from the task type at generation time.
type TaskPriority int

const (
	PriorityLow TaskPriority = iota + 1
	PriorityNormal
	PriorityHigh
	PriorityUrgent
)

// TaskSource marks whether a task came from the generic AI heuristics or
// from a specific automation rule.
type TaskSource int

const (
	SourceAuto TaskSource = iota + 1
	SourceRule
)

// Label tables for the UI, keyed by the enum values above.
var (
	TypeLabels = map[TaskType]string{
		TypeBirthday:  "Dogum Gunu",
		TypeOccasion:  "Ozel Gun",
		TypeSurvey:    "Memnuniyet Anketi",
		TypeCrossSell: "Capraz Satis",
		TypeFamilyTSS: "Aile TSS",
	}

	TypeIcons = map[TaskType]string{
		TypeBirthday:  "cake",
		TypeOccasion:  "gift",
		TypeSurvey:    "clipboard-list",
		TypeCrossSell: "trending-up",
		TypeFamilyTSS: "users",
	}

	ActionLabels = map[ActionType]string{
		ActionSMS:        "SMS",
		ActionCall:       "Arama",
		ActionOffer:      "Teklif",
		ActionEmail:      "E-posta",
		ActionSurveySend: "Anket Gonderimi",
	}

	StatusLabels = map[TaskStatus]string{
		StatusPendingApproval: "Onay Bekliyor",
		StatusScheduled:       "Planlandi",
		StatusRunning:         "Calisiyor",
		StatusCompleted:       "Tamamlandi",
		StatusFailed:          "Basarisiz",
		StatusRejected:        "Reddedildi",
	}

	PriorityLabels = map[TaskPriority]string{
		PriorityLow:    "Dusuk",
		PriorityNormal: "Normal",
		PriorityHigh:   "Yuksek",
		PriorityUrgent: "Acil",
	}

	SourceLabels = map[TaskSource]string{
		SourceAuto: "AI Onerisi",
		SourceRule: "Otomasyon Kurali",
	}
)

// Task is a single outreach action the AI agent proposed for a customer.
// CustomerName/CustomerPhone are a snapshot taken at generation time and
// do not track later changes to the roster record.
type Task struct {
	ID            int          `json:"id"`
	Type          TaskType     `json:"type"`
	Action        ActionType   `json:"action"`
	Title         string       `json:"title"`
	CustomerID    int          `json:"customerId"`
	CustomerName  string       `json:"customerName"`
	CustomerPhone string       `json:"customerPhone"`
	Date          string       `json:"date"` // YYYY-MM-DD
	Time          string       `json:"time"` // HH:MM
	Duration      int          `json:"duration"` // minutes
	Status        TaskStatus   `json:"status"`
	Priority      TaskPriority `json:"priority"`
	Source        TaskSource   `json:"source"`
	RuleID        *int         `json:"ruleId"`
	AIReason      string       `json:"aiReason"`
	PolicyNo      string       `json:"policyNo"`
	CreatedAt     string       `json:"createdAt"`
	CompletedAt   string       `json:"completedAt,omitempty"`
	ResultMessage string       `json:"resultMessage,omitempty"`
}

// ActivityKind categorizes activity feed entries.
type ActivityKind string

const (
	ActivityCreated   ActivityKind = "created"
	ActivityCompleted ActivityKind = "completed"
	ActivityFailed    ActivityKind = "failed"
	ActivityApproved  ActivityKind = "approved"
	ActivityRejected  ActivityKind = "rejected"
)

// ActivityEntry is one line of the reverse-chronological activity feed.
// TaskID is a weak reference; the entry never holds the task itself.
type ActivityEntry struct {
	ID      int          `json:"id"`
	Kind    ActivityKind `json:"kind"`
	Message string       `json:"message"`
	TaskID  *int         `json:"taskId,omitempty"`
	Time    time.Time    `json:"time"`
}

// AgentStats summarizes the task store for the dashboard header.
type AgentStats struct {
	Total          int `json:"total"`
	Pending        int `json:"pending"`
	Scheduled      int `json:"scheduled"`
	Running        int `json:"running"`
	Completed      int `json:"completed"`
	CompletedToday int `json:"completedToday"`
	Failed         int `json:"failed"`
	TodayTasks     int `json:"todayTasks"`
	SuccessRate    int `json:"successRate"`
}
