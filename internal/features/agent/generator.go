package agent

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"

	"go-agency/internal/features/customer"
)

const dateLayout = "2006-01-02"

// Generator synthesizes the agent's task list. Randomness and the clock
// are injected so tests can fix both.
type Generator struct {
	rnd *rand.Rand
	now func() time.Time
}

func NewGenerator(rnd *rand.Rand, now func() time.Time) *Generator {
	return &Generator{rnd: rnd, now: now}
}

const (
	taskCount  = 75
	windowDays = 90
)

// taskTypeFor maps a generation index to its task type bucket.
func taskTypeFor(i int) TaskType {
	switch {
	case i < 15:
		return TypeBirthday
	case i < 27:
		return TypeOccasion
	case i < 42:
		return TypeSurvey
	case i < 58:
		return TypeCrossSell
	default:
		return TypeFamilyTSS
	}
}

// Generate produces the full task list over a 90-day window starting one
// month before today, sorted by (date, time), and back-fills the activity
// log with the outcomes of already-finished tasks.
func (g *Generator) Generate(roster []customer.Customer, log *ActivityLog) []Task {
	today := g.now().Format(dateLayout)
	windowStart := g.now().AddDate(0, -1, 0)

	tasks := make([]Task, 0, taskCount)
	for i := 0; i < taskCount; i++ {
		taskType := taskTypeFor(i)
		cust := roster[i%len(roster)]

		date := windowStart.AddDate(0, 0, g.rnd.Intn(windowDays))
		dateStr := date.Format(dateLayout)

		status := g.drawStatus(dateStr, today)
		actions := typeActions[taskType]
		action := actions[g.rnd.Intn(len(actions))]
		titles := typeTitles[taskType]

		task := Task{
			ID:            i + 1,
			Type:          taskType,
			Action:        action,
			Title:         titles[g.rnd.Intn(len(titles))],
			CustomerID:    cust.ID,
			CustomerName:  cust.Name,
			CustomerPhone: cust.Phone,
			Date:          dateStr,
			Time:          timeSlots[g.rnd.Intn(len(timeSlots))],
			Duration:      typeDurations[taskType],
			Status:        status,
			Priority:      g.drawPriority(taskType),
			Source:        SourceAuto,
			AIReason:      g.buildReason(taskType, cust),
			PolicyNo:      g.buildPolicyNo(taskType),
			CreatedAt:     date.AddDate(0, 0, -(1 + g.rnd.Intn(7))).Format(dateLayout),
		}

		if status == StatusCompleted || status == StatusFailed {
			task.CompletedAt = dateStr + " " + timeSlots[g.rnd.Intn(len(timeSlots))]
			if status == StatusCompleted {
				task.ResultMessage = actionResults[action]
			} else {
				task.ResultMessage = failureReasons[g.rnd.Intn(len(failureReasons))]
			}
		}

		tasks = append(tasks, task)
	}

	// Lexicographic compare works because both fields are zero-padded.
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].Date != tasks[j].Date {
			return tasks[i].Date < tasks[j].Date
		}
		return tasks[i].Time < tasks[j].Time
	})

	g.backfillActivity(tasks, log)
	return tasks
}

// drawStatus picks a status conditioned on where the date falls relative
// to today.
func (g *Generator) drawStatus(date, today string) TaskStatus {
	r := g.rnd.Float64()
	switch {
	case date < today:
		switch {
		case r < 0.55:
			return StatusCompleted
		case r < 0.70:
			return StatusFailed
		case r < 0.80:
			return StatusRejected
		default:
			// same outcome as the first branch; effective split 75/15/10
			return StatusCompleted
		}
	case date == today:
		switch {
		case r < 0.30:
			return StatusRunning
		case r < 0.50:
			return StatusScheduled
		case r < 0.70:
			return StatusPendingApproval
		default:
			return StatusCompleted
		}
	default:
		if r < 0.45 {
			return StatusPendingApproval
		}
		return StatusScheduled
	}
}

func (g *Generator) drawPriority(taskType TaskType) TaskPriority {
	p := typeBasePriority[taskType]
	if p < PriorityUrgent && g.rnd.Float64() < 0.25 {
		p++
	}
	return p
}

func (g *Generator) buildPolicyNo(taskType TaskType) string {
	if taskType != TypeCrossSell && taskType != TypeFamilyTSS {
		return ""
	}
	prefix := policyPrefixes[g.rnd.Intn(len(policyPrefixes))]
	return fmt.Sprintf("%s-%06d", prefix, g.rnd.Intn(1000000))
}

func (g *Generator) buildReason(taskType TaskType, cust customer.Customer) string {
	templates := typeReasons[taskType]
	tpl := templates[g.rnd.Intn(len(templates))]

	brans := "Trafik"
	if len(cust.Products) > 0 {
		brans = cust.Products[0]
	}

	return strings.NewReplacer(
		"{name}", cust.Name,
		"{date}", cust.BirthDate,
		"{days}", strconv.Itoa(10+g.rnd.Intn(21)),
		"{brans}", brans,
	).Replace(tpl)
}

// backfillActivity seeds the feed: one entry per finished task, then a
// "created" entry for each of the 5 chronologically last tasks.
func (g *Generator) backfillActivity(tasks []Task, log *ActivityLog) {
	for i := range tasks {
		t := tasks[i]
		switch t.Status {
		case StatusCompleted:
			log.Record(ActivityCompleted, fmt.Sprintf("\"%s\" gorevi tamamlandi (%s)", t.Title, t.CustomerName), &t.ID)
		case StatusFailed:
			log.Record(ActivityFailed, fmt.Sprintf("\"%s\" gorevi basarisiz: %s", t.Title, t.ResultMessage), &t.ID)
		}
	}

	start := len(tasks) - 5
	if start < 0 {
		start = 0
	}
	for i := start; i < len(tasks); i++ {
		t := tasks[i]
		log.Record(ActivityCreated, fmt.Sprintf("Yeni gorev olusturuldu: \"%s\" (%s)", t.Title, t.CustomerName), &t.ID)
	}
}
