package model

import (
	"strings"
	"time"
)

type TaskType string

const (
	TaskTypeMeeting  TaskType = "Meeting"
	TaskTypeTraining TaskType = "Training"
	TaskTypeStudies  TaskType = "Studies"
)

// ParseTaskType matches case-insensitively.
func ParseTaskType(s string) (TaskType, bool) {
	for _, t := range []TaskType{TaskTypeMeeting, TaskTypeTraining, TaskTypeStudies} {
		if strings.EqualFold(s, string(t)) {
			return t, true
		}
	}
	return "", false
}

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

func ParsePriority(s string) (Priority, bool) {
	for _, p := range []Priority{PriorityLow, PriorityMedium, PriorityHigh} {
		if strings.EqualFold(s, string(p)) {
			return p, true
		}
	}
	return "", false
}

type Status string

const (
	StatusTodo       Status = "TODO"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

func ParseStatus(s string) (Status, bool) {
	for _, st := range []Status{StatusTodo, StatusInProgress, StatusCompleted} {
		if strings.EqualFold(s, string(st)) {
			return st, true
		}
	}
	return "", false
}

const DefaultDurationMinutes = 60

// Task is a user's persisted task. Only tasks with both scheduled bounds take part
// in overlap checks.
type Task struct {
	ID              string
	UserID          string
	Title           string
	TaskType        TaskType
	Description     string
	Status          Status
	Priority        Priority
	DurationMinutes int
	DueDate         *time.Time
	ScheduledStart  *time.Time
	ScheduledEnd    *time.Time
	CalendarEventID string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Interval returns the scheduled interval. ok is false for unscheduled,
// malformed or completed tasks.
func (t Task) Interval() (Interval, bool) {
	if t.ScheduledStart == nil || t.ScheduledEnd == nil || t.Status == StatusCompleted {
		return Interval{}, false
	}
	iv := Interval{Start: *t.ScheduledStart, End: *t.ScheduledEnd}
	return iv, iv.Valid()
}

// Subtask is a checklist item under a task. It never affects scheduling.
type Subtask struct {
	ID          string
	TaskID      string
	UserID      string
	Title       string
	Description string
	Done        bool
	CreatedAt   time.Time
}
