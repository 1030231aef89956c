package broker

import "strings"

const (
	DefaultSubjectPrefix = "taskman"
	TaskEntity           = "task"
)

// Subject joins the configured prefix and an event type, e.g.
// "taskman.task.created".
func Subject(prefix string, event EventType) string {
	prefix = strings.Trim(prefix, ".")
	if prefix == "" {
		return string(event)
	}
	return prefix + "." + string(event)
}

// TaskSubjects lists every subject the task service publishes on.
func TaskSubjects(prefix string) []string {
	return []string{
		Subject(prefix, TaskCreated),
		Subject(prefix, TaskUpdated),
		Subject(prefix, TaskDeleted),
	}
}
