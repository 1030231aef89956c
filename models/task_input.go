package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 500
)

// Optional holds a value together with whether its key was present in the
// request. A present key with a JSON null has Set true and the zero Value.
type Optional[T any] struct {
	Set   bool
	Value T
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{Set: true, Value: v}
}

// TaskCreate is the validated body of POST /api/tasks.
type TaskCreate struct {
	Title       string     `json:"title" validate:"notblank,max=255"`
	Description *string    `json:"description"`
	Status      TaskStatus `json:"status" validate:"oneof=pending in_progress completed"`
	DueDate     *time.Time `json:"due_date"`
}

// TaskUpdate is the validated body of PUT /api/tasks/{id}. Only fields with
// Set are written.
type TaskUpdate struct {
	Title       Optional[string]
	Description Optional[*string]
	Status      Optional[TaskStatus]
	DueDate     Optional[*time.Time]
}

// IsEmpty reports whether no field was supplied.
func (u TaskUpdate) IsEmpty() bool {
	return !u.Title.Set && !u.Description.Set && !u.Status.Set && !u.DueDate.Set
}

// Changes maps column names to the supplied values. Nulls become untyped nil
// so the store writes NULL.
func (u TaskUpdate) Changes() map[string]interface{} {
	changes := make(map[string]interface{})
	if u.Title.Set {
		changes["title"] = u.Title.Value
	}
	if u.Description.Set {
		if u.Description.Value == nil {
			changes["description"] = nil
		} else {
			changes["description"] = *u.Description.Value
		}
	}
	if u.Status.Set {
		changes["status"] = string(u.Status.Value)
	}
	if u.DueDate.Set {
		if u.DueDate.Value == nil {
			changes["due_date"] = nil
		} else {
			changes["due_date"] = *u.DueDate.Value
		}
	}
	return changes
}

// TaskListParams are the paging parameters of GET /api/tasks.
type TaskListParams struct {
	Skip  int `form:"skip" validate:"min=0"`
	Limit int `form:"limit" validate:"min=1,max=500"`
}

func DefaultTaskListParams() TaskListParams {
	return TaskListParams{Skip: 0, Limit: DefaultListLimit}
}

func (p TaskListParams) Validate() error {
	ve := &ValidationError{}
	collect(ve, validate.Struct(p))
	return ve.errOrNil()
}

// ParseTaskListParams reads skip and limit from a query string, applying
// defaults for absent keys. Out-of-range values are rejected, never clamped.
func ParseTaskListParams(query url.Values) (TaskListParams, error) {
	params := DefaultTaskListParams()
	ve := &ValidationError{}

	if query.Has("skip") {
		if n, err := strconv.Atoi(strings.TrimSpace(query.Get("skip"))); err != nil {
			ve.Add("skip", "must be an integer")
		} else {
			params.Skip = n
		}
	}
	if query.Has("limit") {
		if n, err := strconv.Atoi(strings.TrimSpace(query.Get("limit"))); err != nil {
			ve.Add("limit", "must be an integer")
		} else {
			params.Limit = n
		}
	}

	collect(ve, validate.Struct(params))
	return params, ve.errOrNil()
}

// DecodeTaskCreate parses and validates a create body. The title is trimmed
// before its rules are checked and status defaults to pending.
func DecodeTaskCreate(body []byte) (TaskCreate, error) {
	fields, err := decodeObject(body)
	if err != nil {
		return TaskCreate{}, err
	}

	ve := &ValidationError{}
	input := TaskCreate{Status: StatusPending}

	if raw, ok := fields["title"]; !ok || isNull(raw) {
		ve.Add("title", "field required")
	} else if title, ok := decodeString(ve, "title", raw); ok {
		input.Title = strings.TrimSpace(title)
	}

	if raw, ok := fields["description"]; ok {
		input.Description = decodeNullableString(ve, "description", raw)
	}

	if raw, ok := fields["status"]; ok {
		if status, ok := decodeStatus(ve, raw); ok {
			input.Status = status
		}
	}

	if raw, ok := fields["due_date"]; ok {
		input.DueDate = decodeTimestamp(ve, "due_date", raw)
	}

	collect(ve, validate.Struct(input))
	return input, ve.errOrNil()
}

// DecodeTaskUpdate parses and validates an update body, recording which keys
// were present.
func DecodeTaskUpdate(body []byte) (TaskUpdate, error) {
	fields, err := decodeObject(body)
	if err != nil {
		return TaskUpdate{}, err
	}

	ve := &ValidationError{}
	var input TaskUpdate

	if raw, ok := fields["title"]; ok {
		if isNull(raw) {
			ve.Add("title", "must not be null")
		} else if title, ok := decodeString(ve, "title", raw); ok {
			title = strings.TrimSpace(title)
			checkVar(ve, "title", title, "notblank,max=255")
			input.Title = Some(title)
		}
	}

	if raw, ok := fields["description"]; ok {
		input.Description = Some(decodeNullableString(ve, "description", raw))
	}

	if raw, ok := fields["status"]; ok {
		if status, ok := decodeStatus(ve, raw); ok {
			input.Status = Some(status)
		}
	}

	if raw, ok := fields["due_date"]; ok {
		input.DueDate = Some(decodeTimestamp(ve, "due_date", raw))
	}

	return input, ve.errOrNil()
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

// ParseTimestamp accepts RFC 3339 timestamps, naive date-times (read as UTC)
// and bare dates (midnight UTC).
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid timestamp %q", value)
}

func decodeObject(body []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return nil, &ValidationError{Errors: []FieldError{{Field: "body", Message: "must be a JSON object"}}}
	}
	return fields, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func decodeString(ve *ValidationError, field string, raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		ve.Add(field, "must be a string")
		return "", false
	}
	return s, true
}

func decodeNullableString(ve *ValidationError, field string, raw json.RawMessage) *string {
	if isNull(raw) {
		return nil
	}
	s, ok := decodeString(ve, field, raw)
	if !ok {
		return nil
	}
	return &s
}

func decodeStatus(ve *ValidationError, raw json.RawMessage) (TaskStatus, bool) {
	if isNull(raw) {
		ve.Add("status", "must not be null")
		return "", false
	}
	s, ok := decodeString(ve, "status", raw)
	if !ok {
		return "", false
	}
	status := TaskStatus(s)
	if !status.IsValid() {
		checkVar(ve, "status", s, "oneof=pending in_progress completed")
		return "", false
	}
	return status, true
}

func decodeTimestamp(ve *ValidationError, field string, raw json.RawMessage) *time.Time {
	if isNull(raw) {
		return nil
	}
	s, ok := decodeString(ve, field, raw)
	if !ok {
		return nil
	}
	t, err := ParseTimestamp(s)
	if err != nil {
		ve.Add(field, "must be an ISO 8601 timestamp")
		return nil
	}
	return &t
}
