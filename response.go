package heuristmesh

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Sync invocation statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Task statuses reported by the query endpoint.
const (
	TaskInProgress = "in_progress"
	TaskFinished   = "finished"
	TaskError      = "error"
)

// SyncResponse is the immediate result of SyncRequest.
type SyncResponse struct {
	// Result holds the agent's response payload. Its shape depends on the
	// agent and on whether raw_data_only was requested.
	Result map[string]any `json:"result,omitempty"`

	// Status is StatusSuccess or StatusError.
	Status string `json:"status"`

	// Message carries an optional human readable note, typically on error.
	Message string `json:"message,omitempty"`
}

// Task is the handle returned by CreateTask. It exists only server-side;
// the client never destroys it.
type Task struct {
	TaskID string `json:"task_id"`
	Msg    string `json:"msg,omitempty"`
}

// ReasoningStep is one entry of the agent's intermediate reasoning trace,
// exposed while a task is in progress.
type ReasoningStep struct {
	Timestamp int64  `json:"timestamp"`
	Content   string `json:"content"`
	IsSent    bool   `json:"is_sent"`
}

// TaskResult is the final payload of a finished task.
type TaskResult struct {
	Response any  `json:"response"`
	Success  bool `json:"success"`
}

// UnmarshalJSON tolerates the sequencer sending success as either a JSON
// bool or the strings "true"/"True".
func (r *TaskResult) UnmarshalJSON(data []byte) error {
	var raw struct {
		Response any             `json:"response"`
		Success  json.RawMessage `json:"success"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Response = raw.Response
	r.Success = false

	if len(raw.Success) == 0 || string(raw.Success) == "null" {
		return nil
	}

	var b bool
	if err := json.Unmarshal(raw.Success, &b); err == nil {
		r.Success = b
		return nil
	}

	var s string
	if err := json.Unmarshal(raw.Success, &s); err == nil {
		r.Success = strings.EqualFold(s, "true")
		return nil
	}

	return fmt.Errorf("success is neither bool nor string: %s", raw.Success)
}

// TaskStatus is a snapshot of an asynchronous task, produced fresh on every
// QueryTask call and never cached.
type TaskStatus struct {
	// Status is TaskInProgress, TaskFinished or TaskError.
	Status string `json:"status"`

	// ReasoningSteps lists intermediate reasoning in order, when available.
	ReasoningSteps []ReasoningStep `json:"reasoning_steps,omitempty"`

	// Result is set once the task finished.
	Result *TaskResult `json:"result,omitempty"`
}

// Done reports whether the task reached a terminal status.
func (s *TaskStatus) Done() bool {
	return s.Status == TaskFinished || s.Status == TaskError
}
