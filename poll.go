package heuristmesh

import (
	"context"
	"time"
)

const (
	// DefaultPollInterval is the sleep between QueryTask calls in WaitForTask.
	DefaultPollInterval = 1 * time.Second
	// DefaultMaxPolls bounds WaitForTask to a finite number of round trips.
	DefaultMaxPolls = 60
)

// WaitOptions configures the WaitForTask poll loop.
type WaitOptions struct {
	// PollInterval is the sleep between consecutive status polls.
	PollInterval time.Duration

	// MaxPolls caps the number of QueryTask calls before giving up with
	// ErrWaitTimeout.
	MaxPolls int

	// OnPoll, when set, receives every status snapshot as it arrives, e.g.
	// to surface reasoning steps while the task runs.
	OnPoll func(status *TaskStatus)
}

// WaitForTask polls a task until it reaches a terminal status, implementing
// the documented call-sleep-repeat pattern. It returns the terminal snapshot,
// or fails with the first QueryTask error, with ctx.Err() on cancellation, or
// with ErrWaitTimeout once MaxPolls is exhausted. The client itself keeps no
// schedule; each iteration is an independent blocking round trip.
func (c *Client) WaitForTask(ctx context.Context, agentID, taskID string, optFns ...func(o *WaitOptions)) (*TaskStatus, error) {
	opts := WaitOptions{
		PollInterval: DefaultPollInterval,
		MaxPolls:     DefaultMaxPolls,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	for i := 0; i < opts.MaxPolls; i++ {
		status, err := c.QueryTask(ctx, agentID, taskID)
		if err != nil {
			return nil, err
		}

		if opts.OnPoll != nil {
			opts.OnPoll(status)
		}

		if status.Done() {
			return status, nil
		}

		select {
		case <-ctx.Done():
			return status, ctx.Err()
		case <-time.After(opts.PollInterval):
		}
	}

	return nil, ErrWaitTimeout
}
