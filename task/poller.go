package task

import (
	"context"
	"fmt"
	"time"
)

// Default polling budget. Sixty attempts two seconds apart give a task two
// minutes to finish before the poller gives up.
const (
	DefaultMaxAttempts = 60
	DefaultInterval    = 2 * time.Second
)

// StatusFunc fetches one status snapshot for a task. Implementations are
// provided by the API client; the poller never builds requests itself.
type StatusFunc func(ctx context.Context, taskID string) (Status, error)

// SleepFunc suspends the caller for d. It is the single point where the
// poller touches the scheduler, so callers choose how waiting happens: a
// plain time.Sleep, a context-aware timer, or an instant no-op in tests.
type SleepFunc func(ctx context.Context, d time.Duration) error

// WaitContext sleeps on a timer but wakes early when ctx is done, returning
// the context's error. It is the default suspension for tool calls, which
// run under agent-imposed deadlines.
func WaitContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// WaitBlocking sleeps unconditionally, ignoring ctx. It exists for plain
// synchronous callers with no cancellation source.
func WaitBlocking(_ context.Context, d time.Duration) error {
	time.Sleep(d)
	return nil
}

// FailedError reports a task the provider marked as failed. Failure is
// terminal: the poller never retries past it.
type FailedError struct {
	TaskID string
	Reason string
}

func (e *FailedError) Error() string {
	return fmt.Sprintf("task %s failed: %s", e.TaskID, e.Reason)
}

// TimeoutError reports a task still pending after the full polling budget.
type TimeoutError struct {
	TaskID   string
	Attempts int
	Interval time.Duration
}

func (e *TimeoutError) Error() string {
	budget := time.Duration(e.Attempts) * e.Interval
	return fmt.Sprintf("task %s did not complete within %s", e.TaskID, budget)
}

// Poller repeatedly fetches a task's status until it reaches a terminal
// state or the attempt budget runs out. The zero value polls with the
// defaults and a context-aware sleep.
type Poller struct {
	// MaxAttempts is the number of status fetches before giving up.
	// Non-positive values fall back to DefaultMaxAttempts.
	MaxAttempts int
	// Interval is the pause between attempts. Non-positive values fall
	// back to DefaultInterval.
	Interval time.Duration
	// Sleep performs the pause. Nil falls back to WaitContext.
	Sleep SleepFunc
}

// Poll drives fetch until the task completes, fails, errors, or exhausts
// the attempt budget.
//
// A completed snapshot is returned as-is. A failed snapshot becomes a
// *FailedError carrying the provider's message, or "Unknown error" when the
// provider gave none. A fetch error aborts immediately; transport problems
// are not retried here. After every pending snapshot the poller sleeps one
// interval, including after the final attempt, so a full run occupies
// MaxAttempts whole intervals before the *TimeoutError.
func (p Poller) Poll(ctx context.Context, fetch StatusFunc, taskID string) (Status, error) {
	attempts := p.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	sleep := p.Sleep
	if sleep == nil {
		sleep = WaitContext
	}

	for i := 0; i < attempts; i++ {
		status, err := fetch(ctx, taskID)
		if err != nil {
			return Status{}, fmt.Errorf("fetching status for task %s: %w", taskID, err)
		}
		switch status.State {
		case StateCompleted:
			return status, nil
		case StateFailed:
			reason := status.Error
			if reason == "" {
				reason = "Unknown error"
			}
			return Status{}, &FailedError{TaskID: taskID, Reason: reason}
		}
		if err := sleep(ctx, interval); err != nil {
			return Status{}, fmt.Errorf("waiting on task %s: %w", taskID, err)
		}
	}
	return Status{}, &TimeoutError{TaskID: taskID, Attempts: attempts, Interval: interval}
}
