// Package dispatch implements the async action contract: every remote
// operation emits a pending action synchronously, performs exactly one HTTP
// call, then emits a fulfilled or rejected action to the reducer.
package dispatch

import (
	"context"
	"errors"
	"sync"

	"JobLane-client/internal/api"
)

// Phase of an async action.
type Phase int

const (
	Pending Phase = iota
	Fulfilled
	Rejected
)

func (p Phase) String() string {
	switch p {
	case Pending:
		return "pending"
	case Fulfilled:
		return "fulfilled"
	case Rejected:
		return "rejected"
	}
	return "unknown"
}

// Action is one phase of one dispatched operation. Type is the stable
// resource identifier reducers correlate on ("employer/fetchJobs"). Seq is a
// per-type generation counter; reducers drop a terminal action older than
// the newest one already applied for that type, so a stale response can
// never overwrite a fresher one.
type Action struct {
	Type    string
	Phase   Phase
	Payload any
	Err     *api.Error
	Seq     uint64
}

// Reducer receives every action the dispatcher emits.
type Reducer interface {
	Reduce(Action)
}

// Dispatcher runs async actions and feeds their phases to a single reducer.
type Dispatcher struct {
	mu      sync.Mutex
	seqs    map[string]uint64
	reducer Reducer
}

// New builds a dispatcher bound to r.
func New(r Reducer) *Dispatcher {
	return &Dispatcher{
		seqs:    make(map[string]uint64),
		reducer: r,
	}
}

// Dispatch emits the pending phase synchronously, runs call on a goroutine,
// then emits the terminal phase. The returned channel yields the terminal
// action exactly once; callers that do not care may ignore it. Concurrent
// dispatches of the same type are allowed.
func (d *Dispatcher) Dispatch(ctx context.Context, actionType string, call func(context.Context) (any, error)) <-chan Action {
	d.mu.Lock()
	d.seqs[actionType]++
	seq := d.seqs[actionType]
	d.mu.Unlock()

	d.reducer.Reduce(Action{Type: actionType, Phase: Pending, Seq: seq})

	done := make(chan Action, 1)
	go func() {
		payload, err := call(ctx)

		act := Action{Type: actionType, Seq: seq}
		if err != nil {
			act.Phase = Rejected
			act.Err = asAPIError(err)
		} else {
			act.Phase = Fulfilled
			act.Payload = payload
		}

		d.reducer.Reduce(act)
		done <- act
		close(done)
	}()
	return done
}

func asAPIError(err error) *api.Error {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &api.Error{Kind: api.KindNetwork, Message: err.Error()}
}
