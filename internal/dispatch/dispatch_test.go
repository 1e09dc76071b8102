package dispatch

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"JobLane-client/internal/api"
)

// recordingReducer collects every action in arrival order.
type recordingReducer struct {
	mu      sync.Mutex
	actions []Action
}

func (r *recordingReducer) Reduce(act Action) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.actions = append(r.actions, act)
}

func (r *recordingReducer) all() []Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Action, len(r.actions))
	copy(out, r.actions)
	return out
}

func TestDispatch_PendingThenFulfilled(t *testing.T) {
	rec := &recordingReducer{}
	d := New(rec)

	done := d.Dispatch(context.Background(), "employer/fetchJobs", func(ctx context.Context) (any, error) {
		return "payload", nil
	})
	terminal := <-done

	actions := rec.all()
	require.Len(t, actions, 2)

	assert.Equal(t, Pending, actions[0].Phase)
	assert.Equal(t, "employer/fetchJobs", actions[0].Type)
	assert.Nil(t, actions[0].Payload)

	assert.Equal(t, Fulfilled, actions[1].Phase)
	assert.Equal(t, "payload", actions[1].Payload)
	assert.Equal(t, actions[0].Seq, actions[1].Seq)

	assert.Equal(t, actions[1], terminal)
}

func TestDispatch_PendingEmittedBeforeReturn(t *testing.T) {
	rec := &recordingReducer{}
	d := New(rec)

	block := make(chan struct{})
	done := d.Dispatch(context.Background(), "auth/login", func(ctx context.Context) (any, error) {
		<-block
		return nil, nil
	})

	// the pending phase is visible before the call completes
	actions := rec.all()
	require.Len(t, actions, 1)
	assert.Equal(t, Pending, actions[0].Phase)

	close(block)
	<-done
}

func TestDispatch_RejectedCarriesAPIError(t *testing.T) {
	rec := &recordingReducer{}
	d := New(rec)

	want := &api.Error{Kind: api.KindValidation, Status: 400, Message: "title must be provided"}
	terminal := <-d.Dispatch(context.Background(), "employer/createJob", func(ctx context.Context) (any, error) {
		return nil, want
	})

	assert.Equal(t, Rejected, terminal.Phase)
	require.NotNil(t, terminal.Err)
	assert.Equal(t, want, terminal.Err)
}

func TestDispatch_RejectedWrapsPlainError(t *testing.T) {
	rec := &recordingReducer{}
	d := New(rec)

	terminal := <-d.Dispatch(context.Background(), "auth/me", func(ctx context.Context) (any, error) {
		return nil, errors.New("connection refused")
	})

	require.NotNil(t, terminal.Err)
	assert.Equal(t, api.KindNetwork, terminal.Err.Kind)
	assert.Equal(t, "connection refused", terminal.Err.Message)
}

func TestDispatch_SeqMonotonicPerType(t *testing.T) {
	rec := &recordingReducer{}
	d := New(rec)

	noop := func(ctx context.Context) (any, error) { return nil, nil }

	first := <-d.Dispatch(context.Background(), "jobSeeker/searchJobs", noop)
	second := <-d.Dispatch(context.Background(), "jobSeeker/searchJobs", noop)
	other := <-d.Dispatch(context.Background(), "jobSeeker/fetchResumes", noop)

	assert.Equal(t, uint64(1), first.Seq)
	assert.Equal(t, uint64(2), second.Seq)
	// each type counts independently
	assert.Equal(t, uint64(1), other.Seq)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "pending", Pending.String())
	assert.Equal(t, "fulfilled", Fulfilled.String())
	assert.Equal(t, "rejected", Rejected.String())
}
