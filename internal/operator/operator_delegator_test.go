package operator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/money-manager/internal/storage"
)

// stubTx counts commit/rollback calls in place of a database transaction.
type stubTx struct {
	commits   int
	rollbacks int
	commitErr error
}

func (s *stubTx) Commit(context.Context) error {
	s.commits++
	return s.commitErr
}

func (s *stubTx) Rollback(context.Context) error {
	s.rollbacks++
	return nil
}

// stubWriterSource hands out writers bound to a stub transaction.
type stubWriterSource struct {
	tx       *stubTx
	writeErr error
}

func (s *stubWriterSource) Write(context.Context) (*storage.Writer, error) {
	if s.writeErr != nil {
		return nil, s.writeErr
	}
	return &storage.Writer{Tx: s.tx}, nil
}

// stubAction records whether it ran and fails on demand.
type stubAction struct {
	performErr error
	performed  int
}

func (a *stubAction) Perform(context.Context, *storage.Writer) error {
	a.performed++
	return a.performErr
}

func newTestDelegator(t *testing.T, source *stubWriterSource) *OperatorDelegator {
	t.Helper()
	delegator := NewOperatorDelegator(source, 1)
	delegator.Start()
	t.Cleanup(delegator.Stop)
	return delegator
}

func TestProcess_CommitsOnSuccess(t *testing.T) {
	tx := &stubTx{}
	delegator := newTestDelegator(t, &stubWriterSource{tx: tx})

	action := &stubAction{}
	err := delegator.Process(context.Background(), action)

	assert.NoError(t, err)
	assert.Equal(t, 1, action.performed)
	assert.Equal(t, 1, tx.commits)
	assert.Zero(t, tx.rollbacks)
}

func TestProcess_RollsBackOnActionError(t *testing.T) {
	tx := &stubTx{}
	delegator := newTestDelegator(t, &stubWriterSource{tx: tx})

	performErr := errors.New("balance update failed")
	action := &stubAction{performErr: performErr}
	err := delegator.Process(context.Background(), action)

	assert.ErrorIs(t, err, performErr)
	assert.Equal(t, 1, tx.rollbacks)
	assert.Zero(t, tx.commits)
}

func TestProcess_SurfacesCommitError(t *testing.T) {
	commitErr := errors.New("serialization failure")
	tx := &stubTx{commitErr: commitErr}
	delegator := newTestDelegator(t, &stubWriterSource{tx: tx})

	err := delegator.Process(context.Background(), &stubAction{})

	assert.ErrorIs(t, err, commitErr)
	assert.Equal(t, 1, tx.commits)
}

func TestProcess_SurfacesWriteError(t *testing.T) {
	writeErr := errors.New("connection refused")
	delegator := newTestDelegator(t, &stubWriterSource{writeErr: writeErr})

	action := &stubAction{}
	err := delegator.Process(context.Background(), action)

	assert.ErrorIs(t, err, writeErr)
	assert.Zero(t, action.performed)
}

func TestProcess_ContextCancelled(t *testing.T) {
	// No workers running, so nothing ever answers and only the caller's
	// context can unblock Process.
	delegator := NewOperatorDelegator(&stubWriterSource{tx: &stubTx{}}, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := delegator.Process(ctx, &stubAction{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
