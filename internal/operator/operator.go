package operator

import (
	"context"

	"github.com/carson-networks/money-manager/internal/operator/actions"
	"github.com/carson-networks/money-manager/internal/storage"
)

// writerSource begins the storage transaction an action runs inside.
// Satisfied by *storage.Storage.
type writerSource interface {
	Write(ctx context.Context) (*storage.Writer, error)
}

// Operator is the worker that processes ledger write actions from the queue.
// Every action runs inside a single storage transaction: commit only when the
// whole reconciliation succeeded, rollback otherwise, so a failure can never
// leave a log entry without its balance update or vice versa.
type Operator struct {
	storage writerSource
	queue   chan ActionItem
}

func NewOperator(s writerSource, queue chan ActionItem) *Operator {
	return &Operator{
		storage: s,
		queue:   queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	writer, err := o.storage.Write(item.ctx)
	if err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err = item.action.Perform(item.ctx, writer)
	if err != nil {
		_ = writer.Rollback()
		item.response <- ActionItemResponse{err: err}
		return
	}

	if err = writer.Commit(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	item.response <- ActionItemResponse{}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
