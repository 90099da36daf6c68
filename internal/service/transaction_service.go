package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/money-manager/internal/operator/actions"
	"github.com/carson-networks/money-manager/internal/storage"
	"github.com/carson-networks/money-manager/internal/storage/transaction"
)

// EditWindow is how long after creation a transaction stays editable.
const EditWindow = 12 * time.Hour

// recentHistoryLimit caps the unfiltered history query.
const recentHistoryLimit = 200

// TransactionService handles transaction business logic: validation, the
// edit-window gate, and the aggregation queries.
type TransactionService struct {
	storage   *storage.Storage
	processor Processor
	loc       *time.Location
	now       func() time.Time
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, processor Processor, loc *time.Location) *TransactionService {
	if loc == nil {
		loc = time.Local
	}
	return &TransactionService{
		storage:   store,
		processor: processor,
		loc:       loc,
		now:       time.Now,
	}
}

// AddTransaction validates and records an income/expense entry. Validation
// failures never reach the ledger; the log write and the balance update
// share one storage transaction.
func (s *TransactionService) AddTransaction(ctx context.Context, ownerID uuid.UUID, input NewTransaction) (*Transaction, error) {
	if !input.Kind.Valid() {
		return nil, newValidationError("type", "must be income or expense")
	}
	if !input.Amount.IsPositive() {
		return nil, newValidationError("amount", "must be a positive number")
	}
	if !input.Category.Valid() {
		return nil, newValidationError("category", "unknown category")
	}
	if !input.Division.Valid() {
		return nil, newValidationError("division", "unknown division")
	}
	if input.AccountName == "" {
		return nil, newValidationError("account", "required")
	}
	if input.OccurredAt.IsZero() {
		return nil, newValidationError("dateTime", "required")
	}

	action := &actions.RecordTransaction{
		Create: transaction.TransactionCreate{
			OwnerID:     ownerID,
			Kind:        string(input.Kind),
			Amount:      input.Amount,
			Category:    string(input.Category),
			Division:    string(input.Division),
			Description: input.Description,
			OccurredAt:  input.OccurredAt,
			AccountName: input.AccountName,
		},
	}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, err
	}

	created := transactionFromStorage(action.Result)
	return &created, nil
}

// EditTransaction applies a partial patch to an owned transaction, gated by
// the edit window, and reconciles the affected account balances.
func (s *TransactionService) EditTransaction(ctx context.Context, ownerID, id uuid.UUID, patch TransactionPatch) (*Transaction, error) {
	existing, err := s.storage.Transactions.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrTransactionNotFound
	}
	if !s.editableAt(existing.CreatedAt) {
		return nil, ErrEditWindowExpired
	}

	if patch.Amount != nil && !patch.Amount.IsPositive() {
		return nil, newValidationError("amount", "must be a positive number")
	}
	if patch.Category != nil && !patch.Category.Valid() {
		return nil, newValidationError("category", "unknown category")
	}
	if patch.Division != nil && !patch.Division.Valid() {
		return nil, newValidationError("division", "unknown division")
	}
	if patch.AccountName != nil && *patch.AccountName == "" {
		return nil, newValidationError("account", "must not be empty")
	}

	action := &actions.EditTransaction{
		OwnerID:       ownerID,
		TransactionID: id,
		Patch: actions.TransactionPatch{
			Amount:      patch.Amount,
			Category:    (*string)(patch.Category),
			Division:    (*string)(patch.Division),
			Description: patch.Description,
			OccurredAt:  patch.OccurredAt,
			AccountName: patch.AccountName,
		},
	}
	if err := s.processor.Process(ctx, action); err != nil {
		if errors.Is(err, actions.ErrTransactionMissing) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}

	updated := transactionFromStorage(action.Result)
	return &updated, nil
}

// CanEdit reports whether the transaction is still inside the edit window.
func (s *TransactionService) CanEdit(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	existing, err := s.storage.Transactions.FindByID(ctx, ownerID, id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, ErrTransactionNotFound
	}
	return s.editableAt(existing.CreatedAt), nil
}

// editableAt is the edit-window predicate: editable while the age since
// record creation has not exceeded EditWindow.
func (s *TransactionService) editableAt(createdAt time.Time) bool {
	return s.now().Sub(createdAt) <= EditWindow
}

// ListTransactions returns the owner's most recent history, capped at 200
// entries, most recent event first.
func (s *TransactionService) ListTransactions(ctx context.Context, ownerID uuid.UUID) ([]Transaction, error) {
	rows, err := s.storage.Transactions.List(ctx, ownerID, &transaction.TransactionFilter{
		Limit: recentHistoryLimit,
	})
	if err != nil {
		return nil, err
	}
	return transactionsFromStorage(rows), nil
}

// MonthlySummary aggregates the given calendar month.
func (s *TransactionService) MonthlySummary(ctx context.Context, ownerID uuid.UUID, year, month int) (*Summary, error) {
	if year < 1 {
		return nil, newValidationError("year", "valid year required")
	}
	if month < 1 || month > 12 {
		return nil, newValidationError("month", "must be between 1 and 12")
	}

	start, end := monthWindow(year, month, s.loc)
	return s.summaryBetween(ctx, ownerID, start, end)
}

// WeeklySummary aggregates the given ISO week.
func (s *TransactionService) WeeklySummary(ctx context.Context, ownerID uuid.UUID, year, week int) (*Summary, error) {
	if year < 1 {
		return nil, newValidationError("year", "valid year required")
	}
	if week < 1 || week > 53 {
		return nil, newValidationError("week", "must be between 1 and 53")
	}

	start, end := weekWindow(year, week, s.loc)
	return s.summaryBetween(ctx, ownerID, start, end)
}

// YearlySummary aggregates the given calendar year.
func (s *TransactionService) YearlySummary(ctx context.Context, ownerID uuid.UUID, year int) (*Summary, error) {
	if year < 1 {
		return nil, newValidationError("year", "valid year required")
	}

	start, end := yearWindow(year, s.loc)
	return s.summaryBetween(ctx, ownerID, start, end)
}

// TransactionQuery is the optional predicate set of the filter query. A To
// bound is extended through the end of its day.
type TransactionQuery struct {
	Category *Category
	Division *Division
	From     *time.Time
	To       *time.Time
}

// FilterSummary aggregates transactions matching the optional predicates.
func (s *TransactionService) FilterSummary(ctx context.Context, ownerID uuid.UUID, query TransactionQuery) (*Summary, error) {
	filter := &transaction.TransactionFilter{
		Category: (*string)(query.Category),
		Division: (*string)(query.Division),
		From:     query.From,
	}
	if query.To != nil {
		to := endOfDay(*query.To, s.loc)
		filter.To = &to
	}

	rows, err := s.storage.Transactions.List(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}

	summary := summarize(transactionsFromStorage(rows))
	return &summary, nil
}

// CategorySummary totals the owner's expenses per category over an optional
// range, sorted by total descending.
func (s *TransactionService) CategorySummary(ctx context.Context, ownerID uuid.UUID, from, to *time.Time) ([]CategoryTotal, error) {
	kind := transaction.KindExpense
	filter := &transaction.TransactionFilter{
		Kind: &kind,
		From: from,
	}
	if to != nil {
		bounded := endOfDay(*to, s.loc)
		filter.To = &bounded
	}

	rows, err := s.storage.Transactions.List(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}

	return categoryTotals(transactionsFromStorage(rows)), nil
}

func (s *TransactionService) summaryBetween(ctx context.Context, ownerID uuid.UUID, start, end time.Time) (*Summary, error) {
	rows, err := s.storage.Transactions.List(ctx, ownerID, &transaction.TransactionFilter{
		From: &start,
		To:   &end,
	})
	if err != nil {
		return nil, err
	}

	summary := summarize(transactionsFromStorage(rows))
	return &summary, nil
}
