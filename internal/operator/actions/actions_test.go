package actions

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/money-manager/internal/storage"
	"github.com/carson-networks/money-manager/internal/storage/account"
	"github.com/carson-networks/money-manager/internal/storage/transaction"
)

// fakeAccountStore is an in-memory account.WriteStore keyed by
// (owner, name), enough to run actions end to end without a database.
type fakeAccountStore struct {
	accounts map[uuid.UUID]*account.Account
}

func newFakeAccountStore() *fakeAccountStore {
	return &fakeAccountStore{accounts: make(map[uuid.UUID]*account.Account)}
}

func (f *fakeAccountStore) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*account.Account, error) {
	var rows []*account.Account
	for _, acc := range f.accounts {
		if acc.OwnerID == ownerID {
			rows = append(rows, acc)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Name < rows[j].Name })
	return rows, nil
}

func (f *fakeAccountStore) Find(_ context.Context, ownerID uuid.UUID, name string) (*account.Account, error) {
	for _, acc := range f.accounts {
		if acc.OwnerID == ownerID && acc.Name == name {
			return acc, nil
		}
	}
	return nil, nil
}

func (f *fakeAccountStore) FindForUpdate(ctx context.Context, ownerID uuid.UUID, name string) (*account.Account, error) {
	return f.Find(ctx, ownerID, name)
}

func (f *fakeAccountStore) EnsureForUpdate(ctx context.Context, ownerID uuid.UUID, name string) (*account.Account, error) {
	existing, _ := f.Find(ctx, ownerID, name)
	if existing != nil {
		return existing, nil
	}

	acc := &account.Account{
		ID:      uuid.Must(uuid.NewV4()),
		OwnerID: ownerID,
		Name:    name,
		Balance: decimal.Zero,
	}
	f.accounts[acc.ID] = acc
	return acc, nil
}

func (f *fakeAccountStore) UpdateBalance(_ context.Context, id uuid.UUID, balance decimal.Decimal) error {
	f.accounts[id].Balance = balance
	return nil
}

// fakeTransactionStore is an in-memory transaction.WriteStore.
type fakeTransactionStore struct {
	rows map[uuid.UUID]*transaction.Transaction
}

func newFakeTransactionStore() *fakeTransactionStore {
	return &fakeTransactionStore{rows: make(map[uuid.UUID]*transaction.Transaction)}
}

func (f *fakeTransactionStore) FindByID(_ context.Context, ownerID, id uuid.UUID) (*transaction.Transaction, error) {
	row, ok := f.rows[id]
	if !ok || row.OwnerID != ownerID {
		return nil, nil
	}
	return row, nil
}

func (f *fakeTransactionStore) List(_ context.Context, ownerID uuid.UUID, _ *transaction.TransactionFilter) ([]*transaction.Transaction, error) {
	var rows []*transaction.Transaction
	for _, row := range f.rows {
		if row.OwnerID == ownerID {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (f *fakeTransactionStore) FindByIDForUpdate(ctx context.Context, ownerID, id uuid.UUID) (*transaction.Transaction, error) {
	return f.FindByID(ctx, ownerID, id)
}

func (f *fakeTransactionStore) Insert(_ context.Context, create *transaction.TransactionCreate) (*transaction.Transaction, error) {
	row := &transaction.Transaction{
		ID:          uuid.Must(uuid.NewV4()),
		OwnerID:     create.OwnerID,
		Kind:        create.Kind,
		Amount:      create.Amount,
		Category:    create.Category,
		Division:    create.Division,
		Description: create.Description,
		OccurredAt:  create.OccurredAt,
		AccountName: create.AccountName,
		CreatedAt:   time.Now().UTC(),
	}
	f.rows[row.ID] = row
	return row, nil
}

func (f *fakeTransactionStore) Update(_ context.Context, row *transaction.Transaction) error {
	updated := *row
	f.rows[row.ID] = &updated
	return nil
}

func newFakeWriter() (*storage.Writer, *fakeAccountStore, *fakeTransactionStore) {
	accounts := newFakeAccountStore()
	transactions := newFakeTransactionStore()
	return &storage.Writer{Account: accounts, Transaction: transactions}, accounts, transactions
}

func balanceOf(t *testing.T, accounts *fakeAccountStore, ownerID uuid.UUID, name string) decimal.Decimal {
	t.Helper()
	acc, err := accounts.Find(context.Background(), ownerID, name)
	require.NoError(t, err)
	require.NotNil(t, acc)
	return acc.Balance
}

func TestRecordTransaction_ExpenseReducesBalance(t *testing.T) {
	writer, accounts, _ := newFakeWriter()
	ownerID := uuid.Must(uuid.NewV4())

	seed, err := accounts.EnsureForUpdate(context.Background(), ownerID, "Cash")
	require.NoError(t, err)
	require.NoError(t, accounts.UpdateBalance(context.Background(), seed.ID, decimal.RequireFromString("100")))

	action := &RecordTransaction{
		Create: transaction.TransactionCreate{
			OwnerID:     ownerID,
			Kind:        transaction.KindExpense,
			Amount:      decimal.RequireFromString("30"),
			Category:    "Food",
			Division:    "Personal",
			OccurredAt:  time.Now(),
			AccountName: "Cash",
		},
	}

	err = action.Perform(context.Background(), writer)
	assert.NoError(t, err)
	require.NotNil(t, action.Result)
	assert.Equal(t, ownerID, action.Result.OwnerID)
	assert.False(t, action.Result.CreatedAt.IsZero())
	assert.True(t, balanceOf(t, accounts, ownerID, "Cash").Equal(decimal.RequireFromString("70")))
}

func TestRecordTransaction_IncomeCreatesAccount(t *testing.T) {
	writer, accounts, _ := newFakeWriter()
	ownerID := uuid.Must(uuid.NewV4())

	action := &RecordTransaction{
		Create: transaction.TransactionCreate{
			OwnerID:     ownerID,
			Kind:        transaction.KindIncome,
			Amount:      decimal.RequireFromString("250.50"),
			Category:    "Other",
			Division:    "Office",
			OccurredAt:  time.Now(),
			AccountName: "Bank",
		},
	}

	err := action.Perform(context.Background(), writer)
	assert.NoError(t, err)
	assert.True(t, balanceOf(t, accounts, ownerID, "Bank").Equal(decimal.RequireFromString("250.50")))
}

func TestEditTransaction_AmountChangeReconcilesBalance(t *testing.T) {
	writer, accounts, _ := newFakeWriter()
	ownerID := uuid.Must(uuid.NewV4())

	record := &RecordTransaction{
		Create: transaction.TransactionCreate{
			OwnerID:     ownerID,
			Kind:        transaction.KindExpense,
			Amount:      decimal.RequireFromString("30"),
			Category:    "Food",
			Division:    "Personal",
			OccurredAt:  time.Now(),
			AccountName: "Cash",
		},
	}
	require.NoError(t, record.Perform(context.Background(), writer))

	newAmount := decimal.RequireFromString("50")
	edit := &EditTransaction{
		OwnerID:       ownerID,
		TransactionID: record.Result.ID,
		Patch:         TransactionPatch{Amount: &newAmount},
	}

	err := edit.Perform(context.Background(), writer)
	assert.NoError(t, err)
	require.NotNil(t, edit.Result)
	assert.True(t, edit.Result.Amount.Equal(newAmount))
	// -30 reverted, -50 applied.
	assert.True(t, balanceOf(t, accounts, ownerID, "Cash").Equal(decimal.RequireFromString("-50")))
}

func TestEditTransaction_AccountMoveReconcilesBothBalances(t *testing.T) {
	writer, accounts, _ := newFakeWriter()
	ownerID := uuid.Must(uuid.NewV4())

	record := &RecordTransaction{
		Create: transaction.TransactionCreate{
			OwnerID:     ownerID,
			Kind:        transaction.KindIncome,
			Amount:      decimal.RequireFromString("80"),
			Category:    "Other",
			Division:    "Personal",
			OccurredAt:  time.Now(),
			AccountName: "Cash",
		},
	}
	require.NoError(t, record.Perform(context.Background(), writer))

	newAccount := "Bank"
	edit := &EditTransaction{
		OwnerID:       ownerID,
		TransactionID: record.Result.ID,
		Patch:         TransactionPatch{AccountName: &newAccount},
	}

	err := edit.Perform(context.Background(), writer)
	assert.NoError(t, err)
	assert.True(t, balanceOf(t, accounts, ownerID, "Cash").Equal(decimal.Zero))
	assert.True(t, balanceOf(t, accounts, ownerID, "Bank").Equal(decimal.RequireFromString("80")))
}

func TestEditTransaction_IdenticalPatchIsIdempotent(t *testing.T) {
	writer, accounts, _ := newFakeWriter()
	ownerID := uuid.Must(uuid.NewV4())

	record := &RecordTransaction{
		Create: transaction.TransactionCreate{
			OwnerID:     ownerID,
			Kind:        transaction.KindExpense,
			Amount:      decimal.RequireFromString("30"),
			Category:    "Food",
			Division:    "Personal",
			OccurredAt:  time.Now(),
			AccountName: "Cash",
		},
	}
	require.NoError(t, record.Perform(context.Background(), writer))

	newAmount := decimal.RequireFromString("45")
	newAccount := "Bank"
	patch := TransactionPatch{Amount: &newAmount, AccountName: &newAccount}

	first := &EditTransaction{
		OwnerID:       ownerID,
		TransactionID: record.Result.ID,
		Patch:         patch,
	}
	require.NoError(t, first.Perform(context.Background(), writer))

	cashAfterFirst := balanceOf(t, accounts, ownerID, "Cash")
	bankAfterFirst := balanceOf(t, accounts, ownerID, "Bank")
	stateAfterFirst := *first.Result

	second := &EditTransaction{
		OwnerID:       ownerID,
		TransactionID: record.Result.ID,
		Patch:         patch,
	}
	require.NoError(t, second.Perform(context.Background(), writer))

	// Re-applying the identical patch changes nothing: same row state,
	// same balances on both accounts.
	assert.Equal(t, stateAfterFirst, *second.Result)
	assert.True(t, balanceOf(t, accounts, ownerID, "Cash").Equal(cashAfterFirst))
	assert.True(t, balanceOf(t, accounts, ownerID, "Bank").Equal(bankAfterFirst))
}

func TestEditTransaction_UnknownTransaction(t *testing.T) {
	writer, _, _ := newFakeWriter()

	edit := &EditTransaction{
		OwnerID:       uuid.Must(uuid.NewV4()),
		TransactionID: uuid.Must(uuid.NewV4()),
	}

	err := edit.Perform(context.Background(), writer)
	assert.ErrorIs(t, err, ErrTransactionMissing)
}

func TestTransfer_MovesFunds(t *testing.T) {
	writer, accounts, _ := newFakeWriter()
	ownerID := uuid.Must(uuid.NewV4())

	seed, err := accounts.EnsureForUpdate(context.Background(), ownerID, "Cash")
	require.NoError(t, err)
	require.NoError(t, accounts.UpdateBalance(context.Background(), seed.ID, decimal.RequireFromString("100")))

	action := &Transfer{
		OwnerID:     ownerID,
		FromAccount: "Cash",
		ToAccount:   "Bank",
		Amount:      decimal.RequireFromString("40"),
	}

	err = action.Perform(context.Background(), writer)
	assert.NoError(t, err)
	assert.True(t, action.FromBalance.Equal(decimal.RequireFromString("60")))
	assert.True(t, action.ToBalance.Equal(decimal.RequireFromString("40")))
	assert.True(t, balanceOf(t, accounts, ownerID, "Cash").Equal(decimal.RequireFromString("60")))
	assert.True(t, balanceOf(t, accounts, ownerID, "Bank").Equal(decimal.RequireFromString("40")))
}

func TestTransfer_RoundTripRestoresBalances(t *testing.T) {
	writer, accounts, _ := newFakeWriter()
	ownerID := uuid.Must(uuid.NewV4())

	cash, err := accounts.EnsureForUpdate(context.Background(), ownerID, "Cash")
	require.NoError(t, err)
	require.NoError(t, accounts.UpdateBalance(context.Background(), cash.ID, decimal.RequireFromString("100")))
	bank, err := accounts.EnsureForUpdate(context.Background(), ownerID, "Bank")
	require.NoError(t, err)
	require.NoError(t, accounts.UpdateBalance(context.Background(), bank.ID, decimal.RequireFromString("25.75")))

	amount := decimal.RequireFromString("40")
	out := &Transfer{OwnerID: ownerID, FromAccount: "Cash", ToAccount: "Bank", Amount: amount}
	require.NoError(t, out.Perform(context.Background(), writer))

	back := &Transfer{OwnerID: ownerID, FromAccount: "Bank", ToAccount: "Cash", Amount: amount}
	require.NoError(t, back.Perform(context.Background(), writer))

	assert.True(t, balanceOf(t, accounts, ownerID, "Cash").Equal(decimal.RequireFromString("100")))
	assert.True(t, balanceOf(t, accounts, ownerID, "Bank").Equal(decimal.RequireFromString("25.75")))
}

func TestTransfer_Overdraw(t *testing.T) {
	writer, accounts, _ := newFakeWriter()
	ownerID := uuid.Must(uuid.NewV4())

	seed, err := accounts.EnsureForUpdate(context.Background(), ownerID, "Cash")
	require.NoError(t, err)
	require.NoError(t, accounts.UpdateBalance(context.Background(), seed.ID, decimal.RequireFromString("10")))

	action := &Transfer{
		OwnerID:     ownerID,
		FromAccount: "Cash",
		ToAccount:   "Bank",
		Amount:      decimal.RequireFromString("25"),
	}

	err = action.Perform(context.Background(), writer)
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.True(t, balanceOf(t, accounts, ownerID, "Cash").Equal(decimal.RequireFromString("10")))
}

func TestTransfer_SameAccount(t *testing.T) {
	writer, _, _ := newFakeWriter()

	action := &Transfer{
		OwnerID:     uuid.Must(uuid.NewV4()),
		FromAccount: "Cash",
		ToAccount:   "Cash",
		Amount:      decimal.RequireFromString("5"),
	}

	err := action.Perform(context.Background(), writer)
	assert.ErrorIs(t, err, ErrSameTransferAccount)
}

func TestEnsureAccount_Idempotent(t *testing.T) {
	writer, _, _ := newFakeWriter()
	ownerID := uuid.Must(uuid.NewV4())

	first := &EnsureAccount{OwnerID: ownerID, Name: "Savings"}
	require.NoError(t, first.Perform(context.Background(), writer))
	require.NotNil(t, first.Result)

	second := &EnsureAccount{OwnerID: ownerID, Name: "Savings"}
	require.NoError(t, second.Perform(context.Background(), writer))

	assert.Equal(t, first.Result.ID, second.Result.ID)
	assert.True(t, second.Result.Balance.Equal(decimal.Zero))
}
