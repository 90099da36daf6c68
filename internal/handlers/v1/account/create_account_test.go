package account

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/money-manager/internal/service"
)

func newCreateTestAPI(t *testing.T, svc accountCreator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateAccountHandler(svc).Register(api)
	return api
}

func newListTestAPI(t *testing.T, svc accountLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListAccountsHandler(svc).Register(api)
	return api
}

func serviceAccount(name, balance string) service.Account {
	return service.Account{
		ID:        uuid.Must(uuid.NewV4()),
		Name:      name,
		Balance:   decimal.RequireFromString(balance),
		CreatedAt: time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC),
	}
}

func TestHTTP_CreateAccount_Success(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	created := serviceAccount("Savings", "0")

	mockSvc := new(mockAccountService)
	mockSvc.On("CreateAccount", mock.Anything, ownerID, "Savings").Return(&created, nil)

	resp := newCreateTestAPI(t, mockSvc).Post("/v1/account", ownerHeader(ownerID), CreateAccountBody{
		AccountName: "Savings",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Account
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, created.ID.String(), body.ID)
	assert.Equal(t, "Savings", body.Name)
	assert.Equal(t, "0", body.Balance)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateAccount_MissingName(t *testing.T) {
	mockSvc := new(mockAccountService)

	// Huma schema validation rejects the request before the handler runs.
	resp := newCreateTestAPI(t, mockSvc).Post("/v1/account",
		ownerHeader(uuid.Must(uuid.NewV4())), CreateAccountBody{})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateAccount")
}

func TestHTTP_ListAccounts_Success(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockAccountService)
	mockSvc.On("ListAccounts", mock.Anything, ownerID).Return([]service.Account{
		serviceAccount("Bank", "500"),
		serviceAccount("Cash", "75.25"),
	}, nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/accounts", ownerHeader(ownerID))

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListAccountsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Accounts, 2)
	assert.Equal(t, "Bank", body.Accounts[0].Name)
	assert.Equal(t, "75.25", body.Accounts[1].Balance)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListAccounts_Empty(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockAccountService)
	mockSvc.On("ListAccounts", mock.Anything, ownerID).Return([]service.Account{}, nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/accounts", ownerHeader(ownerID))

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListAccountsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Accounts)
}
