package transaction

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/money-manager/internal/service"
)

func newCanEditTestAPI(t *testing.T, svc editChecker) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCanEditHandler(svc).Register(api)
	return api
}

func TestHTTP_CanEdit_True(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionService)
	mockSvc.On("CanEdit", mock.Anything, ownerID, id).Return(true, nil)

	resp := newCanEditTestAPI(t, mockSvc).Get("/v1/transaction/"+id.String()+"/can-edit", ownerHeader(ownerID))

	assert.Equal(t, http.StatusOK, resp.Code)
	var body CanEditResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.CanEdit)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CanEdit_False(t *testing.T) {
	ownerID := uuid.Must(uuid.NewV4())
	id := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionService)
	mockSvc.On("CanEdit", mock.Anything, ownerID, id).Return(false, nil)

	resp := newCanEditTestAPI(t, mockSvc).Get("/v1/transaction/"+id.String()+"/can-edit", ownerHeader(ownerID))

	assert.Equal(t, http.StatusOK, resp.Code)
	var body CanEditResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.CanEdit)
}

func TestHTTP_CanEdit_NotFound(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("CanEdit", mock.Anything, mock.Anything, mock.Anything).
		Return(false, service.ErrTransactionNotFound)

	resp := newCanEditTestAPI(t, mockSvc).Get(
		"/v1/transaction/"+uuid.Must(uuid.NewV4()).String()+"/can-edit",
		ownerHeader(uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
