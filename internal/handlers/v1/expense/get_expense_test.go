package expense

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ledgerline/expense-server/internal/service"
)

type mockExpenseGetter struct {
	mock.Mock
}

func (m *mockExpenseGetter) GetExpense(ctx context.Context, id int64, ownerID string) (*service.Expense, error) {
	args := m.Called(ctx, id, ownerID)
	row, _ := args.Get(0).(*service.Expense)
	return row, args.Error(1)
}

func newGetTestAPI(t *testing.T, svc expenseGetter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewGetExpenseHandler(svc, testProvider()).Register(api)
	return api
}

func TestHTTP_GetExpense_Success(t *testing.T) {
	date := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mockSvc := new(mockExpenseGetter)
	mockSvc.On("GetExpense", mock.Anything, int64(7), testOwnerID).
		Return(&service.Expense{
			ID:          7,
			Description: "Groceries",
			Amount:      decimal.RequireFromString("42.50"),
			Category:    "Food",
			Date:        date,
			OwnerID:     testOwnerID,
		}, nil)

	resp := newGetTestAPI(t, mockSvc).Get("/v1/expense/7", authHeader)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Expense
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(7), body.ID)
	assert.Equal(t, "Groceries", body.Description)
	assert.Equal(t, "42.5", body.Amount)
	assert.Equal(t, "Food", body.Category)
	assert.Equal(t, date.Format(time.RFC3339), body.Date)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetExpense_NotFound(t *testing.T) {
	mockSvc := new(mockExpenseGetter)
	mockSvc.On("GetExpense", mock.Anything, int64(404), testOwnerID).
		Return(nil, service.ErrNotFound)

	resp := newGetTestAPI(t, mockSvc).Get("/v1/expense/404", authHeader)

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetExpense_UnknownToken(t *testing.T) {
	mockSvc := new(mockExpenseGetter)

	resp := newGetTestAPI(t, mockSvc).Get("/v1/expense/7", "Authorization: Bearer someone-else")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "GetExpense")
}

func TestHTTP_GetExpense_ServiceError(t *testing.T) {
	mockSvc := new(mockExpenseGetter)
	mockSvc.On("GetExpense", mock.Anything, int64(7), testOwnerID).
		Return(nil, errors.New("database unavailable"))

	resp := newGetTestAPI(t, mockSvc).Get("/v1/expense/7", authHeader)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
