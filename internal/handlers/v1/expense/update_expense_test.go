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

type mockExpenseUpdater struct {
	mock.Mock
}

func (m *mockExpenseUpdater) UpdateExpense(ctx context.Context, ownerID string, expense service.Expense) error {
	args := m.Called(ctx, ownerID, expense)
	return args.Error(0)
}

func (m *mockExpenseUpdater) GetExpense(ctx context.Context, id int64, ownerID string) (*service.Expense, error) {
	args := m.Called(ctx, id, ownerID)
	row, _ := args.Get(0).(*service.Expense)
	return row, args.Error(1)
}

func newUpdateTestAPI(t *testing.T, svc expenseUpdater) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewUpdateExpenseHandler(svc, testProvider()).Register(api)
	return api
}

func TestHTTP_UpdateExpense_Success(t *testing.T) {
	date := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	mockSvc := new(mockExpenseUpdater)
	mockSvc.On("UpdateExpense", mock.Anything, testOwnerID, mock.MatchedBy(func(e service.Expense) bool {
		return e.ID == 7 &&
			e.Description == "Farmers market" &&
			e.Amount.Equal(decimal.RequireFromString("12.34")) &&
			e.Category == "Groceries" &&
			e.Date.Equal(date)
	})).Return(nil)
	mockSvc.On("GetExpense", mock.Anything, int64(7), testOwnerID).
		Return(&service.Expense{
			ID:          7,
			Description: "Farmers market",
			Amount:      decimal.RequireFromString("12.34"),
			Category:    "Groceries",
			Date:        date,
			OwnerID:     testOwnerID,
		}, nil)

	resp := newUpdateTestAPI(t, mockSvc).Put("/v1/expense/7", authHeader, UpdateExpenseBody{
		Description: "Farmers market",
		Amount:      "12.34",
		Category:    "Groceries",
		Date:        date.Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Expense
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(7), body.ID)
	assert.Equal(t, "Farmers market", body.Description)
	assert.Equal(t, "12.34", body.Amount)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateExpense_NotFound(t *testing.T) {
	mockSvc := new(mockExpenseUpdater)
	mockSvc.On("UpdateExpense", mock.Anything, testOwnerID, mock.Anything).
		Return(service.ErrNotFound)

	resp := newUpdateTestAPI(t, mockSvc).Put("/v1/expense/404", authHeader, UpdateExpenseBody{
		Description: "Farmers market",
		Amount:      "12.34",
		Category:    "Groceries",
		Date:        "2025-06-02T12:00:00Z",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertNotCalled(t, "GetExpense")
}

func TestHTTP_UpdateExpense_MissingRequiredFields(t *testing.T) {
	mockSvc := new(mockExpenseUpdater)

	resp := newUpdateTestAPI(t, mockSvc).Put("/v1/expense/7", authHeader, UpdateExpenseBody{
		Description: "Farmers market",
		// Amount, Category, Date omitted
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "UpdateExpense")
}

func TestHTTP_UpdateExpense_InvalidAmount(t *testing.T) {
	mockSvc := new(mockExpenseUpdater)

	resp := newUpdateTestAPI(t, mockSvc).Put("/v1/expense/7", authHeader, UpdateExpenseBody{
		Description: "Farmers market",
		Amount:      "not-a-decimal",
		Category:    "Groceries",
		Date:        "2025-06-02T12:00:00Z",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "UpdateExpense")
}

func TestHTTP_UpdateExpense_ServiceValidationError(t *testing.T) {
	mockSvc := new(mockExpenseUpdater)
	mockSvc.On("UpdateExpense", mock.Anything, testOwnerID, mock.Anything).
		Return(&service.ValidationError{Field: "amount", Reason: "must be greater than zero"})

	resp := newUpdateTestAPI(t, mockSvc).Put("/v1/expense/7", authHeader, UpdateExpenseBody{
		Description: "Farmers market",
		Amount:      "-1.00",
		Category:    "Groceries",
		Date:        "2025-06-02T12:00:00Z",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "GetExpense")
}

func TestHTTP_UpdateExpense_UnknownToken(t *testing.T) {
	mockSvc := new(mockExpenseUpdater)

	resp := newUpdateTestAPI(t, mockSvc).Put("/v1/expense/7",
		"Authorization: Bearer someone-else", UpdateExpenseBody{
			Description: "Farmers market",
			Amount:      "12.34",
			Category:    "Groceries",
			Date:        "2025-06-02T12:00:00Z",
		})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "UpdateExpense")
}

func TestHTTP_UpdateExpense_ServiceError(t *testing.T) {
	mockSvc := new(mockExpenseUpdater)
	mockSvc.On("UpdateExpense", mock.Anything, testOwnerID, mock.Anything).
		Return(errors.New("database unavailable"))

	resp := newUpdateTestAPI(t, mockSvc).Put("/v1/expense/7", authHeader, UpdateExpenseBody{
		Description: "Farmers market",
		Amount:      "12.34",
		Category:    "Groceries",
		Date:        "2025-06-02T12:00:00Z",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
