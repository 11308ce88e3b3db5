package expense

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ledgerline/expense-server/internal/service"
)

type mockExpenseAggregator struct {
	mock.Mock
}

func (m *mockExpenseAggregator) AggregateByCategory(ctx context.Context, ownerID string) ([]service.CategoryTotal, error) {
	args := m.Called(ctx, ownerID)
	totals, _ := args.Get(0).([]service.CategoryTotal)
	return totals, args.Error(1)
}

func newAggregateTestAPI(t *testing.T, svc expenseAggregator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewAggregateExpensesHandler(svc, testProvider()).Register(api)
	return api
}

func TestHTTP_AggregateExpenses_Success(t *testing.T) {
	mockSvc := new(mockExpenseAggregator)
	mockSvc.On("AggregateByCategory", mock.Anything, testOwnerID).
		Return([]service.CategoryTotal{
			{Category: "Food", Total: decimal.RequireFromString("30.30")},
			{Category: "Rent", Total: decimal.RequireFromString("500.00")},
		}, nil)

	resp := newAggregateTestAPI(t, mockSvc).Get("/v1/expense/aggregate", authHeader)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body AggregateExpensesResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Totals, 2)
	assert.Equal(t, "Food", body.Totals[0].Category)
	assert.Equal(t, "30.3", body.Totals[0].Total)
	assert.Equal(t, "Rent", body.Totals[1].Category)
	assert.Equal(t, "500", body.Totals[1].Total)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_AggregateExpenses_Empty(t *testing.T) {
	mockSvc := new(mockExpenseAggregator)
	mockSvc.On("AggregateByCategory", mock.Anything, testOwnerID).
		Return([]service.CategoryTotal{}, nil)

	resp := newAggregateTestAPI(t, mockSvc).Get("/v1/expense/aggregate", authHeader)

	assert.Equal(t, http.StatusOK, resp.Code)
	var body AggregateExpensesResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotNil(t, body.Totals)
	assert.Empty(t, body.Totals)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_AggregateExpenses_UnknownToken(t *testing.T) {
	mockSvc := new(mockExpenseAggregator)

	resp := newAggregateTestAPI(t, mockSvc).Get("/v1/expense/aggregate", "Authorization: Bearer someone-else")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "AggregateByCategory")
}

func TestHTTP_AggregateExpenses_ServiceError(t *testing.T) {
	mockSvc := new(mockExpenseAggregator)
	mockSvc.On("AggregateByCategory", mock.Anything, testOwnerID).
		Return(nil, errors.New("database unavailable"))

	resp := newAggregateTestAPI(t, mockSvc).Get("/v1/expense/aggregate", authHeader)

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
