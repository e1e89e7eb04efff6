package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parishbooks/parishbooks-backend/internal/api"
	"github.com/parishbooks/parishbooks-backend/internal/api/dto"
	"github.com/parishbooks/parishbooks-backend/internal/application/dashboard"
	"github.com/parishbooks/parishbooks-backend/internal/domain/ledger"
	"github.com/parishbooks/parishbooks-backend/internal/domain/money"
	"github.com/parishbooks/parishbooks-backend/internal/infrastructure/storage"
)

func newTestServer(t *testing.T, repo *storage.MockRepository) *api.Server {
	t.Helper()
	svc := dashboard.NewService(repo, repo, nil, nil)
	return api.NewServer(api.DefaultConfig(), svc, nil)
}

func TestServer_DashboardEndToEnd(t *testing.T) {
	repo := storage.NewMockRepository()
	ctx := context.Background()
	require.NoError(t, repo.SaveAccount(ctx, &ledger.Account{
		Name: "Conta Corrente", Category: ledger.CategoryChecking, Balance: money.Amount(3000), Active: true,
	}))

	server := newTestServer(t, repo)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard?period=month", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.DashboardResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.Equal(t, "month", resp.Period)
	assert.Equal(t, 1, resp.Summary.AccountsCount)
	assert.Equal(t, 3000.0, resp.Summary.TotalBalance)
	assert.NotEmpty(t, resp.CashFlow)
	require.Len(t, resp.Accounts, 1)
}

func TestServer_EmptyLedgerNeverBlank(t *testing.T) {
	// A brand-new installation has no data at all; the dashboard still
	// renders a populated cash-flow series and empty (not missing) sections.
	server := newTestServer(t, storage.NewMockRepository())

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.DashboardResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))

	assert.Equal(t, 0, resp.Summary.AccountsCount)
	assert.NotEmpty(t, resp.CashFlow)
	for _, point := range resp.CashFlow {
		assert.GreaterOrEqual(t, point.Flow, 0.0)
	}
	assert.Empty(t, resp.TopExpenses)
	assert.Zero(t, resp.BillsSummary.BillsToPay.Count)
	assert.Zero(t, resp.BillsSummary.BillsToReceive.Count)
	assert.Empty(t, resp.CreditCards)
}

func TestServer_StorageFailureIsAllOrNothing(t *testing.T) {
	repo := storage.NewMockRepository()
	repo.ListTransactionsErr = assert.AnError

	server := newTestServer(t, repo)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var apiErr dto.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	assert.Equal(t, dto.ErrCodeInternalError, apiErr.Code)
}

func TestServer_HealthRoute(t *testing.T) {
	server := newTestServer(t, storage.NewMockRepository())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
