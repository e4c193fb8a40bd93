package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chris/in-memory-ledger/pkg/api"
	"github.com/chris/in-memory-ledger/pkg/events"
	"github.com/chris/in-memory-ledger/pkg/storage/mocks"
	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	h := NewApiHandler(mocks.NewStorage(t), &events.NoOpPublisher{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()

	h.HealthCheck(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rr.Body.String())
}

func TestErrorHandler(t *testing.T) {
	t.Run("Invalid Path Parameter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/accounts/not-a-uuid", nil)
		rr := httptest.NewRecorder()

		ErrorHandler(rr, req, &api.InvalidParamFormatError{ParamName: "id", Err: fmt.Errorf("invalid UUID length: 10")})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"message":"Invalid id."}`, rr.Body.String())
	})

	t.Run("Other Binding Error", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()

		ErrorHandler(rr, req, &api.RequiredParamError{ParamName: "id"})

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"message":"Query argument id is required, but not found"}`, rr.Body.String())
	})
}
