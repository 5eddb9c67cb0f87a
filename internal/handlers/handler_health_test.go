package handlers

import (
	"net/http"
	"testing"

	"kamingo-landing/internal/testutil"
)

func TestHandlerHealth_ShouldReturnOK(t *testing.T) {
	tc := testutil.NewTestContextWithURL(t, "GET", "/api/v1/health")
	defer tc.Finish()

	tc.CallHandler(HandlerHealth)

	tc.AssertStatus(t, http.StatusOK)
	tc.AssertContentType(t, "application/json")
	tc.AssertJSONField(t, "status", "OK")
}
