package meta_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/changhyeonkim/splearn/internal/meta"
	"github.com/changhyeonkim/splearn/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
)

type stubPinger struct {
	err error
}

func (s stubPinger) HealthCheck(context.Context) error {
	return s.err
}

func TestHealth(t *testing.T) {
	testCases := []struct {
		name       string
		pingErr    error
		wantCode   int
		wantStatus string
		wantDB     string
	}{
		{name: "Database up", wantCode: http.StatusOK, wantStatus: "healthy", wantDB: "up"},
		{name: "Database down", pingErr: errors.New("connection refused"), wantCode: http.StatusServiceUnavailable, wantStatus: "unhealthy", wantDB: "down"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Given
			h := meta.NewHandler(testutil.NewTestConfig(), stubPinger{err: tc.pingErr})
			router := testutil.SetupTestRouter()
			router.GET("/health", h.Health)

			// When
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method: http.MethodGet,
				URL:    "/health",
			})

			// Then
			assert.Equal(t, tc.wantCode, recorder.Code)

			var response meta.HealthResponse
			testutil.ParseResponse(t, recorder, &response)
			assert.Equal(t, tc.wantStatus, response.Status)
			assert.Equal(t, "splearn-api-test", response.Service.Name)
			assert.Equal(t, tc.wantDB, response.Checks["database"].Status)
		})
	}
}
