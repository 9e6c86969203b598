package middleware_test

import (
	"net/http"
	"testing"

	"github.com/changhyeonkim/splearn/internal/shared/middleware"
	"github.com/changhyeonkim/splearn/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	const clientID = "0f8fad5b-d9cb-469f-a165-70867728950e"

	testCases := []struct {
		name      string
		header    string
		wantExact string
	}{
		{name: "Generated when absent"},
		{name: "Client UUID is kept", header: clientID, wantExact: clientID},
		{name: "Client UUID is normalised", header: "0F8FAD5B-D9CB-469F-A165-70867728950E", wantExact: clientID},
		{name: "Non-UUID is replaced", header: "abc\nfake=log"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			router := testutil.SetupTestRouter()
			router.Use(middleware.RequestID())
			router.GET("/ping", func(c *gin.Context) {
				c.String(http.StatusOK, middleware.GetRequestID(c))
			})

			headers := map[string]string{}
			if tc.header != "" {
				headers[middleware.RequestIDHeader] = tc.header
			}
			recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
				Method:  http.MethodGet,
				URL:     "/ping",
				Headers: headers,
			})

			got := recorder.Header().Get(middleware.RequestIDHeader)
			assert.Equal(t, got, recorder.Body.String())
			if tc.wantExact != "" {
				assert.Equal(t, tc.wantExact, got)
				return
			}
			_, err := uuid.Parse(got)
			require.NoError(t, err)
			assert.NotEqual(t, tc.header, got)
		})
	}
}
