package member_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/changhyeonkim/splearn/internal/member"
	sharedError "github.com/changhyeonkim/splearn/internal/shared/error"
	"github.com/changhyeonkim/splearn/internal/shared/testutil"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMemberRouter registers a member and serves /me routes as that member
func setupMemberRouter(t *testing.T) *gin.Engine {
	t.Helper()

	service, _ := setupMemberService(t)
	id, err := service.Register(context.Background(), validCreateInfo())
	require.NoError(t, err)

	memberHandler := member.NewMemberHandler(service)

	router := testutil.SetupTestRouter()
	me := router.Group("/api/v1/members/me", testutil.AuthenticateAs(id))
	me.GET("", memberHandler.GetProfile)
	me.POST("/activate", memberHandler.Activate)
	me.POST("/deactivate", memberHandler.Deactivate)

	return router
}

func TestActivateAPI_Lifecycle(t *testing.T) {
	// Given
	router := setupMemberRouter(t)

	// When: activate a pending member
	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/members/me/activate",
	})

	// Then
	require.Equal(t, http.StatusOK, recorder.Code)
	var profile member.GetProfileResponse
	testutil.ParseResponse(t, recorder, &profile)
	assert.Equal(t, member.StatusActive, profile.Status)
	assert.Equal(t, "toby@splearn.app", profile.Email)

	// When: activate again
	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/members/me/activate",
	})

	// Then: conflict
	assert.Equal(t, http.StatusConflict, recorder.Code)
	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-003", errorResponse.Code)

	// When: deactivate
	recorder = testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/members/me/deactivate",
	})

	// Then
	require.Equal(t, http.StatusOK, recorder.Code)
	testutil.ParseResponse(t, recorder, &profile)
	assert.Equal(t, member.StatusDeactivated, profile.Status)
}

func TestDeactivateAPI_PendingMember(t *testing.T) {
	router := setupMemberRouter(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/members/me/deactivate",
	})

	assert.Equal(t, http.StatusConflict, recorder.Code)
	var errorResponse sharedError.ErrorResponse
	testutil.ParseResponse(t, recorder, &errorResponse)
	assert.Equal(t, "MEMBER-004", errorResponse.Code)
}

func TestGetProfileAPI(t *testing.T) {
	router := setupMemberRouter(t)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodGet,
		URL:    "/api/v1/members/me",
	})

	require.Equal(t, http.StatusOK, recorder.Code)
	var profile member.GetProfileResponse
	testutil.ParseResponse(t, recorder, &profile)
	assert.Equal(t, "toby", profile.Nickname)
	assert.Equal(t, member.StatusPending, profile.Status)
}

func TestMemberAPI_Unauthenticated(t *testing.T) {
	service, _ := setupMemberService(t)
	memberHandler := member.NewMemberHandler(service)

	router := testutil.SetupTestRouter()
	router.POST("/api/v1/members/me/activate", memberHandler.Activate)

	recorder := testutil.ExecuteRequest(t, router, testutil.TestRequest{
		Method: http.MethodPost,
		URL:    "/api/v1/members/me/activate",
	})

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
