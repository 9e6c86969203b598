package context

import (
	"github.com/changhyeonkim/splearn/internal/shared/logger"
	sharedError "github.com/changhyeonkim/splearn/internal/shared/error"
	"github.com/gin-gonic/gin"
)

// Keys under which the JWT middleware stores the authenticated member
const (
	MemberIDKey    = "member_id"
	MemberEmailKey = "member_email"
)

// SetMember records the authenticated member on c.
func SetMember(c *gin.Context, memberID uint32, email string) {
	c.Set(MemberIDKey, memberID)
	c.Set(MemberEmailKey, email)
	c.Request = c.Request.WithContext(logger.With(c.Request.Context(), "member_id", memberID))
}

func GetMemberID(c *gin.Context) (uint32, bool) {
	memberID, ok := c.Get(MemberIDKey)
	if !ok {
		return 0, false
	}

	id, ok := memberID.(uint32)
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

// RequireMemberID returns the authenticated member's ID. When there is
// none it aborts with 401 and returns false.
func RequireMemberID(c *gin.Context) (uint32, bool) {
	memberID, ok := GetMemberID(c)
	if !ok {
		logger.FromContext(c.Request.Context()).Error("[API] context에 회원 ID가 존재하지 않습니다.")
		c.AbortWithStatusJSON(sharedError.Unauthorized.Status, sharedError.Unauthorized)
		return 0, false
	}
	return memberID, true
}
