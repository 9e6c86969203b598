package member

import (
	"context"
	"net/http"

	sharedContext "github.com/changhyeonkim/splearn/internal/shared/context"
	"github.com/changhyeonkim/splearn/internal/shared/handler"
	"github.com/gin-gonic/gin"
)

type MemberHandler struct {
	memberService *MemberService
}

func NewMemberHandler(memberService *MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

func (h *MemberHandler) GetProfile(c *gin.Context) {
	h.respondProfile(c, h.memberService.GetProfile)
}

// Activate confirms the authenticated member's signup.
func (h *MemberHandler) Activate(c *gin.Context) {
	h.respondProfile(c, h.memberService.Activate)
}

// Deactivate withdraws the authenticated member.
func (h *MemberHandler) Deactivate(c *gin.Context) {
	h.respondProfile(c, h.memberService.Deactivate)
}

func (h *MemberHandler) respondProfile(c *gin.Context, fn func(context.Context, uint32) (*GetProfileResponse, error)) {
	memberID, ok := sharedContext.RequireMemberID(c)
	if !ok {
		return
	}

	response, err := fn(c.Request.Context(), memberID)
	if err != nil {
		handler.RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
