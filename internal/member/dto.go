package member

type GetProfileResponse struct {
	ID       uint32 `json:"id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
	Status   Status `json:"status"`
}

func newProfileResponse(id uint32, member *Member) *GetProfileResponse {
	return &GetProfileResponse{
		ID:       id,
		Email:    member.Email().Address(),
		Nickname: member.Nickname(),
		Status:   member.Status(),
	}
}
