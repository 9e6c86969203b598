package auth

import "github.com/changhyeonkim/splearn/internal/member"

type SignupRequest struct {
	Email    string `json:"email" binding:"required,member_email,max=50"`
	Nickname string `json:"nickname" binding:"required,min=2,max=20,nickname"`
	Password string `json:"password" binding:"required,min=8,max=15"`
}

// toCreateInfo keeps signup field growth inside the member parameter object.
func (r *SignupRequest) toCreateInfo() member.CreateInfo {
	return member.CreateInfo{
		Email:    r.Email,
		Nickname: r.Nickname,
		Password: r.Password,
	}
}

type SignupResponse struct {
	ID     uint32        `json:"id"`
	Status member.Status `json:"status"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,member_email"`
	Password string `json:"password" binding:"required,min=8,max=15"`
}

type LoginResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	Status       member.Status `json:"status"`
}
