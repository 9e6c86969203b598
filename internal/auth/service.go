package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/changhyeonkim/splearn/internal/member"
	"github.com/changhyeonkim/splearn/internal/shared/logger"
	"github.com/changhyeonkim/splearn/internal/shared/token"
)

type AuthService struct {
	memberService *member.MemberService
	tokenManager  token.Manager
}

func NewAuthService(memberService *member.MemberService, tokenManager token.Manager) *AuthService {
	return &AuthService{
		memberService: memberService,
		tokenManager:  tokenManager,
	}
}

func (a *AuthService) Login(ctx context.Context, request *LoginRequest) (*LoginResponse, error) {
	log := logger.FromContext(ctx)

	// 1. Verify credentials
	id, m, err := a.memberService.Authenticate(ctx, request.Email, request.Password)
	if err != nil {
		if errors.Is(err, member.ErrPasswordMismatch) {
			return nil, fmt.Errorf("error %w", ErrInCorrectEmailPassword) // Security: don't reveal if email exists
		}
		log.Error("로그인 실패 - 알 수 없는 오류", "error", err)
		return nil, fmt.Errorf("로그인 실패: %w", err)
	}

	// 2. Deactivated members cannot sign in
	if m.Status() == member.StatusDeactivated {
		log.Warn("로그인 실패 - deactivated member", "email", logger.MaskEmail(request.Email))
		return nil, fmt.Errorf("error %w", ErrMemberDeactivated)
	}

	// 3. Generate JWT tokens
	accessToken, err := a.tokenManager.GenerateAccessToken(id, m.Email().Address())
	if err != nil {
		log.Error("access token 생성 실패", "error", err)
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	refreshToken, err := a.tokenManager.GenerateRefreshToken(id, m.Email().Address())
	if err != nil {
		log.Error("refresh token 생성 실패", "error", err)
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	log.Info("로그인 성공", "member", m)

	return &LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Status:       m.Status(),
	}, nil
}

func (a *AuthService) Signup(ctx context.Context, request *SignupRequest) (*SignupResponse, error) {
	id, err := a.memberService.Register(ctx, request.toCreateInfo())
	if err != nil {
		return nil, err
	}

	return &SignupResponse{
		ID:     id,
		Status: member.StatusPending,
	}, nil
}
