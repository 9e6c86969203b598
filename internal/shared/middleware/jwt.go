package middleware

import (
	"errors"
	"strings"

	sharedContext "github.com/changhyeonkim/splearn/internal/shared/context"
	sharedError "github.com/changhyeonkim/splearn/internal/shared/error"
	"github.com/changhyeonkim/splearn/internal/shared/logger"
	"github.com/changhyeonkim/splearn/internal/shared/token"

	"github.com/gin-gonic/gin"
)

const (
	AuthorizationHeader = "Authorization"
	BearerScheme        = "Bearer"
)

// JWT error constants (errInfo)
const (
	missingToken  = "MISSING_TOKEN"
	invalidToken  = "INVALID_TOKEN"
	expiredToken  = "EXPIRED_TOKEN"
	invalidClaims = "INVALID_CLAIMS"
)

// Domain errors
var (
	ErrMissingToken  = sharedError.NewDomainError(missingToken)
	ErrInvalidToken  = sharedError.NewDomainError(invalidToken)
	ErrExpiredToken  = sharedError.NewDomainError(expiredToken)
	ErrInvalidClaims = sharedError.NewDomainError(invalidClaims)
)

// Every token failure looks the same to the client
func init() {
	for _, errInfo := range []string{missingToken, invalidToken, expiredToken, invalidClaims} {
		sharedError.RegisterDomainErrorResponse(errInfo, sharedError.Unauthorized)
	}
}

// JWT admits requests carrying a valid access token and records the member
// on the gin context. Refresh tokens are rejected.
func JWT(tokenManager token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.FromContext(c.Request.Context()).With(
			"client_ip", c.ClientIP(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)

		// Step 1: 토큰 추출
		tokenString, err := extractToken(c)
		if err != nil {
			log.Warn("JWT 토큰 추출 실패", "step", "extract_token", "error", err.Error())
			abortUnauthorized(c, err)
			return
		}

		// Step 2: 토큰 검증
		claims, err := tokenManager.ValidateToken(tokenString)
		if err != nil {
			log.Warn("JWT 토큰 검증 실패", "step", "validate_token", "error", err.Error())
			abortUnauthorized(c, mapTokenError(err))
			return
		}

		if claims.TokenType != token.ACCESS {
			log.Warn("JWT 토큰 검증 실패", "step", "token_type", "token_type", claims.TokenType)
			abortUnauthorized(c, ErrInvalidToken)
			return
		}

		// 인증 성공 - Context에 사용자 정보 저장
		sharedContext.SetMember(c, claims.MemberID, claims.Email)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, err error) {
	resp, ok := sharedError.ResolveDomainError(err)
	if !ok {
		resp = sharedError.Unauthorized
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(resp.Status, resp)
}

func extractToken(c *gin.Context) (string, error) {
	authHeader := c.GetHeader(AuthorizationHeader)
	if authHeader == "" {
		return "", ErrMissingToken
	}

	scheme, tokenString, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, BearerScheme) || strings.TrimSpace(tokenString) == "" {
		return "", ErrInvalidToken
	}

	return strings.TrimSpace(tokenString), nil
}

func mapTokenError(err error) error {
	switch {
	case errors.Is(err, token.ErrExpiredToken):
		return ErrExpiredToken
	case errors.Is(err, token.ErrInvalidClaims):
		return ErrInvalidClaims
	default:
		return ErrInvalidToken
	}
}
