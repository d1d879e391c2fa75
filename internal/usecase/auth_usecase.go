package usecase

import (
	"context"

	"hospital-appointment-service/internal/converter"
	"hospital-appointment-service/internal/delivery/dto"
	"hospital-appointment-service/internal/delivery/http/middleware"
	"hospital-appointment-service/internal/domain/entity"
	"hospital-appointment-service/internal/service"
	"hospital-appointment-service/pkg/jwt"

	"github.com/sirupsen/logrus"
)

// AuthUsecase turns a HospitalUsecase login into bearer tokens. Every request
// after login gets its own session rebuilt from the access token.
type AuthUsecase interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, accessTokenID string, req *dto.LogoutRequest) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	GetCurrentUser(ctx context.Context) (*dto.UserResponse, error)
}

type authUsecase struct {
	log        *logrus.Logger
	hospital   HospitalUsecase
	jwtService *jwt.JWTService
	tokenStore service.TokenStore
}

func NewAuthUsecase(
	log *logrus.Logger,
	hospital HospitalUsecase,
	jwtService *jwt.JWTService,
	tokenStore service.TokenStore,
) AuthUsecase {
	return &authUsecase{
		log:        log,
		hospital:   hospital,
		jwtService: jwtService,
		tokenStore: tokenStore,
	}
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	sess := entity.NewSession()
	user, err := u.hospital.Login(middleware.WithSession(ctx, sess), req.Username, req.Password)
	if err != nil {
		return nil, err
	}

	return u.issueTokens(ctx, jwt.Subject{
		Username: user.Username,
		Role:     user.Role.String(),
		EntityID: user.EntityID,
	})
}

func (u *authUsecase) Logout(ctx context.Context, accessTokenID string, req *dto.LogoutRequest) error {
	if err := u.tokenStore.Revoke(ctx, service.AccessTokenKind, accessTokenID); err != nil {
		u.log.Warnf("Failed to revoke access token: %+v", err)
		return err
	}

	if req != nil && req.RefreshToken != "" {
		claims, err := u.jwtService.ValidateToken(req.RefreshToken)
		if err == nil && claims.TokenType == jwt.RefreshToken {
			if err := u.tokenStore.Revoke(ctx, service.RefreshTokenKind, claims.TokenID); err != nil {
				u.log.Warnf("Failed to revoke refresh token: %+v", err)
				return err
			}
		}
	}

	u.hospital.Logout(ctx)
	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	exists, err := u.tokenStore.Exists(ctx, service.RefreshTokenKind, claims.Username, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to check refresh token: %+v", err)
		return nil, err
	}
	if !exists {
		return nil, ErrTokenRevoked
	}

	if err := u.tokenStore.Revoke(ctx, service.RefreshTokenKind, claims.TokenID); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	return u.issueTokens(ctx, claims.Identity())
}

func (u *authUsecase) GetCurrentUser(ctx context.Context) (*dto.UserResponse, error) {
	user, err := u.hospital.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	return converter.UserToResponse(user), nil
}

func (u *authUsecase) issueTokens(ctx context.Context, sub jwt.Subject) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(sub)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(sub)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	if err := u.tokenStore.Store(ctx, service.AccessTokenKind, sub.Username, accessTokenID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token: %+v", err)
		return nil, err
	}

	if err := u.tokenStore.Store(ctx, service.RefreshTokenKind, sub.Username, refreshTokenID, u.jwtService.GetRefreshExpiry()); err != nil {
		u.log.Warnf("Failed to store refresh token: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}
