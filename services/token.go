package services

import (
	"time"

	"innpilot/config"
	"innpilot/errors"

	"github.com/dgrijalva/jwt-go"
)

// UserClaims is what the API needs to know about a caller: who they are,
// what they may do, and which property they are scoped to.
type UserClaims struct {
	UserID  uint
	Role    int
	HotelID uint
}

type TokenService struct {
	secret        []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewTokenService(cfg config.Config) *TokenService {
	return &TokenService{
		secret:        []byte(cfg.JWTSecret),
		accessExpiry:  cfg.AccessTokenExpiry,
		refreshExpiry: cfg.RefreshTokenExpiry,
	}
}

// Generate issues a signed HS256 token carrying the userinfo claims.
func (t *TokenService) Generate(claims UserClaims, isAccessToken bool) (string, error) {
	expiry := t.refreshExpiry
	if isAccessToken {
		expiry = t.accessExpiry
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userinfo": map[string]interface{}{
			"userid":  claims.UserID,
			"role":    claims.Role,
			"hotelid": claims.HotelID,
		},
		"exp": time.Now().Add(expiry).Unix(),
		"iat": time.Now().Unix(),
	})
	return token.SignedString(t.secret)
}

// Parse verifies the signature and expiry and extracts the userinfo claims.
func (t *TokenService) Parse(tokenString string) (UserClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "unexpected signing method", nil)
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return UserClaims{}, errors.NewAppError(errors.ErrCodeInvalidToken, "invalid or expired token", err)
	}

	claimsMap, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return UserClaims{}, errors.NewAppError(errors.ErrCodeInvalidToken, "malformed token claims", nil)
	}
	userInfo, ok := claimsMap["userinfo"].(map[string]interface{})
	if !ok {
		return UserClaims{}, errors.NewAppError(errors.ErrCodeInvalidToken, "userinfo claim missing", nil)
	}

	userID, okID := userInfo["userid"].(float64)
	role, okRole := userInfo["role"].(float64)
	hotelID, okHotel := userInfo["hotelid"].(float64)
	if !okID || !okRole || !okHotel {
		return UserClaims{}, errors.NewAppError(errors.ErrCodeInvalidToken, "userinfo claim incomplete", nil)
	}

	return UserClaims{
		UserID:  uint(userID),
		Role:    int(role),
		HotelID: uint(hotelID),
	}, nil
}
