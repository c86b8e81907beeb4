package services

import (
	"context"
	"strings"

	"innpilot/constants"
	"innpilot/errors"
	"innpilot/models"
	"innpilot/services/logger"

	"github.com/fiam/gounidecode/unidecode"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/api/idtoken"
	"gorm.io/gorm"
)

type AuthService struct {
	DB             *gorm.DB
	Tokens         *TokenService
	Logger         logger.Logger
	GoogleClientID string
}

func NewAuthService(db *gorm.DB, tokens *TokenService, log logger.Logger, googleClientID string) *AuthService {
	return &AuthService{DB: db, Tokens: tokens, Logger: log, GoogleClientID: googleClientID}
}

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword compares a bcrypt hash against a candidate password.
func CheckPassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

// Slugify folds a property name to an ascii URL slug.
func Slugify(name string) string {
	folded := strings.ToLower(unidecode.Unidecode(name))
	var b strings.Builder
	lastDash := true
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}

// Register creates a hotel and its first manager user in one transaction.
func (s *AuthService) Register(ctx context.Context, name, email, password, phone, hotelName string) (models.User, error) {
	var user models.User

	var count int64
	if err := s.DB.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return user, errors.NewAppError(errors.ErrCodeDBError, "failed to check existing user", err)
	}
	if count > 0 {
		return user, errors.NewAppError(errors.ErrCodeUserExists, "email already registered", errors.ErrUserAlreadyExists)
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return user, errors.NewAppError(errors.ErrCodeDBError, "failed to hash password", err)
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		slug := Slugify(hotelName)
		var slugCount int64
		if err := tx.Model(&models.Hotel{}).Where("slug = ?", slug).Count(&slugCount).Error; err != nil {
			return err
		}
		if slugCount > 0 {
			slug = slug + "-" + Slugify(email[:strings.Index(email, "@")])
		}

		hotel := models.Hotel{Name: hotelName, Slug: slug, Email: email}
		if err := tx.Create(&hotel).Error; err != nil {
			return err
		}

		user = models.User{
			HotelID:     hotel.ID,
			Name:        name,
			Email:       email,
			Password:    hashed,
			PhoneNumber: phone,
			Role:        constants.RoleManager,
			Status:      constants.UserStatusActive,
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return user, errors.NewAppError(errors.ErrCodeDBError, "failed to register user", err)
	}

	s.Logger.Info("registered hotel %q with manager %s", hotelName, email)
	return user, nil
}

// Login verifies credentials and issues access and refresh tokens.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, string, string, error) {
	var user models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return user, "", "", errors.NewAppError(errors.ErrCodeUserNotFound, "user not found", errors.ErrUserNotFound)
		}
		return user, "", "", errors.NewAppError(errors.ErrCodeDBError, "failed to load user", err)
	}

	if user.Status != constants.UserStatusActive {
		return user, "", "", errors.NewAppError(errors.ErrCodeUnauthorized, "account is disabled", errors.ErrUnauthorized)
	}
	if !CheckPassword(user.Password, password) {
		return user, "", "", errors.NewAppError(errors.ErrCodeInvalidPassword, "wrong password", errors.ErrInvalidPassword)
	}

	claims := UserClaims{UserID: user.ID, Role: user.Role, HotelID: user.HotelID}
	access, err := s.Tokens.Generate(claims, true)
	if err != nil {
		return user, "", "", errors.NewAppError(errors.ErrCodeDBError, "failed to issue access token", err)
	}
	refresh, err := s.Tokens.Generate(claims, false)
	if err != nil {
		return user, "", "", errors.NewAppError(errors.ErrCodeDBError, "failed to issue refresh token", err)
	}
	return user, access, refresh, nil
}

// VerifyGoogleIDToken validates a Google sign-in token against the
// configured OAuth client id.
func (s *AuthService) VerifyGoogleIDToken(ctx context.Context, tokenID string) (*idtoken.Payload, error) {
	payload, err := idtoken.Validate(ctx, tokenID, s.GoogleClientID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "invalid google id token", err)
	}
	return payload, nil
}

// FindOrCreateGoogleUser resolves a verified Google payload to a local user.
// First-time sign-ins get a hotel shell they can rename later.
func (s *AuthService) FindOrCreateGoogleUser(ctx context.Context, email, name, picture string) (models.User, error) {
	var user models.User
	err := s.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err == nil {
		return user, nil
	}
	if err != gorm.ErrRecordNotFound {
		return user, errors.NewAppError(errors.ErrCodeDBError, "failed to load user", err)
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		hotel := models.Hotel{Name: name + "'s Property", Slug: Slugify(email)}
		if err := tx.Create(&hotel).Error; err != nil {
			return err
		}
		user = models.User{
			HotelID:    hotel.ID,
			Name:       name,
			Email:      email,
			Avatar:     picture,
			Role:       constants.RoleManager,
			Status:     constants.UserStatusActive,
			IsVerified: true,
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		return user, errors.NewAppError(errors.ErrCodeDBError, "failed to create google user", err)
	}
	return user, nil
}

// IssueTokens issues the access/refresh pair for an already authenticated user.
func (s *AuthService) IssueTokens(user models.User) (string, string, error) {
	claims := UserClaims{UserID: user.ID, Role: user.Role, HotelID: user.HotelID}
	access, err := s.Tokens.Generate(claims, true)
	if err != nil {
		return "", "", err
	}
	refresh, err := s.Tokens.Generate(claims, false)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
