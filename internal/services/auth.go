package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/logger"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/repos"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/requestdata"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/types"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/utils"
)

var ErrInvalidCredentials = errors.New("Invalid credentials")

type JWTClaims struct {
	EmployeeID uint `json:"emp"`
	IsAdmin    bool `json:"adm"`
	jwt.RegisteredClaims
}

// LoginResult is what a successful login hands back to the client.
type LoginResult struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
	Role         string `json:"role"`
	EmployeeID   uint   `json:"employee_id"`
}

// AuthService verifies credentials and manages the issued token pairs. The
// verified identity travels in an explicit requestdata context, never in
// ambient session state.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (*LoginResult, error)
	Logout(ctx context.Context) error
	SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error)
	GetAccessTTL() time.Duration
}

type authService struct {
	db             *gorm.DB
	log            *logger.Logger
	credentialRepo repos.CredentialRepo
	tokenRepo      repos.CredentialTokenRepo
	jwtSecretKey   string
	accessTTL      time.Duration
	refreshTTL     time.Duration
}

func NewAuthService(db *gorm.DB, log *logger.Logger, credentialRepo repos.CredentialRepo, tokenRepo repos.CredentialTokenRepo, jwtSecretKey string, accessTTL, refreshTTL time.Duration) AuthService {
	return &authService{
		db:             db,
		log:            log.With("service", "AuthService"),
		credentialRepo: credentialRepo,
		tokenRepo:      tokenRepo,
		jwtSecretKey:   jwtSecretKey,
		accessTTL:      accessTTL,
		refreshTTL:     refreshTTL,
	}
}

func (as *authService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("Missing credentials")
	}

	credential, err := as.credentialRepo.GetByUsername(ctx, nil, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("Error retrieving credential: %w", err)
	}
	if !utils.CheckPassword(credential.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	var result *LoginResult
	err = as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		issued, issueErr := as.issueTokenPair(ctx, tx, credential)
		if issueErr != nil {
			return issueErr
		}
		result = issued
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (as *authService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("Refresh token is required")
	}

	var result *LoginResult
	err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, ftErr := as.tokenRepo.GetByRefreshToken(ctx, tx, refreshToken)
		if ftErr != nil {
			return fmt.Errorf("Unknown refresh token")
		}
		if existing.ExpiresAt.Before(time.Now()) {
			if dtErr := as.tokenRepo.DeleteByID(ctx, tx, existing.ID); dtErr != nil {
				return fmt.Errorf("Refresh token expired, error deleting: %w", dtErr)
			}
			return fmt.Errorf("Refresh token expired")
		}
		credential, cErr := as.credentialRepo.GetByID(ctx, tx, existing.CredentialID)
		if cErr != nil {
			return fmt.Errorf("Failed to load credential for refresh: %w", cErr)
		}
		issued, issueErr := as.issueTokenPair(ctx, tx, credential)
		if issueErr != nil {
			return issueErr
		}
		if dErr := as.tokenRepo.DeleteByID(ctx, tx, existing.ID); dErr != nil {
			return fmt.Errorf("Failed to remove old refresh token: %w", dErr)
		}
		result = issued
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (as *authService) Logout(ctx context.Context) error {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.TokenString == "" {
		return fmt.Errorf("No request data found in context")
	}
	return as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		token, ftErr := as.tokenRepo.GetByAccessToken(ctx, tx, rd.TokenString)
		if ftErr != nil {
			if errors.Is(ftErr, gorm.ErrRecordNotFound) {
				return nil
			}
			return fmt.Errorf("Error finding token from token string: %w", ftErr)
		}
		if tdErr := as.tokenRepo.DeleteByID(ctx, tx, token.ID); tdErr != nil {
			return fmt.Errorf("Error deleting token: %w", tdErr)
		}
		return nil
	})
}

func (as *authService) issueTokenPair(ctx context.Context, tx *gorm.DB, credential *types.Credential) (*LoginResult, error) {
	accessToken, err := as.generateAccessToken(credential)
	if err != nil {
		return nil, fmt.Errorf("Generate access token error: %w", err)
	}
	refreshToken := uuid.New().String()
	token := types.CredentialToken{
		CredentialID: credential.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(as.refreshTTL),
	}
	if _, err := as.tokenRepo.Create(ctx, tx, []*types.CredentialToken{&token}); err != nil {
		return nil, fmt.Errorf("Create credential token error: %w", err)
	}

	role := "employee"
	if credential.IsAdmin {
		role = "admin"
	}
	return &LoginResult{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(as.accessTTL.Seconds()),
		Role:         role,
		EmployeeID:   credential.EmployeeID,
	}, nil
}

func (as *authService) generateAccessToken(credential *types.Credential) (string, error) {
	claims := JWTClaims{
		EmployeeID: credential.EmployeeID,
		IsAdmin:    credential.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", credential.ID),
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(as.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}

func (as *authService) SetContextFromToken(ctx context.Context, tokenString string) (context.Context, error) {
	parsedToken, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil {
		return ctx, fmt.Errorf("Failed to parse token: %w", err)
	}
	claims, ok := parsedToken.Claims.(*JWTClaims)
	if !ok || !parsedToken.Valid {
		return ctx, fmt.Errorf("Invalid or expired token")
	}

	// The token row must still exist: logout and employee deletion revoke
	// tokens that would otherwise verify.
	if _, ftErr := as.tokenRepo.GetByAccessToken(ctx, nil, tokenString); ftErr != nil {
		return ctx, fmt.Errorf("Token has been revoked")
	}

	rd := &requestdata.RequestData{
		RequestID:   uuid.New().String(),
		TokenString: tokenString,
		EmployeeID:  claims.EmployeeID,
		IsAdmin:     claims.IsAdmin,
	}
	return requestdata.WithRequestData(ctx, rd), nil
}

func (as *authService) GetAccessTTL() time.Duration {
	return as.accessTTL
}
