package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Murali-kartheekeyan/skillpath-backend/internal/logger"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/requestdata"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/types"
	"github.com/Murali-kartheekeyan/skillpath-backend/internal/utils"
)

func newAuth(f *testFixture) AuthService {
	return NewAuthService(f.db, logger.NewNop(), f.credentialRepo, f.tokenRepo, "test-secret", time.Hour, 24*time.Hour)
}

func seedCredential(t *testing.T, f *testFixture, username, password string, isAdmin bool) *types.Credential {
	t.Helper()
	roleID := f.seedFrontendRole(t)
	employee := f.createEmployee(t, "Ann Lee", roleID, nil)
	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	credential := &types.Credential{EmployeeID: employee.ID, Username: username, PasswordHash: hash, IsAdmin: isAdmin}
	if err := f.db.Create(credential).Error; err != nil {
		t.Fatalf("seed credential: %v", err)
	}
	return credential
}

func TestLoginRoundTrip(t *testing.T) {
	f := newTestFixture(t)
	credential := seedCredential(t, f, "annlee1", "s3cret", false)
	svc := newAuth(f)

	result, err := svc.Login(context.Background(), "annlee1", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Fatalf("result=%+v, want both tokens", result)
	}
	if result.Role != "employee" || result.EmployeeID != credential.EmployeeID {
		t.Fatalf("result=%+v, want employee role and id %d", result, credential.EmployeeID)
	}

	ctx, err := svc.SetContextFromToken(context.Background(), result.AccessToken)
	if err != nil {
		t.Fatalf("SetContextFromToken: %v", err)
	}
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		t.Fatal("no request data in context")
	}
	if rd.EmployeeID != credential.EmployeeID || rd.IsAdmin {
		t.Fatalf("request data=%+v", rd)
	}
	if rd.TokenString != result.AccessToken {
		t.Fatal("token string not carried in request data")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	f := newTestFixture(t)
	seedCredential(t, f, "annlee1", "s3cret", false)
	svc := newAuth(f)

	cases := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong_password", username: "annlee1", password: "wrong"},
		{name: "unknown_user", username: "nobody", password: "s3cret"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Login(context.Background(), tc.username, tc.password); !errors.Is(err, ErrInvalidCredentials) {
				t.Fatalf("err=%v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	f := newTestFixture(t)
	seedCredential(t, f, "annlee1", "s3cret", false)
	svc := newAuth(f)

	result, err := svc.Login(context.Background(), "annlee1", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	ctx, err := svc.SetContextFromToken(context.Background(), result.AccessToken)
	if err != nil {
		t.Fatalf("SetContextFromToken: %v", err)
	}
	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	// The JWT itself is still unexpired; revocation comes from the deleted row.
	if _, err := svc.SetContextFromToken(context.Background(), result.AccessToken); err == nil {
		t.Fatal("revoked token still accepted")
	}
}

func TestRefreshRotatesTokens(t *testing.T) {
	f := newTestFixture(t)
	credential := seedCredential(t, f, "admin1", "s3cret", true)
	svc := newAuth(f)

	first, err := svc.Login(context.Background(), "admin1", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	second, err := svc.Refresh(context.Background(), first.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if second.RefreshToken == first.RefreshToken {
		t.Fatal("refresh token not rotated")
	}
	if second.Role != "admin" || second.EmployeeID != credential.EmployeeID {
		t.Fatalf("result=%+v, want admin identity preserved", second)
	}

	// The consumed refresh token is single-use.
	if _, err := svc.Refresh(context.Background(), first.RefreshToken); err == nil {
		t.Fatal("consumed refresh token still accepted")
	}

	// Old access token row was deleted with the rotation.
	if _, err := svc.SetContextFromToken(context.Background(), first.AccessToken); err == nil {
		t.Fatal("rotated-out access token still accepted")
	}
	ctx, err := svc.SetContextFromToken(context.Background(), second.AccessToken)
	if err != nil {
		t.Fatalf("SetContextFromToken on new token: %v", err)
	}
	if rd := requestdata.GetRequestData(ctx); rd == nil || !rd.IsAdmin {
		t.Fatalf("request data=%+v, want admin flag", rd)
	}
}
