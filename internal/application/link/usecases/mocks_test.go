package usecases

import (
	"context"
	"time"

	"github.com/fangate-io/fangate/internal/domain/credential"
	"github.com/fangate-io/fangate/internal/domain/user"
	"github.com/fangate-io/fangate/internal/shared/logger"
)

type mockUserRepository struct {
	UpsertFunc         func(ctx context.Context, u *user.User) error
	FindByMemberIDFunc func(ctx context.Context, memberID string) (*user.User, error)
	FindByIDFunc       func(ctx context.Context, id uint) (*user.User, error)
}

func (m *mockUserRepository) Upsert(ctx context.Context, u *user.User) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByMemberID(ctx context.Context, memberID string) (*user.User, error) {
	if m.FindByMemberIDFunc != nil {
		return m.FindByMemberIDFunc(ctx, memberID)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

type mockCredentialRepository struct {
	SaveFunc                  func(ctx context.Context, c *credential.Credential) error
	FindByUserAndPlatformFunc func(ctx context.Context, userID uint, platform credential.Platform) (*credential.Credential, error)
	DeleteFunc                func(ctx context.Context, userID uint, platform credential.Platform) error
	DeleteAllForUserFunc      func(ctx context.Context, userID uint) error
	DeleteExpiredFunc         func(ctx context.Context, cutoff time.Time) (map[credential.Platform]int64, error)
}

func (m *mockCredentialRepository) Save(ctx context.Context, c *credential.Credential) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCredentialRepository) FindByUserAndPlatform(ctx context.Context, userID uint, platform credential.Platform) (*credential.Credential, error) {
	if m.FindByUserAndPlatformFunc != nil {
		return m.FindByUserAndPlatformFunc(ctx, userID, platform)
	}
	return nil, nil
}

func (m *mockCredentialRepository) Delete(ctx context.Context, userID uint, platform credential.Platform) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, userID, platform)
	}
	return nil
}

func (m *mockCredentialRepository) DeleteAllForUser(ctx context.Context, userID uint) error {
	if m.DeleteAllForUserFunc != nil {
		return m.DeleteAllForUserFunc(ctx, userID)
	}
	return nil
}

func (m *mockCredentialRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (map[credential.Platform]int64, error) {
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx, cutoff)
	}
	return nil, nil
}

type mockOAuthProvider struct {
	AuthURLFunc  func(state string) string
	ExchangeFunc func(ctx context.Context, code string) (credential.TokenData, error)
}

func (m *mockOAuthProvider) AuthURL(state string) string {
	if m.AuthURLFunc != nil {
		return m.AuthURLFunc(state)
	}
	return "https://example.com/authorize?state=" + state
}

func (m *mockOAuthProvider) Exchange(ctx context.Context, code string) (credential.TokenData, error) {
	if m.ExchangeFunc != nil {
		return m.ExchangeFunc(ctx, code)
	}
	return credential.TokenData{AccessToken: "access-token"}, nil
}

type mockStateStore struct {
	SetFunc          func(ctx context.Context, state, memberID, displayName, platform string) error
	VerifyAndGetFunc func(ctx context.Context, state string) (string, string, string, error)
}

func (m *mockStateStore) Set(ctx context.Context, state, memberID, displayName, platform string) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, state, memberID, displayName, platform)
	}
	return nil
}

func (m *mockStateStore) VerifyAndGet(ctx context.Context, state string) (memberID, displayName, platform string, err error) {
	if m.VerifyAndGetFunc != nil {
		return m.VerifyAndGetFunc(ctx, state)
	}
	return "", "", "", nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
