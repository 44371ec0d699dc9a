package usecases

import (
	"context"
	"time"

	"github.com/fangate-io/fangate/internal/domain/credential"
	"github.com/fangate-io/fangate/internal/domain/policy"
	"github.com/fangate-io/fangate/internal/domain/user"
	"github.com/fangate-io/fangate/internal/domain/verification"
	"github.com/fangate-io/fangate/internal/shared/logger"
)

type mockPolicyRepository struct {
	SaveFunc              func(ctx context.Context, p *policy.Policy) error
	FindByCommunityIDFunc func(ctx context.Context, communityID string) (*policy.Policy, error)
	ListFunc              func(ctx context.Context) ([]*policy.Policy, error)
	DeleteFunc            func(ctx context.Context, communityID string) error
}

func (m *mockPolicyRepository) Save(ctx context.Context, p *policy.Policy) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockPolicyRepository) FindByCommunityID(ctx context.Context, communityID string) (*policy.Policy, error) {
	if m.FindByCommunityIDFunc != nil {
		return m.FindByCommunityIDFunc(ctx, communityID)
	}
	return nil, nil
}

func (m *mockPolicyRepository) List(ctx context.Context) ([]*policy.Policy, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *mockPolicyRepository) Delete(ctx context.Context, communityID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, communityID)
	}
	return nil
}

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

type mockLogRepository struct {
	AppendFunc     func(ctx context.Context, entry *verification.LogEntry) error
	FindByUserFunc func(ctx context.Context, userID uint, limit int) ([]*verification.LogEntry, error)
}

func (m *mockLogRepository) Append(ctx context.Context, entry *verification.LogEntry) error {
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, entry)
	}
	return nil
}

func (m *mockLogRepository) FindByUser(ctx context.Context, userID uint, limit int) ([]*verification.LogEntry, error) {
	if m.FindByUserFunc != nil {
		return m.FindByUserFunc(ctx, userID, limit)
	}
	return nil, nil
}

type mockAdapter struct {
	PlatformValue      credential.Platform
	SupportsFunc       func(kind verification.Kind) bool
	CheckFunc          func(ctx context.Context, kind verification.Kind, cred *credential.Credential, target verification.ChannelTarget) verification.CheckOutcome
	ResolveChannelFunc func(ctx context.Context, login string) (string, error)
	RefreshFunc        func(ctx context.Context, cred *credential.Credential) (credential.TokenData, error)
}

func (m *mockAdapter) Platform() credential.Platform {
	return m.PlatformValue
}

func (m *mockAdapter) Supports(kind verification.Kind) bool {
	if m.SupportsFunc != nil {
		return m.SupportsFunc(kind)
	}
	return kind.Platform() == m.PlatformValue
}

func (m *mockAdapter) Check(ctx context.Context, kind verification.Kind, cred *credential.Credential, target verification.ChannelTarget) verification.CheckOutcome {
	if m.CheckFunc != nil {
		return m.CheckFunc(ctx, kind, cred, target)
	}
	return verification.DefinitiveOutcome(true, "")
}

func (m *mockAdapter) ResolveChannel(ctx context.Context, login string) (string, error) {
	if m.ResolveChannelFunc != nil {
		return m.ResolveChannelFunc(ctx, login)
	}
	return "", verification.ErrChannelNotFound
}

func (m *mockAdapter) Refresh(ctx context.Context, cred *credential.Credential) (credential.TokenData, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, cred)
	}
	return credential.TokenData{}, nil
}

type mockApplier struct {
	ApplyFunc func(ctx context.Context, communityID, memberID, roleID string) (bool, error)
}

func (m *mockApplier) Apply(ctx context.Context, communityID, memberID, roleID string) (bool, error) {
	if m.ApplyFunc != nil {
		return m.ApplyFunc(ctx, communityID, memberID, roleID)
	}
	return true, nil
}

type mockRoleMutator struct {
	HasRoleFunc   func(ctx context.Context, communityID, memberID, roleID string) (bool, error)
	GrantRoleFunc func(ctx context.Context, communityID, memberID, roleID string) error
}

func (m *mockRoleMutator) HasRole(ctx context.Context, communityID, memberID, roleID string) (bool, error) {
	if m.HasRoleFunc != nil {
		return m.HasRoleFunc(ctx, communityID, memberID, roleID)
	}
	return false, nil
}

func (m *mockRoleMutator) GrantRole(ctx context.Context, communityID, memberID, roleID string) error {
	if m.GrantRoleFunc != nil {
		return m.GrantRoleFunc(ctx, communityID, memberID, roleID)
	}
	return nil
}

type mockChannelCache struct {
	GetFunc func(ctx context.Context, platform, login string) (string, error)
	SetFunc func(ctx context.Context, platform, login, channelID string) error
}

func (m *mockChannelCache) Get(ctx context.Context, platform, login string) (string, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, platform, login)
	}
	return "", nil
}

func (m *mockChannelCache) Set(ctx context.Context, platform, login, channelID string) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, platform, login, channelID)
	}
	return nil
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
