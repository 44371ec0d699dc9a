package usecases

import (
	"context"

	"github.com/fangate-io/fangate/internal/domain/policy"
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

type mockChannelResolver struct {
	ResolveChannelFunc func(ctx context.Context, login string) (string, error)
}

func (m *mockChannelResolver) ResolveChannel(ctx context.Context, login string) (string, error) {
	if m.ResolveChannelFunc != nil {
		return m.ResolveChannelFunc(ctx, login)
	}
	return "", nil
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
