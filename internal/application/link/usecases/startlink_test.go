package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fangate-io/fangate/internal/application/link/dto"
	"github.com/fangate-io/fangate/internal/domain/credential"
	"github.com/fangate-io/fangate/internal/shared/errors"
)

func TestStartLinkUseCase_Execute(t *testing.T) {
	providers := map[credential.Platform]OAuthProvider{
		credential.PlatformYouTube: &mockOAuthProvider{},
	}

	t.Run("stores pending link and returns auth url", func(t *testing.T) {
		var storedState, storedMember, storedPlatform string
		stateStore := &mockStateStore{
			SetFunc: func(ctx context.Context, state, memberID, displayName, platform string) error {
				storedState = state
				storedMember = memberID
				storedPlatform = platform
				return nil
			},
		}

		uc := NewStartLinkUseCase(providers, stateStore, 10*time.Minute, &mockLogger{})
		response, err := uc.Execute(context.Background(), dto.StartLinkRequest{
			MemberID:    "member-1",
			DisplayName: "Tester",
			Platform:    "youtube",
		})

		require.NoError(t, err)
		assert.Equal(t, "member-1", storedMember)
		assert.Equal(t, "youtube", storedPlatform)
		assert.NotEmpty(t, storedState)
		assert.Contains(t, response.AuthURL, storedState)
		assert.Equal(t, 600, response.ExpiresInSeconds)
	})

	t.Run("states are unguessable and unique", func(t *testing.T) {
		states := map[string]bool{}
		stateStore := &mockStateStore{
			SetFunc: func(ctx context.Context, state, memberID, displayName, platform string) error {
				states[state] = true
				return nil
			},
		}

		uc := NewStartLinkUseCase(providers, stateStore, 10*time.Minute, &mockLogger{})
		for i := 0; i < 5; i++ {
			_, err := uc.Execute(context.Background(), dto.StartLinkRequest{
				MemberID: "member-1",
				Platform: "youtube",
			})
			require.NoError(t, err)
		}
		assert.Len(t, states, 5)
	})

	t.Run("rejects unsupported platform", func(t *testing.T) {
		uc := NewStartLinkUseCase(providers, &mockStateStore{}, 10*time.Minute, &mockLogger{})
		_, err := uc.Execute(context.Background(), dto.StartLinkRequest{
			MemberID: "member-1",
			Platform: "vimeo",
		})

		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("rejects unconfigured platform", func(t *testing.T) {
		uc := NewStartLinkUseCase(providers, &mockStateStore{}, 10*time.Minute, &mockLogger{})
		_, err := uc.Execute(context.Background(), dto.StartLinkRequest{
			MemberID: "member-1",
			Platform: "twitch",
		})

		assert.True(t, errors.IsValidationError(err))
	})

	t.Run("requires a member ID", func(t *testing.T) {
		uc := NewStartLinkUseCase(providers, &mockStateStore{}, 10*time.Minute, &mockLogger{})
		_, err := uc.Execute(context.Background(), dto.StartLinkRequest{Platform: "youtube"})

		assert.True(t, errors.IsValidationError(err))
	})
}
