// Package usecases implements credential maintenance jobs.
package usecases

import (
	"context"
	"fmt"

	"github.com/fangate-io/fangate/internal/domain/credential"
	"github.com/fangate-io/fangate/internal/shared/biztime"
	"github.com/fangate-io/fangate/internal/shared/logger"
)

// SweepExpiredCredentialsUseCase removes credentials whose expiry has
// passed. Credentials without an expiry are never touched.
type SweepExpiredCredentialsUseCase struct {
	credentialRepo credential.Repository
	logger         logger.Interface
}

// NewSweepExpiredCredentialsUseCase creates a new sweep use case
func NewSweepExpiredCredentialsUseCase(
	credentialRepo credential.Repository,
	logger logger.Interface,
) *SweepExpiredCredentialsUseCase {
	return &SweepExpiredCredentialsUseCase{
		credentialRepo: credentialRepo,
		logger:         logger,
	}
}

// Execute runs one sweep and returns the total number of credentials
// removed.
func (uc *SweepExpiredCredentialsUseCase) Execute(ctx context.Context) (int, error) {
	removed, err := uc.credentialRepo.DeleteExpired(ctx, biztime.NowUTC())
	if err != nil {
		return 0, fmt.Errorf("failed to sweep expired credentials: %w", err)
	}

	total := 0
	for platform, count := range removed {
		total += int(count)
		if count > 0 {
			uc.logger.Infow("swept expired credentials",
				"platform", platform,
				"count", count,
			)
		}
	}
	return total, nil
}
