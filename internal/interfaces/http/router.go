// Package http wires the HTTP surface: repositories, use cases, handlers,
// middleware, and routes.
package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	credentialUsecases "github.com/fangate-io/fangate/internal/application/credential/usecases"
	linkUsecases "github.com/fangate-io/fangate/internal/application/link/usecases"
	policyUsecases "github.com/fangate-io/fangate/internal/application/policy/usecases"
	verificationUsecases "github.com/fangate-io/fangate/internal/application/verification/usecases"
	"github.com/fangate-io/fangate/internal/domain/credential"
	"github.com/fangate-io/fangate/internal/domain/verification"
	infraAuth "github.com/fangate-io/fangate/internal/infrastructure/auth"
	"github.com/fangate-io/fangate/internal/infrastructure/cache"
	"github.com/fangate-io/fangate/internal/infrastructure/chatplatform"
	"github.com/fangate-io/fangate/internal/infrastructure/config"
	"github.com/fangate-io/fangate/internal/infrastructure/platform"
	"github.com/fangate-io/fangate/internal/infrastructure/repository"
	"github.com/fangate-io/fangate/internal/interfaces/http/handlers"
	"github.com/fangate-io/fangate/internal/interfaces/http/middleware"
	"github.com/fangate-io/fangate/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	engine              *gin.Engine
	healthHandler       *handlers.HealthHandler
	linkHandler         *handlers.LinkHandler
	policyHandler       *handlers.PolicyHandler
	verificationHandler *handlers.VerificationHandler
	authMiddleware      *middleware.AuthMiddleware
	logger              logger.Interface

	// SweepUseCase is exposed for the janitor job registration.
	SweepUseCase *credentialUsecases.SweepExpiredCredentialsUseCase
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) *Router {
	engine := gin.New()

	userRepo := repository.NewUserRepository(db)
	credentialRepo := repository.NewCredentialRepository(db)
	policyRepo := repository.NewPolicyRepository(db)
	logRepo := repository.NewVerificationLogRepository(db)

	stateTTL := time.Duration(cfg.Verification.LinkStateTTLMinutes) * time.Minute
	stateStore := cache.NewLinkStateStore(redisClient, "link:state:", stateTTL)
	channelCache := cache.NewChannelCache(redisClient,
		time.Duration(cfg.Verification.ChannelCacheTTLHours)*time.Hour)

	youtubeAdapter := platform.NewYouTubeAdapter(cfg.OAuth.YouTube)
	twitchAdapter := platform.NewTwitchAdapter(cfg.OAuth.Twitch)

	providers := map[credential.Platform]linkUsecases.OAuthProvider{
		credential.PlatformYouTube: youtubeAdapter,
		credential.PlatformTwitch:  twitchAdapter,
	}
	adapters := map[credential.Platform]verification.Adapter{
		credential.PlatformYouTube: youtubeAdapter,
		credential.PlatformTwitch:  twitchAdapter,
	}

	roleClient := chatplatform.NewRoleClient(cfg.ChatPlatform)

	startLinkUC := linkUsecases.NewStartLinkUseCase(providers, stateStore, stateTTL, log)
	completeLinkUC := linkUsecases.NewCompleteLinkUseCase(stateStore, providers, userRepo, credentialRepo, log)
	disconnectUC := linkUsecases.NewDisconnectPlatformUseCase(userRepo, credentialRepo, log)
	linkStatusUC := linkUsecases.NewGetLinkStatusUseCase(userRepo, credentialRepo, log)

	configurePolicyUC := policyUsecases.NewConfigurePolicyUseCase(policyRepo, twitchAdapter, log)
	getPolicyUC := policyUsecases.NewGetPolicyUseCase(policyRepo, log)
	listPoliciesUC := policyUsecases.NewListPoliciesUseCase(policyRepo, log)
	deletePolicyUC := policyUsecases.NewDeletePolicyUseCase(policyRepo, log)
	validatePolicyUC := policyUsecases.NewValidatePolicyUseCase(policyRepo, log)

	applyUC := verificationUsecases.NewApplyEntitlementUseCase(roleClient, log)
	verifyUC := verificationUsecases.NewVerifyMemberUseCase(
		policyRepo, userRepo, credentialRepo, logRepo,
		adapters, applyUC, channelCache,
		time.Duration(cfg.Verification.CheckTimeoutSeconds)*time.Second,
		log,
	)
	historyUC := verificationUsecases.NewGetHistoryUseCase(userRepo, logRepo, log)

	sweepUC := credentialUsecases.NewSweepExpiredCredentialsUseCase(credentialRepo, log)

	tokens := infraAuth.NewServiceTokenManager(
		cfg.Auth.ServiceTokenSecret,
		time.Duration(cfg.Auth.ServiceTokenTTL)*time.Hour,
	)

	return &Router{
		engine:              engine,
		healthHandler:       handlers.NewHealthHandler(),
		linkHandler:         handlers.NewLinkHandler(startLinkUC, completeLinkUC, disconnectUC, linkStatusUC, log),
		policyHandler:       handlers.NewPolicyHandler(configurePolicyUC, getPolicyUC, listPoliciesUC, deletePolicyUC, validatePolicyUC, log),
		verificationHandler: handlers.NewVerificationHandler(verifyUC, historyUC, log),
		authMiddleware:      middleware.NewAuthMiddleware(tokens, log),
		logger:              log,
		SweepUseCase:        sweepUC,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.engine.GET("/health", r.healthHandler.Check)

	// Browser-facing OAuth redirect target; no service token here.
	r.engine.GET("/api/auth/:platform/callback", r.linkHandler.Callback)

	api := r.engine.Group("/api/v1")
	api.Use(r.authMiddleware.RequireServiceToken())
	{
		api.POST("/links", r.linkHandler.StartLink)
		api.GET("/members/:memberID/links", r.linkHandler.GetStatus)
		api.DELETE("/members/:memberID/links", r.linkHandler.Disconnect)
		api.GET("/members/:memberID/history", r.verificationHandler.History)

		api.GET("/communities", r.policyHandler.List)
		api.PUT("/communities/:communityID/policy", r.policyHandler.Configure)
		api.GET("/communities/:communityID/policy", r.policyHandler.Get)
		api.DELETE("/communities/:communityID/policy", r.policyHandler.Delete)
		api.GET("/communities/:communityID/policy/validation", r.policyHandler.Validate)

		api.POST("/communities/:communityID/members/:memberID/verify", r.verificationHandler.Verify)
	}
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
