package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fangate-io/fangate/internal/application/policy/dto"
	"github.com/fangate-io/fangate/internal/application/policy/usecases"
	"github.com/fangate-io/fangate/internal/shared/auth"
	"github.com/fangate-io/fangate/internal/shared/logger"
	"github.com/fangate-io/fangate/internal/shared/utils"
)

// PolicyHandler handles HTTP requests for community policy management
type PolicyHandler struct {
	configureUC *usecases.ConfigurePolicyUseCase
	getUC       *usecases.GetPolicyUseCase
	listUC      *usecases.ListPoliciesUseCase
	deleteUC    *usecases.DeletePolicyUseCase
	validateUC  *usecases.ValidatePolicyUseCase
	logger      logger.Interface
}

// NewPolicyHandler creates a new policy handler
func NewPolicyHandler(
	configureUC *usecases.ConfigurePolicyUseCase,
	getUC *usecases.GetPolicyUseCase,
	listUC *usecases.ListPoliciesUseCase,
	deleteUC *usecases.DeletePolicyUseCase,
	validateUC *usecases.ValidatePolicyUseCase,
	logger logger.Interface,
) *PolicyHandler {
	return &PolicyHandler{
		configureUC: configureUC,
		getUC:       getUC,
		listUC:      listUC,
		deleteUC:    deleteUC,
		validateUC:  validateUC,
		logger:      logger,
	}
}

// Configure handles PUT /api/v1/communities/:communityID/policy
func (h *PolicyHandler) Configure(c *gin.Context) {
	var request dto.ConfigurePolicyRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	request.CommunityID = c.Param("communityID")

	if err := utils.ValidateStruct(request); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.configureUC.Execute(c.Request.Context(), request)
	if err != nil {
		h.logger.Errorw("failed to configure policy", "error", err, "community_id", request.CommunityID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Get handles GET /api/v1/communities/:communityID/policy
func (h *PolicyHandler) Get(c *gin.Context) {
	communityID := c.Param("communityID")

	result, err := h.getUC.Execute(c.Request.Context(), communityID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// List handles GET /api/v1/communities
func (h *PolicyHandler) List(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list policies", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"communities": result,
	})
}

// Delete handles DELETE /api/v1/communities/:communityID/policy
func (h *PolicyHandler) Delete(c *gin.Context) {
	var actor auth.MemberPermissions
	if err := c.ShouldBindJSON(&actor); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	request := dto.DeletePolicyRequest{
		CommunityID: c.Param("communityID"),
		Actor:       actor,
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), request); err != nil {
		h.logger.Errorw("failed to delete policy", "error", err, "community_id", request.CommunityID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// Validate handles GET /api/v1/communities/:communityID/policy/validation
func (h *PolicyHandler) Validate(c *gin.Context) {
	communityID := c.Param("communityID")

	result, err := h.validateUC.Execute(c.Request.Context(), communityID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
