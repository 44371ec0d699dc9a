package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fangate-io/fangate/internal/application/verification/dto"
	"github.com/fangate-io/fangate/internal/application/verification/usecases"
	"github.com/fangate-io/fangate/internal/shared/logger"
	"github.com/fangate-io/fangate/internal/shared/utils"
)

// VerificationHandler handles HTTP requests for member verification
type VerificationHandler struct {
	verifyUC  *usecases.VerifyMemberUseCase
	historyUC *usecases.GetHistoryUseCase
	logger    logger.Interface
}

// NewVerificationHandler creates a new verification handler
func NewVerificationHandler(
	verifyUC *usecases.VerifyMemberUseCase,
	historyUC *usecases.GetHistoryUseCase,
	logger logger.Interface,
) *VerificationHandler {
	return &VerificationHandler{
		verifyUC:  verifyUC,
		historyUC: historyUC,
		logger:    logger,
	}
}

// Verify handles POST /api/v1/communities/:communityID/members/:memberID/verify
func (h *VerificationHandler) Verify(c *gin.Context) {
	request := dto.VerifyMemberRequest{
		CommunityID: c.Param("communityID"),
		MemberID:    c.Param("memberID"),
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.verifyUC.Execute(c.Request.Context(), request)
	if err != nil {
		h.logger.Warnw("verification failed",
			"community_id", request.CommunityID,
			"member_id", request.MemberID,
			"error", err,
		)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// History handles GET /api/v1/members/:memberID/history
func (h *VerificationHandler) History(c *gin.Context) {
	memberID := c.Param("memberID")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	result, err := h.historyUC.Execute(c.Request.Context(), memberID, limit)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
