package handlers

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"

	"github.com/fangate-io/fangate/internal/application/link/dto"
	"github.com/fangate-io/fangate/internal/application/link/usecases"
	"github.com/fangate-io/fangate/internal/shared/logger"
	"github.com/fangate-io/fangate/internal/shared/utils"
)

// callbackPage is the page shown in the member's browser after the OAuth
// redirect. It is a dead end on purpose: the flow continues in chat.
var callbackPage = template.Must(template.New("callback").Parse(`<!DOCTYPE html>
<html>
<head><title>Account Link</title></head>
<body style="font-family: sans-serif; text-align: center; padding-top: 4em;">
{{if .Success}}
<h1>&#9989; {{.Platform}} account linked</h1>
<p>Thanks{{if .DisplayName}}, {{.DisplayName}}{{end}}! You can close this window and return to chat.</p>
{{else}}
<h1>&#10060; Link failed</h1>
<p>{{.Message}} You can close this window and try again from chat.</p>
{{end}}
</body>
</html>`))

type callbackPageData struct {
	Success     bool
	Platform    string
	DisplayName string
	Message     string
}

// LinkHandler handles HTTP requests for the account link flow
type LinkHandler struct {
	startLinkUC  *usecases.StartLinkUseCase
	completeUC   *usecases.CompleteLinkUseCase
	disconnectUC *usecases.DisconnectPlatformUseCase
	statusUC     *usecases.GetLinkStatusUseCase
	sanitizer    *bluemonday.Policy
	logger       logger.Interface
}

// NewLinkHandler creates a new link handler
func NewLinkHandler(
	startLinkUC *usecases.StartLinkUseCase,
	completeUC *usecases.CompleteLinkUseCase,
	disconnectUC *usecases.DisconnectPlatformUseCase,
	statusUC *usecases.GetLinkStatusUseCase,
	logger logger.Interface,
) *LinkHandler {
	return &LinkHandler{
		startLinkUC:  startLinkUC,
		completeUC:   completeUC,
		disconnectUC: disconnectUC,
		statusUC:     statusUC,
		sanitizer:    bluemonday.StrictPolicy(),
		logger:       logger,
	}
}

// StartLink handles POST /api/v1/links
func (h *LinkHandler) StartLink(c *gin.Context) {
	var request dto.StartLinkRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result, err := h.startLinkUC.Execute(c.Request.Context(), request)
	if err != nil {
		h.logger.Errorw("failed to start link", "error", err, "member_id", request.MemberID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Callback handles GET /api/auth/:platform/callback
// This is the browser-facing OAuth redirect target, so it renders HTML
// instead of the JSON envelope.
func (h *LinkHandler) Callback(c *gin.Context) {
	platform := c.Param("platform")

	if errCode := c.Query("error"); errCode != "" {
		h.logger.Warnw("authorization denied by member", "platform", platform, "error", errCode)
		h.renderCallback(c, http.StatusBadRequest, callbackPageData{
			Message: "The authorization was cancelled.",
		})
		return
	}

	request := dto.CompleteLinkRequest{
		State: c.Query("state"),
		Code:  c.Query("code"),
	}

	result, err := h.completeUC.Execute(c.Request.Context(), request)
	if err != nil {
		h.logger.Warnw("failed to complete link", "platform", platform, "error", err)
		h.renderCallback(c, http.StatusBadRequest, callbackPageData{
			Message: "The link could not be completed.",
		})
		return
	}

	h.renderCallback(c, http.StatusOK, callbackPageData{
		Success:     true,
		Platform:    result.Platform,
		DisplayName: h.sanitizer.Sanitize(result.DisplayName),
	})
}

// GetStatus handles GET /api/v1/members/:memberID/links
func (h *LinkHandler) GetStatus(c *gin.Context) {
	memberID := c.Param("memberID")

	result, err := h.statusUC.Execute(c.Request.Context(), memberID)
	if err != nil {
		h.logger.Errorw("failed to get link status", "error", err, "member_id", memberID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// Disconnect handles DELETE /api/v1/members/:memberID/links
// An optional platform query parameter limits the disconnect to one
// platform; without it every credential is removed.
func (h *LinkHandler) Disconnect(c *gin.Context) {
	request := dto.DisconnectRequest{
		MemberID: c.Param("memberID"),
		Platform: c.Query("platform"),
	}

	if err := h.disconnectUC.Execute(c.Request.Context(), request); err != nil {
		h.logger.Errorw("failed to disconnect", "error", err, "member_id", request.MemberID)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func (h *LinkHandler) renderCallback(c *gin.Context, status int, data callbackPageData) {
	c.Status(status)
	c.Header("Content-Type", "text/html; charset=utf-8")
	if err := callbackPage.Execute(c.Writer, data); err != nil {
		h.logger.Errorw("failed to render callback page", "error", err)
	}
}
