package v1

import (
	"net/http"

	"farmatch-backend/internal/delivery/http/response"
	"farmatch-backend/internal/domain"
	"farmatch-backend/pkg/apperror"
	"farmatch-backend/pkg/farcaster"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	frameUC domain.FrameUsecase
}

func NewWebhookHandler(public *gin.RouterGroup, frameUC domain.FrameUsecase) {
	handler := &WebhookHandler{frameUC: frameUC}

	public.POST("/webhook", handler.ReceiveEvent)
}

// ReceiveEvent godoc
// @Summary      Mini-app webhook
// @Description  Receives frame added/removed and notification toggle events from the Farcaster client.
// @Tags         frame
// @Accept       json
// @Produce      json
// @Param        event  body      farcaster.SignedMessage  true  "JSON Farcaster Signature envelope"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Router       /webhook [post]
func (h *WebhookHandler) ReceiveEvent(c *gin.Context) {
	var msg farcaster.SignedMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	header, payload, err := msg.Decode()
	if err != nil {
		c.Error(apperror.BadRequest("Malformed webhook event"))
		return
	}

	event := &domain.FrameEvent{FID: header.FID, Event: payload.Event}
	if d := payload.NotificationDetails; d != nil {
		event.NotificationDetails = &domain.NotificationDetails{URL: d.URL, Token: d.Token}
	}

	if err := h.frameUC.HandleEvent(c.Request.Context(), event); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Event processed", gin.H{"event": event.Event, "fid": event.FID})
}
