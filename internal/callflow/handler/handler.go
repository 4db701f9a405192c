package handler

import (
	"fmt"
	"net/http"

	"ivr-server/internal/apierrors"
	"ivr-server/internal/callflow/markup"
	"ivr-server/internal/callflow/processor"
	"ivr-server/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	flow           CallFlow
	renderer       *markup.Renderer
	replay         ReplayCache
	callbackNumber string
	logger         *observability.Logger
}

func New(flow CallFlow, renderer *markup.Renderer, replay ReplayCache, callbackNumber string, logger *observability.Logger) Handler {
	return Handler{
		flow:           flow,
		renderer:       renderer,
		replay:         replay,
		callbackNumber: callbackNumber,
		logger:         logger,
	}
}

// HandleStatus handles GET /{appName}
func (h *Handler) HandleStatus(c *gin.Context) {
	c.String(http.StatusOK, fmt.Sprintf("VoiceIt Amazon Connect/Twilio integration Demo. Please try calling %s to test it out.", h.callbackNumber))
}

// HandleWebhook handles POST /{appName}[?param=...&userId=...]
func (h *Handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	event := processor.Event{
		PhoneNumber:  c.PostForm("From"),
		Param:        c.Query("param"),
		UserID:       c.Query("userId"),
		RecordingURL: c.PostForm("RecordingUrl"),
	}
	recordingSid := c.PostForm("RecordingSid")

	if doc, ok := h.replay.Lookup(ctx, recordingSid); ok {
		h.logger.Info(ctx, "answering retried recording callback from replay cache")
		writeTwiML(c, doc)
		return
	}

	reply, err := h.flow.HandleEvent(ctx, event)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	doc, err := h.renderer.Render(reply)
	if err != nil {
		h.logger.Error(ctx, "failed to render reply", err)
		apierrors.RespondWithError(c, apierrors.InternalError(err))
		return
	}

	h.replay.Remember(ctx, recordingSid, doc)
	writeTwiML(c, doc)
}

func writeTwiML(c *gin.Context, doc string) {
	c.Header("Content-Type", "text/xml")
	c.String(http.StatusOK, doc)
}
