package handler

import (
	"context"
	"net/http"

	"ivr-server/internal/apierrors"
	"ivr-server/internal/dispatch/processor"
	"ivr-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// Dispatcher picks the next contact flow branch for a caller
type Dispatcher interface {
	Dispatch(ctx context.Context, phoneNumber string) (processor.Branch, error)
}

type Handler struct {
	dispatcher Dispatcher
	logger     *observability.Logger
}

func New(dispatcher Dispatcher, logger *observability.Logger) Handler {
	return Handler{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// ContactEvent is the subset of the Amazon Connect contact flow event we read
type ContactEvent struct {
	Details struct {
		ContactData struct {
			CustomerEndpoint struct {
				Address string `json:"Address" binding:"required"`
			} `json:"CustomerEndpoint"`
		} `json:"ContactData"`
	} `json:"Details"`
}

// DispatchResponse is returned to the contact flow as its attribute map
type DispatchResponse struct {
	Branch processor.Branch `json:"Branch"`
}

// HandleDispatch handles POST /{appName}/dispatch
func (h *Handler) HandleDispatch(c *gin.Context) {
	var event ContactEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	branch, err := h.dispatcher.Dispatch(c.Request.Context(), event.Details.ContactData.CustomerEndpoint.Address)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, DispatchResponse{Branch: branch})
}
