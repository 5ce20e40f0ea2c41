package webhook

import (
	"errors"
	"io"
	"net/http"

	"log/slog"

	"github.com/admin/ecommerce/checkout-api/internal/domain"
	"github.com/admin/ecommerce/checkout-api/internal/ports/usecase"
	"github.com/gin-gonic/gin"
)

type Controller struct {
	Reconciler usecase.IReconcilerUseCase
	Log        *slog.Logger
}

func New(reconciler usecase.IReconcilerUseCase, log *slog.Logger) *Controller {
	return &Controller{
		Reconciler: reconciler,
		Log:        log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	router.POST("/webhooks/asaas", c.handleAsaasWebhook)
}

func (c *Controller) handleAsaasWebhook(ctx *gin.Context) {
	var event domain.WebhookEvent

	if err := ctx.ShouldBindJSON(&event); err != nil {
		if errors.Is(err, io.EOF) {
			// Gateway health checks ping with an empty body.
			ctx.JSON(http.StatusOK, gin.H{"message": domain.MsgWebhookProcessed})
			return
		}
		// A malformed payload is dropped; only the status code reports it and
		// the gateway does not retry on this path.
		c.Log.Error("failed to parse webhook payload",
			"error", err,
		)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": domain.MsgInternalError})
		return
	}

	if err := c.Reconciler.ProcessEvent(ctx.Request.Context(), &event); err != nil {
		c.Log.Error("failed to process webhook",
			"error", err,
			"event", event.Event,
		)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": domain.MsgWebhookFailed})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": domain.MsgWebhookProcessed})
}
