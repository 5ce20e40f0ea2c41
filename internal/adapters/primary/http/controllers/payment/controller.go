package payment

import (
	"errors"
	"net/http"

	"log/slog"

	"github.com/admin/ecommerce/checkout-api/internal/domain"
	"github.com/admin/ecommerce/checkout-api/internal/ports/usecase"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
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
	router.POST("/payments/finalize", c.handleFinalize)
}

type finalizeRequest struct {
	OrderID string `json:"orderId"`
}

func (c *Controller) handleFinalize(ctx *gin.Context) {
	var req finalizeRequest

	if err := ctx.ShouldBindJSON(&req); err != nil || req.OrderID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": domain.MsgOrderIDRequired})
		return
	}

	orderID, err := uuid.Parse(req.OrderID)
	if err != nil {
		// Not a valid internal id, so it cannot match any order.
		ctx.JSON(http.StatusNotFound, gin.H{"message": domain.MsgOrderNotFound})
		return
	}

	if err := c.Reconciler.FinalizeOrder(ctx.Request.Context(), orderID); err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"message": domain.MsgOrderNotFound})
			return
		}
		c.Log.Error("failed to finalize payment",
			"error", err,
			"order_id", orderID,
		)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": domain.MsgPaymentFinalizeFailed})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": domain.MsgPaymentFinalized})
}
