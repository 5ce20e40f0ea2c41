package checkout

import (
	"net/http"

	"log/slog"

	"github.com/admin/ecommerce/checkout-api/internal/domain"
	"github.com/admin/ecommerce/checkout-api/internal/ports/usecase"
	"github.com/gin-gonic/gin"
)

type Controller struct {
	Checkout usecase.ICheckoutUseCase
	Log      *slog.Logger
}

func New(checkout usecase.ICheckoutUseCase, log *slog.Logger) *Controller {
	return &Controller{
		Checkout: checkout,
		Log:      log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	router.POST("/orders", c.handleCreateOrder)
}

type createOrderRequest struct {
	CustomerName    string  `json:"customer_name" binding:"required"`
	CustomerEmail   string  `json:"customer_email" binding:"required,email"`
	CustomerCpfCnpj string  `json:"customer_cpf_cnpj"`
	CustomerPhone   string  `json:"customer_phone"`
	ProductID       string  `json:"product_id" binding:"required"`
	PaymentMethod   string  `json:"payment_method" binding:"required"`
	AsaasPaymentID  *string `json:"asaas_payment_id"`
	UTMSource       *string `json:"utm_source"`
	UTMMedium       *string `json:"utm_medium"`
	UTMCampaign     *string `json:"utm_campaign"`
	UTMTerm         *string `json:"utm_term"`
	UTMContent      *string `json:"utm_content"`
}

func (c *Controller) handleCreateOrder(ctx *gin.Context) {
	var req createOrderRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.Log.Warn("failed to bind create order request",
			"error", err,
		)
		ctx.JSON(http.StatusBadRequest, gin.H{"message": domain.MsgInvalidRequest})
		return
	}

	order, err := c.Checkout.CreateOrder(ctx.Request.Context(), usecase.CreateOrderRequest{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerCpfCnpj: req.CustomerCpfCnpj,
		CustomerPhone:   req.CustomerPhone,
		ProductID:       req.ProductID,
		PaymentMethod:   domain.PaymentMethod(req.PaymentMethod),
		AsaasPaymentID:  req.AsaasPaymentID,
		UTMSource:       req.UTMSource,
		UTMMedium:       req.UTMMedium,
		UTMCampaign:     req.UTMCampaign,
		UTMTerm:         req.UTMTerm,
		UTMContent:      req.UTMContent,
	})
	if err != nil {
		c.Log.Error("failed to create order",
			"error", err,
			"product_id", req.ProductID,
		)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": domain.MsgOrderCreateFailed})
		return
	}

	ctx.JSON(http.StatusCreated, order)
}
