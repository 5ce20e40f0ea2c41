package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus is the gateway-reported status stored on the order. Values come
// straight from Asaas; the order column is overwritten with whatever the latest
// webhook reports.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusConfirmed PaymentStatus = "CONFIRMED"
	PaymentStatusReceived  PaymentStatus = "RECEIVED"
	PaymentStatusOverdue   PaymentStatus = "OVERDUE"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
	PaymentStatusCancelled PaymentStatus = "CANCELLED"
)

// PaymentMethod is the method chosen at checkout.
type PaymentMethod string

const (
	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodBoleto     PaymentMethod = "boleto"
	PaymentMethodCreditCard PaymentMethod = "creditCard"
)

// Order is one checkout attempt. Exactly one order exists per gateway payment
// id; the customer and product fields are snapshots taken at checkout time.
type Order struct {
	ID              uuid.UUID     `json:"id" db:"id"`
	CustomerID      string        `json:"customer_id" db:"customer_id"`
	CustomerName    string        `json:"customer_name" db:"customer_name"`
	CustomerEmail   string        `json:"customer_email" db:"customer_email"`
	CustomerCpfCnpj string        `json:"customer_cpf_cnpj" db:"customer_cpf_cnpj"`
	CustomerPhone   string        `json:"customer_phone" db:"customer_phone"`
	ProductID       string        `json:"product_id" db:"product_id"`
	ProductName     string        `json:"product_name" db:"product_name"`
	ProductPrice    float64       `json:"product_price" db:"product_price"`
	Status          PaymentStatus `json:"status" db:"status"`
	PaymentMethod   PaymentMethod `json:"payment_method" db:"payment_method"`
	AsaasPaymentID  *string       `json:"asaas_payment_id,omitempty" db:"asaas_payment_id"`
	UTMSource       *string       `json:"utm_source,omitempty" db:"utm_source"`
	UTMMedium       *string       `json:"utm_medium,omitempty" db:"utm_medium"`
	UTMCampaign     *string       `json:"utm_campaign,omitempty" db:"utm_campaign"`
	UTMTerm         *string       `json:"utm_term,omitempty" db:"utm_term"`
	UTMContent      *string       `json:"utm_content,omitempty" db:"utm_content"`
	CreatedAt       time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at" db:"updated_at"`
}

// DisplayCustomerName tolerates a missing snapshot: a webhook can arrive before
// the order row is visible, and customer-facing text still has to render.
func (o *Order) DisplayCustomerName() string {
	if o == nil || o.CustomerName == "" {
		return FallbackCustomerName
	}
	return o.CustomerName
}

// DisplayProductName tolerates a missing snapshot, same as DisplayCustomerName.
func (o *Order) DisplayProductName() string {
	if o == nil || o.ProductName == "" {
		return FallbackProductName
	}
	return o.ProductName
}

// DisplayPaymentMethod tolerates a missing snapshot.
func (o *Order) DisplayPaymentMethod() string {
	if o == nil || o.PaymentMethod == "" {
		return FallbackPaymentMethod
	}
	return string(o.PaymentMethod)
}
