package domain

import "time"

// Product is a digital product sold at checkout. DeliveryURL is the endpoint
// that grants access once the customer email is appended; products without one
// are fulfilled manually and get no access email.
type Product struct {
	ID          string    `json:"id" db:"id"`
	Name        string    `json:"name" db:"name"`
	Price       float64   `json:"price" db:"price"`
	DeliveryURL *string   `json:"delivery_url,omitempty" db:"delivery_url"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
