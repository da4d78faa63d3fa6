// FILE: internal/dto/payment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type PlanDTO struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Price       int    `json:"price"` // rupees
	Currency    string `json:"currency"`
	DurationMos int    `json:"duration_months"`
}

type CreateOrderRequest struct {
	Plan string `json:"plan" validate:"required,oneof=6_months 1_year"`
}

type CreateOrderResponse struct {
	OrderId  string `json:"order_id"`
	Amount   int64  `json:"amount"` // paise, as the checkout widget expects
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	KeyId    string `json:"key_id"`
}

type VerifyPaymentRequest struct {
	OrderId   string `json:"razorpay_order_id" validate:"required"`
	PaymentId string `json:"razorpay_payment_id" validate:"required"`
	Signature string `json:"razorpay_signature" validate:"required"`
}

type VerifyPaymentResponse struct {
	Status        string     `json:"status"`
	Plan          string     `json:"plan"`
	PremiumExpiry *time.Time `json:"premium_expiry,omitempty"`
}

type PaymentHistoryDTO struct {
	Id        uuid.UUID `json:"id"`
	OrderId   string    `json:"order_id"`
	Plan      string    `json:"plan"`
	Amount    int       `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
