package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusCreated PaymentStatus = "created"
	PaymentStatusSuccess PaymentStatus = "success"
)

// Payment records one checkout attempt with the gateway. OrderId is the
// gateway order identifier and is unique per row.
type Payment struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	OrderId   string
	PaymentId *string
	Plan      SubscriptionPlan
	Amount    int // rupees
	Currency  string
	Receipt   string
	Status    PaymentStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PlanPriceRupees returns the catalog price for a plan, or false for an
// unknown plan code.
func PlanPriceRupees(plan SubscriptionPlan) (int, bool) {
	switch plan {
	case PlanSixMonths:
		return 399, true
	case PlanOneYear:
		return 599, true
	default:
		return 0, false
	}
}

// PlanExpiry computes the calendar-based entitlement expiry from the
// moment of activation.
func PlanExpiry(plan SubscriptionPlan, from time.Time) time.Time {
	if plan == PlanOneYear {
		return from.AddDate(1, 0, 0)
	}
	return from.AddDate(0, 6, 0)
}
