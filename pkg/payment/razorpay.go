package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

// Gateway abstracts the checkout provider so services stay testable.
type Gateway interface {
	// CreateOrder registers an order with the provider and returns its id.
	// Amount is in the currency's smallest unit (paise for INR).
	CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]interface{}) (string, error)
}

type RazorpayGateway struct {
	client *razorpay.Client
}

func NewRazorpayGateway(keyID, keySecret string) *RazorpayGateway {
	return &RazorpayGateway{
		client: razorpay.NewClient(keyID, keySecret),
	}
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]interface{}) (string, error) {
	body := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}
	if len(notes) > 0 {
		body["notes"] = notes
	}

	order, err := g.client.Order.Create(body, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create razorpay order: %w", err)
	}

	orderId, ok := order["id"].(string)
	if !ok || orderId == "" {
		return "", fmt.Errorf("razorpay order response missing id")
	}

	return orderId, nil
}

// VerifySignature checks the checkout callback signature: an HMAC-SHA256
// over "orderId|paymentId" keyed with the API secret, hex encoded.
func VerifySignature(orderId, paymentId, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderId + "|" + paymentId))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
