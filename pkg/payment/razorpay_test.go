package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func signFor(orderId, paymentId, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderId + "|" + paymentId))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignature_Valid(t *testing.T) {
	secret := "test_secret_key"
	orderId := "order_MkWz8jN5q2X1ab"
	paymentId := "pay_MkX0cD7eF3Y2cd"

	sig := signFor(orderId, paymentId, secret)

	assert.True(t, VerifySignature(orderId, paymentId, sig, secret))
}

func TestVerifySignature_Tampered(t *testing.T) {
	secret := "test_secret_key"
	sig := signFor("order_a", "pay_b", secret)

	assert.False(t, VerifySignature("order_a", "pay_other", sig, secret), "payment id swap must fail")
	assert.False(t, VerifySignature("order_other", "pay_b", sig, secret), "order id swap must fail")
	assert.False(t, VerifySignature("order_a", "pay_b", sig, "wrong_secret"), "wrong secret must fail")
}

func TestVerifySignature_MalformedSignature(t *testing.T) {
	assert.False(t, VerifySignature("order_a", "pay_b", "", "secret"))
	assert.False(t, VerifySignature("order_a", "pay_b", "not-hex", "secret"))
}
