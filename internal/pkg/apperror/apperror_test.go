package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromError(t *testing.T) {
	t.Run("direct", func(t *testing.T) {
		err := NotFound("post not found")
		appErr, ok := FromError(err)
		require.True(t, ok)
		assert.Equal(t, KindNotFound, appErr.Kind)
	})

	t.Run("wrapped in a chain", func(t *testing.T) {
		inner := PremiumRequired()
		err := fmt.Errorf("send failed: %w", inner)
		appErr, ok := FromError(err)
		require.True(t, ok)
		assert.Equal(t, KindPremiumRequired, appErr.Kind)
	})

	t.Run("plain error", func(t *testing.T) {
		_, ok := FromError(errors.New("boom"))
		assert.False(t, ok)
	})
}

func TestMetaCarriesStatus(t *testing.T) {
	err := Conflict("a request for this post already exists", "accepted")
	assert.Equal(t, "accepted", err.Meta["current_status"])

	err = AlreadyProcessed("request has already been processed", "rejected")
	assert.Equal(t, "rejected", err.Meta["current_status"])
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("dial tcp refused")
	err := Wrap(cause, "failed to create payment order")
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "failed to create payment order")
	assert.Contains(t, err.Error(), "dial tcp refused")
}

func TestHTTPStatus(t *testing.T) {
	cases := map[Kind]int{
		KindUnauthenticated:  fiber.StatusUnauthorized,
		KindForbidden:        fiber.StatusForbidden,
		KindPremiumRequired:  fiber.StatusForbidden,
		KindNotFound:         fiber.StatusNotFound,
		KindConflict:         fiber.StatusConflict,
		KindInvalidInput:     fiber.StatusBadRequest,
		KindSelfRequest:      fiber.StatusBadRequest,
		KindAlreadyProcessed: fiber.StatusBadRequest,
		KindInvalidSignature: fiber.StatusBadRequest,
		KindUnexpected:       fiber.StatusInternalServerError,
	}
	for kind, want := range cases {
		assert.Equal(t, want, HTTPStatus(kind), string(kind))
	}
}
