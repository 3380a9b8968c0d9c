package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

type mockIntentCreator struct {
	params *stripe.PaymentIntentParams
	intent *stripe.PaymentIntent
	err    error
}

func (m *mockIntentCreator) New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error) {
	m.params = params
	return m.intent, m.err
}

func newTestBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "StripeCB-test",
		MaxRequests: 1,
		Timeout:     time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
	})
}

func TestToMinorUnits(t *testing.T) {
	require.Equal(t, int64(1000), ToMinorUnits(10.00))
	require.Equal(t, int64(50), ToMinorUnits(0.50))
	require.Equal(t, int64(0), ToMinorUnits(0))
	// conversion truncates, it does not round
	require.Equal(t, int64(1998), ToMinorUnits(19.99))
}

func TestCreatePaymentIntentSendsMinorUnits(t *testing.T) {
	intents := &mockIntentCreator{intent: &stripe.PaymentIntent{ClientSecret: "pi_123_secret_456"}}
	service := NewPaymentService(nil, intents, newTestBreaker())

	secret, err := service.CreatePaymentIntent(context.Background(), 10.00)
	require.NoError(t, err)
	require.Equal(t, "pi_123_secret_456", secret)

	require.NotNil(t, intents.params)
	require.Equal(t, int64(1000), *intents.params.Amount)
	require.Equal(t, "usd", *intents.params.Currency)
	require.Len(t, intents.params.PaymentMethodTypes, 1)
	require.Equal(t, "card", *intents.params.PaymentMethodTypes[0])
}

func TestCreatePaymentIntentProcessorErrorPropagates(t *testing.T) {
	intents := &mockIntentCreator{err: errors.New("amount must be positive")}
	service := NewPaymentService(nil, intents, newTestBreaker())

	_, err := service.CreatePaymentIntent(context.Background(), -5)
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to create payment intent")
}

func TestCreatePaymentIntentBreakerOpensAfterConsecutiveFailures(t *testing.T) {
	intents := &mockIntentCreator{err: errors.New("processor down")}
	service := NewPaymentService(nil, intents, newTestBreaker())

	for i := 0; i < 4; i++ {
		_, err := service.CreatePaymentIntent(context.Background(), 10)
		require.Error(t, err)
	}

	// breaker is open now; the call fails without reaching the processor
	intents.params = nil
	_, err := service.CreatePaymentIntent(context.Background(), 10)
	require.Error(t, err)
	require.Nil(t, intents.params)
}
