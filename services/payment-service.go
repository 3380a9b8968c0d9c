package services

import (
	"context"
	"fmt"

	"github.com/abdulaziz1812/micro-tasker-server/models"

	"github.com/sony/gobreaker"
	"github.com/stripe/stripe-go/v76"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentIntentCreator is the slice of the Stripe client the service needs.
// *paymentintent.Client satisfies it.
type PaymentIntentCreator interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type PaymentService struct {
	paymentCollection *mongo.Collection
	intents           PaymentIntentCreator
	stripeBreaker     *gobreaker.CircuitBreaker
}

func NewPaymentService(paymentCollection *mongo.Collection, intents PaymentIntentCreator, stripeBreaker *gobreaker.CircuitBreaker) *PaymentService {
	return &PaymentService{
		paymentCollection: paymentCollection,
		intents:           intents,
		stripeBreaker:     stripeBreaker,
	}
}

// ToMinorUnits converts a decimal price to integer minor units (cents),
// truncating toward zero.
func ToMinorUnits(price float64) int64 {
	return int64(price * 100)
}

// CreatePaymentIntent requests a card payment intent in USD and returns the
// intent's client secret. The amount is not validated; Stripe rejects what
// it cannot charge.
func (s *PaymentService) CreatePaymentIntent(ctx context.Context, price float64) (string, error) {
	params := &stripe.PaymentIntentParams{
		Params:             stripe.Params{Context: ctx},
		Amount:             stripe.Int64(ToMinorUnits(price)),
		Currency:           stripe.String(string(stripe.CurrencyUSD)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	result, err := s.stripeBreaker.Execute(func() (interface{}, error) {
		return s.intents.New(params)
	})
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %v", err)
	}

	intent := result.(*stripe.PaymentIntent)
	return intent.ClientSecret, nil
}

// RecordPayment persists a payment record. The record is not tied to a
// confirmed charge; confirmation happens on the client side.
func (s *PaymentService) RecordPayment(ctx context.Context, payment models.Payment) (*mongo.InsertOneResult, error) {
	result, err := s.paymentCollection.InsertOne(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("failed to record payment: %v", err)
	}
	return result, nil
}

func (s *PaymentService) GetPaymentsByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	cursor, err := s.paymentCollection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve payments: %v", err)
	}
	defer cursor.Close(ctx)

	payments := []models.Payment{}
	for cursor.Next(ctx) {
		var payment models.Payment
		if err := cursor.Decode(&payment); err != nil {
			return nil, fmt.Errorf("failed to decode payment: %v", err)
		}
		payments = append(payments, payment)
	}

	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %v", err)
	}

	return payments, nil
}
