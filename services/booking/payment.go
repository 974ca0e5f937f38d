package booking

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"

	"trimly/models"
)

// PaymentService collects the booking deposit. The intent is created when
// the session starts so the client secret travels back with the session.
type PaymentService interface {
	CreateDepositIntent(ctx context.Context, session *models.BookingSession) (intentID, clientSecret string, err error)
}

// StripePaymentService charges a fixed deposit per booking through Stripe
// PaymentIntents. The global stripe.Key must be set before use.
type StripePaymentService struct {
	AmountCents int64
	Currency    string
}

func (p *StripePaymentService) CreateDepositIntent(ctx context.Context, session *models.BookingSession) (string, string, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(p.AmountCents),
		Currency: stripe.String(p.Currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata("sessionId", session.ID)
	params.AddMetadata("barberId", session.BarberID)
	params.AddMetadata("branchId", session.BranchID)
	params.AddMetadata("date", session.Date)
	params.AddMetadata("time", session.Time)

	intent, err := paymentintent.New(params)
	if err != nil {
		return "", "", fmt.Errorf("stripe payment intent: %w", err)
	}
	return intent.ID, intent.ClientSecret, nil
}
