package services

import (
	"context"
	"fmt"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

// CheckoutSession is what the hosted gateway hands back for a new
// transaction.
type CheckoutSession struct {
	Token       string
	RedirectURL string
}

// CheckoutGateway opens hosted checkout sessions with the payment
// provider.
type CheckoutGateway interface {
	CreateSession(ctx context.Context, orderID string, amount float64, name, email string) (*CheckoutSession, error)
}

// ===== MIDTRANS SNAP =====

type midtransGateway struct {
	client snap.Client
}

// NewMidtransGateway builds a Snap client against the sandbox or
// production environment.
func NewMidtransGateway(serverKey string, production bool) CheckoutGateway {
	g := &midtransGateway{}
	env := midtrans.Sandbox
	if production {
		env = midtrans.Production
	}
	g.client.New(serverKey, env)
	return g
}

func (g *midtransGateway) CreateSession(ctx context.Context, orderID string, amount float64, name, email string) (*CheckoutSession, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: int64(amount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: name,
			Email: email,
		},
	}

	resp, err := g.client.CreateTransaction(req)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &CheckoutSession{
		Token:       resp.Token,
		RedirectURL: resp.RedirectURL,
	}, nil
}

// ===== STUB =====

// stubGateway is used when no gateway credentials are configured. The
// client receives a reference only and settles payment out of band.
type stubGateway struct{}

func NewStubGateway() CheckoutGateway {
	return stubGateway{}
}

func (stubGateway) CreateSession(ctx context.Context, orderID string, amount float64, name, email string) (*CheckoutSession, error) {
	return &CheckoutSession{}, nil
}
