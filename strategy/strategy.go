package strategy

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/okanek/patternkit/logger"
)

var (
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)

// Receipt proves a completed payment.
type Receipt struct {
	TransactionID string
	Method        string
	Amount        int64
}

// PaymentMethod is the strategy interface: each method settles an amount in
// its own way.
type PaymentMethod interface {
	Name() string
	Pay(ctx context.Context, amount int64) (Receipt, error)
}

// Gateway charges a card account and returns the gateway transaction id.
// A busy gateway reports ErrGatewayUnavailable, which callers may retry.
type Gateway interface {
	Charge(ctx context.Context, account string, amount int64) (string, error)
}

type CreditCard struct {
	account string
	gateway Gateway
}

func NewCreditCard(account string, gateway Gateway) *CreditCard {
	return &CreditCard{account: account, gateway: gateway}
}

func (c *CreditCard) Name() string {
	return "credit card"
}

func (c *CreditCard) Pay(ctx context.Context, amount int64) (Receipt, error) {
	txn, err := c.gateway.Charge(ctx, c.account, amount)
	if err != nil {
		return Receipt{}, err
	}

	return Receipt{TransactionID: txn, Method: c.Name(), Amount: amount}, nil
}

type Wallet struct {
	balance int64
}

func NewWallet(balance int64) *Wallet {
	return &Wallet{balance: balance}
}

func (w *Wallet) Name() string {
	return "wallet"
}

func (w *Wallet) Balance() int64 {
	return w.balance
}

func (w *Wallet) Pay(ctx context.Context, amount int64) (Receipt, error) {
	if amount > w.balance {
		return Receipt{}, ErrInsufficientFunds
	}

	w.balance -= amount

	return Receipt{TransactionID: uuid.NewString(), Method: w.Name(), Amount: amount}, nil
}

// Checkout settles orders with whichever payment method it currently holds.
// Transient gateway failures are retried with jittered exponential backoff.
type Checkout struct {
	method      PaymentMethod
	logger      logger.Logger
	backoffOpts []exponentialBackoffOptionFunc
}

type CheckoutOption interface {
	apply(*Checkout)
}

type checkoutOptionFunc func(*Checkout)

func (f checkoutOptionFunc) apply(c *Checkout) {
	f(c)
}

// WithLogger sets the logger used around payment attempts.
func WithLogger(l logger.Logger) CheckoutOption {
	return checkoutOptionFunc(func(c *Checkout) {
		c.logger = l
	})
}

// WithMaxAttempts caps how many times a transient gateway failure is retried.
func WithMaxAttempts(n uint8) CheckoutOption {
	return checkoutOptionFunc(func(c *Checkout) {
		c.backoffOpts = append(c.backoffOpts, withMaxAttempt(n))
	})
}

// WithRetryDelays bounds the jittered delay between retries.
func WithRetryDelays(min, max time.Duration) CheckoutOption {
	return checkoutOptionFunc(func(c *Checkout) {
		c.backoffOpts = append(c.backoffOpts, withMinDelay(min), withMaxDelay(max))
	})
}

func withRandom(r randomWrapper) CheckoutOption {
	return checkoutOptionFunc(func(c *Checkout) {
		c.backoffOpts = append(c.backoffOpts, withRandomImp(r))
	})
}

func NewCheckout(method PaymentMethod, opts ...CheckoutOption) *Checkout {
	c := &Checkout{
		method: method,
		logger: logger.NewNop(),
	}

	for _, opt := range opts {
		opt.apply(c)
	}

	return c
}

// SetMethod swaps the payment strategy for subsequent orders.
func (c *Checkout) SetMethod(method PaymentMethod) {
	c.method = method
}

// Pay settles the amount with the current method. Only gateway unavailability
// is retried; business failures such as insufficient funds surface at once.
func (c *Checkout) Pay(ctx context.Context, amount int64) (Receipt, error) {
	var receipt Receipt

	eb := newExponentialBackoff(c.backoffOpts...)
	op := func() error {
		r, err := c.method.Pay(ctx, amount)
		if err != nil {
			c.logger.Warn("Payment attempt failed", logger.LogContext{
				"method": c.method.Name(),
				"error":  err.Error(),
			})
			return err
		}
		receipt = r
		return nil
	}

	err := retry(ctx, op, eb, func(err error) bool {
		return errors.Is(err, ErrGatewayUnavailable)
	})
	if err != nil {
		return Receipt{}, err
	}

	c.logger.Info("Payment settled", logger.LogContext{
		"method":      receipt.Method,
		"amount":      receipt.Amount,
		"transaction": receipt.TransactionID,
	})

	return receipt, nil
}
