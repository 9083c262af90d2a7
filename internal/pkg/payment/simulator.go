// internal/pkg/payment/simulator.go
package payment

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/velvet-vogue/storefront-backend/internal/config"
)

// ErrDeclined is returned when the simulated gateway declines a payment
var ErrDeclined = errors.New("payment declined")

// Receipt is the gateway's record of a captured payment
type Receipt struct {
	TransactionID string    `json:"transaction_id"`
	Amount        int64     `json:"amount"`
	Method        string    `json:"method"`
	CapturedAt    time.Time `json:"captured_at"`
}

// Processor captures a payment for an amount in pence
type Processor interface {
	Process(ctx context.Context, amount int64, method string) (*Receipt, error)
}

// Simulator stands in for a real payment gateway: it waits for a
// configured delay and then succeeds with a configured probability.
// There is no retry and no recovery; a decline is surfaced immediately.
type Simulator struct {
	successPercent int
	delay          time.Duration
	intn           func(n int) int
	now            func() time.Time
}

// NewSimulator creates a simulator from configuration
func NewSimulator(cfg config.PaymentConfig) *Simulator {
	return &Simulator{
		successPercent: cfg.SuccessPercent,
		delay:          cfg.Delay,
		intn:           rand.Intn,
		now:            func() time.Time { return time.Now().UTC() },
	}
}

// Process simulates capturing a payment. The delay respects context
// cancellation; the outcome is a coin flip weighted by SuccessPercent.
func (s *Simulator) Process(ctx context.Context, amount int64, method string) (*Receipt, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if s.intn(100) >= s.successPercent {
		return nil, ErrDeclined
	}

	return &Receipt{
		TransactionID: fmt.Sprintf("TXN-%s", strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:9])),
		Amount:        amount,
		Method:        method,
		CapturedAt:    s.now(),
	}, nil
}
