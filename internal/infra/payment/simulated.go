// Package payment charges bookings. The only implementation today is a
// simulated gateway with a fixed settlement latency; a real processor
// would slot in behind the same interface.
package payment

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type Receipt struct {
	TransactionID string    `json:"transaction_id"`
	Amount        int64     `json:"amount"`
	ProcessedAt   time.Time `json:"processed_at"`
}

type Gateway interface {
	Charge(ctx context.Context, userID uuid.UUID, amount int64) (*Receipt, error)
}

type Simulated struct {
	logger  *slog.Logger
	latency time.Duration
}

func NewSimulated(logger *slog.Logger, latency time.Duration) *Simulated {
	return &Simulated{logger: logger, latency: latency}
}

// Charge always approves after the configured latency. It respects
// cancellation so an abandoned request does not hold the connection.
func (g *Simulated) Charge(ctx context.Context, userID uuid.UUID, amount int64) (*Receipt, error) {
	if g.latency > 0 {
		timer := time.NewTimer(g.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	receipt := &Receipt{
		TransactionID: uuid.New().String(),
		Amount:        amount,
		ProcessedAt:   time.Now(),
	}

	g.logger.Info("payment processed",
		slog.String("transaction_id", receipt.TransactionID),
		slog.String("user_id", userID.String()),
		slog.Int64("amount", amount),
	)
	return receipt, nil
}
