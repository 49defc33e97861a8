// Package kafka consumes the backend's authoritative order status feed and
// drives status reconciliation.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"driverops/internal/core/application/usecases/commands"
	"driverops/internal/core/domain/model/kernel"
	"driverops/internal/core/domain/model/order"
	"driverops/internal/core/domain/services"
	"driverops/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

// StatusEvent is one message of the status feed.
type StatusEvent struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
}

// A push that loses the race against an in-flight driver transition is
// retried locally; the gate is held only for the duration of one command.
// If the gate is still held after the last attempt the message is left
// uncommitted so the broker redelivers it.
const (
	inFlightRetryAttempts = 5
	inFlightRetryDelay    = 200 * time.Millisecond
)

// StatusFeedConsumer listens to the status topic and applies each push
// through the reconciliation command. Malformed messages and pushes for
// unknown orders are logged and skipped; the feed keeps flowing.
type StatusFeedConsumer struct {
	reader  *kafka.Reader
	handler commands.ReconcileStatusCommandHandler
	logger  *slog.Logger

	wg      sync.WaitGroup
	stopped atomic.Bool
}

// NewStatusFeedConsumer creates a consumer for the authoritative status feed.
func NewStatusFeedConsumer(
	reader *kafka.Reader,
	handler commands.ReconcileStatusCommandHandler,
	logger *slog.Logger,
) *StatusFeedConsumer {
	return &StatusFeedConsumer{
		reader:  reader,
		handler: handler,
		logger:  logger.With("component", "status_feed_consumer"),
	}
}

// Start launches the consume loop in a goroutine. FetchMessage is used
// instead of ReadMessage so the offset is committed only after the push has
// been handled.
func (c *StatusFeedConsumer) Start(ctx context.Context) {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.logger.Info("status feed consumer started", "topic", c.reader.Config().Topic)

		for {
			if c.stopped.Load() {
				return
			}

			msg, err := c.reader.FetchMessage(ctx)
			if err != nil {
				if ctx.Err() != nil || c.stopped.Load() {
					c.logger.Info("status feed consumer shutting down")
					return
				}
				c.logger.Error("fetch failed", "error", err)
				time.Sleep(time.Second)
				continue
			}

			if err = c.processMessage(ctx, msg); err != nil {
				// The offset stays uncommitted so the push is
				// redelivered instead of lost.
				c.logger.Warn("push left uncommitted for redelivery",
					"offset", msg.Offset, "error", err)
				continue
			}

			if err = c.reader.CommitMessages(ctx, msg); err != nil {
				c.logger.Error("commit failed", "error", err)
			}
		}
	}()
}

// Stop closes the reader and waits for the consume loop to exit.
func (c *StatusFeedConsumer) Stop() {
	c.stopped.Store(true)
	_ = c.reader.Close()
	c.wg.Wait()
	c.logger.Info("status feed consumer stopped")
}

// processMessage parses and reconciles one push. A nil return means the
// message is done and its offset may be committed; this includes malformed
// events and pushes for untracked orders, which would never succeed on
// redelivery. A non-nil return means the push must be redelivered.
func (c *StatusFeedConsumer) processMessage(ctx context.Context, msg kafka.Message) error {
	var event StatusEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		c.logger.Error("malformed status event skipped", "error", err)
		return nil
	}

	orderID, err := kernel.UUIDFromString(event.OrderID)
	if err != nil {
		c.logger.Error("status event with invalid order id skipped",
			"order_id", event.OrderID, "error", err)
		return nil
	}

	status, err := order.StatusFromString(event.Status)
	if err != nil {
		c.logger.Error("status event with unknown status skipped",
			"order_id", event.OrderID, "status", event.Status, "error", err)
		return nil
	}

	cmd, err := commands.NewReconcileStatusCommand(orderID, status)
	if err != nil {
		c.logger.Error("reconcile command rejected", "order_id", event.OrderID, "error", err)
		return nil
	}

	result, err := c.handler.Handle(ctx, cmd)
	for attempt := 1; errors.Is(err, commands.ErrTransitionInFlight) && attempt < inFlightRetryAttempts; attempt++ {
		time.Sleep(inFlightRetryDelay)
		result, err = c.handler.Handle(ctx, cmd)
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		// The feed carries every order; this device only tracks its own.
		c.logger.Debug("push for untracked order skipped", "order_id", event.OrderID)
	case errors.Is(err, commands.ErrTransitionInFlight):
		c.logger.Warn("push deferred, transition still in flight after retries",
			"order_id", event.OrderID, "status", event.Status)
		return err
	case err != nil:
		c.logger.Error("reconciliation failed",
			"order_id", event.OrderID, "status", event.Status, "error", err)
		return err
	case result.Outcome == services.ReconcileRejected:
		c.logger.Warn("stale push rejected",
			"order_id", event.OrderID, "status", event.Status, "reason", result.Reason)
	case result.Outcome == services.ReconcileApplied:
		c.logger.Info("authoritative status applied",
			"order_id", event.OrderID, "status", event.Status)
	}

	return nil
}
