package messaging

import (
	"context"

	"github.com/feral-file/supplier-ledger/internal/domain"
)

// Publisher defines the interface for publishing events to message queue
//
//go:generate mockgen -source=publisher.go -destination=../mocks/publisher.go -package=mocks -mock_names=Publisher=MockPublisher
type Publisher interface {
	// PublishClaimed publishes a claim settlement event to the message broker
	PublishClaimed(ctx context.Context, event *domain.ClaimedEvent) error
	// Close closes the connection
	Close()
}
