package gateway

import (
	"encoding/json"
	"fmt"

	"github.com/logicraft/dispatch/internal/pkg/constants"
	"github.com/logicraft/dispatch/internal/pkg/models"
	natspkg "github.com/logicraft/dispatch/internal/pkg/nats"
)

// DispatchGateway publishes dispatch events over NATS
type DispatchGateway struct {
	nc *natspkg.Client
}

// NewDispatchGateway creates a new dispatch gateway
func NewDispatchGateway(nc *natspkg.Client) *DispatchGateway {
	return &DispatchGateway{nc: nc}
}

// PublishBookingCreated publishes a booking created event
func (g *DispatchGateway) PublishBookingCreated(event models.BookingEvent) error {
	return g.publish(constants.SubjectBookingCreated, event)
}

// PublishBookingMatched publishes a booking matched event
func (g *DispatchGateway) PublishBookingMatched(event models.BookingEvent) error {
	return g.publish(constants.SubjectBookingMatched, event)
}

// PublishBookingCompleted publishes a booking completed event
func (g *DispatchGateway) PublishBookingCompleted(event models.BookingEvent) error {
	return g.publish(constants.SubjectBookingCompleted, event)
}

// PublishLocationUpdate publishes a location update for live trackers
func (g *DispatchGateway) PublishLocationUpdate(update models.LocationUpdate) error {
	return g.publish(constants.SubjectLocationUpdate, update)
}

func (g *DispatchGateway) publish(subject string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", subject, err)
	}
	if err := g.nc.Publish(subject, data); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", subject, err)
	}
	return nil
}
