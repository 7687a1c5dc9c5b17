package dispatch

import "github.com/logicraft/dispatch/internal/pkg/models"

// DispatchGW defines the interface for publishing dispatch events to
// downstream trackers. Publishing is best effort: a failed publish never
// fails the operation that triggered it.
type DispatchGW interface {
	PublishBookingCreated(event models.BookingEvent) error
	PublishBookingMatched(event models.BookingEvent) error
	PublishBookingCompleted(event models.BookingEvent) error
	PublishLocationUpdate(update models.LocationUpdate) error
}
