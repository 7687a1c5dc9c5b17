package constants

// NATS Subjects
const (
	SubjectBookingCreated   = "booking.created"
	SubjectBookingMatched   = "booking.matched"
	SubjectBookingCompleted = "booking.completed"
	SubjectLocationUpdate   = "location.update"
)
