// Package model holds the typed record shapes for each Firestore collection
// the functions touch. Documents are decoded at the boundary with safe
// defaults for optional fields, so the rest of the pipeline works with plain
// structs instead of loose field maps.
package model

import (
	"time"

	"github.com/mishwar/notifications/internal/fsevent"
)

// Ride statuses that trigger a broadcast to booked passengers.
const (
	StatusScheduled = "scheduled"
	StatusStarted   = "started"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// Seat approval states.
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalDeclined = "declined"
)

// IsEmptyBooking reports whether a bookedBy value means "unbooked".
// Null and undefined decode to the empty string; "n/a" is a legacy
// placeholder still written by older app builds.
func IsEmptyBooking(bookedBy string) bool {
	return bookedBy == "" || bookedBy == "n/a"
}

// Seat is one bookable unit inside a ride's seat layout.
type Seat struct {
	BookedBy       string
	ApprovalStatus string
}

// Ride is the rides/{rideId} document, reduced to the fields the
// notification pipeline reads.
type Ride struct {
	DriverID        string
	Status          string
	SeatLayout      []Seat
	EndLocationName string
	Date            time.Time
}

// RideFrom decodes a ride from wrapped event fields. A missing or malformed
// seatLayout degrades to an empty slice.
func RideFrom(f fsevent.Fields) Ride {
	r := Ride{
		DriverID:        f.Str("driverId"),
		Status:          f.Str("status"),
		EndLocationName: f.Str("endLocationName"),
	}
	if t, ok := f.Time("date"); ok {
		r.Date = t
	}
	for _, v := range f.List("seatLayout") {
		seat := v.Map()
		r.SeatLayout = append(r.SeatLayout, Seat{
			BookedBy:       seat.Str("bookedBy"),
			ApprovalStatus: seat.Str("approvalStatus"),
		})
	}
	return r
}

// ChatMessage is a chats/{chatId}/messages/{messageId} document.
type ChatMessage struct {
	SenderID   string
	SenderName string
	Text       string
	Type       string
	ImageURL   string
}

func ChatMessageFrom(f fsevent.Fields) ChatMessage {
	return ChatMessage{
		SenderID:   f.Str("senderId"),
		SenderName: f.Str("senderName"),
		Text:       f.Str("text"),
		Type:       f.StrOr("type", "text"),
		ImageURL:   f.Str("imageUrl"),
	}
}

// Chat is the chats/{chatId} parent document.
type Chat struct {
	Participants []string `firestore:"participants"`
}

// OtherParticipant returns the first participant that is not the sender,
// empty when the chat has no counterpart.
func (c Chat) OtherParticipant(senderID string) string {
	for _, p := range c.Participants {
		if p != senderID {
			return p
		}
	}
	return ""
}

// Call is a calls/{callId} document.
type Call struct {
	CallerID    string
	CalleeID    string
	IsVideoCall bool
}

func CallFrom(f fsevent.Fields) Call {
	return Call{
		CallerID:    f.Str("callerId"),
		CalleeID:    f.Str("calleeId"),
		IsVideoCall: f.Bool("isVideoCall"),
	}
}

// User is the users/{userId} document, read back from Firestore directly.
type User struct {
	FCMToken    string `firestore:"fcmToken"`
	DisplayName string `firestore:"displayName"`
	Name        string `firestore:"name"`
}

// NotificationRecord is an append-only audit entry written into a
// recipient's notifications subcollection. CreatedAt is filled by the
// server on write.
type NotificationRecord struct {
	Type           string    `firestore:"type"`
	RideID         string    `firestore:"rideId,omitempty"`
	ChatID         string    `firestore:"chatId,omitempty"`
	BookedBy       string    `firestore:"bookedBy,omitempty"`
	BookedByName   string    `firestore:"bookedByName,omitempty"`
	BookingStatus  string    `firestore:"bookingStatus,omitempty"`
	ApprovalStatus string    `firestore:"approvalStatus,omitempty"`
	NewStatus      string    `firestore:"newStatus,omitempty"`
	CreatedAt      time.Time `firestore:"createdAt,serverTimestamp"`
	Read           bool      `firestore:"read"`
}
