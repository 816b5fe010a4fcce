package compose_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mishwar/notifications/internal/compose"
)

func TestChat(t *testing.T) {
	msg := compose.Chat(compose.ChatParams{
		SenderName: "Samir",
		Text:       "where are you?",
		ImageURL:   "https://cdn.example/img.jpg",
		ChatID:     "chat1",
		SenderID:   "u1",
		MessageID:  "m1",
		Type:       "text",
	})

	assert.Equal(t, "Samir", msg.Title)
	assert.Equal(t, "where are you?", msg.Body)
	assert.Equal(t, "https://cdn.example/img.jpg", msg.ImageURL)
	assert.Equal(t, compose.ChannelChat, msg.Channel)
	assert.Equal(t, compose.CategoryMessage, msg.Category)
	assert.Equal(t, "high", msg.Priority)
	assert.Equal(t, "default", msg.Sound)
	assert.Equal(t, "FLUTTER_NOTIFICATION_CLICK", msg.ClickAction)
	assert.Equal(t, 1, msg.Badge)
	assert.True(t, msg.ContentAvailable)

	assert.Equal(t, "chat1", msg.Data["chatId"])
	assert.Equal(t, "u1", msg.Data["senderId"])
	assert.Equal(t, "m1", msg.Data["messageId"])
	assert.Equal(t, "text", msg.Data["type"])
	assert.Equal(t, compose.TypeChatMessage, msg.Data["notificationType"])
	assert.NotEmpty(t, msg.Data["timestamp"])
}

func TestCall(t *testing.T) {
	msg := compose.Call("Lina", "u1", "call9", true)
	assert.Equal(t, "Incoming video call", msg.Title)
	assert.Equal(t, "Lina is calling you", msg.Body)
	assert.Equal(t, compose.ChannelCall, msg.Channel)
	assert.Equal(t, compose.CategoryCall, msg.Category)
	// The transport requires homogeneous string values.
	assert.Equal(t, "true", msg.Data["call"])
	assert.Equal(t, "true", msg.Data["isVideoCall"])
	assert.Equal(t, "video", msg.Data["callType"])
	assert.Equal(t, "call9", msg.Data["channelId"])
	assert.Equal(t, "u1", msg.Data["callerId"])

	voice := compose.Call("Lina", "u1", "call9", false)
	assert.Equal(t, "Incoming voice call", voice.Title)
	assert.Equal(t, "false", voice.Data["isVideoCall"])
	assert.Equal(t, "voice", voice.Data["callType"])
}

func TestRideDate(t *testing.T) {
	assert.Equal(t, "", compose.RideDate(time.Time{}))
	assert.Equal(t, "Apr 10, 2026", compose.RideDate(time.Date(2026, 4, 10, 8, 0, 0, 0, time.UTC)))
}

func TestBooking(t *testing.T) {
	booked := compose.Booking(true, "Samir", "Amman", "Apr 10, 2026", "ride1", "u5")
	assert.Equal(t, "تم حجز مقعد جديد", booked.Title)
	assert.Equal(t, "قام Samir بحجز مقعد في رحلتك إلى Amman في Apr 10, 2026. يرجى المراجعة والموافقة.", booked.Body)
	assert.Equal(t, compose.ChannelRide, booked.Channel)
	assert.Equal(t, compose.CategoryBooking, booked.Category)
	assert.Equal(t, "booked", booked.Data["bookingStatus"])
	assert.Equal(t, "u5", booked.Data["bookedBy"])
	assert.Equal(t, "ride1", booked.Data["rideId"])
	assert.Equal(t, compose.TypeRideBooking, booked.Data["notificationType"])

	// Date is omitted from the body when unknown.
	unbooked := compose.Booking(false, "Samir", "Amman", "", "ride1", "u5")
	assert.Equal(t, "تم إلغاء حجز مقعد", unbooked.Title)
	assert.Equal(t, "قام Samir بإلغاء حجز مقعده في رحلتك إلى Amman.", unbooked.Body)
	assert.Equal(t, "unbooked", unbooked.Data["bookingStatus"])
}

func TestApproval(t *testing.T) {
	approved := compose.Approval(true, "ride1", "u5")
	assert.Equal(t, "تمت الموافقة على حجزك", approved.Title)
	assert.Equal(t, "approved", approved.Data["approvalStatus"])
	assert.Equal(t, compose.CategoryApproval, approved.Category)

	declined := compose.Approval(false, "ride1", "u5")
	assert.Equal(t, "تم رفض حجزك", declined.Title)
	assert.Equal(t, "declined", declined.Data["approvalStatus"])
	assert.Equal(t, "u5", declined.Data["bookedBy"])
}

func TestRideStatus(t *testing.T) {
	tests := []struct {
		status string
		title  string
	}{
		{"cancelled", "تم إلغاء الرحلة"},
		{"started", "بدأت الرحلة"},
		{"completed", "انتهت الرحلة"},
	}
	for _, tt := range tests {
		msg, ok := compose.RideStatus(tt.status, "ride1")
		require.True(t, ok, tt.status)
		assert.Equal(t, tt.title, msg.Title)
		assert.Equal(t, tt.status, msg.Data["newStatus"])
		assert.Equal(t, compose.CategoryStatus, msg.Category)
		assert.Equal(t, compose.TypeRideStatus, msg.Data["notificationType"])
	}

	_, ok := compose.RideStatus("paused", "ride1")
	assert.False(t, ok)
}
