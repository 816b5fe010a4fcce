// Package compose builds localized push payloads from change records. All
// user-facing text is fixed Arabic copy matching the mobile app; call titles
// stay in English to match the system call UI. Composition does no I/O.
package compose

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mishwar/notifications/internal/gateway"
)

// Android notification channels, one per category.
const (
	ChannelChat = "chat_messages"
	ChannelCall = "call_notifications"
	ChannelRide = "ride_notifications"
)

// iOS semantic categories.
const (
	CategoryMessage  = "NEW_MESSAGE"
	CategoryCall     = "CALL_NOTIFICATION"
	CategoryBooking  = "RIDE_BOOKING"
	CategoryApproval = "RIDE_APPROVAL"
	CategoryStatus   = "RIDE_STATUS"
)

// Notification type tags carried in the data map and audit records.
const (
	TypeChatMessage = "chat_message"
	TypeRideBooking = "ride_booking"
	TypeApproval    = "approval_update"
	TypeRideStatus  = "ride_status_update"
)

const clickAction = "FLUTTER_NOTIFICATION_CLICK"

// Localized fallback copy.
const (
	DefaultUserName    = "مستخدم"
	DefaultCallerName  = "متصل"
	DefaultMessageBody = "لديك رسالة جديدة"
	DefaultDestination = "وجهتك"
)

func nowMillis() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10)
}

// base fills the delivery hints shared by every payload.
func base(title, body, channel, category string, data map[string]string) *gateway.Message {
	return &gateway.Message{
		Title:            title,
		Body:             body,
		Data:             data,
		Channel:          channel,
		Priority:         "high",
		Sound:            "default",
		ClickAction:      clickAction,
		Badge:            1,
		Category:         category,
		ContentAvailable: true,
	}
}

// ChatParams carries the resolved inputs for a chat-message payload.
type ChatParams struct {
	SenderName string
	Text       string
	ImageURL   string
	ChatID     string
	SenderID   string
	MessageID  string
	Type       string
}

// Chat builds the new-message payload. The sender name is the title, the
// message text the body.
func Chat(p ChatParams) *gateway.Message {
	msg := base(p.SenderName, p.Text, ChannelChat, CategoryMessage, map[string]string{
		"chatId":           p.ChatID,
		"senderId":         p.SenderID,
		"messageId":        p.MessageID,
		"timestamp":        nowMillis(),
		"type":             p.Type,
		"notificationType": TypeChatMessage,
	})
	msg.ImageURL = p.ImageURL
	return msg
}

// Call builds the incoming-call payload.
func Call(callerName, callerID, callID string, isVideo bool) *gateway.Message {
	callType := "voice"
	if isVideo {
		callType = "video"
	}
	return base(
		fmt.Sprintf("Incoming %s call", callType),
		fmt.Sprintf("%s is calling you", callerName),
		ChannelCall, CategoryCall,
		map[string]string{
			"call":        "true",
			"callerId":    callerID,
			"channelId":   callID,
			"isVideoCall": strconv.FormatBool(isVideo),
			"callType":    callType,
		},
	)
}

// RideDate renders a ride date for message bodies, empty for the zero time.
func RideDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// Booking builds the seat booked/unbooked payload for the driver. dateText
// comes from RideDate and is omitted from the body when empty.
func Booking(booked bool, userName, destination, dateText, rideID, userID string) *gateway.Message {
	datePart := ""
	if dateText != "" {
		datePart = " في " + dateText
	}

	var title, body, status string
	if booked {
		status = "booked"
		title = "تم حجز مقعد جديد"
		body = fmt.Sprintf("قام %s بحجز مقعد في رحلتك إلى %s%s. يرجى المراجعة والموافقة.", userName, destination, datePart)
	} else {
		status = "unbooked"
		title = "تم إلغاء حجز مقعد"
		body = fmt.Sprintf("قام %s بإلغاء حجز مقعده في رحلتك إلى %s%s.", userName, destination, datePart)
	}

	return base(title, body, ChannelRide, CategoryBooking, map[string]string{
		"notificationType": TypeRideBooking,
		"rideId":           rideID,
		"bookedBy":         userID,
		"bookingStatus":    status,
		"timestamp":        nowMillis(),
	})
}

// Approval builds the booking approved/declined payload for the passenger.
func Approval(approved bool, rideID, userID string) *gateway.Message {
	var title, body, status string
	if approved {
		status = "approved"
		title = "تمت الموافقة على حجزك"
		body = "تمت الموافقة على حجز مقعدك في الرحلة."
	} else {
		status = "declined"
		title = "تم رفض حجزك"
		body = "تم رفض حجز مقعدك في الرحلة."
	}

	return base(title, body, ChannelRide, CategoryApproval, map[string]string{
		"notificationType": TypeApproval,
		"rideId":           rideID,
		"bookedBy":         userID,
		"approvalStatus":   status,
		"timestamp":        nowMillis(),
	})
}

// RideStatus builds the lifecycle broadcast payload. ok is false for
// statuses that carry no passenger-facing copy.
func RideStatus(newStatus, rideID string) (*gateway.Message, bool) {
	var title, body string
	switch newStatus {
	case "cancelled":
		title = "تم إلغاء الرحلة"
		body = "تم إلغاء الرحلة التي قمت بالحجز عليها."
	case "started":
		title = "بدأت الرحلة"
		body = "بدأت الرحلة التي قمت بالحجز عليها."
	case "completed":
		title = "انتهت الرحلة"
		body = "انتهت الرحلة التي قمت بالحجز عليها."
	default:
		return nil, false
	}

	return base(title, body, ChannelRide, CategoryStatus, map[string]string{
		"notificationType": TypeRideStatus,
		"rideId":           rideID,
		"newStatus":        newStatus,
		"timestamp":        nowMillis(),
	}), true
}
