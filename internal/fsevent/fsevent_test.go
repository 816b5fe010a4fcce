package fsevent_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mishwar/notifications/internal/fsevent"
)

const chatCreateEvent = `{
  "oldValue": {},
  "value": {
    "createTime": "2026-03-01T10:00:00Z",
    "updateTime": "2026-03-01T10:00:00Z",
    "name": "projects/demo/databases/(default)/documents/chats/chat1/messages/msg42",
    "fields": {
      "senderId": {"stringValue": "u1"},
      "text": {"stringValue": "hello"},
      "read": {"booleanValue": false},
      "retries": {"integerValue": "3"},
      "score": {"doubleValue": 1.5},
      "sentAt": {"timestampValue": "2026-03-01T10:00:00Z"},
      "deletedAt": {"nullValue": null},
      "tags": {"arrayValue": {"values": [{"stringValue": "a"}, {"stringValue": "b"}]}},
      "meta": {"mapValue": {"fields": {"origin": {"stringValue": "mobile"}}}}
    }
  },
  "updateMask": {}
}`

func TestEventDecode(t *testing.T) {
	var e fsevent.Event
	require.NoError(t, json.Unmarshal([]byte(chatCreateEvent), &e))

	assert.False(t, e.OldValue.Exists())
	assert.True(t, e.Value.Exists())

	assert.Equal(t, "msg42", e.Value.ID())
	assert.Equal(t, "chat1", e.Value.Param("chats"))
	assert.Equal(t, "msg42", e.Value.Param("messages"))
	assert.Equal(t, "", e.Value.Param("rides"))

	f := e.Value.Fields
	assert.Equal(t, "u1", f.Str("senderId"))
	assert.Equal(t, "hello", f.Str("text"))
	assert.False(t, f.Bool("read"))
	assert.Equal(t, int64(3), f.Int("retries"))

	sentAt, ok := f.Time("sentAt")
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC), sentAt)

	tags := f.List("tags")
	require.Len(t, tags, 2)
	assert.Equal(t, "a", tags[0].Str())

	meta := f.Map("meta")
	assert.Equal(t, "mobile", meta.Str("origin"))
}

func TestFieldDefaults(t *testing.T) {
	var e fsevent.Event
	require.NoError(t, json.Unmarshal([]byte(chatCreateEvent), &e))
	f := e.Value.Fields

	// Absent keys fall back to zero values rather than panicking.
	assert.Equal(t, "", f.Str("missing"))
	assert.Equal(t, "fallback", f.StrOr("missing", "fallback"))
	assert.False(t, f.Bool("missing"))
	assert.Equal(t, int64(0), f.Int("missing"))
	assert.Nil(t, f.List("missing"))
	assert.Nil(t, f.Map("missing"))

	// Wrong-variant access degrades the same way.
	assert.Equal(t, "", f.Str("read"))
	assert.Nil(t, f.List("senderId"))
	assert.Nil(t, f.Map("tags"))
	_, ok := f.Time("senderId")
	assert.False(t, ok)
}

func TestEmptyDocument(t *testing.T) {
	var d fsevent.Document
	assert.False(t, d.Exists())
	assert.Equal(t, "", d.ID())
	assert.Equal(t, "", d.Param("chats"))
	assert.Equal(t, "", d.Fields.Str("anything"))
}
