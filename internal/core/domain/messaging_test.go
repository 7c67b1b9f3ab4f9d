package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageMarkAsRead(t *testing.T) {
	m := Message{}

	require.True(t, m.MarkAsRead())
	require.True(t, m.IsRead)
	require.NotNil(t, m.ReadAt)
	firstReadAt := *m.ReadAt

	// Повторный вызов — no-op: read_at не сдвигается.
	assert.False(t, m.MarkAsRead())
	assert.Equal(t, firstReadAt, *m.ReadAt)
}

func TestMessageValidate(t *testing.T) {
	sender := uuid.New()

	m := Message{SenderID: sender, RecipientID: uuid.New(), Body: "hello"}
	assert.NoError(t, m.Validate())

	// Сообщение самому себе запрещено.
	self := Message{SenderID: sender, RecipientID: sender, Body: "hi"}
	err := self.Validate()
	require.Error(t, err)
	vErr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, vErr.FieldErrors, "recipient_id")
}

func TestFeedbackValidateRating(t *testing.T) {
	fb := Feedback{UserID: uuid.New(), Rating: 5}
	assert.NoError(t, fb.Validate())

	fb.Rating = 0
	assert.Error(t, fb.Validate())

	fb.Rating = 6
	assert.Error(t, fb.Validate())
}
