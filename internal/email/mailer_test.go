package email

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendWithoutCredentialsIsNoop(t *testing.T) {
	m, err := NewMailer(SMTPConfig{
		Host: "smtp-mail.outlook.com",
		Port: 587,
		From: "Scale Breakers <contact.scalebreakers@gmail.com>",
	})
	require.NoError(t, err)

	ok := m.Send(context.Background(), "someone@example.com", "Hello", "<p>Hi</p>")
	assert.False(t, ok, "unconfigured mailer must report failure, not panic")
}
