package mailer

import (
	"bytes"
	"testing"

	"travel-backoffice-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageHeaders(t *testing.T) {
	svc := NewEmailService("localhost", 2525, "noreply@agency.test", "secret", "Back Office", logger.NewNopLogger()).(*emailService)

	m := svc.newMessage("owner@agency.test", "Your Verification Code", otpBody("123456", "password reset"))
	assert.Equal(t, []string{"owner@agency.test"}, m.GetHeader("To"))
	assert.Equal(t, []string{"Your Verification Code"}, m.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "123456")
}

func TestContactBodyEscapesInput(t *testing.T) {
	body := contactBody(ContactNotice{
		Name:       "<script>alert(1)</script>",
		Email:      "a@b.test",
		Message:    "Need 4 seats",
		APIKeyName: "Main site",
	})
	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
	assert.Contains(t, body, "Need 4 seats")
}
