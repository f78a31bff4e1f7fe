package domain_test

import (
	"encoding/base64"
	"testing"

	"notification-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendEmailInput_Validate(t *testing.T) {
	valid := domain.SendEmailInput{
		Sender:   "noreply@example.com",
		Receiver: []string{"jdoe@example.com"},
		Subject:  "Maintenance notice",
		Message:  "<p>Storage upgrade</p>",
		MsgType:  domain.EmailHTML,
	}
	assert.NoError(t, valid.Validate())

	t.Run("Bad Sender", func(t *testing.T) {
		input := valid
		input.Sender = "not-an-address"
		assertValidationError(t, input.Validate())
	})

	t.Run("No Receivers", func(t *testing.T) {
		input := valid
		input.Receiver = nil
		assertValidationError(t, input.Validate())
	})

	t.Run("Bad Msg Type", func(t *testing.T) {
		input := valid
		input.MsgType = "markdown"
		assertValidationError(t, input.Validate())
	})
}

func TestEmailAttachment_Decode(t *testing.T) {
	content := []byte("%PDF-1.4 fake")
	encoded := base64.StdEncoding.EncodeToString(content)

	t.Run("Plain Base64", func(t *testing.T) {
		decoded, err := domain.EmailAttachment{Name: "report.pdf", Data: encoded}.Decode()
		require.NoError(t, err)
		assert.Equal(t, content, decoded)
	})

	t.Run("Data URI Prefix Stripped", func(t *testing.T) {
		decoded, err := domain.EmailAttachment{
			Name: "report.pdf",
			Data: "data:application/pdf;base64," + encoded,
		}.Decode()
		require.NoError(t, err)
		assert.Equal(t, content, decoded)
	})

	t.Run("Unsupported Extension", func(t *testing.T) {
		_, err := domain.EmailAttachment{Name: "script.sh", Data: encoded}.Decode()
		assertValidationError(t, err)
	})

	t.Run("Invalid Base64", func(t *testing.T) {
		_, err := domain.EmailAttachment{Name: "report.pdf", Data: "!!not base64!!"}.Decode()
		assertValidationError(t, err)
	})
}
