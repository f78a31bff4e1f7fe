package domain

import (
	"encoding/base64"
	"path/filepath"
	"strings"
)

type EmailMsgType string

const (
	EmailHTML  EmailMsgType = "html"
	EmailPlain EmailMsgType = "plain"
)

var allowedAttachmentExtensions = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// EmailAttachment carries a base64 encoded file. Data may be prefixed with a
// data-URI header which is stripped before decoding.
type EmailAttachment struct {
	Name string `json:"name"`
	Data string `json:"data"`
}

func (a EmailAttachment) Decode() ([]byte, error) {
	ext := strings.ToLower(filepath.Ext(a.Name))
	if !allowedAttachmentExtensions[ext] {
		return nil, ValidationError("unsupported attachment extension %q", ext)
	}

	data := a.Data
	if idx := strings.IndexByte(data, ','); idx >= 0 {
		data = data[idx+1:]
	}

	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, ValidationError("attachment %s is not valid base64", a.Name)
	}
	return decoded, nil
}

type SendEmailInput struct {
	Sender      string            `json:"sender"`
	Receiver    []string          `json:"receiver"`
	Subject     string            `json:"subject"`
	Message     string            `json:"message"`
	MsgType     EmailMsgType      `json:"msg_type"`
	Attachments []EmailAttachment `json:"attachments"`
}

func (i SendEmailInput) Validate() error {
	if i.Sender == "" || !strings.Contains(i.Sender, "@") {
		return ValidationError("sender must be a valid email address")
	}
	if len(i.Receiver) == 0 {
		return ValidationError("receiver must contain at least 1 address")
	}
	for _, addr := range i.Receiver {
		if addr == "" || !strings.Contains(addr, "@") {
			return ValidationError("receiver %q is not a valid email address", addr)
		}
	}
	if i.Subject == "" {
		return ValidationError("subject is required")
	}
	if i.Message == "" {
		return ValidationError("message is required")
	}
	if i.MsgType != EmailHTML && i.MsgType != EmailPlain {
		return ValidationError("msg_type must be either html or plain")
	}
	return nil
}
