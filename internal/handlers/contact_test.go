package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	ok      bool
	calls   int
	to      string
	subject string
	html    string
}

func (f *fakeSender) Send(ctx context.Context, to, subject, html string) bool {
	f.calls++
	f.to, f.subject, f.html = to, subject, html
	return f.ok
}

func postJSON(t *testing.T, handler http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestSendContact(t *testing.T) {
	sender := &fakeSender{ok: true}
	h := &EmailHandler{Mailer: sender, AdminEmail: "owner@example.com"}

	rec := postJSON(t, h.SendContact, "/api/contact", map[string]string{
		"name":    "Dana",
		"email":   "dana@example.com",
		"message": "I'd like a mural",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, sender.calls)
	assert.Equal(t, "owner@example.com", sender.to)
	assert.Equal(t, "New Contact Form Submission from Dana", sender.subject)
	assert.Contains(t, sender.html, "dana@example.com")
}

func TestSendContactEscapesScript(t *testing.T) {
	sender := &fakeSender{ok: true}
	h := &EmailHandler{Mailer: sender, AdminEmail: "owner@example.com"}

	rec := postJSON(t, h.SendContact, "/api/contact", map[string]string{
		"name":    "<script>alert(1)</script>",
		"email":   "x@example.com",
		"message": "hello",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, sender.html, "&lt;script&gt;")
	assert.NotContains(t, sender.html, "<script>")
}

func TestSendContactValidation(t *testing.T) {
	sender := &fakeSender{ok: true}
	h := &EmailHandler{Mailer: sender, AdminEmail: "owner@example.com"}

	tests := []map[string]string{
		{"email": "dana@example.com", "message": "hi"}, // missing name
		{"name": "Dana", "email": "bad", "message": "hi"},
		{"name": "Dana", "email": "dana@example.com"}, // missing message
	}
	for _, body := range tests {
		rec := postJSON(t, h.SendContact, "/api/contact", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
	assert.Zero(t, sender.calls, "validation failures must not send email")
}

func TestSendContactRelayFailure(t *testing.T) {
	sender := &fakeSender{ok: false}
	h := &EmailHandler{Mailer: sender, AdminEmail: "owner@example.com"}

	rec := postJSON(t, h.SendContact, "/api/contact", map[string]string{
		"name":    "Dana",
		"email":   "dana@example.com",
		"message": "hi",
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSendServiceEnquiry(t *testing.T) {
	sender := &fakeSender{ok: true}
	h := &EmailHandler{Mailer: sender, AdminEmail: "owner@example.com"}

	rec := postJSON(t, h.SendServiceEnquiry, "/api/enquiries", map[string]string{
		"name":    "Sam",
		"email":   "sam@example.com",
		"phone":   "0400 000 000",
		"service": "3D Modelling",
		"details": "A custom character model",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "New 3D Modelling Enquiry from Sam", sender.subject)
	assert.Contains(t, sender.html, "0400 000 000")
}

func TestSendServiceEnquiryRequiresPhone(t *testing.T) {
	sender := &fakeSender{ok: true}
	h := &EmailHandler{Mailer: sender, AdminEmail: "owner@example.com"}

	rec := postJSON(t, h.SendServiceEnquiry, "/api/enquiries", map[string]string{
		"name":    "Sam",
		"email":   "sam@example.com",
		"service": "3D Modelling",
		"details": "A custom character model",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, sender.calls)
}
