package email

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`<script>alert(1)</script>`, `&lt;script&gt;alert(1)&lt;&#x2F;script&gt;`},
		{`Tom & Jerry`, `Tom &amp; Jerry`},
		{`"quoted"`, `&quot;quoted&quot;`},
		{`it's`, `it&#x27;s`},
		{`a/b`, `a&#x2F;b`},
		{`plain text`, `plain text`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EscapeHTML(tt.in))
	}
}

func TestContactFormEmailEscapesInput(t *testing.T) {
	html := ContactFormEmail(`<script>`, "evil@example.com", "line one\nline two")

	assert.Contains(t, html, "&lt;script&gt;")
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "line one<br>line two")
}

func TestServiceEnquiryEmail(t *testing.T) {
	html := ServiceEnquiryEmail("Dana", "dana@example.com", "0400 000 000", "Mural", "big <wall>")

	assert.Contains(t, html, "New Service Enquiry")
	assert.Contains(t, html, "Dana")
	assert.Contains(t, html, "Mural")
	assert.Contains(t, html, "big &lt;wall&gt;")
}

func TestBookingConfirmationEmail(t *testing.T) {
	html := BookingConfirmationEmail("Sam", "Spray & Stencil", "Saturday, 6 June 2026", 2, 40)

	assert.Contains(t, html, "Workshop Booking Confirmation")
	assert.Contains(t, html, "Spray &amp; Stencil")
	assert.Contains(t, html, "<strong>Tickets:</strong> 2")
	assert.Contains(t, html, "$40.00")
	// Formatted price must survive escaping untouched
	assert.False(t, strings.Contains(html, "40.00<"), "price should not abut markup")
}
