package email

import (
	"fmt"
	"strings"
)

// htmlEscaper covers the characters an attacker can use to break out of the
// rendered markup, including the forward slash.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
	"/", "&#x2F;",
)

// EscapeHTML escapes user-supplied text before it is embedded in an email
// body. Every interpolated value below goes through it.
func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}

// multiline escapes text and turns newlines into <br> for paragraph fields.
func multiline(text string) string {
	return strings.ReplaceAll(EscapeHTML(text), "\n", "<br>")
}

func ContactFormEmail(name, email, message string) string {
	return fmt.Sprintf(`
    <h2>New Contact Form Submission</h2>
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Message:</strong></p>
    <p>%s</p>
  `, EscapeHTML(name), EscapeHTML(email), multiline(message))
}

func ServiceEnquiryEmail(name, email, phone, service, details string) string {
	return fmt.Sprintf(`
    <h2>New Service Enquiry</h2>
    <p><strong>Name:</strong> %s</p>
    <p><strong>Email:</strong> %s</p>
    <p><strong>Phone:</strong> %s</p>
    <p><strong>Service:</strong> %s</p>
    <p><strong>Details:</strong></p>
    <p>%s</p>
  `, EscapeHTML(name), EscapeHTML(email), EscapeHTML(phone), EscapeHTML(service), multiline(details))
}

func BookingConfirmationEmail(name, workshop, date string, quantity int, price float64) string {
	return fmt.Sprintf(`
    <h2>Workshop Booking Confirmation</h2>
    <p>Hi %s,</p>
    <p>Thank you for booking with Scale Breakers!</p>
    <h3>Booking Details</h3>
    <ul>
      <li><strong>Workshop:</strong> %s</li>
      <li><strong>Date:</strong> %s</li>
      <li><strong>Tickets:</strong> %d</li>
      <li><strong>Total Price:</strong> $%s</li>
      <li><strong>Location:</strong> B.Y.O. at 2-4 Edmundstone Street, West End</li>
    </ul>
    <h3>What to Know</h3>
    <ul>
      <li>Duration: 2 hours</li>
      <li>Max 23 participants</li>
      <li>All materials provided</li>
      <li>You'll take home your creation</li>
    </ul>
    <p>If you have any questions, please reply to this email or contact us at contact.scalebreakers@gmail.com</p>
    <p>See you soon!</p>
    <p>Scale Breakers Team</p>
  `, EscapeHTML(name), EscapeHTML(workshop), EscapeHTML(date), quantity, EscapeHTML(fmt.Sprintf("%.2f", price)))
}
