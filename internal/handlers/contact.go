package handlers

import (
	"fmt"
	"net/http"

	"github.com/contactscalebreakers-dev/website.supabase/internal/email"
)

// EmailHandler forwards contact and service enquiry forms to the studio inbox.
type EmailHandler struct {
	Mailer email.Sender

	// AdminEmail receives the rendered notifications.
	AdminEmail string
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SendContact handles POST /api/contact
func (h *EmailHandler) SendContact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := ParseJSONBody(r, &req); err != nil {
		ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Name == "" {
		ErrorResponse(w, http.StatusBadRequest, "Name is required")
		return
	}
	if !isValidEmail(req.Email) {
		ErrorResponse(w, http.StatusBadRequest, "Valid email is required")
		return
	}
	if req.Message == "" {
		ErrorResponse(w, http.StatusBadRequest, "Message is required")
		return
	}

	html := email.ContactFormEmail(req.Name, req.Email, req.Message)
	subject := fmt.Sprintf("New Contact Form Submission from %s", req.Name)
	if !h.Mailer.Send(r.Context(), h.AdminEmail, subject, html) {
		ErrorResponse(w, http.StatusInternalServerError, "Failed to send email")
		return
	}

	JSONResponse(w, http.StatusOK, successResponse{Success: true, Message: "Thank you! We'll get back to you soon."})
}

type serviceEnquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Details string `json:"details"`
}

// SendServiceEnquiry handles POST /api/enquiries
func (h *EmailHandler) SendServiceEnquiry(w http.ResponseWriter, r *http.Request) {
	var req serviceEnquiryRequest
	if err := ParseJSONBody(r, &req); err != nil {
		ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Name == "" {
		ErrorResponse(w, http.StatusBadRequest, "Name is required")
		return
	}
	if !isValidEmail(req.Email) {
		ErrorResponse(w, http.StatusBadRequest, "Valid email is required")
		return
	}
	if req.Phone == "" {
		ErrorResponse(w, http.StatusBadRequest, "Phone is required")
		return
	}
	if req.Service == "" {
		ErrorResponse(w, http.StatusBadRequest, "Service is required")
		return
	}
	if req.Details == "" {
		ErrorResponse(w, http.StatusBadRequest, "Details are required")
		return
	}

	html := email.ServiceEnquiryEmail(req.Name, req.Email, req.Phone, req.Service, req.Details)
	subject := fmt.Sprintf("New %s Enquiry from %s", req.Service, req.Name)
	if !h.Mailer.Send(r.Context(), h.AdminEmail, subject, html) {
		ErrorResponse(w, http.StatusInternalServerError, "Failed to send email")
		return
	}

	JSONResponse(w, http.StatusOK, successResponse{Success: true, Message: "Thank you! We'll get back to you soon."})
}
