package verifyemail

import (
	"errors"
	"net/http"

	"just2kleen/internal/core/domain/account"
	e "just2kleen/internal/core/domain/errors"
	"just2kleen/internal/core/services"
	verifyemail "just2kleen/internal/core/services/verify_email"
	"just2kleen/internal/http/handlers/response"
)

// Handler serves the link embedded in confirmation emails, so it answers in
// plain text for the person clicking it, not in JSON.
type Handler struct {
	service services.Service[verifyemail.Input, verifyemail.Result]
}

func New(
	service services.Service[verifyemail.Input, verifyemail.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		response.RenderText(rw, "Token is missing", http.StatusBadRequest)
		return
	}

	result, err := h.service.Run(
		r.Context(),
		verifyemail.Input{Token: account.VerificationToken(token)},
	)
	if errors.Is(err, account.ErrInvalidVerificationToken) {
		response.RenderText(rw, "Invalid verification token", http.StatusBadRequest)
		return
	}
	if err != nil {
		response.RenderText(rw, "Failed to verify email", http.StatusInternalServerError)
		return
	}

	if result.AlreadyVerified {
		response.RenderText(rw, "Email is already verified", http.StatusOK)
		return
	}
	response.RenderText(rw, "Email successfully verified", http.StatusOK)
}
