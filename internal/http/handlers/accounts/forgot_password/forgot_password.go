package forgotpassword

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"just2kleen/internal/core/domain/account"
	c "just2kleen/internal/core/domain/common"
	e "just2kleen/internal/core/domain/errors"
	ratelimiter "just2kleen/internal/core/domain/rate_limiter"
	"just2kleen/internal/core/services"
	service "just2kleen/internal/core/services/send_password_reset_token"
	"just2kleen/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type Handler struct {
	service    services.Service[service.Input, service.Result]
	isTestMode bool
}

func New(
	service services.Service[service.Input, service.Result],
	isTestMode bool,
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service, isTestMode: isTestMode}
}

type Input struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Role, validation.Required, validation.In(
			string(account.RoleCleaner),
			string(account.RoleClient),
		)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}
	role, _ := account.ParseRole(input.Role)

	result, err := h.service.Run(
		r.Context(),
		service.Input{Email: c.NewEmail(input.Email), Role: role},
	)
	if err != nil {
		switch {
		case errors.Is(err, ratelimiter.ErrRateLimitExceeded):
			response.RenderRateLimitExceeded(rw)
		case errors.Is(err, account.ErrAccountDoesNotExist):
			response.RenderError(rw, "user not found", http.StatusNotFound)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	if h.isTestMode {
		rw.Header().Set("x-test-password-reset-token", string(result.Token))
	}
	response.RenderMessage(rw, "Password reset email sent", http.StatusOK)
}
