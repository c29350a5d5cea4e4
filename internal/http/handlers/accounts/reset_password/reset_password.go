package resetpassword

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"just2kleen/internal/core/domain/account"
	e "just2kleen/internal/core/domain/errors"
	"just2kleen/internal/core/services"
	resetpassword "just2kleen/internal/core/services/reset_password"
	"just2kleen/internal/http/handlers/response"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[resetpassword.Input, resetpassword.Result]
}

func New(
	service services.Service[resetpassword.Input, resetpassword.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Token       string `json:"token"`
	Role        string `json:"role"`
	NewPassword string `json:"newPassword"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Token, validation.Required, validation.Length(0, 1024)),
		validation.Field(&i.Role, validation.Required, validation.In(
			string(account.RoleCleaner),
			string(account.RoleClient),
		)),
		validation.Field(&i.NewPassword, validation.Required, validation.Length(8, 256)),
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

	_, err := h.service.Run(
		r.Context(),
		resetpassword.Input{
			Token:       account.ResetToken(input.Token),
			Role:        role,
			NewPassword: account.RawPassword(input.NewPassword),
		},
	)
	if errors.Is(err, account.ErrInvalidResetToken) {
		response.RenderError(rw, "invalid or expired token", http.StatusBadRequest)
		return
	}
	if errors.Is(err, account.ErrResetTokenExpired) {
		response.RenderError(rw, "token has expired", http.StatusBadRequest)
		return
	}
	if err != nil {
		response.RenderInternalError(rw)
		return
	}

	response.RenderMessage(rw, "Password reset successful", http.StatusOK)
}
