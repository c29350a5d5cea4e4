package app

import (
	"fmt"
	"net/http"

	"just2kleen/internal/app/deps"
	"just2kleen/internal/app/services"
	forgotpassword "just2kleen/internal/http/handlers/accounts/forgot_password"
	resetpassword "just2kleen/internal/http/handlers/accounts/reset_password"
	verifyemail "just2kleen/internal/http/handlers/accounts/verify_email"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	isTestMode := deps.Config.IsTestMode

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Method(http.MethodGet, "/verify-email", verifyemail.New(s.VerifyEmail))
	router.Method(http.MethodPost, "/forgot-password", forgotpassword.New(s.SendPasswordResetToken, isTestMode))
	router.Method(http.MethodPost, "/reset-password", resetpassword.New(s.ResetPassword))

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
