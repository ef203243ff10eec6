package adaptor

import (
	"encoding/json"
	"net/http"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/dto/request"
	"flight-booking/internal/usecase"
	"flight-booking/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log,
	}
}

// Register handles POST /api/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Register(r.Context(), &req, r.UserAgent(), clientIP(r))
	if err != nil {
		handleServiceError(w, h.log, err, "register")
		return
	}

	setTokenCookie(w, resp.Token, resp.ExpiresAt)
	utils.ResponseCreated(w, "Registration successful. Verification code sent to email.", resp)
}

// Login handles POST /api/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	resp, err := h.service.Login(r.Context(), &req, r.UserAgent(), clientIP(r))
	if err != nil {
		handleServiceError(w, h.log, err, "login")
		return
	}

	setTokenCookie(w, resp.Token, resp.ExpiresAt)
	utils.ResponseSuccess(w, "Login successful", resp)
}

// Logout handles POST /api/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := utils.GetSessionIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	if err := h.service.Logout(r.Context(), sessionID); err != nil {
		handleServiceError(w, h.log, err, "logout")
		return
	}

	clearTokenCookie(w)
	utils.ResponseSuccess(w, "Logout successful", nil)
}

// Me handles GET /api/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Not authenticated")
		return
	}

	resp, err := h.service.Me(r.Context(), userID)
	if err != nil {
		handleServiceError(w, h.log, err, "get current user")
		return
	}

	utils.ResponseSuccess(w, "Authenticated", resp)
}

// SendOTP handles POST /api/send-otp
func (h *AuthHandler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req request.SendOTPRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.SendOTP(r.Context(), req.Email, entity.OTPType(req.Type)); err != nil {
		handleServiceError(w, h.log, err, "send OTP")
		return
	}

	utils.ResponseSuccess(w, "OTP sent to email", nil)
}

// VerifyEmail handles POST /api/verify-email
func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyEmailRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.VerifyEmail(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "verify email")
		return
	}

	utils.ResponseSuccess(w, "Email verified successfully", nil)
}

// ResetPassword handles POST /api/reset-password
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.ResetPassword(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "reset password")
		return
	}

	utils.ResponseSuccess(w, "Password reset successfully", nil)
}
