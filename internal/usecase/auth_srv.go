package usecase

import (
	"context"
	"fmt"
	"time"

	"flight-booking/internal/data/entity"
	"flight-booking/internal/data/repository"
	"flight-booking/internal/dto/request"
	"flight-booking/internal/dto/response"
	"flight-booking/internal/email"
	"flight-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest, userAgent, ip string) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest, userAgent, ip string) (*response.AuthResponse, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
	Me(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	SendOTP(ctx context.Context, email string, otpType entity.OTPType) error
	VerifyEmail(ctx context.Context, req *request.VerifyEmailRequest) error
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
}

type authService struct {
	repo   *repository.Repository // grouping user, session & otp repos
	config *utils.Config
	mailer *email.Sender
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	config *utils.Config,
	mailer *email.Sender,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		mailer: mailer,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest, userAgent, ip string) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	// Check email already registered
	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existingUser != nil {
		return nil, ErrUserExists
	}

	// Check username already taken
	existingUser, err = s.repo.User.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to check username", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("check username: %w", err)
	}
	if existingUser != nil {
		return nil, ErrUserExists
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username:      req.Username,
		Email:         req.Email,
		PasswordHash:  hashedPassword,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		Phone:         req.Phone,
		Role:          entity.RoleUser,
		EmailVerified: false,
		IsActive:      true,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if err == repository.ErrDuplicateUser {
			return nil, ErrUserExists
		}
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create user: %w", err)
	}

	// Send verification OTP async; registration does not wait on it
	go s.sendVerificationOTP(user.Email)

	// Auto login after register
	token, session, err := s.issueToken(ctx, user, userAgent, ip)
	if err != nil {
		s.log.Warn("Failed to create session after register",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		resp := response.AuthToResponse(user, "", time.Time{})
		return &resp, nil
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	resp := response.AuthToResponse(user, token, session.ExpiresAt)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest, userAgent, ip string) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, NewValidationError(errs)
	}

	// Identifier is either email or username
	user, err := s.repo.User.FindByEmail(ctx, req.Username)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("identifier", req.Username))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		user, err = s.repo.User.FindByUsername(ctx, req.Username)
		if err != nil {
			s.log.Error("Failed to find user by username", zap.Error(err), zap.String("identifier", req.Username))
			return nil, fmt.Errorf("find user: %w", err)
		}
	}

	if user == nil {
		s.log.Warn("User not found for login", zap.String("identifier", req.Username))
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		s.log.Warn("Inactive user tried to login", zap.String("user_id", user.ID.String()))
		return nil, ErrAccountDeactivated
	}

	token, session, err := s.issueToken(ctx, user, userAgent, ip)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("create session: %w", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	resp := response.AuthToResponse(user, token, session.ExpiresAt)
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.repo.Session.Revoke(ctx, sessionID); err != nil {
		s.log.Error("Failed to revoke session", zap.Error(err), zap.String("session_id", sessionID.String()))
		return fmt.Errorf("revoke session: %w", err)
	}

	s.log.Info("User logged out", zap.String("session_id", sessionID.String()))
	return nil
}

func (s *authService) Me(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *authService) SendOTP(ctx context.Context, email string, otpType entity.OTPType) error {
	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user for OTP", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	if otpType == entity.OTPTypeEmailVerification && user.EmailVerified {
		return ErrEmailVerified
	}

	otpCode := utils.GenerateOTP(s.config.OTP.Length)
	expiresAt := time.Now().Add(time.Duration(s.config.OTP.ExpiryMinutes) * time.Minute)

	otp := &entity.OTP{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    user.ID,
		Email:     email,
		OTPCode:   otpCode,
		OTPType:   otpType,
		ExpiresAt: expiresAt,
		IsUsed:    false,
	}

	if err := s.repo.OTP.Create(ctx, otp); err != nil {
		s.log.Error("Failed to save OTP", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("save OTP: %w", err)
	}

	s.log.Info("OTP generated",
		zap.String("email", email),
		zap.String("otp_type", string(otpType)),
		zap.Time("expires_at", expiresAt),
	)

	subject := "Your verification code"
	if otpType == entity.OTPTypePasswordReset {
		subject = "Your password reset code"
	}
	body := fmt.Sprintf("Your one-time code is %s. It expires in %d minutes.",
		otpCode, s.config.OTP.ExpiryMinutes)

	if err := s.mailer.Send(email, subject, body); err != nil {
		s.log.Error("Failed to send OTP email", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("send OTP email: %w", err)
	}

	return nil
}

func (s *authService) VerifyEmail(ctx context.Context, req *request.VerifyEmailRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Verify email validation failed", zap.Any("errors", errs))
		return NewValidationError(errs)
	}

	otp, err := s.repo.OTP.FindValidOTP(ctx, req.Email, req.OTP, entity.OTPTypeEmailVerification)
	if err != nil {
		s.log.Error("Failed to find OTP", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("find OTP: %w", err)
	}
	if otp == nil {
		return ErrInvalidOTP
	}

	if err := s.repo.OTP.MarkAsUsed(ctx, otp.ID); err != nil {
		s.log.Warn("Failed to mark OTP as used", zap.Error(err), zap.String("otp_id", otp.ID.String()))
		// Continue anyway
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for verification", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	user.EmailVerified = true
	user.UpdatedAt = time.Now()

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update user verification", zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("update user: %w", err)
	}

	s.log.Info("Email verified",
		zap.String("email", req.Email),
		zap.String("user_id", user.ID.String()))

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Reset password validation failed", zap.Any("errors", errs))
		return NewValidationError(errs)
	}

	otp, err := s.repo.OTP.FindValidOTP(ctx, req.Email, req.OTP, entity.OTPTypePasswordReset)
	if err != nil {
		s.log.Error("Failed to find OTP", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("find OTP: %w", err)
	}
	if otp == nil {
		return ErrInvalidOTP
	}

	if err := s.repo.OTP.MarkAsUsed(ctx, otp.ID); err != nil {
		s.log.Warn("Failed to mark OTP as used", zap.Error(err), zap.String("otp_id", otp.ID.String()))
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user for password reset", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		s.log.Error("Failed to hash new password", zap.Error(err))
		return fmt.Errorf("hash password: %w", err)
	}

	if err := s.repo.User.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		s.log.Error("Failed to update password", zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("update password: %w", err)
	}

	// Old tokens must not survive a password reset
	if err := s.repo.Session.RevokeAllUserSessions(ctx, user.ID); err != nil {
		s.log.Warn("Failed to revoke sessions after password reset",
			zap.Error(err), zap.String("user_id", user.ID.String()))
	}

	s.log.Info("Password reset",
		zap.String("email", req.Email),
		zap.String("user_id", user.ID.String()))

	return nil
}

// ==================== HELPER METHODS ====================

// issueToken stores a session row and signs a JWT whose jti points at
// it, so revoking the row invalidates the token.
func (s *authService) issueToken(ctx context.Context, user *entity.User, userAgent, ip string) (string, *entity.Session, error) {
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    user.ID,
		UserAgent: userAgent,
		IPAddress: ip,
		ExpiresAt: time.Now().Add(time.Duration(s.config.JWT.ExpiryHours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return "", nil, err
	}

	token, err := utils.SignToken(s.config.JWT, user.ID, session.ID, string(user.Role))
	if err != nil {
		return "", nil, err
	}

	return token, session, nil
}

func (s *authService) sendVerificationOTP(email string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.SendOTP(ctx, email, entity.OTPTypeEmailVerification); err != nil {
		s.log.Error("Failed to send verification OTP", zap.Error(err), zap.String("email", email))
	}
}
