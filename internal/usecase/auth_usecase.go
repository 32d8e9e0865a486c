package usecase

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"clinic-backend/config"
	"clinic-backend/internal/converter"
	"clinic-backend/internal/delivery/dto"
	"clinic-backend/internal/domain/entity"
	"clinic-backend/internal/domain/repository"
	"clinic-backend/internal/infrastructure/mail"
	"clinic-backend/internal/service"
	"clinic-backend/pkg/jwt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotVerified   = errors.New("email is not verified")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidOTP         = errors.New("invalid or expired verification code")
	ErrAlreadyVerified    = errors.New("email is already verified")
	ErrInvalidDateFormat  = errors.New("invalid date format, use YYYY-MM-DD")
)

type AuthUsecase interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) error
	ResendOTP(ctx context.Context, req *dto.ResendOTPRequest) error
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	Logout(ctx context.Context, accessTokenID, refreshTokenID string) error
	RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error)
}

type authUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	userRepo     repository.UserRepository
	patientRepo  repository.PatientRepository
	doctorRepo   repository.DoctorRepository
	specRepo     repository.SpecializationRepository
	otpRepo      repository.OTPRepository
	jwtService   *jwt.JWTService
	redisClient  *redis.Client
	mailer       *mail.Mailer
	auditService service.AuditService
	otpExpiry    time.Duration
}

func NewAuthUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	specRepo repository.SpecializationRepository,
	otpRepo repository.OTPRepository,
	jwtService *jwt.JWTService,
	redisClient *redis.Client,
	mailer *mail.Mailer,
	auditService service.AuditService,
	otpConfig config.OTPConfig,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		patientRepo:  patientRepo,
		doctorRepo:   doctorRepo,
		specRepo:     specRepo,
		otpRepo:      otpRepo,
		jwtService:   jwtService,
		redisClient:  redisClient,
		mailer:       mailer,
		auditService: auditService,
		otpExpiry:    otpConfig.Expiry,
	}
}

// Register creates the account and its role profile in one transaction,
// then issues a verification code. Clients get a patient record; doctors
// get an unverified doctor profile that stays out of the public directory
// until a manager signs it off.
func (u *authUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	var dob *time.Time
	if req.DateOfBirth != "" {
		parsed, err := time.Parse("2006-01-02", req.DateOfBirth)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		dob = &parsed
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	roleID := entity.RoleIDClient
	if req.Role == entity.RoleDoctor {
		roleID = entity.RoleIDDoctor
	}

	user := &entity.User{
		Email:       strings.ToLower(req.Email),
		Password:    string(hashedPassword),
		FullName:    req.FirstName + " " + req.LastName,
		PhoneNumber: req.PhoneNumber,
		RoleID:      roleID,
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	if roleID == entity.RoleIDDoctor {
		spec, err := u.specRepo.FindByID(tx, req.SpecializationID)
		if err != nil {
			return nil, err
		}
		if spec == nil {
			return nil, ErrSpecializationInvalid
		}

		doctor := &entity.Doctor{
			UserID:           user.ID,
			SpecializationID: req.SpecializationID,
			LicenseNumber:    req.LicenseNumber,
		}
		if err := u.doctorRepo.Create(tx, doctor); err != nil {
			if isDuplicateKeyError(err, "license") {
				return nil, ErrLicenseAlreadyExists
			}
			u.log.Warnf("Failed to create doctor profile: %+v", err)
			return nil, err
		}
		user.Doctor = doctor
	} else {
		gender := req.Gender
		if gender == "" {
			gender = entity.GenderOther
		}

		patient := &entity.Patient{
			UserID:      &user.ID,
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			Email:       user.Email,
			Phone:       req.PhoneNumber,
			DateOfBirth: dob,
			Gender:      gender,
			Address:     req.Address,
		}
		if err := u.patientRepo.Create(tx, patient); err != nil {
			if isDuplicateKeyError(err, "email") {
				return nil, ErrEmailAlreadyExists
			}
			u.log.Warnf("Failed to create patient record: %+v", err)
			return nil, err
		}
		user.Patient = patient
	}

	code, err := u.issueOTP(tx, user.Email)
	if err != nil {
		return nil, err
	}

	u.auditService.LogCreate(ctx, tx, &user.ID, entity.AuditActionUserRegister, "user", user.ID.String(), nil)

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.mailer.SendVerificationCode(user.Email, code)

	return converter.UserToResponse(user), nil
}

// VerifyEmail consumes the code and flips the account to verified.
func (u *authUsecase) VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	email := strings.ToLower(req.Email)

	otp, err := u.otpRepo.FindValid(tx, email, req.Code, time.Now())
	if err != nil {
		u.log.Warnf("Failed to look up verification code: %+v", err)
		return err
	}
	if otp == nil {
		return ErrInvalidOTP
	}

	affected, err := u.userRepo.MarkEmailVerified(tx, email)
	if err != nil {
		u.log.Warnf("Failed to mark email verified: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	if err := u.otpRepo.Delete(tx, otp.ID); err != nil {
		u.log.Warnf("Failed to consume verification code: %+v", err)
		return err
	}

	return tx.Commit().Error
}

// ResendOTP replaces any outstanding code with a fresh one.
func (u *authUsecase) ResendOTP(ctx context.Context, req *dto.ResendOTPRequest) error {
	email := strings.ToLower(req.Email)

	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.IsEmailVerified {
		return ErrAlreadyVerified
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	code, err := u.issueOTP(tx, email)
	if err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	u.mailer.SendVerificationCode(email, code)
	return nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), strings.ToLower(req.Email))
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsEmailVerified {
		return nil, ErrEmailNotVerified
	}
	if user.IsActive != nil && !*user.IsActive {
		return nil, ErrAccountDisabled
	}

	tokens, err := u.issueTokenPair(ctx, user)
	if err != nil {
		return nil, err
	}

	u.auditService.LogCreate(ctx, u.db.WithContext(ctx), &user.ID, entity.AuditActionUserLogin, "user", user.ID.String(), nil)

	return tokens, nil
}

func (u *authUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	patterns := []string{
		fmt.Sprintf("access_token:*:%s", accessTokenID),
	}
	if refreshTokenID != "" {
		patterns = append(patterns, fmt.Sprintf("refresh_token:*:%s", refreshTokenID))
	}

	for _, pattern := range patterns {
		keys, err := u.redisClient.Keys(ctx, pattern).Result()
		if err != nil {
			u.log.Warnf("Failed to get token keys: %+v", err)
			return err
		}
		if len(keys) > 0 {
			if err := u.redisClient.Del(ctx, keys...).Err(); err != nil {
				u.log.Warnf("Failed to delete tokens: %+v", err)
				return err
			}
		}
	}

	return nil
}

func (u *authUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	claims, err := u.jwtService.ValidateToken(req.RefreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}
	if claims.TokenType != jwt.RefreshToken {
		return nil, ErrInvalidToken
	}

	refreshKey := fmt.Sprintf("refresh_token:%s:%s", claims.UserID.String(), claims.TokenID)
	exists, err := u.redisClient.Exists(ctx, refreshKey).Result()
	if err != nil {
		u.log.Warnf("Failed to check refresh token in Redis: %+v", err)
		return nil, err
	}
	if exists == 0 {
		return nil, ErrTokenRevoked
	}

	// Rotation: the presented refresh token is single-use.
	if err := u.redisClient.Del(ctx, refreshKey).Err(); err != nil {
		u.log.Warnf("Failed to delete old refresh token: %+v", err)
		return nil, err
	}

	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.IsActive != nil && !*user.IsActive {
		return nil, ErrAccountDisabled
	}

	return u.issueTokenPair(ctx, user)
}

// ForgotPassword issues a reset code. The response never reveals whether
// the email belongs to an account.
func (u *authUsecase) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error {
	email := strings.ToLower(req.Email)

	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	code, err := u.issueOTP(tx, email)
	if err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	u.mailer.SendPasswordResetCode(email, code)
	return nil
}

func (u *authUsecase) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	email := strings.ToLower(req.Email)

	otp, err := u.otpRepo.FindValid(tx, email, req.Code, time.Now())
	if err != nil {
		return err
	}
	if otp == nil {
		return ErrInvalidOTP
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return err
	}

	affected, err := u.userRepo.UpdatePassword(tx, email, string(hashedPassword))
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	if err := u.otpRepo.Delete(tx, otp.ID); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		return err
	}

	// A changed password invalidates every open session.
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), email)
	if err == nil && user != nil {
		u.revokeAllUserTokens(ctx, user.ID)
	}

	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

func (u *authUsecase) UpdateProfile(ctx context.Context, userID uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}

	if err := u.userRepo.Update(tx, user); err != nil {
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	if req.Address != "" {
		patient, err := u.patientRepo.FindByUserID(tx, userID)
		if err != nil {
			return nil, err
		}
		if patient != nil {
			patient.Address = req.Address
			if req.PhoneNumber != "" {
				patient.Phone = req.PhoneNumber
			}
			if err := u.patientRepo.Update(tx, patient); err != nil {
				return nil, err
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	return u.GetCurrentUser(ctx, userID)
}

// issueOTP replaces any outstanding codes for the email with one fresh
// 6-digit code inside the given transaction.
func (u *authUsecase) issueOTP(tx *gorm.DB, email string) (string, error) {
	if err := u.otpRepo.DeleteByEmail(tx, email); err != nil {
		u.log.Warnf("Failed to clear previous codes: %+v", err)
		return "", err
	}

	code, err := generateOTPCode()
	if err != nil {
		u.log.Warnf("Failed to generate verification code: %+v", err)
		return "", err
	}

	otp := &entity.OTP{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(u.otpExpiry),
	}
	if err := u.otpRepo.Create(tx, otp); err != nil {
		u.log.Warnf("Failed to store verification code: %+v", err)
		return "", err
	}

	return code, nil
}

func (u *authUsecase) issueTokenPair(ctx context.Context, user *entity.User) (*dto.TokenResponse, error) {
	accessToken, accessTokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Email, user.RoleID)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	refreshToken, refreshTokenID, err := u.jwtService.GenerateRefreshToken(user.ID, user.Email, user.RoleID)
	if err != nil {
		u.log.Warnf("Failed to generate refresh token: %+v", err)
		return nil, err
	}

	accessKey := fmt.Sprintf("access_token:%s:%s", user.ID.String(), accessTokenID)
	refreshKey := fmt.Sprintf("refresh_token:%s:%s", user.ID.String(), refreshTokenID)

	if err := u.redisClient.Set(ctx, accessKey, "valid", u.jwtService.GetAccessExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store access token in Redis: %+v", err)
		return nil, err
	}
	if err := u.redisClient.Set(ctx, refreshKey, "valid", u.jwtService.GetRefreshExpiry()).Err(); err != nil {
		u.log.Warnf("Failed to store refresh token in Redis: %+v", err)
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *authUsecase) revokeAllUserTokens(ctx context.Context, userID uuid.UUID) {
	for _, pattern := range []string{
		fmt.Sprintf("access_token:%s:*", userID.String()),
		fmt.Sprintf("refresh_token:%s:*", userID.String()),
	} {
		keys, err := u.redisClient.Keys(ctx, pattern).Result()
		if err != nil {
			u.log.Warnf("Failed to list tokens for revocation: %+v", err)
			continue
		}
		if len(keys) > 0 {
			if err := u.redisClient.Del(ctx, keys...).Err(); err != nil {
				u.log.Warnf("Failed to revoke tokens: %+v", err)
			}
		}
	}
}

// generateOTPCode returns a random zero-padded 6-digit code.
func generateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// containing the specified constraint name
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		if pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
