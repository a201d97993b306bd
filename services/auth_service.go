package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"campuseats-be/entity"
	"campuseats-be/pkg/mailer"
	"campuseats-be/repository"
	"campuseats-be/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const resetTokenTTL = 30 * time.Minute

type AuthService struct {
	Users     *repository.UserRepository
	Mail      mailer.Mailer
	Log       *zap.Logger
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthService(users *repository.UserRepository, mail mailer.Mailer, log *zap.Logger, secret string, ttl time.Duration) *AuthService {
	return &AuthService{Users: users, Mail: mail, Log: log, JWTSecret: secret, JWTTTL: ttl}
}

func (s *AuthService) SignUp(email, password, name, phone, room string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.Users.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, errors.New("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Email:    email,
		Password: string(hashed),
		Name:     strings.TrimSpace(name),
		Phone:    strings.TrimSpace(phone),
		Room:     strings.TrimSpace(room),
	}
	if err := s.Users.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *AuthService) SignIn(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.Users.FindByEmail(email)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}
	token, err := utils.GenerateToken(user.ID, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	u, err := s.Users.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return u, err
}

// ForgotPassword never reveals whether the account exists: unknown
// emails take the same success path with no observable difference.
func (s *AuthService) ForgotPassword(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.Users.FindByEmail(email)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.Log.Error("forgot-password lookup failed", zap.Error(err))
		}
		return nil
	}

	token := uuid.NewString()
	pr := &entity.PasswordReset{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}
	if err := s.Users.CreateReset(pr); err != nil {
		s.Log.Error("create reset token failed", zap.Error(err))
		return nil
	}

	body := fmt.Sprintf("Use this code to reset your password: %s\nIt expires in 30 minutes.", token)
	if err := s.Mail.Send(user.Email, "Reset your password", body); err != nil {
		s.Log.Error("send reset mail failed", zap.Error(err))
	}
	return nil
}

func (s *AuthService) ResetPassword(token, newPassword string) error {
	if len(newPassword) < 8 {
		return errors.New("password must be at least 8 characters")
	}
	pr, err := s.Users.FindValidReset(token, time.Now())
	if err != nil {
		return errors.New("invalid or expired token")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.New("hash password failed")
	}
	if err := s.Users.UpdatePassword(pr.UserID, string(hashed)); err != nil {
		return err
	}
	return s.Users.MarkResetUsed(pr.ID, time.Now())
}
