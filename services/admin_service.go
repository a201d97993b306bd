package services

import (
	"errors"
	"fmt"
	"strings"

	"campuseats-be/entity"
	"campuseats-be/repository"

	"gorm.io/gorm"
)

// AdminService manages the admin roster itself. Session-to-admin
// resolution happens in the auth middleware; this service only holds
// the roster mutations.
type AdminService struct {
	Admins *repository.AdminRepository
	Users  *repository.UserRepository
}

func NewAdminService(admins *repository.AdminRepository, users *repository.UserRepository) *AdminService {
	return &AdminService{Admins: admins, Users: users}
}

func (s *AdminService) List() ([]entity.Admin, error) {
	return s.Admins.List()
}

type AddAdminIn struct {
	Email       string `json:"email" binding:"required,email"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role" binding:"required,oneof=moderator admin super_admin"`
}

// Add promotes an existing user to the roster.
func (s *AdminService) Add(in AddAdminIn) (*entity.Admin, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	user, err := s.Users.FindByEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if _, err := s.Admins.FindByUserID(user.ID); err == nil {
		return nil, fmt.Errorf("%w: %s is already an admin", ErrInvalidPayload, email)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	admin := &entity.Admin{
		UserID:      user.ID,
		Email:       email,
		DisplayName: strings.TrimSpace(in.DisplayName),
		Role:        in.Role,
		IsActive:    true,
	}
	if err := s.Admins.Create(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// Remove deletes an admin row. Super-admin-only at the route level;
// self-removal is rejected here so the row is provably untouched.
func (s *AdminService) Remove(callerAdminID, targetAdminID uint) error {
	if callerAdminID == targetAdminID {
		return ErrSelfRemoval
	}
	if _, err := s.Admins.FindByID(targetAdminID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.Admins.Delete(targetAdminID)
}
