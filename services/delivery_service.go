package services

import (
	"errors"
	"fmt"
	"strings"

	"campuseats-be/entity"
	"campuseats-be/repository"
	"campuseats-be/utils"

	"gorm.io/gorm"
)

// slugAttempts bounds the suffix search under concurrent creates.
const slugAttempts = 50

type DeliveryService struct {
	Repo *repository.DeliveryRepository
}

func NewDeliveryService(repo *repository.DeliveryRepository) *DeliveryService {
	return &DeliveryService{Repo: repo}
}

type CreateLocationIn struct {
	CondoName string   `json:"condoName" binding:"required"`
	Area      string   `json:"area"`
	MinFee    int64    `json:"minFee" binding:"min=0"`
	MaxFee    int64    `json:"maxFee" binding:"min=0"`
	Buildings []string `json:"buildings"`
}

func (s *DeliveryService) List(activeOnly bool) ([]entity.DeliveryLocation, error) {
	return s.Repo.List(activeOnly)
}

func (s *DeliveryService) GetBySlug(slug string) (*entity.DeliveryLocation, error) {
	loc, err := s.Repo.FindBySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return loc, err
}

// Create derives the slug from the condo name and resolves collisions
// with numeric suffixes. Uniqueness is enforced by the slug index, not
// a read-then-write check: on a duplicate-key conflict the insert
// retries with the next suffix, which stays correct under concurrent
// creates of the same base name.
func (s *DeliveryService) Create(in CreateLocationIn) (*entity.DeliveryLocation, error) {
	in.CondoName = strings.TrimSpace(in.CondoName)
	if in.CondoName == "" {
		return nil, fmt.Errorf("%w: condoName is required", ErrInvalidPayload)
	}
	if in.MinFee > in.MaxFee {
		return nil, fmt.Errorf("%w: minFee must not exceed maxFee", ErrInvalidPayload)
	}
	base := utils.Slugify(in.CondoName)
	if base == "" {
		base = "location"
	}

	buildings := make([]entity.DeliveryBuilding, 0, len(in.Buildings))
	for i, label := range in.Buildings {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		buildings = append(buildings, entity.DeliveryBuilding{Label: label, DisplayOrder: i})
	}

	for attempt := 0; attempt < slugAttempts; attempt++ {
		slug := base
		if attempt > 0 {
			slug = fmt.Sprintf("%s-%d", base, attempt)
		}
		loc := &entity.DeliveryLocation{
			Slug:      slug,
			CondoName: in.CondoName,
			Area:      strings.TrimSpace(in.Area),
			MinFee:    in.MinFee,
			MaxFee:    in.MaxFee,
			IsActive:  true,
			Buildings: buildings,
		}
		err := s.Repo.Create(loc)
		if err == nil {
			return loc, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("could not derive unique slug for %q", in.CondoName)
}

type UpdateLocationIn struct {
	CondoName *string `json:"condoName"`
	Area      *string `json:"area"`
	MinFee    *int64  `json:"minFee"`
	MaxFee    *int64  `json:"maxFee"`
	IsActive  *bool   `json:"isActive"`
}

func (s *DeliveryService) Update(id uint, in UpdateLocationIn) (*entity.DeliveryLocation, error) {
	loc, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if in.CondoName != nil {
		loc.CondoName = strings.TrimSpace(*in.CondoName)
	}
	if in.Area != nil {
		loc.Area = strings.TrimSpace(*in.Area)
	}
	if in.MinFee != nil {
		loc.MinFee = *in.MinFee
	}
	if in.MaxFee != nil {
		loc.MaxFee = *in.MaxFee
	}
	if loc.MinFee < 0 || loc.MinFee > loc.MaxFee {
		return nil, fmt.Errorf("%w: minFee must be non-negative and not exceed maxFee", ErrInvalidPayload)
	}
	if in.IsActive != nil {
		loc.IsActive = *in.IsActive
	}
	if err := s.Repo.Update(loc); err != nil {
		return nil, err
	}
	return loc, nil
}

func (s *DeliveryService) Delete(id uint) error {
	affected, err := s.Repo.Delete(id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
