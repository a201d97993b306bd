package services

import (
	"context"
	"time"

	"campuseats-be/entity"
	"campuseats-be/pkg/cache"
	"campuseats-be/repository"

	"go.uber.org/zap"
)

// Notifier fans out same-process UI refresh hints. Consumers assume no
// ordering; delivery is best effort.
type Notifier interface {
	Broadcast(topic string, payload any)
}

const (
	shopStatusCacheKey = "shop:status"
	shopStatusTTL      = 60 * time.Second
)

// ShopService owns the open/closed gate: a DB singleton fronted by a
// 60s redis entry that writes delete explicitly, so staleness is
// bounded by the TTL even if an invalidation is lost.
type ShopService struct {
	Repo  *repository.ShopRepository
	Cache *cache.TagCache
	Hub   Notifier
	Log   *zap.Logger
}

func NewShopService(repo *repository.ShopRepository, c *cache.TagCache, hub Notifier, log *zap.Logger) *ShopService {
	return &ShopService{Repo: repo, Cache: c, Hub: hub, Log: log}
}

func (s *ShopService) Get(ctx context.Context) (*entity.ShopSetting, error) {
	var cached entity.ShopSetting
	hit, err := s.Cache.GetJSON(ctx, shopStatusCacheKey, &cached)
	if err != nil {
		// cache trouble degrades to a DB read
		s.Log.Warn("shop status cache read failed", zap.Error(err))
	}
	if hit {
		return &cached, nil
	}

	setting, err := s.Repo.Get()
	if err != nil {
		return nil, err
	}
	if err := s.Cache.SetJSON(ctx, shopStatusCacheKey, setting, shopStatusTTL); err != nil {
		s.Log.Warn("shop status cache write failed", zap.Error(err))
	}
	return setting, nil
}

type SetShopStatusIn struct {
	IsOpen      bool   `json:"isOpen"`
	ClosedMsgEn string `json:"closedMsgEn"`
	ClosedMsgMm string `json:"closedMsgMm"`
}

// Set persists the transition with the acting admin, then invalidates
// the cached read and broadcasts a refresh hint. Invalidation is
// fire-and-forget after the write commits.
func (s *ShopService) Set(ctx context.Context, adminID uint, in SetShopStatusIn) (*entity.ShopSetting, error) {
	setting := &entity.ShopSetting{
		IsOpen:           in.IsOpen,
		ClosedMsgEn:      in.ClosedMsgEn,
		ClosedMsgMm:      in.ClosedMsgMm,
		UpdatedByAdminID: adminID,
		UpdatedAt:        time.Now(),
	}
	if err := s.Repo.Upsert(setting); err != nil {
		return nil, err
	}
	if err := s.Cache.Delete(ctx, shopStatusCacheKey); err != nil {
		s.Log.Warn("shop status cache invalidation failed", zap.Error(err))
	}
	if s.Hub != nil {
		s.Hub.Broadcast("shop", setting)
	}
	return setting, nil
}

// ShopClosedError carries the configured closed messages so the
// boundary can surface them. errors.Is(err, ErrShopClosed) matches.
type ShopClosedError struct {
	MsgEn string
	MsgMm string
}

func (e *ShopClosedError) Error() string        { return "shop closed" }
func (e *ShopClosedError) Is(target error) bool { return target == ErrShopClosed }

// RequireOpen fails with a ShopClosedError while the gate is closed.
func (s *ShopService) RequireOpen(ctx context.Context) (*entity.ShopSetting, error) {
	setting, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !setting.IsOpen {
		return setting, &ShopClosedError{MsgEn: setting.ClosedMsgEn, MsgMm: setting.ClosedMsgMm}
	}
	return setting, nil
}
