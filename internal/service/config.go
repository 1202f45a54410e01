package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/merchware/shipcast/internal/cache"
	"github.com/merchware/shipcast/internal/domain/models"
	"github.com/merchware/shipcast/internal/match"
	"github.com/merchware/shipcast/internal/storage"
	"github.com/merchware/shipcast/internal/validate"
)

// ErrValidation marks rejected input; handlers map it to a 400.
var ErrValidation = errors.New("invalid input")

// ConfigService manages per-shop settings and rules for the admin UI. Every
// write validates first, then invalidates the shop's configured-flag cache.
type ConfigService interface {
	GetSettings(ctx context.Context, shop string) (*models.Settings, error)
	SaveSettings(ctx context.Context, s *models.Settings) error
	ListRules(ctx context.Context, shop string) ([]models.Rule, error)
	GetRule(ctx context.Context, shop, id string) (*models.Rule, error)
	CreateRule(ctx context.Context, r *models.Rule) error
	UpdateRule(ctx context.Context, r *models.Rule) error
	DeleteRule(ctx context.Context, shop, id string) error
}

type configService struct {
	repo      storage.Repository
	cache     cache.ShopCache
	validator *validate.Validator
	matcher   *match.Matcher
	now       func() time.Time
}

func NewConfigService(repo storage.Repository, shopCache cache.ShopCache, v *validate.Validator, matcher *match.Matcher) ConfigService {
	return &configService{repo: repo, cache: shopCache, validator: v, matcher: matcher, now: time.Now}
}

// GetSettings returns the saved settings, or the defaults for a shop that
// never saved any. A zero UpdatedAt tells the two apart.
func (s *configService) GetSettings(_ context.Context, shop string) (*models.Settings, error) {
	stored, err := s.repo.GetSettings(shop)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if stored == nil {
		return models.DefaultSettings(shop), nil
	}
	return stored, nil
}

func (s *configService) SaveSettings(ctx context.Context, settings *models.Settings) error {
	if err := s.validator.Settings(settings); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err)
	}
	settings.UpdatedAt = s.now().UTC()
	if err := s.repo.UpsertSettings(settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	s.cache.Invalidate(ctx, settings.Shop)
	return nil
}

func (s *configService) ListRules(_ context.Context, shop string) ([]models.Rule, error) {
	rules, err := s.repo.ListRules(shop)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	return rules, nil
}

func (s *configService) GetRule(_ context.Context, shop, id string) (*models.Rule, error) {
	rule, err := s.repo.GetRule(shop, id)
	if err != nil {
		return nil, fmt.Errorf("load rule: %w", err)
	}
	if rule == nil {
		return nil, storage.ErrRuleNotFound
	}
	return rule, nil
}

// CreateRule assigns the id and timestamps; the caller supplies everything
// else.
func (s *configService) CreateRule(ctx context.Context, r *models.Rule) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if err := s.validator.Rule(r); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err)
	}
	now := s.now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
	if err := s.repo.InsertRule(r); err != nil {
		return fmt.Errorf("insert rule: %w", err)
	}
	s.cache.Invalidate(ctx, r.Shop)
	return nil
}

func (s *configService) UpdateRule(ctx context.Context, r *models.Rule) error {
	if err := s.validator.Rule(r); err != nil {
		return fmt.Errorf("%w: %s", ErrValidation, err)
	}
	r.UpdatedAt = s.now().UTC()
	if err := s.repo.UpdateRule(r); err != nil {
		if errors.Is(err, storage.ErrRuleNotFound) {
			return err
		}
		return fmt.Errorf("update rule: %w", err)
	}
	s.cache.Invalidate(ctx, r.Shop)
	return nil
}

func (s *configService) DeleteRule(ctx context.Context, shop, id string) error {
	if err := s.repo.DeleteRule(shop, id); err != nil {
		if errors.Is(err, storage.ErrRuleNotFound) {
			return err
		}
		return fmt.Errorf("delete rule: %w", err)
	}
	s.matcher.Remove(id)
	s.cache.Invalidate(ctx, shop)
	return nil
}
