package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/merchware/shipcast/internal/cache"
	"github.com/merchware/shipcast/internal/domain/dto"
	"github.com/merchware/shipcast/internal/domain/models"
	"github.com/merchware/shipcast/internal/holiday"
	"github.com/merchware/shipcast/internal/match"
	"github.com/merchware/shipcast/internal/message"
	"github.com/merchware/shipcast/internal/schedule"
	"github.com/merchware/shipcast/internal/storage"
)

// maxPreviewParallel caps the per-rule render fan-out of Preview.
const maxPreviewParallel = 4

// EstimateService computes delivery schedules and renders merchant messages.
// Estimate serves the storefront widget; Preview serves the admin UI. Both
// run the same resolve-compute-render path so a merchant preview always
// shows what a shopper would see.
type EstimateService interface {
	Estimate(ctx context.Context, req dto.EstimateRequest) (*dto.EstimateResponse, error)
	Preview(ctx context.Context, req dto.PreviewRequest) (*dto.PreviewResponse, error)
	Countries(ctx context.Context) []dto.CountryOption
}

type estimateService struct {
	repo    storage.Repository
	cache   cache.ShopCache
	matcher *match.Matcher
	now     func() time.Time
}

func NewEstimateService(repo storage.Repository, shopCache cache.ShopCache, matcher *match.Matcher) EstimateService {
	return &estimateService{repo: repo, cache: shopCache, matcher: matcher, now: time.Now}
}

// Estimate resolves the shop's configuration, picks the first matching rule
// and renders its message for one product page view. A shop with no matching
// rule still gets a computed schedule; the message is simply empty and the
// widget hides itself.
func (s *estimateService) Estimate(ctx context.Context, req dto.EstimateRequest) (*dto.EstimateResponse, error) {
	configured, err := s.configured(ctx, req.Shop)
	if err != nil {
		return nil, err
	}
	global, rules, err := s.load(req.Shop)
	if err != nil {
		return nil, err
	}

	resp := &dto.EstimateResponse{Configured: configured}

	var rs models.RuleSettings
	if rule, ok := s.matcher.First(rules, req.Product.Facts()); ok {
		rs = rule.Settings
		resp.RuleID = rule.ID
		resp.RuleName = rule.Name
		resp.Fallback = rule.IsFallback()
	}

	var sched models.Schedule
	resp.Message, resp.ExpressMessage, sched = s.evaluate(*global, rs, req.CartTotalMinor, renderTarget(req.Target), s.at(req.At))
	resp.Schedule = dto.NewScheduleDTO(sched)
	return resp, nil
}

// Preview renders every active rule of the shop against the sample product,
// in position order. Matched marks the rule Estimate would pick.
func (s *estimateService) Preview(ctx context.Context, req dto.PreviewRequest) (*dto.PreviewResponse, error) {
	global, rules, err := s.load(req.Shop)
	if err != nil {
		return nil, err
	}
	now := s.at(req.At)
	target := renderTarget(req.Target)
	matched, matchedOK := s.matcher.First(rules, req.Product.Facts())

	active := make([]models.Rule, 0, len(rules))
	for _, r := range rules {
		if r.Active {
			active = append(active, r)
		}
	}

	results := make([]dto.RulePreview, len(active))
	g, _ := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxPreviewParallel)
	for i := range active {
		idx := i
		rule := active[i]
		sem <- struct{}{}
		g.Go(func() error {
			defer func() { <-sem }()
			out := dto.RulePreview{
				RuleID:   rule.ID,
				RuleName: rule.Name,
				Matched:  matchedOK && rule.ID == matched.ID,
			}
			var sched models.Schedule
			out.Message, out.ExpressMessage, sched = s.evaluate(*global, rule.Settings, req.CartTotalMinor, target, now)
			out.Schedule = dto.NewScheduleDTO(sched)
			results[idx] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dto.PreviewResponse{Results: results}, nil
}

// Countries enumerates the holiday calendars a merchant can pick from.
func (s *estimateService) Countries(_ context.Context) []dto.CountryOption {
	list := holiday.Countries()
	out := make([]dto.CountryOption, len(list))
	for i, c := range list {
		out[i] = dto.CountryOption{Code: c.Code, Name: c.Name}
	}
	return out
}

// evaluate is the shared resolve-compute-render path of Estimate and
// Preview. The renderer receives the schedule as a thunk over the value
// computed here, so both consumers substitute from the same computation.
func (s *estimateService) evaluate(global models.Settings, rs models.RuleSettings, cartTotalMinor int64, target message.Target, now time.Time) (msg, express string, sched models.Schedule) {
	eff := schedule.Resolve(global, rs)
	local := schedule.LocalNow(now, eff.Timezone)
	sched = schedule.Compute(now, eff)

	money := message.Money{
		CartTotalMinor: cartTotalMinor,
		ThresholdMinor: global.ThresholdMinor,
		Currency:       global.Currency,
	}
	thunk := func() models.Schedule { return sched }

	msg = message.Render(message.Input{Template: rs.Template, Schedule: thunk, Now: local, Money: money, Target: target})
	if rs.ExpressTemplate != "" {
		express = message.Render(message.Input{Template: rs.ExpressTemplate, Schedule: thunk, Now: local, Money: money, Target: target})
	}
	return msg, express, sched
}

// configured answers "has this shop saved anything" through the cache; a
// miss falls through to Postgres and primes the cache.
func (s *estimateService) configured(ctx context.Context, shop string) (bool, error) {
	if v, ok := s.cache.GetConfigured(ctx, shop); ok {
		return v, nil
	}
	v, err := s.repo.HasConfiguration(shop)
	if err != nil {
		return false, fmt.Errorf("check configuration: %w", err)
	}
	s.cache.SetConfigured(ctx, shop, v)
	return v, nil
}

// load fetches settings and rules, substituting defaults for a shop that
// never saved settings.
func (s *estimateService) load(shop string) (*models.Settings, []models.Rule, error) {
	global, err := s.repo.GetSettings(shop)
	if err != nil {
		return nil, nil, fmt.Errorf("load settings: %w", err)
	}
	if global == nil {
		global = models.DefaultSettings(shop)
	}
	rules, err := s.repo.ListRules(shop)
	if err != nil {
		return nil, nil, fmt.Errorf("load rules: %w", err)
	}
	return global, rules, nil
}

// at pins the evaluation instant when the request supplies one.
func (s *estimateService) at(at *time.Time) time.Time {
	if at != nil {
		return *at
	}
	return s.now()
}

func renderTarget(t string) message.Target {
	if strings.EqualFold(t, "text") {
		return message.Text
	}
	return message.HTML
}
