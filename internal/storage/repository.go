package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	pq "github.com/lib/pq"

	"github.com/merchware/shipcast/internal/domain/models"
	"github.com/merchware/shipcast/internal/holiday"
)

// ErrRuleNotFound marks rule updates or deletes that matched no row.
var ErrRuleNotFound = errors.New("rule not found")

// Repository defines the contract for shop configuration storage.
type Repository interface {
	GetSettings(shop string) (*models.Settings, error)
	UpsertSettings(s *models.Settings) error
	ListRules(shop string) ([]models.Rule, error)
	GetRule(shop, id string) (*models.Rule, error)
	InsertRule(r *models.Rule) error
	UpdateRule(r *models.Rule) error
	DeleteRule(shop, id string) error
	HasConfiguration(shop string) (bool, error)
}

type configRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &configRepository{db: db}
}

// GetSettings loads a shop's settings with its custom holidays. A shop that
// never saved settings returns nil, nil.
func (r *configRepository) GetSettings(shop string) (*models.Settings, error) {
	var (
		s       models.Settings
		closed  pq.Int64Array
		courier pq.Int64Array
	)
	err := r.db.QueryRow(`
		SELECT shop, cutoff_time, saturday_cutoff, sunday_cutoff, lead_time,
		       closed_days, courier_days, holiday_country, timezone, currency,
		       threshold_minor, updated_at
		FROM shop_settings WHERE shop = $1
	`, shop).Scan(
		&s.Shop, &s.CutoffTime, &s.SaturdayCutoff, &s.SundayCutoff, &s.LeadTime,
		&closed, &courier, &s.HolidayCountry, &s.Timezone, &s.Currency,
		&s.ThresholdMinor, &s.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.ClosedDays = toWeekdays(closed)
	s.CourierDays = toWeekdays(courier)

	s.CustomHolidays, err = r.listCustomHolidays(shop)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// UpsertSettings writes the settings row and replaces the shop's custom
// holidays in one transaction.
func (r *configRepository) UpsertSettings(s *models.Settings) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`
		INSERT INTO shop_settings (shop, cutoff_time, saturday_cutoff, sunday_cutoff,
			lead_time, closed_days, courier_days, holiday_country, timezone,
			currency, threshold_minor, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (shop) DO UPDATE SET
			cutoff_time = EXCLUDED.cutoff_time,
			saturday_cutoff = EXCLUDED.saturday_cutoff,
			sunday_cutoff = EXCLUDED.sunday_cutoff,
			lead_time = EXCLUDED.lead_time,
			closed_days = EXCLUDED.closed_days,
			courier_days = EXCLUDED.courier_days,
			holiday_country = EXCLUDED.holiday_country,
			timezone = EXCLUDED.timezone,
			currency = EXCLUDED.currency,
			threshold_minor = EXCLUDED.threshold_minor,
			updated_at = EXCLUDED.updated_at
	`,
		s.Shop, s.CutoffTime, s.SaturdayCutoff, s.SundayCutoff, s.LeadTime,
		fromWeekdays(s.ClosedDays), fromWeekdays(s.CourierDays), s.HolidayCountry,
		s.Timezone, s.Currency, s.ThresholdMinor, s.UpdatedAt,
	); err != nil {
		_ = tx.Rollback()
		return err
	}

	if _, err := tx.Exec(`DELETE FROM custom_holidays WHERE shop = $1`, s.Shop); err != nil {
		_ = tx.Rollback()
		return err
	}
	for _, h := range s.CustomHolidays {
		if _, err := tx.Exec(
			`INSERT INTO custom_holidays (shop, day, label) VALUES ($1, $2, $3)`,
			s.Shop, h.Date, h.Label,
		); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// ListRules returns the shop's rules in evaluation order.
func (r *configRepository) ListRules(shop string) ([]models.Rule, error) {
	rows, err := r.db.Query(`
		SELECT id, shop, position, name, match_expr, settings, active, created_at, updated_at
		FROM rules WHERE shop = $1 ORDER BY position, created_at
	`, shop)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []models.Rule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}

// GetRule returns nil, nil when the shop has no rule with the given id.
func (r *configRepository) GetRule(shop, id string) (*models.Rule, error) {
	row := r.db.QueryRow(`
		SELECT id, shop, position, name, match_expr, settings, active, created_at, updated_at
		FROM rules WHERE shop = $1 AND id = $2
	`, shop, id)

	rule, err := scanRule(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *configRepository) InsertRule(rule *models.Rule) error {
	raw, err := json.Marshal(rule.Settings)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(`
		INSERT INTO rules (id, shop, position, name, match_expr, settings, active, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`, rule.ID, rule.Shop, rule.Position, rule.Name, rule.Match, raw,
		rule.Active, rule.CreatedAt, rule.UpdatedAt)
	return err
}

func (r *configRepository) UpdateRule(rule *models.Rule) error {
	raw, err := json.Marshal(rule.Settings)
	if err != nil {
		return err
	}
	res, err := r.db.Exec(`
		UPDATE rules SET position = $3, name = $4, match_expr = $5, settings = $6,
		       active = $7, updated_at = $8
		WHERE shop = $1 AND id = $2
	`, rule.Shop, rule.ID, rule.Position, rule.Name, rule.Match, raw,
		rule.Active, rule.UpdatedAt)
	if err != nil {
		return err
	}
	return oneRowOr(res, ErrRuleNotFound)
}

func (r *configRepository) DeleteRule(shop, id string) error {
	res, err := r.db.Exec(`DELETE FROM rules WHERE shop = $1 AND id = $2`, shop, id)
	if err != nil {
		return err
	}
	return oneRowOr(res, ErrRuleNotFound)
}

// HasConfiguration reports whether a shop saved settings or has any active
// rule; the storefront cache keys off this.
func (r *configRepository) HasConfiguration(shop string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM shop_settings WHERE shop = $1)
		    OR EXISTS(SELECT 1 FROM rules WHERE shop = $1 AND active)
	`, shop).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *configRepository) listCustomHolidays(shop string) ([]models.CustomHoliday, error) {
	rows, err := r.db.Query(`SELECT day, label FROM custom_holidays WHERE shop = $1 ORDER BY day`, shop)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.CustomHoliday
	for rows.Next() {
		var (
			day   time.Time
			label string
		)
		if err := rows.Scan(&day, &label); err != nil {
			return nil, err
		}
		out = append(out, models.CustomHoliday{Date: day.Format(holiday.ISODate), Label: label})
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRule(row rowScanner) (models.Rule, error) {
	var (
		rule models.Rule
		raw  []byte
	)
	if err := row.Scan(
		&rule.ID, &rule.Shop, &rule.Position, &rule.Name, &rule.Match,
		&raw, &rule.Active, &rule.CreatedAt, &rule.UpdatedAt,
	); err != nil {
		return models.Rule{}, err
	}
	if err := json.Unmarshal(raw, &rule.Settings); err != nil {
		return models.Rule{}, err
	}
	return rule, nil
}

func oneRowOr(res sql.Result, missing error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return missing
	}
	return nil
}

func fromWeekdays(days []time.Weekday) pq.Int64Array {
	out := make(pq.Int64Array, len(days))
	for i, d := range days {
		out[i] = int64(d)
	}
	return out
}

func toWeekdays(arr pq.Int64Array) []time.Weekday {
	if len(arr) == 0 {
		return nil
	}
	out := make([]time.Weekday, len(arr))
	for i, v := range arr {
		out[i] = time.Weekday(v)
	}
	return out
}
