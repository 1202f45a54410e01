package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/merchware/shipcast/internal/domain/models"
)

func newMockRepo(t *testing.T) (*configRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	repo := &configRepository{db: db}
	cleanup := func() { _ = db.Close() }
	return repo, mock, cleanup
}

func settingsColumns() []string {
	return []string{
		"shop", "cutoff_time", "saturday_cutoff", "sunday_cutoff", "lead_time",
		"closed_days", "courier_days", "holiday_country", "timezone", "currency",
		"threshold_minor", "updated_at",
	}
}

func ruleColumns() []string {
	return []string{"id", "shop", "position", "name", "match_expr", "settings", "active", "created_at", "updated_at"}
}

func TestNewRepository_Construct(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer func() { _ = db.Close() }()
	if r := NewRepository(db); r == nil {
		t.Fatalf("expected non-nil repository")
	}
}

func TestGetSettings_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	updated := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM shop_settings WHERE shop = \$1`).
		WithArgs("demo.myshopify.com").
		WillReturnRows(sqlmock.NewRows(settingsColumns()).AddRow(
			"demo.myshopify.com", "14:00", "12:00", "", 1,
			"{6,0}", "{0}", "GB", "Europe/London", "GBP", 5000, updated,
		))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT day, label FROM custom_holidays WHERE shop = $1 ORDER BY day")).
		WithArgs("demo.myshopify.com").
		WillReturnRows(sqlmock.NewRows([]string{"day", "label"}).
			AddRow(time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC), "Inventory count"))

	s, err := repo.GetSettings("demo.myshopify.com")
	if err != nil || s == nil {
		t.Fatalf("unexpected: s=%+v err=%v", s, err)
	}
	if s.CutoffTime != "14:00" || s.SaturdayCutoff != "12:00" || s.LeadTime != 1 {
		t.Fatalf("settings scanned wrong: %+v", s)
	}
	if len(s.ClosedDays) != 2 || s.ClosedDays[0] != time.Saturday || s.ClosedDays[1] != time.Sunday {
		t.Fatalf("closed days = %v", s.ClosedDays)
	}
	if len(s.CourierDays) != 1 || s.CourierDays[0] != time.Sunday {
		t.Fatalf("courier days = %v", s.CourierDays)
	}
	if len(s.CustomHolidays) != 1 || s.CustomHolidays[0].Date != "2026-12-24" || s.CustomHolidays[0].Label != "Inventory count" {
		t.Fatalf("custom holidays = %v", s.CustomHolidays)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetSettings_Missing(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectQuery(`FROM shop_settings WHERE shop = \$1`).
		WithArgs("bare.myshopify.com").
		WillReturnError(sql.ErrNoRows)

	s, err := repo.GetSettings("bare.myshopify.com")
	if s != nil || err != nil {
		t.Fatalf("want nil, nil got s=%+v err=%v", s, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpsertSettings_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	s := models.DefaultSettings("demo.myshopify.com")
	s.CustomHolidays = []models.CustomHoliday{{Date: "2026-12-24", Label: "Inventory count"}}
	s.UpdatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO shop_settings`).
		WithArgs(
			s.Shop, s.CutoffTime, s.SaturdayCutoff, s.SundayCutoff, s.LeadTime,
			fromWeekdays(s.ClosedDays), fromWeekdays(s.CourierDays), s.HolidayCountry,
			s.Timezone, s.Currency, s.ThresholdMinor, s.UpdatedAt,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM custom_holidays WHERE shop = $1")).
		WithArgs(s.Shop).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO custom_holidays`).
		WithArgs(s.Shop, "2026-12-24", "Inventory count").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	if err := repo.UpsertSettings(s); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpsertSettings_RollbackOnError(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO shop_settings`).WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	if err := repo.UpsertSettings(models.DefaultSettings("demo.myshopify.com")); err == nil {
		t.Fatal("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestListRules_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	created := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	raw, err := json.Marshal(models.RuleSettings{EtaMin: 3, EtaMax: 5, Template: "Arrives {arrival}"})
	if err != nil {
		t.Fatalf("marshal settings: %v", err)
	}

	mock.ExpectQuery(`FROM rules WHERE shop = \$1 ORDER BY position, created_at`).
		WithArgs("demo.myshopify.com").
		WillReturnRows(sqlmock.NewRows(ruleColumns()).
			AddRow("9f2c7a3e-0000-0000-0000-000000000001", "demo.myshopify.com", 0, "Standard", "product.price >= 5000", raw, true, created, created).
			AddRow("9f2c7a3e-0000-0000-0000-000000000002", "demo.myshopify.com", 1, "Everything else", "", raw, true, created, created))

	rules, err := repo.ListRules("demo.myshopify.com")
	if err != nil || len(rules) != 2 {
		t.Fatalf("unexpected: rules=%v err=%v", rules, err)
	}
	if rules[0].Name != "Standard" || rules[0].Settings.EtaMax != 5 || rules[0].Settings.Template != "Arrives {arrival}" {
		t.Fatalf("rule scanned wrong: %+v", rules[0])
	}
	if !rules[1].IsFallback() {
		t.Fatal("blank match must scan as fallback")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetRule_Missing(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectQuery(`FROM rules WHERE shop = \$1 AND id = \$2`).
		WithArgs("demo.myshopify.com", "nope").
		WillReturnError(sql.ErrNoRows)

	rule, err := repo.GetRule("demo.myshopify.com", "nope")
	if rule != nil || err != nil {
		t.Fatalf("want nil, nil got rule=%+v err=%v", rule, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestRuleWrites_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	rule := &models.Rule{
		ID:        "9f2c7a3e-0000-0000-0000-000000000001",
		Shop:      "demo.myshopify.com",
		Position:  0,
		Name:      "Standard",
		Match:     "product.price >= 5000",
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
		Settings:  models.RuleSettings{EtaMin: 3, EtaMax: 5},
	}
	raw, err := json.Marshal(rule.Settings)
	if err != nil {
		t.Fatalf("marshal settings: %v", err)
	}

	mock.ExpectExec(`INSERT INTO rules`).
		WithArgs(rule.ID, rule.Shop, rule.Position, rule.Name, rule.Match, raw, rule.Active, now, now).
		WillReturnResult(sqlmock.NewResult(1, 1))
	if err := repo.InsertRule(rule); err != nil {
		t.Fatalf("insert: %v", err)
	}

	mock.ExpectExec(`UPDATE rules SET`).
		WithArgs(rule.Shop, rule.ID, rule.Position, rule.Name, rule.Match, raw, rule.Active, now).
		WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.UpdateRule(rule); err != nil {
		t.Fatalf("update: %v", err)
	}

	mock.ExpectExec(`UPDATE rules SET`).
		WithArgs(rule.Shop, rule.ID, rule.Position, rule.Name, rule.Match, raw, rule.Active, now).
		WillReturnResult(sqlmock.NewResult(0, 0))
	if err := repo.UpdateRule(rule); !errors.Is(err, ErrRuleNotFound) {
		t.Fatalf("want ErrRuleNotFound, got %v", err)
	}

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM rules WHERE shop = $1 AND id = $2")).
		WithArgs(rule.Shop, rule.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.DeleteRule(rule.Shop, rule.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM rules WHERE shop = $1 AND id = $2")).
		WithArgs(rule.Shop, rule.ID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	if err := repo.DeleteRule(rule.Shop, rule.ID); !errors.Is(err, ErrRuleNotFound) {
		t.Fatalf("want ErrRuleNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestHasConfiguration_SQLMock(t *testing.T) {
	repo, mock, done := newMockRepo(t)
	defer done()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("demo.myshopify.com").
		WillReturnRows(sqlmock.NewRows([]string{"configured"}).AddRow(true))

	ok, err := repo.HasConfiguration("demo.myshopify.com")
	if err != nil || !ok {
		t.Fatalf("want true, got ok=%v err=%v", ok, err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWeekdayConversion(t *testing.T) {
	days := []time.Weekday{time.Saturday, time.Sunday}
	arr := fromWeekdays(days)
	if len(arr) != 2 || arr[0] != 6 || arr[1] != 0 {
		t.Fatalf("fromWeekdays = %v", arr)
	}
	back := toWeekdays(arr)
	if len(back) != 2 || back[0] != time.Saturday || back[1] != time.Sunday {
		t.Fatalf("toWeekdays = %v", back)
	}
	if toWeekdays(nil) != nil {
		t.Fatal("empty array must round-trip to nil")
	}
}
