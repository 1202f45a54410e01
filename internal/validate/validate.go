// Package validate checks configuration records before they are persisted.
// The schedule engine itself never validates; it recovers from bad values
// with documented fallbacks. This package is the gate that keeps bad values
// out of storage in the first place.
package validate

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/merchware/shipcast/internal/domain/models"
	"github.com/merchware/shipcast/internal/holiday"
	"github.com/merchware/shipcast/internal/match"
	"github.com/merchware/shipcast/internal/schedule"
)

// Validator checks settings and rule records. Safe for concurrent use.
type Validator struct {
	v       *validator.Validate
	matcher *match.Matcher
}

// New registers the domain tag validators: hhmm for cutoff times, isodate
// for custom holiday dates, tzlocation for IANA timezone names.
func New(matcher *match.Matcher) (*Validator, error) {
	v := validator.New()
	for tag, fn := range map[string]validator.Func{
		"hhmm":       validHHMM,
		"isodate":    validISODate,
		"tzlocation": validTimezone,
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("register %s validator: %w", tag, err)
		}
	}
	return &Validator{v: v, matcher: matcher}, nil
}

// Settings validates a global settings record.
func (v *Validator) Settings(s *models.Settings) error {
	if err := v.v.Struct(s); err != nil {
		return fmt.Errorf("validate settings: %w", err)
	}
	return nil
}

// Rule validates a rule record, including that its match expression
// compiles. A blank expression is the fallback rule and passes.
func (v *Validator) Rule(r *models.Rule) error {
	if err := v.v.Struct(r); err != nil {
		return fmt.Errorf("validate rule: %w", err)
	}
	if err := v.matcher.CheckExpression(r.Match); err != nil {
		return fmt.Errorf("validate rule match: %w", err)
	}
	return nil
}

func validHHMM(fl validator.FieldLevel) bool {
	_, err := schedule.ParseTimeOfDay(fl.Field().String())
	return err == nil
}

func validISODate(fl validator.FieldLevel) bool {
	_, err := time.Parse(holiday.ISODate, fl.Field().String())
	return err == nil
}

func validTimezone(fl validator.FieldLevel) bool {
	_, err := time.LoadLocation(fl.Field().String())
	return err == nil
}
