// Package message substitutes computed schedule values, money amounts and
// lightweight markup into merchant-authored templates. Substitution runs as
// a fixed sequence of independent passes (money, then dates, then markup) so
// pass ordering is structural rather than incidental.
package message

import (
	"html"
	"strings"
	"time"

	"github.com/merchware/shipcast/internal/domain/models"
)

// Target selects the output encoding of a render.
type Target int

const (
	// Text renders plain text with newline breaks and bold markers dropped.
	Text Target = iota
	// HTML escapes literal text and renders <br> and <strong> elements.
	HTML
)

// Money carries the currency context for the money placeholders.
type Money struct {
	CartTotalMinor int64
	ThresholdMinor int64
	Currency       string
}

// Input is one render request. Schedule is a thunk so templates without
// date placeholders never pay for the schedule computation; it is invoked
// at most once. A non-blank Countdown is used verbatim for {countdown},
// otherwise the countdown derives from the computed cutoff and Now.
type Input struct {
	Template  string
	Schedule  func() models.Schedule
	Now       time.Time
	Countdown string
	Money     Money
	Target    Target
}

// Render substitutes the recognized placeholders: {cart_total}, {threshold}
// and {remaining} from the money context; {arrival}, {express} and
// {countdown} from the computed schedule; {lb} as a structural line break;
// and non-nested **bold** spans in the remaining literal text.
func Render(in Input) string {
	s := moneyPass(in.Template, in.Money)
	s = datePass(s, in)
	return markupPass(s, in.Target)
}

func moneyPass(s string, m Money) string {
	remaining := m.ThresholdMinor - m.CartTotalMinor
	if remaining < 0 {
		remaining = 0
	}
	s = strings.ReplaceAll(s, "{cart_total}", FormatAmount(m.CartTotalMinor, m.Currency))
	s = strings.ReplaceAll(s, "{threshold}", FormatAmount(m.ThresholdMinor, m.Currency))
	s = strings.ReplaceAll(s, "{remaining}", FormatAmount(remaining, m.Currency))
	return s
}

func datePass(s string, in Input) string {
	hasArrival := strings.Contains(s, "{arrival}")
	hasExpress := strings.Contains(s, "{express}")
	hasCountdown := strings.Contains(s, "{countdown}")
	if !hasArrival && !hasExpress && !hasCountdown {
		return s
	}

	countdown := in.Countdown
	needSchedule := hasArrival || hasExpress || (hasCountdown && countdown == "")
	if needSchedule && in.Schedule != nil {
		sched := in.Schedule()
		s = strings.ReplaceAll(s, "{arrival}", FormatWindow(sched.DeliveryMin, sched.DeliveryMax))
		s = strings.ReplaceAll(s, "{express}", FormatDate(sched.ExpressDate))
		if countdown == "" {
			countdown = Countdown(sched.CutoffAt.Sub(in.Now))
		}
	}
	s = strings.ReplaceAll(s, "{countdown}", countdown)
	return s
}

func markupPass(s string, target Target) string {
	lines := strings.Split(s, "{lb}")
	for i, line := range lines {
		lines[i] = renderSpans(line, target)
	}
	if target == HTML {
		return strings.Join(lines, "<br>")
	}
	return strings.Join(lines, "\n")
}

// renderSpans resolves **bold** markup in one line. Spans pair left to
// right, never nest, and an unpaired marker stays literal.
func renderSpans(line string, target Target) string {
	var b strings.Builder
	for {
		open := strings.Index(line, "**")
		if open == -1 {
			break
		}
		rest := line[open+2:]
		end := strings.Index(rest, "**")
		if end == -1 {
			break
		}
		b.WriteString(escape(line[:open], target))
		if target == HTML {
			b.WriteString("<strong>" + escape(rest[:end], target) + "</strong>")
		} else {
			b.WriteString(rest[:end])
		}
		line = rest[end+2:]
	}
	b.WriteString(escape(line, target))
	return b.String()
}

func escape(s string, target Target) string {
	if target == HTML {
		return html.EscapeString(s)
	}
	return s
}
