package message

import (
	"testing"
	"time"

	"github.com/merchware/shipcast/internal/domain/models"
)

func fixedSchedule() models.Schedule {
	return models.Schedule{
		ShippingDate: d(2026, time.March, 2),
		DeliveryMin:  d(2026, time.March, 5),
		DeliveryMax:  d(2026, time.March, 9),
		ExpressDate:  d(2026, time.March, 3),
		CutoffAt:     time.Date(2026, time.March, 2, 14, 0, 0, 0, time.UTC),
	}
}

func TestRender_DatePlaceholders(t *testing.T) {
	in := Input{
		Template: "Order now for delivery **{arrival}**, express {express}",
		Schedule: fixedSchedule,
		Now:      time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC),
	}

	if got, want := Render(in), "Order now for delivery Mar 5–9, express Mar 3"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRender_SingleDateWindow(t *testing.T) {
	sched := fixedSchedule()
	sched.DeliveryMax = sched.DeliveryMin
	in := Input{
		Template: "Arrives {arrival}",
		Schedule: func() models.Schedule { return sched },
	}

	if got, want := Render(in), "Arrives Mar 5"; got != want {
		t.Fatalf("equal window ends must render one date: got %q, want %q", got, want)
	}
}

func TestRender_CrossMonthWindow(t *testing.T) {
	sched := fixedSchedule()
	sched.DeliveryMin = d(2026, time.January, 30)
	sched.DeliveryMax = d(2026, time.February, 3)
	in := Input{
		Template: "Arrives {arrival}",
		Schedule: func() models.Schedule { return sched },
	}

	if got, want := Render(in), "Arrives Jan 30–Feb 3"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRender_MoneyOnlySkipsSchedule(t *testing.T) {
	called := false
	in := Input{
		Template: "Spend {remaining} more for free shipping (cart: {cart_total})",
		Schedule: func() models.Schedule { called = true; return fixedSchedule() },
		Money:    Money{CartTotalMinor: 3550, ThresholdMinor: 5000, Currency: "USD"},
	}

	got := Render(in)
	if want := "Spend $14.50 more for free shipping (cart: $35.50)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if called {
		t.Fatal("schedule was computed for a template without date placeholders")
	}
}

func TestRender_SuppliedCountdownSkipsSchedule(t *testing.T) {
	called := false
	in := Input{
		Template:  "Order within {countdown}",
		Schedule:  func() models.Schedule { called = true; return fixedSchedule() },
		Countdown: "3h 10m",
	}

	if got, want := Render(in), "Order within 3h 10m"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if called {
		t.Fatal("schedule was computed despite the caller-supplied countdown")
	}
}

func TestRender_ComputedCountdown(t *testing.T) {
	in := Input{
		Template: "Order within {countdown}",
		Schedule: fixedSchedule,
		Now:      time.Date(2026, time.March, 2, 12, 30, 0, 0, time.UTC), // 90m before cutoff
	}

	if got, want := Render(in), "Order within 1h 30m"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRender_RemainingClampsAtZero(t *testing.T) {
	in := Input{
		Template: "{remaining} to go",
		Money:    Money{CartTotalMinor: 9000, ThresholdMinor: 5000, Currency: "USD"},
	}

	if got, want := Render(in), "$0.00 to go"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestRender_MarkupTargets(t *testing.T) {
	cases := []struct {
		name     string
		template string
		target   Target
		want     string
	}{
		{
			name:     "text drops bold markers and breaks lines",
			template: "**Free** shipping{lb}on all orders",
			target:   Text,
			want:     "Free shipping\non all orders",
		},
		{
			name:     "html renders strong and br and escapes literals",
			template: "**Free** shipping{lb}<today>",
			target:   HTML,
			want:     "<strong>Free</strong> shipping<br>&lt;today&gt;",
		},
		{
			name:     "unpaired marker stays literal",
			template: "a ** b",
			target:   Text,
			want:     "a ** b",
		},
		{
			name:     "bold content is escaped too",
			template: "**a<b>**",
			target:   HTML,
			want:     "<strong>a&lt;b&gt;</strong>",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Render(Input{Template: tc.template, Target: tc.target}); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRender_FullPipeline(t *testing.T) {
	in := Input{
		Template: "Order in {countdown} for **{arrival}**{lb}or spend {remaining} for free shipping",
		Schedule: fixedSchedule,
		Now:      time.Date(2026, time.March, 2, 13, 0, 0, 0, time.UTC),
		Money:    Money{CartTotalMinor: 4000, ThresholdMinor: 5000, Currency: "GBP"},
		Target:   HTML,
	}

	want := "Order in 1h 0m for <strong>Mar 5–9</strong><br>or spend £10.00 for free shipping"
	if got := Render(in); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
