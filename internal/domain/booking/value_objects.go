package booking

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"lodgekeeper/internal/pkg/errs"
)

// DateRange is the half-open stay interval [checkin, checkout). Checkout day
// is exclusive so a departure and an arrival can share a date.
type DateRange struct {
	checkin  time.Time
	checkout time.Time
}

func NewDateRange(checkin, checkout time.Time) (DateRange, error) {
	ci := midnight(checkin)
	co := midnight(checkout)
	if !co.After(ci) {
		return DateRange{}, errs.ErrInvalidRange
	}
	return DateRange{checkin: ci, checkout: co}, nil
}

func midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (r DateRange) Checkin() time.Time  { return r.checkin }
func (r DateRange) Checkout() time.Time { return r.checkout }

func (r DateRange) Nights() int {
	return int(r.checkout.Sub(r.checkin) / (24 * time.Hour))
}

// Overlaps implements half-open interval intersection: [a1,b1) and [a2,b2)
// overlap iff a1 < b2 && a2 < b1.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.checkin.Before(other.checkout) && other.checkin.Before(r.checkout)
}

// CoversDate reports whether the given date falls inside the stay (checkout
// day excluded).
func (r DateRange) CoversDate(date time.Time) bool {
	d := midnight(date)
	return !d.Before(r.checkin) && d.Before(r.checkout)
}

func (r DateRange) DaysUntil(from time.Time) int {
	return int(r.checkin.Sub(midnight(from)) / (24 * time.Hour))
}

func (r DateRange) String() string {
	return fmt.Sprintf("[%s,%s)", r.checkin.Format(time.DateOnly), r.checkout.Format(time.DateOnly))
}

// Money is an amount in minor currency units.
type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) Percent(pct int) Money {
	if pct <= 0 {
		return Money{}
	}
	if pct > 100 {
		pct = 100
	}
	return Money{cents: m.cents * int64(pct) / 100}
}

const referenceAlphabet = "ABCDEFGHJKMNPQRSTVWXYZ23456789"

// NewReference mints a short human-readable booking reference. Ambiguous
// glyphs (I, L, O, 0, 1, U) are excluded.
func NewReference() string {
	buf := make([]byte, 8)
	max := big.NewInt(int64(len(referenceAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failure means the process is in a bad state anyway
			panic(err)
		}
		buf[i] = referenceAlphabet[n.Int64()]
	}
	return string(buf)
}
