package ledger

import (
	"errors"
	"math"
	"strings"
	"sync"
	"time"
)

var (
	ErrNoActiveDiscount = errors.New("no active discount")
	ErrInvalidCode      = errors.New("invalid discount code")
)

// DiscountWindow is how long an activated discount stays redeemable.
const DiscountWindow = 24 * time.Hour

// Discount is the process-wide promotional state. It is deliberately
// not persisted: a restart resets it to inactive, and expiry is only
// ever observed at query time, never by a background timer.
type Discount struct {
	mu         sync.Mutex
	code       string
	percentage float64
	active     bool
	expiresAt  time.Time
	now        func() time.Time
}

func NewDiscount(code string, percentage float64) *Discount {
	return &Discount{
		code:       strings.ToUpper(strings.TrimSpace(code)),
		percentage: percentage,
		now:        time.Now,
	}
}

func (d *Discount) Code() string        { return d.code }
func (d *Discount) Percentage() float64 { return d.percentage }

// ActivateWindow opens the discount for the next 24 hours. Deciding
// which day qualifies belongs to the caller's scheduler.
func (d *Discount) ActivateWindow() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.active = true
	d.expiresAt = d.now().Add(DiscountWindow)
}

// IsActive reports whether the window is open, lazily flipping the
// state off the first time it is queried past the deadline.
func (d *Discount) IsActive() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.isActiveLocked()
}

func (d *Discount) isActiveLocked() bool {
	if !d.active {
		return false
	}
	if d.now().After(d.expiresAt) {
		d.active = false
		return false
	}
	return true
}

// Validate checks a redeemed code against the open window and returns
// the discounted price (rounded to cents) and the window deadline.
func (d *Discount) Validate(code string, basePrice float64) (price float64, expiresAt time.Time, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.isActiveLocked() {
		return 0, time.Time{}, ErrNoActiveDiscount
	}
	if !strings.EqualFold(strings.TrimSpace(code), d.code) {
		return 0, time.Time{}, ErrInvalidCode
	}
	price = math.Round(basePrice*(1-d.percentage)*100) / 100
	return price, d.expiresAt, nil
}
