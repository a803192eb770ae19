//go:build unit

package commands_test

import (
	"context"
	"time"

	"lodgekeeper/internal/domain/booking"
	"lodgekeeper/internal/domain/doorcode"
	"lodgekeeper/internal/domain/pricing"
	"lodgekeeper/internal/domain/property"
	"lodgekeeper/internal/domain/refund"
	"lodgekeeper/internal/infra"
	"lodgekeeper/internal/usecase/shared"

	"github.com/google/uuid"
)

// fakeStore is the in-memory ledger shared by the fake unit of work and its
// repositories. Pointer entities are mutated in place, mirroring how command
// code sees its own writes inside a transaction.
type fakeStore struct {
	bookings       map[uuid.UUID]*booking.Booking
	blackouts      map[uuid.UUID]*booking.Blackout
	rooms          map[uuid.UUID]*shared.RoomSnapshot
	seasons        map[property.Property][]*property.Season
	rules          []pricing.Rule
	policies       map[property.Property]map[booking.Mode]*refund.Policy
	pendingRefunds map[uuid.UUID]*refund.PendingRefund
	payments       map[uuid.UUID]*shared.PaymentSnapshot // keyed by booking ID
	doorCodes      []*doorcode.DoorCode                  // newest first

	savedRefunds    []*refund.PendingRefund
	statusUpdates   map[uuid.UUID]booking.Status
	lockedProps     []property.Property
	closedDoorCodes int

	createBookingErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		bookings:       make(map[uuid.UUID]*booking.Booking),
		blackouts:      make(map[uuid.UUID]*booking.Blackout),
		rooms:          make(map[uuid.UUID]*shared.RoomSnapshot),
		seasons:        make(map[property.Property][]*property.Season),
		policies:       make(map[property.Property]map[booking.Mode]*refund.Policy),
		pendingRefunds: make(map[uuid.UUID]*refund.PendingRefund),
		payments:       make(map[uuid.UUID]*shared.PaymentSnapshot),
		statusUpdates:  make(map[uuid.UUID]booking.Status),
	}
}

func (s *fakeStore) addPolicy(p *refund.Policy) {
	byMode, ok := s.policies[p.Property]
	if !ok {
		byMode = make(map[booking.Mode]*refund.Policy)
		s.policies[p.Property] = byMode
	}
	byMode[p.Mode] = p
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

// --- shared.Reads ---

type fakeReads struct{ s *fakeStore }

func (r fakeReads) BookingByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, notFound("booking not found")
	}
	return b, nil
}

func (r fakeReads) BlockingBookingsIntersecting(_ context.Context, prop property.Property, dates booking.DateRange) ([]*booking.Booking, error) {
	var out []*booking.Booking
	for _, b := range r.s.bookings {
		if b.Property() == prop && b.Status().BlocksInventory() && b.Dates().Overlaps(dates) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r fakeReads) BlackoutsIntersecting(_ context.Context, prop property.Property, dates booking.DateRange) ([]*booking.Blackout, error) {
	var out []*booking.Blackout
	for _, bl := range r.s.blackouts {
		if bl.Property() == prop && bl.OverlapsStay(dates) {
			out = append(out, bl)
		}
	}
	return out, nil
}

func (r fakeReads) RoomByID(_ context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	room, ok := r.s.rooms[id]
	if !ok {
		return nil, notFound("room not found")
	}
	return room, nil
}

func (r fakeReads) SeasonsByProperty(_ context.Context, prop property.Property) ([]*property.Season, error) {
	return r.s.seasons[prop], nil
}

func (r fakeReads) PricingRules(_ context.Context, prop property.Property, mode booking.Mode) ([]pricing.Rule, error) {
	var out []pricing.Rule
	for _, rule := range r.s.rules {
		if rule.Property == prop && rule.Mode == mode {
			out = append(out, rule)
		}
	}
	return out, nil
}

func (r fakeReads) ActiveRefundPolicy(_ context.Context, prop property.Property, mode booking.Mode) (*refund.Policy, error) {
	if p, ok := r.s.policies[prop][mode]; ok {
		return p, nil
	}
	return nil, notFound("no active refund policy")
}

func (r fakeReads) PendingRefundByID(_ context.Context, id uuid.UUID) (*refund.PendingRefund, error) {
	p, ok := r.s.pendingRefunds[id]
	if !ok {
		return nil, notFound("pending refund not found")
	}
	return p, nil
}

func (r fakeReads) RecentDoorCodes(_ context.Context, prop property.Property, n int) ([]*doorcode.DoorCode, error) {
	var out []*doorcode.DoorCode
	for _, d := range r.s.doorCodes {
		if d.Property() != prop {
			continue
		}
		out = append(out, d)
		if len(out) == n {
			break
		}
	}
	return out, nil
}

func (r fakeReads) PaymentByBookingID(_ context.Context, bookingID uuid.UUID) (*shared.PaymentSnapshot, error) {
	p, ok := r.s.payments[bookingID]
	if !ok {
		return nil, notFound("payment not found")
	}
	return p, nil
}

// --- repositories ---

type fakeBookingRepo struct{ s *fakeStore }

func (r fakeBookingRepo) LockProperty(_ context.Context, prop property.Property) error {
	r.s.lockedProps = append(r.s.lockedProps, prop)
	return nil
}

func (r fakeBookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if r.s.createBookingErr != nil {
		return r.s.createBookingErr
	}
	r.s.bookings[b.ID()] = b
	return nil
}

func (r fakeBookingRepo) Update(_ context.Context, b *booking.Booking) error {
	if _, ok := r.s.bookings[b.ID()]; !ok {
		return notFound("booking not found")
	}
	r.s.bookings[b.ID()] = b
	return nil
}

func (r fakeBookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, status booking.Status) error {
	if _, ok := r.s.bookings[id]; !ok {
		return notFound("booking not found")
	}
	r.s.statusUpdates[id] = status
	return nil
}

func (r fakeBookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.bookings[id]; !ok {
		return notFound("booking not found")
	}
	delete(r.s.bookings, id)
	return nil
}

type fakeBlackoutRepo struct{ s *fakeStore }

func (r fakeBlackoutRepo) Create(_ context.Context, b *booking.Blackout) error {
	r.s.blackouts[b.ID()] = b
	return nil
}

func (r fakeBlackoutRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.blackouts[id]; !ok {
		return notFound("blackout not found")
	}
	delete(r.s.blackouts, id)
	return nil
}

type fakePendingRefundRepo struct{ s *fakeStore }

func (r fakePendingRefundRepo) Create(_ context.Context, p *refund.PendingRefund) error {
	r.s.pendingRefunds[p.ID()] = p
	return nil
}

func (r fakePendingRefundRepo) Save(_ context.Context, p *refund.PendingRefund) error {
	r.s.pendingRefunds[p.ID()] = p
	r.s.savedRefunds = append(r.s.savedRefunds, p)
	return nil
}

type fakeDoorCodeRepo struct{ s *fakeStore }

func (r fakeDoorCodeRepo) CloseActive(_ context.Context, prop property.Property, at time.Time) error {
	for _, d := range r.s.doorCodes {
		if d.Property() == prop && d.IsActive() {
			d.Close(at)
			r.s.closedDoorCodes++
		}
	}
	return nil
}

func (r fakeDoorCodeRepo) Insert(_ context.Context, d *doorcode.DoorCode) error {
	r.s.doorCodes = append([]*doorcode.DoorCode{d}, r.s.doorCodes...)
	return nil
}

type fakePaymentRepo struct{ s *fakeStore }

func (r fakePaymentRepo) MarkRefunded(_ context.Context, paymentID uuid.UUID) error {
	for _, p := range r.s.payments {
		if p.ID == paymentID {
			if p.Refunded {
				return infra.WrapRepoErr("payment already refunded", nil, infra.KindConflict)
			}
			p.Refunded = true
			return nil
		}
	}
	return notFound("payment not found")
}

// --- unit of work ---

type fakeTx struct{ s *fakeStore }

func (t fakeTx) Bookings() shared.BookingRepository            { return fakeBookingRepo{s: t.s} }
func (t fakeTx) Blackouts() shared.BlackoutRepository          { return fakeBlackoutRepo{s: t.s} }
func (t fakeTx) PendingRefunds() shared.PendingRefundRepository { return fakePendingRefundRepo{s: t.s} }
func (t fakeTx) DoorCodes() shared.DoorCodeRepository          { return fakeDoorCodeRepo{s: t.s} }
func (t fakeTx) Payments() shared.PaymentRepository            { return fakePaymentRepo{s: t.s} }
func (t fakeTx) Reads() shared.Reads                           { return fakeReads{s: t.s} }

type fakeUoW struct{ s *fakeStore }

func (u fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, fakeTx{s: u.s})
}

func (u fakeUoW) Reads() shared.Reads { return fakeReads{s: u.s} }

// --- external ports ---

type fakeProcessor struct {
	calls     int
	refundRef string
	err       error

	lastPaymentRef string
	lastAmount     int64
	lastReason     string
}

func (p *fakeProcessor) Refund(_ context.Context, paymentRef string, amountCents int64, reason string) (string, error) {
	p.calls++
	p.lastPaymentRef = paymentRef
	p.lastAmount = amountCents
	p.lastReason = reason
	if p.err != nil {
		return "", p.err
	}
	return p.refundRef, nil
}

type fakeDirectory struct {
	info    shared.UserInfo
	err     error
	lookups int
}

func (d *fakeDirectory) Lookup(_ context.Context, _ uuid.UUID) (shared.UserInfo, error) {
	d.lookups++
	return d.info, d.err
}

type fakeNotifier struct {
	sent       int
	references []string
	emails     []string
}

func (n *fakeNotifier) SendBookingConfirmation(_ context.Context, _ uuid.UUID, reference, email string) {
	n.sent++
	n.references = append(n.references, reference)
	n.emails = append(n.emails, email)
}
