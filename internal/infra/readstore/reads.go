package readstore

import (
	"context"
	"time"

	"lodgekeeper/internal/domain/booking"
	"lodgekeeper/internal/domain/doorcode"
	"lodgekeeper/internal/domain/pricing"
	"lodgekeeper/internal/domain/property"
	"lodgekeeper/internal/domain/refund"
	"lodgekeeper/internal/infra"
	"lodgekeeper/internal/infra/db"
	"lodgekeeper/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CommandReads is the command-side read surface. Handed a pool it reads
// committed state; handed a pgx.Tx it sees the transaction's own writes.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(dbtx db.DBTX) *CommandReads {
	return &CommandReads{db: dbtx}
}

type bookingRow struct {
	id         uuid.UUID
	reference  string
	property   string
	mode       string
	checkin    time.Time
	checkout   time.Time
	guests     int
	children   int
	userID     uuid.UUID
	status     string
	priceCents int64
	createdAt  time.Time
	updatedAt  time.Time
}

func (r *CommandReads) BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var row bookingRow
	err := r.db.QueryRow(ctx, `
		SELECT id, reference, property, mode, checkin, checkout, guests, children, user_id, status, price_cents, created_at, updated_at
		FROM bookings WHERE id = $1`, id,
	).Scan(
		&row.id, &row.reference, &row.property, &row.mode, &row.checkin, &row.checkout,
		&row.guests, &row.children, &row.userID, &row.status, &row.priceCents,
		&row.createdAt, &row.updatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking", err)
	}

	roomIDs, err := roomIDsByBooking(ctx, r.db, row.id)
	if err != nil {
		return nil, err
	}
	return reconstructBooking(row, roomIDs)
}

func (r *CommandReads) BlockingBookingsIntersecting(ctx context.Context, prop property.Property, dates booking.DateRange) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, reference, property, mode, checkin, checkout, guests, children, user_id, status, price_cents, created_at, updated_at
		FROM bookings
		WHERE property = $1 AND status IN ('hold', 'complete') AND checkin < $3 AND checkout > $2`,
		prop.String(), dates.Checkin(), dates.Checkout(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocking bookings", err)
	}
	defer rows.Close()

	var raws []bookingRow
	for rows.Next() {
		var row bookingRow
		if err := rows.Scan(
			&row.id, &row.reference, &row.property, &row.mode, &row.checkin, &row.checkout,
			&row.guests, &row.children, &row.userID, &row.status, &row.priceCents,
			&row.createdAt, &row.updatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking", err)
		}
		raws = append(raws, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list blocking bookings", err)
	}
	rows.Close()

	out := make([]*booking.Booking, 0, len(raws))
	for _, row := range raws {
		roomIDs, err := roomIDsByBooking(ctx, r.db, row.id)
		if err != nil {
			return nil, err
		}
		b, err := reconstructBooking(row, roomIDs)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *CommandReads) BlackoutsIntersecting(ctx context.Context, prop property.Property, dates booking.DateRange) ([]*booking.Blackout, error) {
	// end_on is inclusive, so it intersects [checkin, checkout) when
	// end_on >= checkin and start_on < checkout.
	rows, err := r.db.Query(ctx, `
		SELECT id, property, start_on, end_on, reason
		FROM blackouts
		WHERE property = $1 AND start_on < $3 AND end_on >= $2`,
		prop.String(), dates.Checkin(), dates.Checkout(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blackouts", err)
	}
	defer rows.Close()

	var out []*booking.Blackout
	for rows.Next() {
		var (
			id         uuid.UUID
			propName   string
			start, end time.Time
			reason     string
		)
		if err := rows.Scan(&id, &propName, &start, &end, &reason); err != nil {
			return nil, infra.WrapRepoErr("failed to scan blackout", err)
		}
		p, err := property.Parse(propName)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt blackout row", err)
		}
		out = append(out, booking.ReconstructBlackout(id, p, start, end, reason))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list blackouts", err)
	}
	return out, nil
}

func (r *CommandReads) RoomByID(ctx context.Context, id uuid.UUID) (*shared.RoomSnapshot, error) {
	var (
		snap     shared.RoomSnapshot
		propName string
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, property, name, category_id, min_guests, max_guests, active
		FROM rooms WHERE id = $1`, id,
	).Scan(&snap.ID, &propName, &snap.Name, &snap.CategoryID, &snap.MinGuests, &snap.MaxGuests, &snap.Active)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get room", err)
	}
	prop, err := property.Parse(propName)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt room row", err)
	}
	snap.Property = prop
	return &snap, nil
}

func (r *CommandReads) SeasonsByProperty(ctx context.Context, prop property.Property) ([]*property.Season, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, start_month, start_day, end_month, end_day, advance_book_days, max_nights, is_default
		FROM seasons WHERE property = $1`,
		prop.String(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list seasons", err)
	}
	defer rows.Close()

	var out []*property.Season
	for rows.Next() {
		var (
			id                         uuid.UUID
			name                       string
			sm, sd, em, ed             int
			advanceBookDays, maxNights *int
			isDefault                  bool
		)
		if err := rows.Scan(&id, &name, &sm, &sd, &em, &ed, &advanceBookDays, &maxNights, &isDefault); err != nil {
			return nil, infra.WrapRepoErr("failed to scan season", err)
		}
		out = append(out, property.ReconstructSeason(
			id, prop, name, time.Month(sm), sd, time.Month(em), ed, advanceBookDays, maxNights, isDefault,
		))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list seasons", err)
	}
	return out, nil
}

func (r *CommandReads) PricingRules(ctx context.Context, prop property.Property, mode booking.Mode) ([]pricing.Rule, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, season_id, category_id, room_id, adult_cents, child_cents, unit
		FROM pricing_rules WHERE property = $1 AND mode = $2`,
		prop.String(), mode.String(),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pricing rules", err)
	}
	defer rows.Close()

	var out []pricing.Rule
	for rows.Next() {
		rule := pricing.Rule{Property: prop, Mode: mode}
		var unit string
		if err := rows.Scan(&rule.ID, &rule.SeasonID, &rule.CategoryID, &rule.RoomID, &rule.AdultCents, &rule.ChildCents, &unit); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pricing rule", err)
		}
		u, err := pricing.ParseUnit(unit)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt pricing rule row", err)
		}
		rule.Unit = u
		out = append(out, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list pricing rules", err)
	}
	return out, nil
}

func (r *CommandReads) ActiveRefundPolicy(ctx context.Context, prop property.Property, mode booking.Mode) (*refund.Policy, error) {
	policy := refund.Policy{Property: prop, Mode: mode, IsActive: true}
	err := r.db.QueryRow(ctx, `
		SELECT id FROM refund_policies WHERE property = $1 AND mode = $2 AND is_active`,
		prop.String(), mode.String(),
	).Scan(&policy.ID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("no active refund policy", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get refund policy", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, days_before_checkin, percent, priority
		FROM refund_policy_rules WHERE policy_id = $1
		ORDER BY days_before_checkin DESC, priority ASC`,
		policy.ID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list refund policy rules", err)
	}
	defer rows.Close()

	for rows.Next() {
		var rule refund.PolicyRule
		if err := rows.Scan(&rule.ID, &rule.DaysBeforeCheckin, &rule.Percent, &rule.Priority); err != nil {
			return nil, infra.WrapRepoErr("failed to scan refund policy rule", err)
		}
		policy.Rules = append(policy.Rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list refund policy rules", err)
	}
	return &policy, nil
}

func (r *CommandReads) PendingRefundByID(ctx context.Context, id uuid.UUID) (*refund.PendingRefund, error) {
	var (
		refundID, bookingID uuid.UUID
		paymentRef          string
		policyAmountCents   int64
		matchedThreshold    *int
		matchedPercent      int
		status              string
		approvedAmountCents *int64
		adminNote           string
		processorRefundRef  *string
		createdAt           time.Time
		processedAt         *time.Time
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, booking_id, payment_ref, policy_amount_cents, matched_threshold, matched_percent,
		       status, approved_amount_cents, admin_note, processor_refund_ref, created_at, processed_at
		FROM pending_refunds WHERE id = $1`, id,
	).Scan(
		&refundID, &bookingID, &paymentRef, &policyAmountCents, &matchedThreshold, &matchedPercent,
		&status, &approvedAmountCents, &adminNote, &processorRefundRef, &createdAt, &processedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("pending refund not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get pending refund", err)
	}
	st, err := refund.ParseStatus(status)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt pending refund row", err)
	}
	return refund.ReconstructPendingRefund(
		refundID, bookingID, paymentRef, policyAmountCents, matchedThreshold, matchedPercent,
		st, approvedAmountCents, adminNote, processorRefundRef, createdAt, processedAt,
	), nil
}

func (r *CommandReads) RecentDoorCodes(ctx context.Context, prop property.Property, n int) ([]*doorcode.DoorCode, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, code, active_from, active_to
		FROM door_codes WHERE property = $1
		ORDER BY active_from DESC LIMIT $2`,
		prop.String(), n,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list door codes", err)
	}
	defer rows.Close()

	var out []*doorcode.DoorCode
	for rows.Next() {
		var (
			id         uuid.UUID
			code       string
			activeFrom time.Time
			activeTo   *time.Time
		)
		if err := rows.Scan(&id, &code, &activeFrom, &activeTo); err != nil {
			return nil, infra.WrapRepoErr("failed to scan door code", err)
		}
		out = append(out, doorcode.Reconstruct(id, prop, code, activeFrom, activeTo))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list door codes", err)
	}
	return out, nil
}

func (r *CommandReads) PaymentByBookingID(ctx context.Context, bookingID uuid.UUID) (*shared.PaymentSnapshot, error) {
	var snap shared.PaymentSnapshot
	// Prefer an unrefunded charge if several payments exist.
	err := r.db.QueryRow(ctx, `
		SELECT id, booking_id, external_ref, amount_cents, refunded
		FROM payments WHERE booking_id = $1
		ORDER BY refunded ASC LIMIT 1`, bookingID,
	).Scan(&snap.ID, &snap.BookingID, &snap.ExternalRef, &snap.AmountCents, &snap.Refunded)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("no payment for booking", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get payment", err)
	}
	return &snap, nil
}

func roomIDsByBooking(ctx context.Context, dbtx db.DBTX, bookingID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := dbtx.Query(ctx, `SELECT room_id FROM booking_rooms WHERE booking_id = $1`, bookingID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking rooms", err)
	}
	defer rows.Close()

	var out []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking room", err)
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to list booking rooms", err)
	}
	return out, nil
}

func reconstructBooking(row bookingRow, roomIDs []uuid.UUID) (*booking.Booking, error) {
	prop, err := property.Parse(row.property)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking row", err)
	}
	mode, err := booking.ParseMode(row.mode)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking row", err)
	}
	status, err := booking.ParseStatus(row.status)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking row", err)
	}
	dates, err := booking.NewDateRange(row.checkin, row.checkout)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking row", err)
	}
	price, err := booking.NewMoney(row.priceCents)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt booking row", err)
	}
	return booking.Reconstruct(
		row.id, row.reference, prop, mode, dates,
		row.guests, row.children, row.userID, roomIDs,
		status, price, row.createdAt, row.updatedAt,
	), nil
}
