package quote

import (
	"github.com/shopspring/decimal"

	"github.com/bookwell/booking-api/internal/domain"
)

// hoursPerWorkDay is the assumed length of one billed day in daily mode
const hoursPerWorkDay = 8

// ComputeTotals prices the given line items under the tenant's pricing
// regime. It is a pure function of its inputs: calling it twice with the
// same arguments yields identical totals.
//
// The active mode comes from cfg, not from the individual lines; each line
// still carries its own snapshotted mode for display. Tax is applied once on
// the net amount, never per line, and every monetary rounding is half-up at
// the minor-currency-unit boundary. A discount larger than the pre-discount
// amount drives the net negative; the calculator does not clamp it.
func ComputeTotals(lines []LineItem, booking Booking, discount Discount, cfg Config) Totals {
	taxRate := cfg.TaxRate
	if taxRate == 0 {
		taxRate = DefaultTaxRate
	}

	totals := Totals{
		TaxRate:  taxRate,
		DayCount: 1,
		Lines:    make([]LineTotal, 0, len(lines)),
	}

	switch cfg.Mode {
	case domain.PricingModeHourly:
		priceHourly(&totals, lines, booking)
	case domain.PricingModeDaily:
		priceDaily(&totals, lines, booking)
	default:
		// fixed and package share the flat-price branch
		priceFixed(&totals, lines)
	}

	if booking.OnSite {
		totals.TravelFee = booking.TravelFee * 100
	}

	preDiscount := totals.Subtotal + totals.TravelFee
	totals.DiscountAmount = discountAmount(preDiscount, discount)
	totals.NetAmount = preDiscount - totals.DiscountAmount
	totals.TaxAmount = roundMinor(decimal.NewFromInt(totals.NetAmount).Mul(decimal.NewFromFloat(taxRate)))
	totals.GrandTotal = totals.NetAmount + totals.TaxAmount

	return totals
}

// priceFixed sums unit price × quantity. Package pricing is a single flat
// price per unit regardless of duration, so it uses the same arithmetic.
func priceFixed(t *Totals, lines []LineItem) {
	for i := range lines {
		line := &lines[i]
		amount := line.UnitPrice * int64(line.Quantity)
		t.Subtotal += amount
		t.DurationTotalMinutes += line.DurationMinutes * line.Quantity
		t.Lines = append(t.Lines, LineTotal{ServiceID: line.ServiceID, Amount: amount})
	}
}

// priceHourly prices every assignment that has a complete time window at
// hourly rate × hours × day count. Units without a window contribute zero
// and flag their service in NeedsTimeEntry for the caller.
func priceHourly(t *Totals, lines []LineItem, booking Booking) {
	dayCount := DaysBetween(booking.StartDate, booking.EndDate)
	days := decimal.NewFromInt(int64(dayCount))

	totalHours := decimal.Zero
	timedAgents := 0

	for i := range lines {
		line := &lines[i]
		lineAmount := int64(0)
		missingWindow := false

		for j := range line.Assignments {
			a := &line.Assignments[j]
			if !a.HasWindow() {
				missingWindow = true
				continue
			}
			hours := decimal.NewFromFloat(HoursBetween(a.StartTime, a.EndTime))
			lineAmount += roundMinor(decimal.NewFromInt(line.HourlyRate).Mul(hours).Mul(days))
			totalHours = totalHours.Add(hours)
			timedAgents++
		}

		if missingWindow {
			t.NeedsTimeEntry = append(t.NeedsTimeEntry, line.ServiceID)
		}
		t.Subtotal += lineAmount
		t.Lines = append(t.Lines, LineTotal{ServiceID: line.ServiceID, Amount: lineAmount})
	}

	t.DurationTotalMinutes = int(roundMinor(totalHours.Mul(decimal.NewFromInt(60)).Mul(days)))
	t.DayCount = dayCount
	t.AgentCount = timedAgents
	if timedAgents > 0 {
		avg, _ := totalHours.Div(decimal.NewFromInt(int64(timedAgents))).Round(2).Float64()
		t.AvgHoursPerAgent = avg
	}
}

// priceDaily prices each line at daily rate × day count × quantity, with a
// fixed eight-hour-day duration assumption.
func priceDaily(t *Totals, lines []LineItem, booking Booking) {
	dayCount := DaysBetween(booking.StartDate, booking.EndDate)

	for i := range lines {
		line := &lines[i]
		amount := line.DailyRate * int64(dayCount) * int64(line.Quantity)
		t.Subtotal += amount
		t.Lines = append(t.Lines, LineTotal{ServiceID: line.ServiceID, Amount: amount})
	}

	t.DurationTotalMinutes = dayCount * hoursPerWorkDay * 60
	t.DayCount = dayCount
}

// discountAmount resolves the booking-level discount in minor units.
// Non-positive values are "no discount", never an error.
func discountAmount(preDiscount int64, discount Discount) int64 {
	if discount.Value <= 0 {
		return 0
	}
	switch discount.Mode {
	case domain.DiscountModePercentage:
		return roundMinor(decimal.NewFromInt(preDiscount).
			Mul(decimal.NewFromInt(discount.Value)).
			Div(decimal.NewFromInt(100)))
	case domain.DiscountModeFixed:
		return discount.Value * 100
	default:
		return 0
	}
}

// roundMinor rounds half-up at the minor-currency-unit boundary
func roundMinor(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}
