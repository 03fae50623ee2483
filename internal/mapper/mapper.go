package mapper

import (
	"github.com/google/uuid"

	"github.com/bookwell/booking-api/internal/domain"
	"github.com/bookwell/booking-api/internal/quote"
)

const timestampLayout = "2006-01-02T15:04:05Z"

// ToServiceDTO converts Service to ServiceDTO
func ToServiceDTO(svc *domain.Service) domain.ServiceDTO {
	return domain.ServiceDTO{
		ID:              svc.ID,
		Name:            svc.Name,
		Description:     svc.Description,
		Category:        svc.Category,
		UnitPrice:       svc.UnitPrice,
		DurationMinutes: svc.DurationMinutes,
		PricingMode:     svc.PricingMode,
		HourlyRate:      svc.HourlyRate,
		DailyRate:       svc.DailyRate,
		IsActive:        svc.IsActive,
		CreatedAt:       svc.CreatedAt.Format(timestampLayout),
		UpdatedAt:       svc.UpdatedAt.Format(timestampLayout),
	}
}

// ToStaffMemberDTO converts StaffMember to StaffMemberDTO
func ToStaffMemberDTO(staff *domain.StaffMember) domain.StaffMemberDTO {
	return domain.StaffMemberDTO{
		ID:        staff.ID,
		FirstName: staff.FirstName,
		LastName:  staff.LastName,
		FullName:  staff.FullName(),
		Email:     staff.Email,
		Phone:     staff.Phone,
		Role:      staff.Role,
		Skills:    staff.Skills,
		IsActive:  staff.IsActive,
		CreatedAt: staff.CreatedAt.Format(timestampLayout),
	}
}

// ToAvailabilityDTO converts an availability partition to its DTO
func ToAvailabilityDTO(p quote.Partition) domain.AvailabilityDTO {
	dto := domain.AvailabilityDTO{
		Available: make([]domain.StaffMemberDTO, 0, len(p.Available)),
		Busy:      make([]domain.BusyStaffDTO, 0, len(p.Busy)),
	}
	for i := range p.Available {
		dto.Available = append(dto.Available, ToStaffMemberDTO(&p.Available[i]))
	}
	for i := range p.Busy {
		dto.Busy = append(dto.Busy, domain.BusyStaffDTO{
			StaffMemberDTO: ToStaffMemberDTO(&p.Busy[i].StaffMember),
			Reason:         p.Busy[i].Reason,
		})
	}
	return dto
}

// ToClientDTO converts Client to ClientDTO
func ToClientDTO(client *domain.Client) domain.ClientDTO {
	return domain.ClientDTO{
		ID:        client.ID,
		FirstName: client.FirstName,
		LastName:  client.LastName,
		FullName:  client.FullName(),
		Email:     client.Email,
		Phone:     client.Phone,
		Notes:     client.Notes,
		CreatedAt: client.CreatedAt.Format(timestampLayout),
	}
}

// ToTotalsDTO converts engine totals to their DTO
func ToTotalsDTO(t quote.Totals) domain.TotalsDTO {
	return domain.TotalsDTO{
		Subtotal:             t.Subtotal,
		DurationTotalMinutes: t.DurationTotalMinutes,
		TravelFee:            t.TravelFee,
		DiscountAmount:       t.DiscountAmount,
		NetAmount:            t.NetAmount,
		TaxRate:              t.TaxRate,
		TaxAmount:            t.TaxAmount,
		GrandTotal:           t.GrandTotal,
		AgentCount:           t.AgentCount,
		DayCount:             t.DayCount,
		AvgHoursPerAgent:     t.AvgHoursPerAgent,
		NeedsTimeEntry:       t.NeedsTimeEntry,
	}
}

// ToLineItemDTO converts an engine line item and its computed amount
func ToLineItemDTO(line *quote.LineItem, amount int64) domain.LineItemDTO {
	assignments := make([]domain.AssignmentDTO, 0, len(line.Assignments))
	for _, a := range line.Assignments {
		assignments = append(assignments, domain.AssignmentDTO{
			UnitIndex: a.UnitIndex,
			StaffID:   a.StaffID,
			StaffName: a.StaffName,
			StartTime: a.StartTime,
			EndTime:   a.EndTime,
		})
	}
	return domain.LineItemDTO{
		ServiceID:       line.ServiceID,
		Name:            line.Name,
		UnitPrice:       line.UnitPrice,
		DurationMinutes: line.DurationMinutes,
		PricingMode:     line.PricingMode,
		HourlyRate:      line.HourlyRate,
		DailyRate:       line.DailyRate,
		Quantity:        line.Quantity,
		Amount:          amount,
		Assignments:     assignments,
	}
}

// ToSessionDTO assembles the full session view: line items with their
// per-line amounts, booking, discount, client and totals.
func ToSessionDTO(id uuid.UUID, lines []quote.LineItem, booking quote.Booking, discount quote.Discount, client quote.ClientSelection, totals quote.Totals) domain.SessionDTO {
	amounts := make(map[uuid.UUID]int64, len(totals.Lines))
	for _, lt := range totals.Lines {
		amounts[lt.ServiceID] = lt.Amount
	}

	items := make([]domain.LineItemDTO, 0, len(lines))
	for i := range lines {
		items = append(items, ToLineItemDTO(&lines[i], amounts[lines[i].ServiceID]))
	}

	return domain.SessionDTO{
		ID:        id,
		LineItems: items,
		Booking: domain.BookingDTO{
			StartDate:       booking.StartDate,
			StartTime:       booking.StartTime,
			EndDate:         booking.EndDate,
			EndTime:         booking.EndTime,
			OnSite:          booking.OnSite,
			TravelFee:       booking.TravelFee,
			RequestedAgents: booking.RequestedAgents,
		},
		Discount: domain.DiscountDTO{
			Mode:   discount.Mode,
			Value:  discount.Value,
			Reason: discount.Reason,
		},
		Client: domain.SessionClientDTO{
			Kind:      client.Kind,
			ClientID:  client.ClientID,
			FirstName: client.FirstName,
			LastName:  client.LastName,
			Email:     client.Email,
			Phone:     client.Phone,
		},
		Totals: ToTotalsDTO(totals),
	}
}

// ToQuoteDTO converts a persisted Quote to QuoteDTO
func ToQuoteDTO(q *domain.Quote) domain.QuoteDTO {
	dto := domain.QuoteDTO{
		ID:              q.ID,
		QuoteNumber:     q.QuoteNumber,
		Status:          q.Status,
		BusinessType:    q.BusinessType,
		PricingMode:     q.PricingMode,
		StartDate:       q.StartDate,
		StartTime:       q.StartTime,
		EndDate:         q.EndDate,
		EndTime:         q.EndTime,
		OnSite:          q.OnSite,
		RequestedAgents: q.RequestedAgents,
		ClientKind:      q.ClientKind,
		ClientID:        q.ClientID,
		ClientPhone:     q.ClientPhone,
		ClientEmail:     q.ClientEmail,
		DiscountMode:    q.DiscountMode,
		DiscountValue:   q.DiscountValue,
		DiscountReason:  q.DiscountReason,

		Subtotal:             q.Subtotal,
		DurationTotalMinutes: q.DurationTotalMinutes,
		TravelFeeAmount:      q.TravelFeeAmount,
		DiscountAmount:       q.DiscountAmount,
		NetAmount:            q.NetAmount,
		TaxRate:              q.TaxRate,
		TaxAmount:            q.TaxAmount,
		GrandTotal:           q.GrandTotal,

		Notes:     q.Notes,
		CreatedAt: q.CreatedAt.Format(timestampLayout),
		UpdatedAt: q.UpdatedAt.Format(timestampLayout),
	}

	if q.ClientFirstName != "" || q.ClientLastName != "" {
		dto.ClientName = q.ClientFirstName + " " + q.ClientLastName
	}
	if q.ValidUntil != nil {
		dto.ValidUntil = q.ValidUntil.Format("2006-01-02")
	}

	for i := range q.LineItems {
		dto.LineItems = append(dto.LineItems, ToQuoteLineItemDTO(&q.LineItems[i]))
	}
	for i := range q.Attachments {
		dto.Attachments = append(dto.Attachments, ToQuoteAttachmentDTO(&q.Attachments[i]))
	}

	return dto
}

// ToQuoteLineItemDTO converts a persisted QuoteLineItem to its DTO
func ToQuoteLineItemDTO(line *domain.QuoteLineItem) domain.QuoteLineItemDTO {
	assignments := make([]domain.QuoteAssignmentDTO, 0, len(line.Assignments))
	for _, a := range line.Assignments {
		assignments = append(assignments, domain.QuoteAssignmentDTO{
			ID:        a.ID,
			UnitIndex: a.UnitIndex,
			StaffID:   a.StaffID,
			StaffName: a.StaffName,
			StartTime: a.StartTime,
			EndTime:   a.EndTime,
		})
	}
	return domain.QuoteLineItemDTO{
		ID:              line.ID,
		ServiceID:       line.ServiceID,
		ServiceName:     line.ServiceName,
		UnitPrice:       line.UnitPrice,
		DurationMinutes: line.DurationMinutes,
		PricingMode:     line.PricingMode,
		HourlyRate:      line.HourlyRate,
		DailyRate:       line.DailyRate,
		Quantity:        line.Quantity,
		Amount:          line.Amount,
		Position:        line.Position,
		Assignments:     assignments,
	}
}

// ToQuoteAttachmentDTO converts QuoteAttachment to its DTO
func ToQuoteAttachmentDTO(a *domain.QuoteAttachment) domain.QuoteAttachmentDTO {
	return domain.QuoteAttachmentDTO{
		ID:          a.ID,
		Filename:    a.Filename,
		ContentType: a.ContentType,
		Size:        a.Size,
		CreatedAt:   a.CreatedAt.Format(timestampLayout),
	}
}
