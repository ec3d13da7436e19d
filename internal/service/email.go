package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"carrental-backend/internal/domain"
)

// EmailEnqueuer is the part of *EmailQueue the email service needs.
type EmailEnqueuer interface {
	Enqueue(msg EmailMessage) error
}

type emailService struct {
	queue      EmailEnqueuer
	adminEmail string
	brand      string
}

func NewEmailService(queue EmailEnqueuer, adminEmail, brand string) EmailService {
	return &emailService{
		queue:      queue,
		adminEmail: adminEmail,
		brand:      brand,
	}
}

func (s *emailService) SendReservationConfirmation(ctx context.Context, r *domain.Reservation) error {
	body := fmt.Sprintf("Hello %s,\n\nThank you for your reservation request. We will confirm availability shortly.\n\n%s\nBest regards,\nThe %s Team",
		r.CustomerName, reservationSummary(r), s.brand)
	return s.enqueue("reservation_confirmation", r.CustomerEmail, r.CustomerName,
		fmt.Sprintf("Reservation request %s received", r.Reference), body)
}

func (s *emailService) SendReservationAdminNotice(ctx context.Context, r *domain.Reservation) error {
	if s.adminEmail == "" {
		return nil
	}
	body := fmt.Sprintf("New reservation request from %s <%s>, phone %s.\n\n%s",
		r.CustomerName, r.CustomerEmail, r.CustomerPhone, reservationSummary(r))
	if r.Notes != "" {
		body += fmt.Sprintf("\nNotes: %s\n", r.Notes)
	}
	return s.enqueue("reservation_admin_notice", s.adminEmail, "",
		fmt.Sprintf("New reservation %s: %s", r.Reference, r.VehicleName), body)
}

func (s *emailService) SendReservationStatusUpdate(ctx context.Context, r *domain.Reservation) error {
	var line string
	switch r.Status {
	case domain.ReservationStatusConfirmed:
		line = "Your reservation is confirmed. We look forward to seeing you."
	case domain.ReservationStatusCancelled:
		line = "Your reservation has been cancelled. Contact us if this is unexpected."
	case domain.ReservationStatusCompleted:
		line = "Your rental is complete. Thank you for driving with us."
	case domain.ReservationStatusExpired:
		line = "Your reservation request expired before it could be confirmed."
	default:
		line = fmt.Sprintf("Your reservation status is now %s.", r.Status)
	}
	body := fmt.Sprintf("Hello %s,\n\n%s\n\n%s\nBest regards,\nThe %s Team", r.CustomerName, line, reservationSummary(r), s.brand)
	return s.enqueue("reservation_status_update", r.CustomerEmail, r.CustomerName,
		fmt.Sprintf("Reservation %s: %s", r.Reference, strings.ToLower(string(r.Status))), body)
}

func (s *emailService) SendPickupReminder(ctx context.Context, r *domain.Reservation) error {
	body := fmt.Sprintf("Hello %s,\n\nA reminder that you pick up your %s tomorrow (%s) at %s.\n\n%s\nBest regards,\nThe %s Team",
		r.CustomerName, r.VehicleName, r.PickupDate, r.PickupPlace, reservationSummary(r), s.brand)
	return s.enqueue("pickup_reminder", r.CustomerEmail, r.CustomerName,
		fmt.Sprintf("Pickup tomorrow: reservation %s", r.Reference), body)
}

func (s *emailService) enqueue(template, to, toName, subject, body string) error {
	msg := EmailMessage{
		To:        to,
		ToName:    toName,
		Subject:   subject,
		PlainText: body,
		HTML:      "<pre>" + html.EscapeString(body) + "</pre>",
		Template:  template,
	}
	if err := s.queue.Enqueue(msg); err != nil {
		return fmt.Errorf("enqueue %s email to %s: %w", template, to, err)
	}
	return nil
}

func reservationSummary(r *domain.Reservation) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Reference: %s\n", r.Reference)
	fmt.Fprintf(&b, "Vehicle: %s\n", r.VehicleName)
	fmt.Fprintf(&b, "Pickup: %s, %s\n", r.PickupDate, r.PickupPlace)
	fmt.Fprintf(&b, "Return: %s, %s\n", r.ReturnDate, r.ReturnPlace)
	fmt.Fprintf(&b, "Days: %d at %s %s per day\n", r.Days, r.PricePerDay.StringFixed(2), r.Currency)
	if r.Extra50kmPackages > 0 {
		fmt.Fprintf(&b, "Extra 50 km packages: %d (%s %s)\n", r.Extra50kmPackages, r.ExtrasPrice.StringFixed(2), r.Currency)
	}
	fmt.Fprintf(&b, "Total: %s %s\n", r.TotalPrice.StringFixed(2), r.Currency)
	return b.String()
}
