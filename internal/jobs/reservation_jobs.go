package jobs

import (
	"context"
	"fmt"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
)

// SendPickupReminders emails every confirmed customer whose pickup is tomorrow (UTC).
func (jr *JobRunner) SendPickupReminders() {
	jr.runWithRecovery("SendPickupReminders", func() error {
		ctx := context.Background()
		tomorrow := jr.now().UTC().AddDate(0, 0, 1).Format("2006-01-02")

		reservations, err := jr.store.ReservationRepository.ListByPickupDate(ctx, tomorrow, domain.ReservationStatusConfirmed)
		if err != nil {
			return fmt.Errorf("list reservations picking up %s: %w", tomorrow, err)
		}

		sent := 0
		for i := range reservations {
			r := &reservations[i]
			if err := jr.services.Email.SendPickupReminder(ctx, r); err != nil {
				logger.Error("Failed to queue pickup reminder", "reference", r.Reference, "error", err)
				continue
			}
			sent++
		}
		logger.Info("Pickup reminders queued", "pickup_date", tomorrow, "count", sent, "candidates", len(reservations))
		return nil
	})
}

// ExpirePendingReservations expires requests that no admin confirmed in time
// and tells the customer.
func (jr *JobRunner) ExpirePendingReservations() {
	jr.runWithRecovery("ExpirePendingReservations", func() error {
		ctx := context.Background()
		ttl := time.Duration(jr.config.Reservations.PendingTTLHours) * time.Hour
		cutoff := jr.now().Add(-ttl)

		expired, err := jr.store.ReservationRepository.ExpirePending(ctx, cutoff)
		if err != nil {
			return fmt.Errorf("expire pending reservations: %w", err)
		}

		for i := range expired {
			r := &expired[i]
			logger.Debug("Reservation expired", "reference", r.Reference, "created_on", r.CreatedOn)
			if err := jr.services.Email.SendReservationStatusUpdate(ctx, r); err != nil {
				logger.Error("Failed to queue expiry notice", "reference", r.Reference, "error", err)
			}
		}
		logger.Info("Expired pending reservations", "count", len(expired), "cutoff", cutoff)
		return nil
	})
}
