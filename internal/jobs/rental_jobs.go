package jobs

import (
	"context"
	"time"

	"camera-rental-backend/internal/domain"
	"camera-rental-backend/internal/logger"
)

// MarkCompletedRentals sets stored status 'completed' on active rentals
// whose return date has passed. The display-status deriver already projects
// these as completed; this job makes the stored column catch up so database
// queries and exports agree with what users see.
func (jr *JobRunner) MarkCompletedRentals() {
	jr.runWithRecovery("MarkCompletedRentals", func() {
		ctx := context.Background()
		today := time.Now().Format(domain.DateLayout)

		count, err := jr.rentalRepo.MarkCompleted(ctx, today)
		if err != nil {
			logger.Error("Failed to mark completed rentals", "error", err)
			return
		}
		logger.Info("Marked rentals as completed", "count", count)
	})
}

// SendReturnReminders emails the operations inbox for rentals due back
// tomorrow.
func (jr *JobRunner) SendReturnReminders() {
	jr.runWithRecovery("SendReturnReminders", func() {
		if jr.emailSvc == nil || jr.config.Email.OpsEmail == "" {
			logger.Debug("Return reminders skipped, email not configured")
			return
		}

		ctx := context.Background()
		tomorrow := time.Now().AddDate(0, 0, 1).Format(domain.DateLayout)

		rentals, err := jr.rentalRepo.ListDueOn(ctx, tomorrow)
		if err != nil {
			logger.Error("Failed to list rentals due tomorrow", "error", err)
			return
		}

		sent := 0
		for i := range rentals {
			if err := jr.emailSvc.SendReturnReminder(ctx, jr.config.Email.OpsEmail, &rentals[i]); err != nil {
				logger.Error("Failed to send return reminder", "rental_id", rentals[i].ID, "error", err)
				continue
			}
			sent++
		}
		logger.Info("Sent return reminders", "due", len(rentals), "sent", sent)
	})
}
