package jobs

import (
	"context"
	"fmt"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/logger"
)

// BackfillPricingTiers gives every vehicle that still only has a flat legacy
// rate a single open-ended tier at that rate. Vehicles that already have tiers
// are left alone, so the job is safe to re-run.
func (jr *JobRunner) BackfillPricingTiers() {
	jr.runWithRecovery("BackfillPricingTiers", func() error {
		ctx := context.Background()

		query := `
			UPDATE vehicles
			SET pricing_tiers = jsonb_build_array(jsonb_build_object(
			        'min_days', 1,
			        'max_days', $1::int,
			        'price_per_day', legacy_price_per_day::text)),
			    updated_on = NOW()
			WHERE pricing_tiers = '[]'::jsonb
			  AND legacy_price_per_day IS NOT NULL
			  AND legacy_price_per_day > 0
			RETURNING id, name, legacy_price_per_day::text
		`

		rows, err := jr.db.QueryContext(ctx, query, domain.OpenEndedMaxDays)
		if err != nil {
			return fmt.Errorf("backfill pricing tiers: %w", err)
		}
		defer rows.Close()

		count := 0
		for rows.Next() {
			var (
				id    int32
				name  string
				price string
			)
			if err := rows.Scan(&id, &name, &price); err != nil {
				logger.Error("Failed to scan backfilled vehicle", "error", err)
				continue
			}
			logger.Debug("Backfilled pricing tier", "vehicle_id", id, "name", name, "price_per_day", price)
			count++
		}
		if err := rows.Err(); err != nil {
			return fmt.Errorf("iterate backfilled vehicles: %w", err)
		}

		logger.Info("Backfilled pricing tiers", "count", count)
		if count > 0 {
			jr.invalidateCatalog(ctx)
		}

		var untiered int
		err = jr.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vehicles WHERE pricing_tiers = '[]'::jsonb AND status <> 'RETIRED'`).Scan(&untiered)
		if err != nil {
			return fmt.Errorf("count untiered vehicles: %w", err)
		}
		if untiered > 0 {
			logger.Warn("Vehicles without pricing tiers remain and cannot be quoted", "count", untiered)
		}
		return nil
	})
}

// invalidateCatalog drops cached listings that may still carry the old tiers.
func (jr *JobRunner) invalidateCatalog(ctx context.Context) {
	if jr.services.Catalog == nil {
		logger.Warn("No catalog cache configured; cached listings refresh on TTL expiry")
		return
	}
	if err := jr.services.Catalog.Invalidate(ctx); err != nil {
		logger.Error("Failed to invalidate catalog cache; cached listings refresh on TTL expiry", "error", err)
		return
	}
	logger.Info("Catalog cache invalidated")
}
