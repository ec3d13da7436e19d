package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SeasonPeriod is a recurring annual window. Dates are "MM-DD" or
// "YYYY-MM-DD"; only month and day are significant. A start later in the
// year than the end wraps across New Year.
type SeasonPeriod struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type Season struct {
	ID         int32           `json:"id"`
	Name       string          `json:"name"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Periods    []SeasonPeriod  `json:"periods"`
	IsActive   bool            `json:"is_active"`
	CreatedOn  time.Time       `json:"created_on"`
	UpdatedOn  time.Time       `json:"updated_on"`
}
