package pricing

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"carrental-backend/internal/domain"
)

// monthDay encodes a date's month and day as month*100+day so that ordinary
// integer comparison follows calendar order within a year.
type monthDay int

func monthDayOf(d civil.Date) monthDay {
	return monthDay(int(d.Month)*100 + d.Day)
}

// parseMonthDay accepts "MM-DD" or "YYYY-MM-DD". February 29 is always valid
// because periods recur every year.
func parseMonthDay(field, s string) (monthDay, error) {
	switch len(s) {
	case len("01-02"):
		d, err := civil.ParseDate("2000-" + s)
		if err != nil {
			return 0, invalid(field, s, "expected MM-DD or YYYY-MM-DD")
		}
		return monthDayOf(d), nil
	case len(DateLayout):
		d, err := civil.ParseDate(s)
		if err != nil {
			return 0, invalid(field, s, "expected MM-DD or YYYY-MM-DD")
		}
		return monthDayOf(d), nil
	default:
		return 0, invalid(field, s, "expected MM-DD or YYYY-MM-DD")
	}
}

type period struct {
	start, end monthDay
}

func (p period) wraps() bool {
	return p.start > p.end
}

func (p period) contains(md monthDay) bool {
	if p.wraps() {
		return md >= p.start || md <= p.end
	}
	return md >= p.start && md <= p.end
}

func parsePeriods(s domain.Season) ([]period, error) {
	out := make([]period, 0, len(s.Periods))
	for i, p := range s.Periods {
		start, err := parseMonthDay(fmt.Sprintf("season %q periods[%d].start_date", s.Name, i), p.StartDate)
		if err != nil {
			return nil, err
		}
		end, err := parseMonthDay(fmt.Sprintf("season %q periods[%d].end_date", s.Name, i), p.EndDate)
		if err != nil {
			return nil, err
		}
		out = append(out, period{start: start, end: end})
	}
	return out, nil
}

// SeasonMatch is the outcome of season resolution. SeasonID is nil when no
// season applied and the multiplier is the neutral 1.0.
type SeasonMatch struct {
	Multiplier  decimal.Decimal
	SeasonID    *int32
	SeasonName  string
	OverlapDays int
	FromCurrent bool
	Warnings    []Warning
}

var neutralMultiplier = decimal.NewFromInt(1)

// ResolveMultiplier picks the season whose periods cover the most rental days.
//
// Each active season scores the number of distinct days that fall in at least
// one of its periods. The strictly highest score wins; on a tie the season that
// comes first in active keeps the win and a WarningTiedSeasons is reported.
// When no season covers any day, current applies if it is non-nil and active;
// otherwise the multiplier is 1.0.
func ResolveMultiplier(days []string, active []domain.Season, current *domain.Season) (SeasonMatch, error) {
	mds := make([]monthDay, 0, len(days))
	seen := make(map[civil.Date]struct{}, len(days))
	for i, s := range days {
		d, err := ParseDate(fmt.Sprintf("days[%d]", i), s)
		if err != nil {
			return SeasonMatch{}, err
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		mds = append(mds, monthDayOf(d))
	}

	best := -1
	bestOverlap := 0
	var tied []string
	for i, season := range active {
		if !season.IsActive {
			continue
		}
		periods, err := parsePeriods(season)
		if err != nil {
			return SeasonMatch{}, err
		}
		overlap := 0
		for _, md := range mds {
			for _, p := range periods {
				if p.contains(md) {
					overlap++
					break
				}
			}
		}
		switch {
		case overlap == 0:
		case overlap > bestOverlap:
			best, bestOverlap = i, overlap
			tied = tied[:0]
		case overlap == bestOverlap:
			tied = append(tied, season.Name)
		}
	}

	if best >= 0 {
		winner := active[best]
		id := winner.ID
		match := SeasonMatch{
			Multiplier:  winner.Multiplier,
			SeasonID:    &id,
			SeasonName:  winner.Name,
			OverlapDays: bestOverlap,
		}
		if len(tied) > 0 {
			match.Warnings = append(match.Warnings, Warning{
				Kind: WarningTiedSeasons,
				Detail: fmt.Sprintf("season %q ties with %s at %d day(s); keeping %q",
					winner.Name, strings.Join(quoteAll(tied), ", "), bestOverlap, winner.Name),
			})
		}
		return match, nil
	}

	if current != nil && current.IsActive {
		id := current.ID
		return SeasonMatch{
			Multiplier:  current.Multiplier,
			SeasonID:    &id,
			SeasonName:  current.Name,
			FromCurrent: true,
		}, nil
	}

	return SeasonMatch{Multiplier: neutralMultiplier}, nil
}

func quoteAll(names []string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = fmt.Sprintf("%q", n)
	}
	return out
}

// ValidateSeason checks a season before it is written by an admin.
func ValidateSeason(s domain.Season) error {
	if strings.TrimSpace(s.Name) == "" {
		return invalid("name", "", "is required")
	}
	if !s.Multiplier.IsPositive() {
		return invalid("multiplier", s.Multiplier.String(), "must be greater than zero")
	}
	if len(s.Periods) == 0 {
		return invalid("periods", "", "at least one period is required")
	}
	_, err := parsePeriods(s)
	return err
}
