package availability

import (
	"context"
	"sort"
)

// ResolveDates projects the shift and leave stores forward: the distinct
// future dates on which the barber has a shift, minus dates with any
// approved leave. The horizon is bounded only by how far shifts have been
// scheduled.
func (e *DefaultEngine) ResolveDates(ctx context.Context, barberID, branchID string) ([]string, error) {
	today := e.Clock.Now().In(e.Location).Format("2006-01-02")

	shiftDates, err := e.Shifts.DistinctDates(ctx, barberID, branchID, today)
	if err != nil {
		return nil, err
	}
	leaveDates, err := e.Leaves.ApprovedDates(ctx, barberID, today)
	if err != nil {
		return nil, err
	}

	onLeave := make(map[string]bool, len(leaveDates))
	for _, d := range leaveDates {
		onLeave[d] = true
	}

	dates := make([]string, 0, len(shiftDates))
	for _, d := range shiftDates {
		// The store already filters on >= today; re-check anyway so a
		// timezone slip in the date comparison can never surface a past day.
		if d < today || onLeave[d] {
			continue
		}
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates, nil
}
