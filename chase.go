package airlift

import "time"

// ChaseScore is the prioritization heuristic for the sales workflow: an
// additive score plus one human-readable reason per signal that fired, in
// the fixed evaluation order (recency, operating model, overnight evidence).
type ChaseScore struct {
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

const(
	kChaseRecencyHours    = 72
	kReasonRecent         = "Seen in last 72h"
	kReasonFractional     = "Fractional / Part 135"
	kReasonOvernight      = "Overnight groundtime present"
)

// ComputeChaseScore folds the three independent signals into one number.
// Recency is judged against the explicit `now`, never the wall clock, so the
// same inputs always score the same.
func ComputeChaseScore(lastEpoch *int64, isFractional bool, overnights []OvernightStat, now time.Time) ChaseScore {
	chase := ChaseScore{Reasons: []string{}}

	if lastEpoch != nil {
		ageHours := now.Sub(time.Unix(*lastEpoch, 0)).Hours()
		if ageHours <= kChaseRecencyHours {
			chase.Score += 1
			chase.Reasons = append(chase.Reasons, kReasonRecent)
		}
	}

	// Fractional/135 operators tend to buy faster
	if isFractional {
		chase.Score += 1
		chase.Reasons = append(chase.Reasons, kReasonFractional)
	}

	for _,stat := range overnights {
		if stat.Overnights > 0 {
			chase.Score += 2
			chase.Reasons = append(chase.Reasons, kReasonOvernight)
			break
		}
	}

	return chase
}
