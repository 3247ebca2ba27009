package airlift

import(
	"testing"
	"time"
)

func TestComputeChaseScore(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	recent := ep(now.Unix() - 3600)        // 1h ago
	stale := ep(now.Unix() - 100*3600)     // 100h ago
	overnights := []OvernightStat{{Airport:"TEB", Overnights:1, AvgGroundHours:9.0}}
	noOvernights := []OvernightStat{{Airport:"TEB", Overnights:0, AvgGroundHours:2.0}}

	cases := []struct{
		Epoch      *int64
		Fractional bool
		Overnights []OvernightStat
		Score      int
		Reasons    int
	}{
		{nil, false, nil, 0, 0},
		{recent, false, nil, 1, 1},
		{stale, false, nil, 0, 0},
		{nil, true, nil, 1, 1},
		{nil, false, overnights, 2, 1},
		{nil, false, noOvernights, 0, 0},
		{recent, true, nil, 2, 2},
		{recent, false, overnights, 3, 2},
		{stale, true, overnights, 3, 2},
		{recent, true, overnights, 4, 3},
	}

	for i,c := range cases {
		chase := ComputeChaseScore(c.Epoch, c.Fractional, c.Overnights, now)
		if chase.Score != c.Score {
			t.Errorf("[%d] expected score %d, got %d", i, c.Score, chase.Score)
		}
		if len(chase.Reasons) != c.Reasons {
			t.Errorf("[%d] expected %d reasons, got %v", i, c.Reasons, chase.Reasons)
		}
		if chase.Score < 0 || chase.Score > 4 {
			t.Errorf("[%d] score out of range: %d", i, chase.Score)
		}
	}
}

func TestChaseReasonOrder(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	chase := ComputeChaseScore(ep(now.Unix()), true,
		[]OvernightStat{{Airport:"TEB", Overnights:2, AvgGroundHours:11.0}}, now)

	if chase.Score != 4 {
		t.Fatalf("expected the full 4, got %d", chase.Score)
	}
	want := []string{"Seen in last 72h", "Fractional / Part 135", "Overnight groundtime present"}
	for i,reason := range want {
		if chase.Reasons[i] != reason {
			t.Errorf("reason[%d] - expected %q, got %q", i, reason, chase.Reasons[i])
		}
	}
}

func TestChaseRecencyBoundary(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)

	// Exactly 72h old still counts; a second older does not
	onEdge := ComputeChaseScore(ep(now.Unix()-72*3600), false, nil, now)
	if onEdge.Score != 1 {
		t.Errorf("72h-old sighting should score, got %d", onEdge.Score)
	}
	past := ComputeChaseScore(ep(now.Unix()-72*3600-1), false, nil, now)
	if past.Score != 0 {
		t.Errorf("expired sighting should not score, got %d", past.Score)
	}
}
