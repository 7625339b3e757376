package fantasy

import "testing"

func TestPoints_Quarterback(t *testing.T) {
	line := Line{
		PassingYards:      300,
		PassingTouchdowns: 3,
		Interceptions:     1,
		RushingYards:      20,
	}
	res := Points(line, PPR)

	// 300*0.04 + 3*4 + 1*-2 + 20*0.1 = 12 + 12 - 2 + 2
	if res.Total != 24 {
		t.Errorf("expected 24 points, got %v", res.Total)
	}
	if res.Breakdown["Passing TDs"] != 12 {
		t.Errorf("expected 12 from passing TDs, got %v", res.Breakdown["Passing TDs"])
	}
}

func TestPoints_ReceptionFormats(t *testing.T) {
	line := Line{Receptions: 10, ReceivingYards: 100, ReceivingTDs: 1}

	cases := []struct {
		scoring Scoring
		want    float64
	}{
		{PPR, 26},      // 10 + 10 + 6
		{HalfPPR, 21},  // 5 + 10 + 6
		{Standard, 16}, // 0 + 10 + 6
	}
	for _, c := range cases {
		if got := Points(line, c.scoring).Total; got != c.want {
			t.Errorf("%s: expected %v, got %v", c.scoring, c.want, got)
		}
	}
}

func TestPoints_NegativePlays(t *testing.T) {
	line := Line{FumblesLost: 2, Interceptions: 1}
	res := Points(line, Standard)
	if res.Total != -6 {
		t.Errorf("expected -6, got %v", res.Total)
	}
}

func TestPoints_RoundsToTenth(t *testing.T) {
	line := Line{PassingYards: 303} // 12.12
	res := Points(line, Standard)
	if res.Total != 12.1 {
		t.Errorf("expected 12.1, got %v", res.Total)
	}
}

func TestPoints_ZeroCategoriesOmittedFromBreakdown(t *testing.T) {
	res := Points(Line{RushingYards: 50}, Standard)
	if _, ok := res.Breakdown["Passing Yards"]; ok {
		t.Error("zero categories should not appear in the breakdown")
	}
	if res.Breakdown["Rushing Yards"] != 5 {
		t.Errorf("expected 5 rushing points, got %v", res.Breakdown["Rushing Yards"])
	}
}
