package teamstats

import "testing"

func floatPtr(v float64) *float64 { return &v }

func TestAverageByLeague_MeanOfPerTeamMeans(t *testing.T) {
	t.Parallel()

	// Two teams with very different match counts already rolled up to
	// per-team means; the league average is the plain mean of those
	// means, so both teams weigh the same.
	rows := []TeamMetrics{
		{
			LeagueName:    "Premier League",
			TeamID:        1,
			Wins:          20,
			Points:        64,
			GoalsFor:      60,
			PointsPerGame: 2.0,
			GoalsPerGame:  1.8,
			WinRate:       0.6,
			ShotsPerGame:  15.0,
			XG:            55.5,
			ShotAccuracy:  floatPtr(0.40),
			PassAccuracy:  floatPtr(0.85),
		},
		{
			LeagueName:    "Premier League",
			TeamID:        2,
			Wins:          5,
			Points:        21,
			GoalsFor:      18,
			PointsPerGame: 1.0,
			GoalsPerGame:  1.0,
			WinRate:       0.25,
			ShotsPerGame:  10.0,
			XG:            20.5,
			ShotAccuracy:  floatPtr(0.30),
			PassAccuracy:  floatPtr(0.75),
		},
	}

	averages := AverageByLeague(rows)
	if len(averages) != 1 {
		t.Fatalf("len(averages) = %d, want 1", len(averages))
	}

	avg := averages[0]
	if avg.LeagueName != "Premier League" || !avg.IsLeagueAverage {
		t.Fatalf("league = %q isLeagueAverage = %v", avg.LeagueName, avg.IsLeagueAverage)
	}
	if got, want := avg.General.Normalized.PointsPerGame, 1.5; got != want {
		t.Fatalf("PointsPerGame = %v, want %v", got, want)
	}
	if got, want := avg.General.Normalized.GoalsPerGame, 1.4; got != want {
		t.Fatalf("GoalsPerGame = %v, want %v", got, want)
	}
	if got, want := avg.General.Normalized.WinRate, 0.425; got != want {
		t.Fatalf("WinRate = %v, want %v", got, want)
	}
	if got, want := avg.Attacking.Normalized.ShotsPerGame, 12.5; got != want {
		t.Fatalf("ShotsPerGame = %v, want %v", got, want)
	}
	if got, want := avg.Attacking.Percentages.ShotAccuracy, 0.35; got != want {
		t.Fatalf("ShotAccuracy = %v, want %v", got, want)
	}
	if got, want := avg.Passing.Percentages.PassAccuracy, 0.8; got != want {
		t.Fatalf("PassAccuracy = %v, want %v", got, want)
	}

	// Averaged raw totals round to whole numbers; xg keeps two decimals.
	if got, want := avg.General.Raw.Wins, 13.0; got != want {
		t.Fatalf("Raw.Wins = %v, want %v", got, want)
	}
	if got, want := avg.General.Raw.Points, 43.0; got != want {
		t.Fatalf("Raw.Points = %v, want %v", got, want)
	}
	if got, want := avg.General.Raw.GoalsFor, 39.0; got != want {
		t.Fatalf("Raw.GoalsFor = %v, want %v", got, want)
	}
	if got, want := avg.Attacking.Raw.XG, 38.0; got != want {
		t.Fatalf("Raw.XG = %v, want %v", got, want)
	}
}

func TestAverageByLeague_Rounding(t *testing.T) {
	t.Parallel()

	rows := []TeamMetrics{
		{LeagueName: "La Liga", TeamID: 1, PointsPerGame: 1.234, WinRate: 0.3334, XGPerGame: 1.2344},
		{LeagueName: "La Liga", TeamID: 2, PointsPerGame: 1.235, WinRate: 0.3336, XGPerGame: 1.2346},
	}

	avg := AverageByLeague(rows)[0]
	if got, want := avg.General.Normalized.PointsPerGame, 1.23; got != want {
		t.Fatalf("PointsPerGame = %v, want %v", got, want)
	}
	if got, want := avg.General.Normalized.WinRate, 0.334; got != want {
		t.Fatalf("WinRate = %v, want %v", got, want)
	}
	if got, want := avg.Attacking.Normalized.XGPerGame, 1.235; got != want {
		t.Fatalf("XGPerGame = %v, want %v", got, want)
	}
}

func TestAverageByLeague_NilRatiosDropOut(t *testing.T) {
	t.Parallel()

	// One team never attempted a tackle; its nil rate must not drag the
	// league mean toward zero.
	rows := []TeamMetrics{
		{LeagueName: "Serie A", TeamID: 1, TackleSuccessRate: floatPtr(0.6)},
		{LeagueName: "Serie A", TeamID: 2, TackleSuccessRate: floatPtr(0.8)},
		{LeagueName: "Serie A", TeamID: 3},
	}

	avg := AverageByLeague(rows)[0]
	if got, want := avg.Defensive.Percentages.TackleSuccessRate, 0.7; got != want {
		t.Fatalf("TackleSuccessRate = %v, want %v", got, want)
	}
}

func TestAverageByLeague_AllRatiosNil(t *testing.T) {
	t.Parallel()

	rows := []TeamMetrics{
		{LeagueName: "Serie A", TeamID: 1},
		{LeagueName: "Serie A", TeamID: 2},
	}

	avg := AverageByLeague(rows)[0]
	if got := avg.Passing.Percentages.CrossAccuracy; got != 0 {
		t.Fatalf("CrossAccuracy = %v, want 0", got)
	}
}

func TestAverageByLeague_LeaguesSortedByName(t *testing.T) {
	t.Parallel()

	rows := []TeamMetrics{
		{LeagueName: "Serie A", TeamID: 10},
		{LeagueName: "Bundesliga", TeamID: 20},
		{LeagueName: "Premier League", TeamID: 30},
	}

	averages := AverageByLeague(rows)
	want := []string{"Bundesliga", "Premier League", "Serie A"}
	if len(averages) != len(want) {
		t.Fatalf("len(averages) = %d, want %d", len(averages), len(want))
	}
	for i, name := range want {
		if averages[i].LeagueName != name {
			t.Fatalf("averages[%d].LeagueName = %q, want %q", i, averages[i].LeagueName, name)
		}
	}
}

func TestAverageByLeague_Empty(t *testing.T) {
	t.Parallel()

	if averages := AverageByLeague(nil); len(averages) != 0 {
		t.Fatalf("len(averages) = %d, want 0", len(averages))
	}
}
