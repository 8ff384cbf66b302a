package teamseason

import "testing"

func TestProgressionRow_DeriveRates(t *testing.T) {
	t.Parallel()

	row := ProgressionRow{
		MatchesPlayed: 38,
		Points:        86,
		Wins:          26,
		GoalsFor:      85,
		GoalsAgainst:  33,
		CleanSheets:   17,
		HomeMatches:   19,
		HomeWins:      15,
		AwayMatches:   19,
		AwayWins:      11,
	}
	row.DeriveRates()

	if got, want := row.PointsPerGame, 2.26; got != want {
		t.Fatalf("PointsPerGame = %v, want %v", got, want)
	}
	if got, want := row.WinPercentage, 68.42; got != want {
		t.Fatalf("WinPercentage = %v, want %v", got, want)
	}
	if got, want := row.HomeWinPercentage, 78.95; got != want {
		t.Fatalf("HomeWinPercentage = %v, want %v", got, want)
	}
	if got, want := row.AwayWinPercentage, 57.89; got != want {
		t.Fatalf("AwayWinPercentage = %v, want %v", got, want)
	}
	if got, want := row.GoalsPerGame, 2.24; got != want {
		t.Fatalf("GoalsPerGame = %v, want %v", got, want)
	}
	if got, want := row.GoalsConcededPerGame, 0.87; got != want {
		t.Fatalf("GoalsConcededPerGame = %v, want %v", got, want)
	}
	if row.CleanSheetPercentage == nil {
		t.Fatal("CleanSheetPercentage = nil, want value")
	}
	if got, want := *row.CleanSheetPercentage, 44.74; got != want {
		t.Fatalf("CleanSheetPercentage = %v, want %v", got, want)
	}
}

func TestProgressionRow_DeriveRates_PercentagesShareScale(t *testing.T) {
	t.Parallel()

	// Half the matches won, half kept clean: both percentages must land
	// on the same 0-100 scale.
	row := ProgressionRow{
		MatchesPlayed: 10,
		Wins:          5,
		CleanSheets:   5,
		HomeMatches:   5,
		HomeWins:      5,
		AwayMatches:   5,
		AwayWins:      0,
	}
	row.DeriveRates()

	if got, want := row.WinPercentage, 50.0; got != want {
		t.Fatalf("WinPercentage = %v, want %v", got, want)
	}
	if row.CleanSheetPercentage == nil || *row.CleanSheetPercentage != 50.0 {
		t.Fatalf("CleanSheetPercentage = %v, want 50", row.CleanSheetPercentage)
	}
	if got, want := row.HomeWinPercentage, 100.0; got != want {
		t.Fatalf("HomeWinPercentage = %v, want %v", got, want)
	}
	if got, want := row.AwayWinPercentage, 0.0; got != want {
		t.Fatalf("AwayWinPercentage = %v, want %v", got, want)
	}
}

func TestProgressionRow_DeriveRates_NoMatches(t *testing.T) {
	t.Parallel()

	row := ProgressionRow{}
	row.DeriveRates()

	if row.PointsPerGame != 0 || row.WinPercentage != 0 ||
		row.HomeWinPercentage != 0 || row.AwayWinPercentage != 0 ||
		row.GoalsPerGame != 0 || row.GoalsConcededPerGame != 0 {
		t.Fatalf("zero-match rollup derived non-zero rates: %+v", row)
	}
	if row.CleanSheetPercentage != nil {
		t.Fatalf("CleanSheetPercentage = %v, want nil", *row.CleanSheetPercentage)
	}
}

func TestProgressionRow_DeriveRates_NoHomeMatches(t *testing.T) {
	t.Parallel()

	row := ProgressionRow{
		MatchesPlayed: 4,
		Wins:          2,
		AwayMatches:   4,
		AwayWins:      2,
	}
	row.DeriveRates()

	if got := row.HomeWinPercentage; got != 0 {
		t.Fatalf("HomeWinPercentage = %v, want 0", got)
	}
	if got, want := row.AwayWinPercentage, 50.0; got != want {
		t.Fatalf("AwayWinPercentage = %v, want %v", got, want)
	}
}
