package standings

import "testing"

func intPtr(v int) *int { return &v }

func testTeams() map[int64]TeamInfo {
	return map[int64]TeamInfo{
		1: {Name: "Arsenal", FullName: "Arsenal FC", ShortName: "Arsenal", Abbreviation: "ARS"},
		2: {Name: "Chelsea", FullName: "Chelsea FC", ShortName: "Chelsea", Abbreviation: "CHE"},
		3: {Name: "Everton", FullName: "Everton FC", ShortName: "Everton", Abbreviation: "EVE"},
		4: {Name: "Fulham", FullName: "Fulham FC", ShortName: "Fulham", Abbreviation: "FUL"},
	}
}

func TestBuildTable_OrderingAndArithmetic(t *testing.T) {
	t.Parallel()

	// Double round robin between three teams.
	matches := []MatchResult{
		{Round: 1, HomeTeamID: 1, AwayTeamID: 2, HomeGoals: 2, AwayGoals: 0},
		{Round: 1, HomeTeamID: 3, AwayTeamID: 1, HomeGoals: 1, AwayGoals: 1},
		{Round: 2, HomeTeamID: 2, AwayTeamID: 3, HomeGoals: 0, AwayGoals: 3},
		{Round: 2, HomeTeamID: 2, AwayTeamID: 1, HomeGoals: 1, AwayGoals: 1},
		{Round: 3, HomeTeamID: 1, AwayTeamID: 3, HomeGoals: 0, AwayGoals: 1},
		{Round: 3, HomeTeamID: 3, AwayTeamID: 2, HomeGoals: 2, AwayGoals: 2},
	}

	rows := BuildTable(matches, testTeams(), Query{SeasonIDs: []int64{21}})
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}

	// Everton: W2 D2, Arsenal: W1 D2 L1, Chelsea: D2 L2.
	if got, want := rows[0].TeamID, int64(3); got != want {
		t.Fatalf("rows[0].TeamID = %d, want %d", got, want)
	}
	if rows[0].Played != 4 || rows[0].Wins != 2 || rows[0].Draws != 2 || rows[0].Losses != 0 {
		t.Fatalf("Everton record = %d/%d/%d/%d, want 4/2/2/0",
			rows[0].Played, rows[0].Wins, rows[0].Draws, rows[0].Losses)
	}
	if rows[0].Points != 8 || rows[0].GoalsFor != 7 || rows[0].GoalsAgainst != 3 || rows[0].GoalDifference != 4 {
		t.Fatalf("Everton tallies = pts %d gf %d ga %d gd %d, want 8/7/3/4",
			rows[0].Points, rows[0].GoalsFor, rows[0].GoalsAgainst, rows[0].GoalDifference)
	}

	if got, want := rows[1].TeamID, int64(1); got != want {
		t.Fatalf("rows[1].TeamID = %d, want %d", got, want)
	}
	if rows[1].Points != 5 || rows[1].GoalDifference != 1 {
		t.Fatalf("Arsenal = pts %d gd %d, want 5/1", rows[1].Points, rows[1].GoalDifference)
	}
	if got, want := rows[2].TeamID, int64(2); got != want {
		t.Fatalf("rows[2].TeamID = %d, want %d", got, want)
	}

	if rows[0].FullName != "Everton FC" || rows[0].TeamName != "Everton FC" || rows[0].Abbreviation != "EVE" {
		t.Fatalf("Everton names = %q/%q/%q", rows[0].FullName, rows[0].TeamName, rows[0].Abbreviation)
	}
}

func TestBuildTable_TieBreaks(t *testing.T) {
	t.Parallel()

	// All four results are wins, so points tie pairwise and the table
	// falls through goal difference, goals for, and finally team id.
	matches := []MatchResult{
		{Round: 1, HomeTeamID: 1, AwayTeamID: 3, HomeGoals: 4, AwayGoals: 0},
		{Round: 1, HomeTeamID: 2, AwayTeamID: 4, HomeGoals: 1, AwayGoals: 0},
		{Round: 2, HomeTeamID: 3, AwayTeamID: 2, HomeGoals: 0, AwayGoals: 2},
		{Round: 2, HomeTeamID: 4, AwayTeamID: 1, HomeGoals: 0, AwayGoals: 2},
	}

	rows := BuildTable(matches, testTeams(), Query{SeasonIDs: []int64{21}})
	if len(rows) != 4 {
		t.Fatalf("len(rows) = %d, want 4", len(rows))
	}

	// 1 and 2 both have 6 points; 1 leads on goal difference (+6 vs +3).
	// 3 and 4 both have 0 points and a worse goal difference than each
	// other's mirror; 4 (-3) ranks above 3 (-6).
	want := []int64{1, 2, 4, 3}
	for i, teamID := range want {
		if rows[i].TeamID != teamID {
			t.Fatalf("rows[%d].TeamID = %d, want %d", i, rows[i].TeamID, teamID)
		}
	}
}

func TestBuildTable_GoalsForTieBreak(t *testing.T) {
	t.Parallel()

	// Identical points and goal difference; higher scoring draw wins.
	matches := []MatchResult{
		{Round: 1, HomeTeamID: 1, AwayTeamID: 2, HomeGoals: 0, AwayGoals: 0},
		{Round: 1, HomeTeamID: 3, AwayTeamID: 4, HomeGoals: 2, AwayGoals: 2},
	}

	rows := BuildTable(matches, testTeams(), Query{SeasonIDs: []int64{21}})
	want := []int64{3, 4, 1, 2}
	for i, teamID := range want {
		if rows[i].TeamID != teamID {
			t.Fatalf("rows[%d].TeamID = %d, want %d", i, rows[i].TeamID, teamID)
		}
	}
}

func TestBuildTable_PointsSumProperty(t *testing.T) {
	t.Parallel()

	matches := []MatchResult{
		{Round: 1, HomeTeamID: 1, AwayTeamID: 2, HomeGoals: 3, AwayGoals: 1},
		{Round: 1, HomeTeamID: 3, AwayTeamID: 4, HomeGoals: 0, AwayGoals: 0},
		{Round: 2, HomeTeamID: 2, AwayTeamID: 3, HomeGoals: 2, AwayGoals: 2},
		{Round: 2, HomeTeamID: 4, AwayTeamID: 1, HomeGoals: 1, AwayGoals: 2},
		{Round: 3, HomeTeamID: 1, AwayTeamID: 3, HomeGoals: 1, AwayGoals: 1},
	}

	decided, drawn := 0, 0
	for _, m := range matches {
		if m.HomeGoals == m.AwayGoals {
			drawn++
		} else {
			decided++
		}
	}

	rows := BuildTable(matches, testTeams(), Query{SeasonIDs: []int64{21}})

	totalPoints, totalGF, totalGA, totalPlayed := 0, 0, 0, 0
	for _, row := range rows {
		totalPoints += row.Points
		totalGF += row.GoalsFor
		totalGA += row.GoalsAgainst
		totalPlayed += row.Played
	}

	// A decided match hands out 3 points, a drawn one 2.
	if want := 3*decided + 2*drawn; totalPoints != want {
		t.Fatalf("total points = %d, want %d", totalPoints, want)
	}
	if totalGF != totalGA {
		t.Fatalf("goals for (%d) != goals against (%d)", totalGF, totalGA)
	}
	if want := 2 * len(matches); totalPlayed != want {
		t.Fatalf("total played = %d, want %d", totalPlayed, want)
	}
}

func TestBuildTable_RoundWindow(t *testing.T) {
	t.Parallel()

	matches := []MatchResult{
		{Round: 1, HomeTeamID: 1, AwayTeamID: 2, HomeGoals: 1, AwayGoals: 0},
		{Round: 5, HomeTeamID: 2, AwayTeamID: 1, HomeGoals: 2, AwayGoals: 0},
		{Round: 9, HomeTeamID: 1, AwayTeamID: 3, HomeGoals: 3, AwayGoals: 3},
	}

	rows := BuildTable(matches, testTeams(), Query{
		SeasonIDs:  []int64{21},
		RoundStart: intPtr(4),
		RoundEnd:   intPtr(8),
	})

	// Only the round-5 match qualifies, so team 3 drops out entirely.
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0].TeamID != 2 || rows[0].Points != 3 || rows[0].Played != 1 {
		t.Fatalf("rows[0] = %+v", rows[0])
	}
	if rows[1].TeamID != 1 || rows[1].Points != 0 || rows[1].Played != 1 {
		t.Fatalf("rows[1] = %+v", rows[1])
	}
}

func TestBuildTable_InvertedRoundWindowIsEmpty(t *testing.T) {
	t.Parallel()

	matches := []MatchResult{
		{Round: 3, HomeTeamID: 1, AwayTeamID: 2, HomeGoals: 1, AwayGoals: 0},
	}

	rows := BuildTable(matches, testTeams(), Query{
		SeasonIDs:  []int64{21},
		RoundStart: intPtr(10),
		RoundEnd:   intPtr(5),
	})
	if len(rows) != 0 {
		t.Fatalf("len(rows) = %d, want 0", len(rows))
	}
}

func TestBuildTable_LoneRoundBoundIgnored(t *testing.T) {
	t.Parallel()

	matches := []MatchResult{
		{Round: 1, HomeTeamID: 1, AwayTeamID: 2, HomeGoals: 1, AwayGoals: 0},
		{Round: 20, HomeTeamID: 2, AwayTeamID: 1, HomeGoals: 1, AwayGoals: 0},
	}

	rows := BuildTable(matches, testTeams(), Query{
		SeasonIDs:  []int64{21},
		RoundStart: intPtr(10),
	})
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	for _, row := range rows {
		if row.Played != 2 {
			t.Fatalf("team %d played = %d, want 2", row.TeamID, row.Played)
		}
	}
}

func TestBuildTable_NoMatches(t *testing.T) {
	t.Parallel()

	rows := BuildTable(nil, testTeams(), Query{SeasonIDs: []int64{21}})
	if len(rows) != 0 {
		t.Fatalf("len(rows) = %d, want 0", len(rows))
	}
}
