package insight

import (
	"testing"

	"github.com/riskibarqy/soccer-insights/internal/domain/teamseason"
)

func TestMetricValue(t *testing.T) {
	t.Parallel()

	cleanSheetPct := 42.1
	row := teamseason.ProgressionRow{
		Points:               89,
		PointsPerGame:        2.34,
		HomeWinPercentage:    73.7,
		AwayGoalsAgainst:     14,
		CleanSheetPercentage: &cleanSheetPct,
	}

	cases := []struct {
		key  string
		want float64
	}{
		{"points", 89},
		{"points_per_game", 2.34},
		{"home_win_percentage", 73.7},
		{"away_goals_against", 14},
		{"clean_sheet_percentage", 42.1},
	}
	for _, tc := range cases {
		got, ok := MetricValue(row, tc.key)
		if !ok || got != tc.want {
			t.Fatalf("%s: got=%v ok=%v want=%v", tc.key, got, ok, tc.want)
		}
	}

	if _, ok := MetricValue(row, "no_such_metric"); ok {
		t.Fatalf("unknown key must not resolve")
	}

	row.CleanSheetPercentage = nil
	if _, ok := MetricValue(row, "clean_sheet_percentage"); ok {
		t.Fatalf("nil clean sheet percentage must report missing")
	}
}

func TestProgressionMetrics_ResolveOnEveryRow(t *testing.T) {
	t.Parallel()

	cleanSheetPct := 10.5
	row := teamseason.ProgressionRow{CleanSheetPercentage: &cleanSheetPct}
	for _, metric := range ProgressionMetrics {
		if _, ok := MetricValue(row, metric.Key); !ok {
			t.Fatalf("catalog metric %q does not resolve", metric.Key)
		}
	}
}

func TestSeasons_DistinctAndChronological(t *testing.T) {
	t.Parallel()

	rows := []teamseason.ProgressionRow{
		{TeamID: 8456, Season: "2019_2020"},
		{TeamID: 8650, Season: "2017_2018"},
		{TeamID: 8456, Season: "2017_2018"},
		{TeamID: 8456, Season: "2018_2019"},
	}

	got := Seasons(rows)
	want := []string{"2017_2018", "2018_2019", "2019_2020"}
	if len(got) != len(want) {
		t.Fatalf("unexpected season count: got=%v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected order: got=%v want=%v", got, want)
		}
	}
}

func TestAvailabilityMatrix(t *testing.T) {
	t.Parallel()

	rows := []teamseason.ProgressionRow{
		{TeamID: 8456, Season: "2017_2018"},
		{TeamID: 8456, Season: "2018_2019"},
		{TeamID: 8650, Season: "2018_2019"},
	}

	matrix := AvailabilityMatrix(rows)
	if !matrix[8456]["2017_2018"] || !matrix[8456]["2018_2019"] {
		t.Fatalf("unexpected matrix for 8456: %+v", matrix[8456])
	}
	if matrix[8650]["2017_2018"] || !matrix[8650]["2018_2019"] {
		t.Fatalf("unexpected matrix for 8650: %+v", matrix[8650])
	}
}

func TestDetectDiscrepancies(t *testing.T) {
	t.Parallel()

	rows := []teamseason.ProgressionRow{
		{TeamID: 8456, TeamFullName: "Manchester City", Season: "2017_2018", MatchesPlayed: 38},
		{TeamID: 8650, TeamFullName: "Liverpool", Season: "2017_2018", MatchesPlayed: 38},
		{TeamID: 8456, TeamFullName: "Manchester City", Season: "2018_2019", MatchesPlayed: 38},
		{TeamID: 8650, TeamFullName: "Liverpool", Season: "2018_2019", MatchesPlayed: 37},
	}

	got := DetectDiscrepancies(rows)
	if len(got) != 1 {
		t.Fatalf("expected one flagged season, got %+v", got)
	}
	if got[0].Season != "2018_2019" || len(got[0].Counts) != 2 {
		t.Fatalf("unexpected discrepancy: %+v", got[0])
	}
}

func TestDetectInProgress(t *testing.T) {
	t.Parallel()

	rows := []teamseason.ProgressionRow{
		{TeamID: 8456, Season: "2023_2024", MatchesPlayed: 38},
		{TeamID: 8650, Season: "2023_2024", MatchesPlayed: 38},
		{TeamID: 8456, Season: "2024_2025", MatchesPlayed: 20},
		{TeamID: 8650, Season: "2024_2025", MatchesPlayed: 19},
	}

	season, ok := DetectInProgress(rows)
	if !ok || season != "2024_2025" {
		t.Fatalf("expected 2024_2025 flagged, got %q ok=%v", season, ok)
	}

	complete := []teamseason.ProgressionRow{
		{TeamID: 8456, Season: "2023_2024", MatchesPlayed: 38},
		{TeamID: 8456, Season: "2024_2025", MatchesPlayed: 38},
	}
	if _, ok := DetectInProgress(complete); ok {
		t.Fatalf("complete final season must not be flagged")
	}

	single := []teamseason.ProgressionRow{
		{TeamID: 8456, Season: "2024_2025", MatchesPlayed: 12},
	}
	if _, ok := DetectInProgress(single); ok {
		t.Fatalf("a single season has nothing to compare against")
	}
}

func TestFormatSeason(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"2017_2018", "17/18"},
		{"2024_2025", "24/25"},
		{"2024", "2024"},
		{"17_18", "17_18"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := FormatSeason(tc.in); got != tc.want {
			t.Fatalf("FormatSeason(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
