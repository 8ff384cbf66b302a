package standings

import "sort"

// MatchResult is one played match feeding the table aggregation. Goals
// are final scores; matches without a final score never reach here.
type MatchResult struct {
	Round      int
	HomeTeamID int64
	AwayTeamID int64
	HomeGoals  int
	AwayGoals  int
}

// TeamInfo carries the display names attached to each table row.
type TeamInfo struct {
	Name         string
	FullName     string
	ShortName    string
	Abbreviation string
}

// BuildTable folds played matches into one row per team, counting both
// legs: a team that only played one leg in the filtered window still
// gets a row, teams with no qualifying matches get none. Rows are
// ordered by points, then goal difference, then goals for, with team
// id as the final deterministic tie-break. The round window is applied
// only when the query carries both bounds; an inverted window matches
// nothing.
func BuildTable(matches []MatchResult, teams map[int64]TeamInfo, query Query) []Standing {
	rows := make(map[int64]*Standing)
	rowFor := func(teamID int64) *Standing {
		row, ok := rows[teamID]
		if !ok {
			row = &Standing{TeamID: teamID}
			rows[teamID] = row
		}
		return row
	}

	for _, match := range matches {
		if query.RoundFiltered() {
			if match.Round < *query.RoundStart || match.Round > *query.RoundEnd {
				continue
			}
		}

		home := rowFor(match.HomeTeamID)
		away := rowFor(match.AwayTeamID)

		home.Played++
		away.Played++
		home.GoalsFor += match.HomeGoals
		home.GoalsAgainst += match.AwayGoals
		away.GoalsFor += match.AwayGoals
		away.GoalsAgainst += match.HomeGoals

		switch {
		case match.HomeGoals > match.AwayGoals:
			home.Wins++
			home.Points += 3
			away.Losses++
		case match.HomeGoals < match.AwayGoals:
			away.Wins++
			away.Points += 3
			home.Losses++
		default:
			home.Draws++
			home.Points++
			away.Draws++
			away.Points++
		}
	}

	out := make([]Standing, 0, len(rows))
	for teamID, row := range rows {
		row.GoalDifference = row.GoalsFor - row.GoalsAgainst
		if info, ok := teams[teamID]; ok {
			row.Name = info.Name
			row.FullName = info.FullName
			row.TeamName = info.FullName
			row.ShortName = info.ShortName
			row.Abbreviation = info.Abbreviation
		}
		out = append(out, *row)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		if out[i].GoalDifference != out[j].GoalDifference {
			return out[i].GoalDifference > out[j].GoalDifference
		}
		if out[i].GoalsFor != out[j].GoalsFor {
			return out[i].GoalsFor > out[j].GoalsFor
		}
		return out[i].TeamID < out[j].TeamID
	})

	return out
}
