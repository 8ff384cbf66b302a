package team

import "fmt"

// Team is a club. A team may appear in several seasons and, through
// promotion or relegation, in more than one league.
type Team struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	ShortName    string `json:"short_name"`
	FullName     string `json:"full_name"`
	Abbreviation string `json:"abbreviation"`
}

func (t Team) Validate() error {
	if t.ID <= 0 {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
