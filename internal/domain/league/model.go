package league

import "fmt"

// League is a competition whose matches feed the analytics store.
type League struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}

func (l League) Validate() error {
	if l.ID <= 0 {
		return fmt.Errorf("league id is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.Country == "" {
		return fmt.Errorf("league country is required")
	}

	return nil
}
