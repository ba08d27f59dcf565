// internal/models/goal.go
package models

type Goal struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
	Unit    string  `json:"unit"`
}

// Progress is the completion percentage, capped at 100.
func (g Goal) Progress() int {
	if g.Target <= 0 {
		return 0
	}
	percent := int(g.Current / g.Target * 100)
	if percent > 100 {
		return 100
	}
	return percent
}
