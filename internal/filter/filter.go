// Package filter narrows locally held card collections without a network
// round trip. All predicates are ANDed, matching is stable (input order is
// preserved), and an empty criteria value means "no constraint".
package filter

import "strings"

// SLA chip values; independent of a card's workflow status.
const (
	SLABreached = "Breached"
	SLANearing  = "Nearing"
	SLAOnTrack  = "On Track"
)

// ComplaintCard is the list-row shape the complaints screen renders and
// filters.
type ComplaintCard struct {
	ID         string
	Title      string
	Category   string
	Department string
	Zone       string
	Location   string
	Status     string
	SLA        string
	Priority   string
	CreatedAt  string
}

// AssetCard is the list-row shape of the assets screen.
type AssetCard struct {
	ID          string
	Name        string
	Type        string
	Department  string
	Division    string
	SubDivision string
	Location    string
	Status      string
}

// TaskCard is the list-row shape of the tasks screen.
type TaskCard struct {
	ID         string
	Title      string
	Project    string
	Department string
	Assignee   string
	Location   string
	Status     string
	SLA        string
	DueDate    string
}

// Criteria are the active filters of one screen. Empty fields are skipped.
// Status accepts either a workflow status or an SLA chip value; the chip
// values match against a card's SLA tag instead of its status.
type Criteria struct {
	Status      string
	Query       string
	Category    string
	Department  string
	Zone        string
	Division    string
	SubDivision string
}

func (c Criteria) empty() bool {
	return c == Criteria{}
}

// Complaints returns the cards satisfying every active criterion. With no
// active criteria the input slice is returned unchanged.
func Complaints(cards []ComplaintCard, c Criteria) []ComplaintCard {
	if c.empty() {
		return cards
	}
	out := make([]ComplaintCard, 0, len(cards))
	for _, card := range cards {
		if !matchStatusChip(card.Status, card.SLA, c.Status) {
			continue
		}
		if c.Category != "" && card.Category != c.Category {
			continue
		}
		if c.Department != "" && card.Department != c.Department {
			continue
		}
		if c.Zone != "" && card.Zone != c.Zone {
			continue
		}
		if !matchQuery(c.Query, card.ID, card.Title, card.Category, card.Department, card.Location) {
			continue
		}
		out = append(out, card)
	}
	return out
}

// Assets returns the asset cards satisfying every active criterion.
func Assets(cards []AssetCard, c Criteria) []AssetCard {
	if c.empty() {
		return cards
	}
	out := make([]AssetCard, 0, len(cards))
	for _, card := range cards {
		if c.Status != "" && card.Status != c.Status {
			continue
		}
		if c.Department != "" && card.Department != c.Department {
			continue
		}
		if c.Division != "" && card.Division != c.Division {
			continue
		}
		if c.SubDivision != "" && card.SubDivision != c.SubDivision {
			continue
		}
		if !matchQuery(c.Query, card.ID, card.Name, card.Type, card.Department, card.Location) {
			continue
		}
		out = append(out, card)
	}
	return out
}

// Tasks returns the task cards satisfying every active criterion.
func Tasks(cards []TaskCard, c Criteria) []TaskCard {
	if c.empty() {
		return cards
	}
	out := make([]TaskCard, 0, len(cards))
	for _, card := range cards {
		if !matchStatusChip(card.Status, card.SLA, c.Status) {
			continue
		}
		if c.Department != "" && card.Department != c.Department {
			continue
		}
		if !matchQuery(c.Query, card.ID, card.Title, card.Project, card.Department, card.Location) {
			continue
		}
		out = append(out, card)
	}
	return out
}

// matchStatusChip matches a status chip against either the workflow status
// or, for the SLA chip values, the SLA tag.
func matchStatusChip(status, sla, chip string) bool {
	switch chip {
	case "", "All":
		return true
	case SLABreached, SLANearing, SLAOnTrack:
		return sla == chip
	}
	return status == chip
}

// matchQuery reports whether the query is a case-insensitive substring of
// any of the fields. An empty query matches everything.
func matchQuery(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}
