package tui

// SortCriteria is the ordering applied to the deals listing. The browse
// endpoint supports every criteria server-side; title search supports only
// Price and Cut, which are applied client-side over the result set.
type SortCriteria int

const (
	SortPrice SortCriteria = iota
	SortCut
	SortHottest
	SortReleaseDate
	SortExpiring
	SortPopular
)

var sortCriteriaOrder = []SortCriteria{
	SortPrice, SortCut, SortHottest, SortReleaseDate, SortExpiring, SortPopular,
}

func (c SortCriteria) Name() string {
	switch c {
	case SortPrice:
		return "Price"
	case SortCut:
		return "Cut"
	case SortHottest:
		return "Hottest"
	case SortReleaseDate:
		return "Release Date"
	case SortExpiring:
		return "Expiring"
	case SortPopular:
		return "Popular"
	default:
		return "Price"
	}
}

// apiToken is the upstream sort field name for the browse endpoint.
func (c SortCriteria) apiToken() string {
	switch c {
	case SortPrice:
		return "price"
	case SortCut:
		return "cut"
	case SortHottest:
		return "hot"
	case SortReleaseDate:
		return "release-date"
	case SortExpiring:
		return "expiry"
	case SortPopular:
		return "rank"
	default:
		return "price"
	}
}

// Next cycles forward through the six criteria, wrapping around.
func (c SortCriteria) Next() SortCriteria {
	return sortCriteriaOrder[(int(c)+1)%len(sortCriteriaOrder)]
}

// Prev cycles backward through the six criteria, wrapping around.
func (c SortCriteria) Prev() SortCriteria {
	return sortCriteriaOrder[(int(c)+len(sortCriteriaOrder)-1)%len(sortCriteriaOrder)]
}

// SupportsSearch reports whether the criteria can be applied to title-search
// results.
func (c SortCriteria) SupportsSearch() bool {
	return c == SortPrice || c == SortCut
}

// ToggleSearch cycles between the two search-compatible criteria. Price goes
// to Cut; anything else goes to Price.
func (c SortCriteria) ToggleSearch() SortCriteria {
	if c == SortPrice {
		return SortCut
	}
	return SortPrice
}

// SortCriteriaFromName parses a persisted criteria name, defaulting to Price.
func SortCriteriaFromName(name string) SortCriteria {
	for _, c := range sortCriteriaOrder {
		if c.Name() == name {
			return c
		}
	}
	return SortPrice
}

// SortDirection orders ascending or descending.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

func (d SortDirection) Name() string {
	if d == Descending {
		return "Descending"
	}
	return "Ascending"
}

func (d SortDirection) Arrow() string {
	if d == Descending {
		return "↓"
	}
	return "↑"
}

func (d SortDirection) Toggle() SortDirection {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// SortDirectionFromName parses a persisted direction name, defaulting to
// Ascending.
func SortDirectionFromName(name string) SortDirection {
	if name == "Descending" {
		return Descending
	}
	return Ascending
}

// SortState pairs a criteria with a direction.
type SortState struct {
	Criteria  SortCriteria
	Direction SortDirection
}

// APIParam renders the state as the upstream sort token. Descending order is
// a "-" prefix on the field name.
func (s SortState) APIParam() string {
	token := s.Criteria.apiToken()
	if s.Direction == Descending {
		return "-" + token
	}
	return token
}
