package venue

import "strings"

// Catalog is the browse view: the fetched set plus a filter term and a
// reveal count. Neither filtering nor paging touches Venues.
type Catalog struct {
	Venues   []Venue `json:"venues"`
	Term     string  `json:"term"`
	Revealed int     `json:"revealed"`
	PageSize int     `json:"page_size"`
}

func (c *Catalog) Load(venues []Venue, pageSize int) {
	if pageSize < 1 {
		pageSize = 1
	}
	c.Venues = venues
	c.PageSize = pageSize
	c.Revealed = pageSize
}

// Filter sets the term and starts again from the first page.
func (c *Catalog) Filter(term string) {
	c.Term = strings.TrimSpace(term)
	c.Revealed = c.PageSize
}

// ShowMore reveals one more page. Already revealed items stay revealed.
func (c *Catalog) ShowMore() {
	matched := len(c.Matches())
	if c.Revealed >= matched {
		return
	}
	c.Revealed = min(c.Revealed+c.PageSize, matched)
}

func (c Catalog) Matches() []Venue {
	if c.Term == "" {
		return c.Venues
	}
	out := make([]Venue, 0, len(c.Venues))
	for _, v := range c.Venues {
		if v.Matches(c.Term) {
			out = append(out, v)
		}
	}
	return out
}

func (c Catalog) Visible() []Venue {
	m := c.Matches()
	return m[:min(c.Revealed, len(m))]
}

func (c Catalog) HasMore() bool {
	return c.Revealed < len(c.Matches())
}

// EmptyMessage is shown when the term filters everything out.
func (c Catalog) EmptyMessage() string {
	if len(c.Matches()) > 0 {
		return ""
	}
	if c.Term != "" {
		return `No venues found matching "` + c.Term + `"`
	}
	return "No venues available"
}
