package venue

import "strings"

const (
	PlaceholderName    = "Unknown Venue"
	PlaceholderAddress = "Address unavailable"
)

type Venue struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Address       string     `json:"address"`
	Description   string     `json:"description"`
	Features      string     `json:"features"`
	ImageURLs     []string   `json:"image_urls"`
	Capacity      int        `json:"capacity"`
	Price         PriceRange `json:"price"`
	StartingPrice float64    `json:"starting_price,omitempty"`
	OwnerID       int64      `json:"owner_id"`
	Placeholder   bool       `json:"placeholder,omitempty"`
}

// Placeholder stands in for a venue whose details could not be fetched.
func Placeholder(id int64) Venue {
	return Venue{
		ID:          id,
		Name:        PlaceholderName,
		Address:     PlaceholderAddress,
		Placeholder: true,
	}
}

// FeatureList splits the comma separated feature text.
func (v Venue) FeatureList() []string {
	if strings.TrimSpace(v.Features) == "" {
		return nil
	}
	parts := strings.Split(v.Features, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Matches is the catalog search rule: case-insensitive substring on name or address.
func (v Venue) Matches(term string) bool {
	if term == "" {
		return true
	}
	t := strings.ToLower(term)
	return strings.Contains(strings.ToLower(v.Name), t) ||
		strings.Contains(strings.ToLower(v.Address), t)
}

// NightlyRate is the price charged per booked night.
func (v Venue) NightlyRate() float64 {
	if v.Price.Min > 0 {
		return v.Price.Min
	}
	return v.StartingPrice
}

// Registration is a venue ready to be created upstream.
type Registration struct {
	Name        string
	Address     string
	Features    string
	Description string
	ImageURLs   []string
	Capacity    int
	Price       PriceRange
	OwnerID     int64
}
