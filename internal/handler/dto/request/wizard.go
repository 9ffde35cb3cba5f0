package request

import "venue-booking/internal/domain/venue"

// WizardPatchRequest carries only the fields being edited. Numbers stay
// text so the wizard can report format errors itself.
type WizardPatchRequest struct {
	Name        *string `json:"venuename"`
	Address     *string `json:"venueaddress"`
	Capacity    *string `json:"capacity"`
	MinPrice    *string `json:"min_price"`
	MaxPrice    *string `json:"max_price"`
	Features    *string `json:"features"`
	Description *string `json:"description"`
	ImageURLs   *string `json:"imageurl"`
}

func (r WizardPatchRequest) ToDomain() venue.DraftPatch {
	return venue.DraftPatch{
		Name:        r.Name,
		Address:     r.Address,
		Capacity:    r.Capacity,
		MinPrice:    r.MinPrice,
		MaxPrice:    r.MaxPrice,
		Features:    r.Features,
		Description: r.Description,
		ImageURLs:   r.ImageURLs,
	}
}
