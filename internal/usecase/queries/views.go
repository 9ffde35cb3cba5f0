package queries

import (
	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/session"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/domain/venue"
)

// VenueView represents a venue as the catalog and booking lists show it
type VenueView struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	Description   string   `json:"description,omitempty"`
	Features      []string `json:"features"`
	ImageURLs     []string `json:"image_urls"`
	Capacity      int      `json:"capacity"`
	MinPrice      float64  `json:"min_price"`
	MaxPrice      float64  `json:"max_price"`
	StartingPrice float64  `json:"starting_price,omitempty"`
	OwnerID       int64    `json:"owner_id"`
	Placeholder   bool     `json:"placeholder,omitempty"`
}

// CatalogView represents the visible page of the catalog
type CatalogView struct {
	Venues       []VenueView `json:"venues"`
	Total        int         `json:"total"`
	Matched      int         `json:"matched"`
	Revealed     int         `json:"revealed"`
	HasMore      bool        `json:"has_more"`
	Term         string      `json:"term"`
	EmptyMessage string      `json:"empty_message,omitempty"`
	Error        string      `json:"error,omitempty"`
}

// VenueDetailView represents one venue with the ranges already held against it
type VenueDetailView struct {
	VenueView
	BookedDates []BookedRangeView `json:"booked_dates"`
}

type BookedRangeView struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
}

type ContactView struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// BookingView represents a booking with its derived status
type BookingView struct {
	ID        int64        `json:"id"`
	UserID    int64        `json:"user_id"`
	VenueID   int64        `json:"venue_id"`
	StartDate string       `json:"start_date"`
	EndDate   string       `json:"end_date"`
	Nights    int          `json:"nights"`
	Status    string       `json:"status"`
	Verified  bool         `json:"verified"`
	Guest     *ContactView `json:"guest,omitempty"`
}

type OwnerVenueView struct {
	Venue    VenueView     `json:"venue"`
	Bookings []BookingView `json:"bookings"`
}

// OwnerBookingsView represents the bookings made against an owner's venues
type OwnerBookingsView struct {
	Venues []OwnerVenueView `json:"venues"`
}

type GuestBookingView struct {
	BookingView
	Venue VenueView `json:"venue"`
}

// GuestBookingsView represents a guest's bookings under the current filter
type GuestBookingsView struct {
	Filter   string             `json:"filter"`
	Total    int                `json:"total"`
	Bookings []GuestBookingView `json:"bookings"`
}

type CancellationView struct {
	VenueName    string `json:"venue_name"`
	VenueAddress string `json:"venue_address"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Reason       string `json:"reason,omitempty"`
	Status       string `json:"status"`
}

// WizardView represents the venue registration wizard
type WizardView struct {
	Stage      string            `json:"stage"`
	Step       int               `json:"step"`
	Draft      venue.Draft       `json:"draft"`
	Errors     map[string]string `json:"errors"`
	Submitting bool              `json:"submitting"`
	VenueID    int64             `json:"venue_id,omitempty"`
}

type IntentView struct {
	ID        string  `json:"id"`
	VenueID   int64   `json:"venue_id"`
	VenueName string  `json:"venue_name"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Amount    float64 `json:"amount"`
}

// MeView represents the signed-in user of a session
type MeView struct {
	UserID  int64         `json:"user_id"`
	Role    string        `json:"role"`
	Landing string        `json:"landing"`
	Profile *user.Profile `json:"profile,omitempty"`
	Intent  *IntentView   `json:"pending_booking,omitempty"`
}

func NewVenueView(v venue.Venue) VenueView {
	features := v.FeatureList()
	if features == nil {
		features = []string{}
	}
	images := v.ImageURLs
	if images == nil {
		images = []string{}
	}
	return VenueView{
		ID:            v.ID,
		Name:          v.Name,
		Address:       v.Address,
		Description:   v.Description,
		Features:      features,
		ImageURLs:     images,
		Capacity:      v.Capacity,
		MinPrice:      v.Price.Min,
		MaxPrice:      v.Price.Max,
		StartingPrice: v.StartingPrice,
		OwnerID:       v.OwnerID,
		Placeholder:   v.Placeholder,
	}
}

func NewCatalogView(cv session.CatalogView) CatalogView {
	if cv.Error != "" {
		return CatalogView{Venues: []VenueView{}, Error: cv.Error, Term: cv.Catalog.Term}
	}
	c := cv.Catalog
	visible := c.Visible()
	venues := make([]VenueView, 0, len(visible))
	for _, v := range visible {
		venues = append(venues, NewVenueView(v))
	}
	return CatalogView{
		Venues:       venues,
		Total:        len(c.Venues),
		Matched:      len(c.Matches()),
		Revealed:     len(visible),
		HasMore:      c.HasMore(),
		Term:         c.Term,
		EmptyMessage: c.EmptyMessage(),
	}
}

func NewVenueDetailView(vb booking.VenueBookings) VenueDetailView {
	ranges := make([]BookedRangeView, 0, len(vb.Bookings))
	for _, b := range vb.Bookings {
		ranges = append(ranges, BookedRangeView{
			StartDate: b.Dates.StartDate(),
			EndDate:   b.Dates.EndDate(),
			Status:    b.Status.String(),
		})
	}
	return VenueDetailView{VenueView: NewVenueView(vb.Venue), BookedDates: ranges}
}

func NewBookingView(b booking.Booking) BookingView {
	return BookingView{
		ID:        b.ID,
		UserID:    b.UserID,
		VenueID:   b.VenueID,
		StartDate: b.Dates.StartDate(),
		EndDate:   b.Dates.EndDate(),
		Nights:    b.Dates.Nights(),
		Status:    b.Status.String(),
		Verified:  b.Verified(),
	}
}

func newOwnerBookingView(b booking.Booking) BookingView {
	v := NewBookingView(b)
	v.Guest = &ContactView{
		Username: b.Guest.Username,
		Email:    b.Guest.Email,
		Phone:    b.Guest.PhoneOrNA(),
	}
	return v
}

func NewOwnerBookingsView(ov session.OwnerView) OwnerBookingsView {
	venues := make([]OwnerVenueView, 0, len(ov.Venues))
	for _, vb := range ov.Venues {
		bookings := make([]BookingView, 0, len(vb.Bookings))
		for _, b := range vb.Bookings {
			bookings = append(bookings, newOwnerBookingView(b))
		}
		venues = append(venues, OwnerVenueView{Venue: NewVenueView(vb.Venue), Bookings: bookings})
	}
	return OwnerBookingsView{Venues: venues}
}

func NewGuestBookingView(gb booking.GuestBooking) GuestBookingView {
	return GuestBookingView{BookingView: NewBookingView(gb.Booking), Venue: NewVenueView(gb.Venue)}
}

func NewGuestBookingsView(gv session.GuestView) GuestBookingsView {
	visible := gv.Visible()
	items := make([]GuestBookingView, 0, len(visible))
	for _, gb := range visible {
		items = append(items, NewGuestBookingView(gb))
	}
	filter := gv.Filter
	if filter == "" {
		filter = booking.FilterAll
	}
	return GuestBookingsView{Filter: string(filter), Total: len(gv.Bookings), Bookings: items}
}

func NewCancellationView(c booking.Cancellation) CancellationView {
	return CancellationView{
		VenueName:    c.VenueName,
		VenueAddress: c.VenueAddress,
		StartDate:    c.Dates.StartDate(),
		EndDate:      c.Dates.EndDate(),
		Reason:       c.Reason,
		Status:       booking.StatusCancelled.String(),
	}
}

func NewWizardView(w venue.Wizard) WizardView {
	errors := w.Errors
	if errors == nil {
		errors = map[string]string{}
	}
	return WizardView{
		Stage:      w.Stage.String(),
		Step:       int(w.Stage),
		Draft:      w.Draft,
		Errors:     errors,
		Submitting: w.Submitting,
		VenueID:    w.VenueID,
	}
}

func NewIntentView(in booking.Intent) IntentView {
	return IntentView{
		ID:        in.ID.String(),
		VenueID:   in.VenueID,
		VenueName: in.VenueName,
		StartDate: in.Dates.StartDate(),
		EndDate:   in.Dates.EndDate(),
		Amount:    in.Amount,
	}
}
