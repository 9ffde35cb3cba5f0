package remote

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

var jsonNull = []byte("null")

// flexFloat accepts a JSON number, a numeric string or null.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, jsonNull) {
		*f = 0
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		*f = flexFloat(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		*f = 0
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*f = flexFloat(n)
	return nil
}

type flexInt int64

func (i *flexInt) UnmarshalJSON(b []byte) error {
	var f flexFloat
	if err := f.UnmarshalJSON(b); err != nil {
		return err
	}
	*i = flexInt(f)
	return nil
}

// stringList accepts a list of strings or a single comma separated string.
type stringList []string

func (l *stringList) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, jsonNull) {
		*l = nil
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err == nil {
		*l = list
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	*l = out
	return nil
}

// flexText accepts a string or a list joined with ", ".
type flexText string

func (t *flexText) UnmarshalJSON(b []byte) error {
	var l stringList
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = flexText(s)
		return nil
	}
	if err := l.UnmarshalJSON(b); err != nil {
		return err
	}
	*t = flexText(strings.Join(l, ", "))
	return nil
}

// userRef is a user given either as a bare id or as a nested object.
type userRef struct {
	ID          int64
	Username    string
	Email       string
	PhoneNumber string
}

func (u *userRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		var id flexInt
		if err := id.UnmarshalJSON(b); err != nil {
			return err
		}
		*u = userRef{ID: int64(id)}
		return nil
	}
	var obj struct {
		ID          flexInt `json:"id"`
		Username    string  `json:"username"`
		Email       string  `json:"email"`
		PhoneNumber string  `json:"phoneNumber"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		return err
	}
	*u = userRef{ID: int64(obj.ID), Username: obj.Username, Email: obj.Email, PhoneNumber: obj.PhoneNumber}
	return nil
}

// venueRef is a venue given either as a bare id or as a nested object.
type venueRef struct {
	ID     int64
	Detail *venueDTO
}

func (v *venueRef) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || b[0] != '{' {
		var id flexInt
		if err := id.UnmarshalJSON(b); err != nil {
			return err
		}
		*v = venueRef{ID: int64(id)}
		return nil
	}
	var d venueDTO
	if err := json.Unmarshal(b, &d); err != nil {
		return err
	}
	*v = venueRef{ID: d.id(), Detail: &d}
	return nil
}

type venueDTO struct {
	VenueID       flexInt         `json:"venueid"`
	ID            flexInt         `json:"id"`
	Name          string          `json:"venuename"`
	Address       string          `json:"venueaddress"`
	Description   string          `json:"description"`
	Features      flexText        `json:"features"`
	ImageURL      stringList      `json:"imageurl"`
	MaxCapacity   flexInt         `json:"max_capacity"`
	Capacity      flexInt         `json:"capacity"`
	MinPrice      flexFloat       `json:"min_price"`
	MaxPrice      flexFloat       `json:"max_price"`
	StartingPrice flexFloat       `json:"starting_price"`
	OwnerID       userRef         `json:"venueownerid"`
	BookedDates   []bookedDateDTO `json:"booked_dates"`
}

func (d venueDTO) id() int64 {
	if d.VenueID != 0 {
		return int64(d.VenueID)
	}
	return int64(d.ID)
}

type bookedDateDTO struct {
	ID        flexInt `json:"id"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Verified  *bool   `json:"verified"`
	User      userRef `json:"user"`
}

type bookingDTO struct {
	ID        flexInt  `json:"id"`
	User      userRef  `json:"user"`
	Venue     venueRef `json:"venue"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Verified  *bool    `json:"verified"`
}

type newBookingDTO struct {
	User      int64  `json:"user"`
	Venue     int64  `json:"venue"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Verified  bool   `json:"verified"`
}

type venueRegisterDTO struct {
	Name        string   `json:"venuename"`
	Address     string   `json:"venueaddress"`
	Features    string   `json:"features"`
	Description string   `json:"description"`
	ImageURL    []string `json:"imageurl"`
	MinPrice    float64  `json:"min_price"`
	MaxPrice    float64  `json:"max_price"`
	MaxCapacity int      `json:"max_capacity"`
	OwnerID     int64    `json:"venueownerid"`
}

type profileDTO struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phoneNumber"`
	Address      string `json:"address"`
	FullName     string `json:"fullname"`
	IsVenueOwner bool   `json:"is_venue_owner"`
}

type profileRegisterDTO struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	PhoneNumber  string `json:"phoneNumber"`
	IsVenueOwner bool   `json:"is_venue_owner"`
	FullName     string `json:"fullname"`
}

type accountDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

type credentialsDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokensDTO struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type notificationDTO struct {
	Recipient int64  `json:"recipient"`
	Message   string `json:"message"`
	Booking   int64  `json:"booking"`
}

type cancellationDTO struct {
	VenueName    string  `json:"venue_name"`
	VenueAddress string  `json:"venue_address"`
	UserID       flexInt `json:"user_id"`
	Username     string  `json:"user_name"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Reason       string  `json:"reason"`
}

type paymentRequestDTO struct {
	ReturnURL         string `json:"return_url"`
	WebsiteURL        string `json:"website_url"`
	Amount            int64  `json:"amount"`
	PurchaseOrderID   string `json:"purchase_order_id"`
	PurchaseOrderName string `json:"purchase_order_name"`
	User              int64  `json:"user"`
	Venue             int64  `json:"venue"`
	StartDate         string `json:"start_date"`
	EndDate           string `json:"end_date"`
}

type paymentResponseDTO struct {
	PaymentURL string `json:"payment_url"`
	Pidx       string `json:"pidx"`
}
