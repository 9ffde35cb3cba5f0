package venue

import (
	"errors"
	"strconv"
	"strings"

	"venue-booking/internal/pkg/patch"
)

type Stage int

const (
	StageBasic Stage = iota + 1
	StageDetails
	StageMedia
	StageSubmitted
)

func (s Stage) String() string {
	switch s {
	case StageBasic:
		return "basic"
	case StageDetails:
		return "details"
	case StageMedia:
		return "media"
	case StageSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

var (
	ErrNoPreviousStage  = errors.New("no previous stage")
	ErrNoNextStage      = errors.New("the last stage is submitted, not advanced")
	ErrNotReadyToSubmit = errors.New("the wizard can only be submitted from the media stage")
	ErrSubmitInProgress = errors.New("venue submission already in progress")
	ErrAlreadySubmitted = errors.New("venue already submitted")
	ErrStageInvalid     = errors.New("stage has validation errors")
)

// Draft holds the raw form text exactly as typed.
type Draft struct {
	Name        string `json:"venuename"`
	Address     string `json:"venueaddress"`
	Capacity    string `json:"capacity"`
	MinPrice    string `json:"min_price"`
	MaxPrice    string `json:"max_price"`
	Features    string `json:"features"`
	Description string `json:"description"`
	ImageURLs   string `json:"imageurl"`
}

// DraftPatch carries only the fields the user touched.
type DraftPatch struct {
	Name        *string
	Address     *string
	Capacity    *string
	MinPrice    *string
	MaxPrice    *string
	Features    *string
	Description *string
	ImageURLs   *string
}

type Wizard struct {
	Stage      Stage             `json:"stage"`
	Draft      Draft             `json:"draft"`
	Errors     map[string]string `json:"errors"`
	Submitting bool              `json:"submitting"`
	VenueID    int64             `json:"venue_id,omitempty"`
}

func NewWizard() Wizard {
	return Wizard{Stage: StageBasic, Errors: map[string]string{}}
}

// Edit applies p and clears the errors of the edited fields only.
func (w *Wizard) Edit(p DraftPatch) error {
	if err := w.editable(); err != nil {
		return err
	}
	if w.Errors == nil {
		w.Errors = map[string]string{}
	}

	d := &w.Draft
	d.Name = patch.Coalesce(p.Name, d.Name)
	d.Address = patch.Coalesce(p.Address, d.Address)
	d.Capacity = patch.Coalesce(p.Capacity, d.Capacity)
	d.MinPrice = patch.Coalesce(p.MinPrice, d.MinPrice)
	d.MaxPrice = patch.Coalesce(p.MaxPrice, d.MaxPrice)
	d.Features = patch.Coalesce(p.Features, d.Features)
	d.Description = patch.Coalesce(p.Description, d.Description)
	d.ImageURLs = patch.Coalesce(p.ImageURLs, d.ImageURLs)

	touched := map[string]bool{
		FieldName:        p.Name != nil,
		FieldAddress:     p.Address != nil,
		FieldCapacity:    p.Capacity != nil,
		FieldMinPrice:    p.MinPrice != nil,
		FieldMaxPrice:    p.MaxPrice != nil,
		FieldPrice:       p.MinPrice != nil || p.MaxPrice != nil,
		FieldFeatures:    p.Features != nil,
		FieldDescription: p.Description != nil,
		FieldImageURLs:   p.ImageURLs != nil,
	}
	for field, t := range touched {
		if t {
			delete(w.Errors, field)
		}
	}
	return nil
}

// Next advances one stage when the current stage validates.
func (w *Wizard) Next() error {
	if err := w.editable(); err != nil {
		return err
	}
	if w.Stage >= StageMedia {
		return ErrNoNextStage
	}

	fields := ValidateStage(w.Stage, w.Draft)
	w.Errors = fields
	if len(fields) > 0 {
		return ErrStageInvalid
	}
	w.Stage++
	return nil
}

// Back never touches the draft.
func (w *Wizard) Back() error {
	if err := w.editable(); err != nil {
		return err
	}
	if w.Stage <= StageBasic {
		return ErrNoPreviousStage
	}
	w.Stage--
	return nil
}

// BeginSubmit validates every stage and marks the wizard as submitting.
func (w *Wizard) BeginSubmit(ownerID int64) (Registration, error) {
	if err := w.editable(); err != nil {
		return Registration{}, err
	}
	if w.Stage != StageMedia {
		return Registration{}, ErrNotReadyToSubmit
	}

	fields := map[string]string{}
	for _, s := range []Stage{StageBasic, StageDetails, StageMedia} {
		for k, v := range ValidateStage(s, w.Draft) {
			fields[k] = v
		}
	}
	w.Errors = fields
	if len(fields) > 0 {
		return Registration{}, ErrStageInvalid
	}

	reg, err := w.Draft.registration(ownerID)
	if err != nil {
		return Registration{}, err
	}
	w.Submitting = true
	return reg, nil
}

// SubmitFailed keeps the wizard on the media stage with its data intact.
func (w *Wizard) SubmitFailed(fields map[string]string) {
	w.Submitting = false
	w.Stage = StageMedia
	if w.Errors == nil {
		w.Errors = map[string]string{}
	}
	for k, v := range fields {
		w.Errors[k] = v
	}
}

func (w *Wizard) SubmitSucceeded(venueID int64) {
	w.Submitting = false
	w.Stage = StageSubmitted
	w.VenueID = venueID
	w.Errors = map[string]string{}
}

func (w Wizard) editable() error {
	switch {
	case w.Stage == StageSubmitted:
		return ErrAlreadySubmitted
	case w.Submitting:
		return ErrSubmitInProgress
	}
	return nil
}

func (d Draft) registration(ownerID int64) (Registration, error) {
	capacity, err := strconv.Atoi(strings.TrimSpace(d.Capacity))
	if err != nil {
		return Registration{}, err
	}
	minPrice, err := strconv.ParseFloat(strings.TrimSpace(d.MinPrice), 64)
	if err != nil {
		return Registration{}, err
	}
	maxPrice, err := strconv.ParseFloat(strings.TrimSpace(d.MaxPrice), 64)
	if err != nil {
		return Registration{}, err
	}
	price, err := NewPriceRange(minPrice, maxPrice)
	if err != nil {
		return Registration{}, err
	}

	return Registration{
		Name:        d.Name,
		Address:     d.Address,
		Features:    d.Features,
		Description: d.Description,
		ImageURLs:   SplitImageURLs(d.ImageURLs),
		Capacity:    capacity,
		Price:       price,
		OwnerID:     ownerID,
	}, nil
}

// SplitImageURLs splits newline separated text and drops blank lines.
func SplitImageURLs(raw string) []string {
	lines := strings.Split(raw, "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
