package venue

import (
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Wizard field keys; they double as keys of Wizard.Errors.
const (
	FieldName        = "venuename"
	FieldAddress     = "venueaddress"
	FieldCapacity    = "capacity"
	FieldMinPrice    = "min_price"
	FieldMaxPrice    = "max_price"
	FieldPrice       = "price"
	FieldFeatures    = "features"
	FieldDescription = "description"
	FieldImageURLs   = "imageurl"
)

var imageURLPattern = regexp.MustCompile(`^(https?://)?([\da-z.-]+)\.([a-z.]{2,6})([/\w .-]*)*/?$`)

var messages = map[string]map[string]string{
	FieldName:    {"required": "Venue name is required"},
	FieldAddress: {"required": "Venue address is required"},
	FieldCapacity: {
		"required": "Capacity is required",
		"number":   "Must be a valid number",
		"positive": "Must be greater than 0",
	},
	FieldMinPrice: {
		"numeric":     "Invalid number format",
		"nonnegative": "Cannot be negative",
	},
	FieldMaxPrice: {
		"numeric":     "Invalid number format",
		"nonnegative": "Cannot be negative",
	},
	FieldPrice: {
		"required":   "Both price fields are required",
		"pricerange": "Min price cannot exceed Max price",
	},
	FieldFeatures:    {"required": "Features are required"},
	FieldDescription: {"required": "Description is required"},
	FieldImageURLs: {
		"required":  "At least one image URL is required",
		"imageurls": "Invalid URL format detected",
	},
}

type basicStage struct {
	Name    string `field:"venuename" validate:"required"`
	Address string `field:"venueaddress" validate:"required"`
}

type detailsStage struct {
	Capacity string `field:"capacity" validate:"required,number,positive"`
	MinPrice string `field:"min_price" validate:"required,numeric,nonnegative"`
	MaxPrice string `field:"max_price" validate:"required,numeric,nonnegative"`
	Features string `field:"features" validate:"required"`
}

type mediaStage struct {
	Description string `field:"description" validate:"required"`
	ImageURLs   string `field:"imageurl" validate:"required,imageurls"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("field")
	})
	mustRegister(v, "positive", func(fl validator.FieldLevel) bool {
		n, ok := parseAmount(fl.Field().String())
		return ok && n > 0
	})
	mustRegister(v, "nonnegative", func(fl validator.FieldLevel) bool {
		n, ok := parseAmount(fl.Field().String())
		return ok && n >= 0
	})
	mustRegister(v, "imageurls", func(fl validator.FieldLevel) bool {
		for _, u := range SplitImageURLs(fl.Field().String()) {
			if !imageURLPattern.MatchString(u) {
				return false
			}
		}
		return true
	})
	v.RegisterStructValidation(priceRangeRule, detailsStage{})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic("venue: register validation " + tag + ": " + err.Error())
	}
}

// only compares when both prices parse; parse problems are reported per field
func priceRangeRule(sl validator.StructLevel) {
	s := sl.Current().Interface().(detailsStage)
	minPrice, okMin := parseAmount(s.MinPrice)
	maxPrice, okMax := parseAmount(s.MaxPrice)
	if !okMin || !okMax {
		return
	}
	if minPrice > maxPrice {
		sl.ReportError(s.MinPrice, FieldPrice, "MinPrice", "pricerange", "")
	}
}

// parseAmount accepts finite decimals only; ParseFloat alone lets "inf" and
// "NaN" through.
func parseAmount(s string) (float64, bool) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0, false
	}
	return n, true
}

// ValidateStage returns field messages for one stage; empty means valid.
func ValidateStage(stage Stage, d Draft) map[string]string {
	var target any
	switch stage {
	case StageBasic:
		target = basicStage{
			Name:    strings.TrimSpace(d.Name),
			Address: strings.TrimSpace(d.Address),
		}
	case StageDetails:
		target = detailsStage{
			Capacity: strings.TrimSpace(d.Capacity),
			MinPrice: strings.TrimSpace(d.MinPrice),
			MaxPrice: strings.TrimSpace(d.MaxPrice),
			Features: strings.TrimSpace(d.Features),
		}
	case StageMedia:
		target = mediaStage{
			Description: strings.TrimSpace(d.Description),
			ImageURLs:   strings.TrimSpace(d.ImageURLs),
		}
	default:
		return map[string]string{}
	}

	return fieldMessages(validate.Struct(target))
}

func fieldMessages(err error) map[string]string {
	out := map[string]string{}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return out
	}
	for _, fe := range verrs {
		field, tag := fe.Field(), fe.Tag()
		// a missing price is reported once for the pair
		if tag == "required" && (field == FieldMinPrice || field == FieldMaxPrice) {
			field = FieldPrice
		}
		if _, exists := out[field]; exists {
			continue
		}
		msg, ok := messages[field][tag]
		if !ok {
			msg = "Invalid value"
		}
		out[field] = msg
	}
	return out
}
