package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ValidationError lists every problem found in a payload.
type ValidationError struct {
	Missing  []string          `json:"missing,omitempty"`
	Problems map[string]string `json:"problems,omitempty"`
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(e.Missing, ", "))
	}
	for _, field := range sortedKeys(e.Problems) {
		parts = append(parts, field+": "+e.Problems[field])
	}
	return strings.Join(parts, "; ")
}

func (e *ValidationError) missing(field string) {
	e.Missing = append(e.Missing, field)
}

func (e *ValidationError) problem(field, msg string) {
	if e.Problems == nil {
		e.Problems = make(map[string]string)
	}
	e.Problems[field] = msg
}

func (e *ValidationError) empty() bool {
	return len(e.Missing) == 0 && len(e.Problems) == 0
}

// NumericText accepts a JSON number or a string holding one. Admin forms post
// numeric inputs as text; parsing happens in Normalize so that malformed text is
// reported as a validation error instead of silently becoming zero.
type NumericText string

// UnmarshalJSON implements json.Unmarshaler.
func (n *NumericText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = NumericText(strings.TrimSpace(s))
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return fmt.Errorf("expected a number or numeric string, got %s", string(b))
	}
	*n = NumericText(num.String())
	return nil
}

// TourInput is the request body for creating or replacing a tour.
type TourInput struct {
	TourName    string           `json:"tourName" example:"Mt Kenya Trek"`
	Price       NumericText      `json:"price" swaggertype:"string" example:"15000"`
	Booking     NumericText      `json:"booking" swaggertype:"string" example:"0"`
	Images      []string         `json:"images"`
	Rating      NumericText      `json:"rating" swaggertype:"string" example:"5"`
	Difficulty  string           `json:"difficulty" example:"Medium"`
	Level       string           `json:"level" example:"Intermediate"`
	HikeType    string           `json:"hikeType" example:"Day Hike"`
	Location    string           `json:"location" example:"Mt Kenya"`
	Date        string           `json:"date" example:"2025-06-01"`
	Description string           `json:"description"`
	Summary     string           `json:"summary"`
	Itinerary   []ItineraryEntry `json:"itinerary"`
	Inclusive   []string         `json:"inclusive"`
	Exclusive   []string         `json:"exclusive"`
}

// Normalize validates the input and returns the complete field set with
// defaults applied. It never touches storage.
func (in *TourInput) Normalize() (TourFields, error) {
	verr := &ValidationError{}
	fields := TourFields{
		TourName:    strings.TrimSpace(in.TourName),
		Location:    strings.TrimSpace(in.Location),
		Description: strings.TrimSpace(in.Description),
		Summary:     strings.TrimSpace(in.Summary),
		Booking:     DefaultBooking,
		Rating:      DefaultRating,
		Difficulty:  DefaultDifficulty,
		Level:       DefaultLevel,
		HikeType:    DefaultHikeType,
		Images:      []string{},
		Itinerary:   []ItineraryEntry{},
		Inclusive:   []string{},
		Exclusive:   []string{},
	}

	if fields.TourName == "" {
		verr.missing("tourName")
	}

	if in.Price == "" {
		verr.missing("price")
	} else if price, err := strconv.ParseFloat(string(in.Price), 64); err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		verr.problem("price", fmt.Sprintf("%q is not a number", in.Price))
	} else if price <= 0 {
		verr.problem("price", "must be greater than zero")
	} else {
		fields.Price = price
	}

	if len(in.Images) == 0 {
		verr.missing("images")
	} else {
		for i, raw := range in.Images {
			img := strings.TrimSpace(raw)
			if !isHTTPURL(img) {
				verr.problem(fmt.Sprintf("images[%d]", i), "must be an absolute http(s) URL")
				continue
			}
			fields.Images = append(fields.Images, img)
		}
	}

	if fields.Location == "" {
		verr.missing("location")
	}

	if date := strings.TrimSpace(in.Date); date == "" {
		verr.missing("date")
	} else if normalized, ok := normalizeDate(date); !ok {
		verr.problem("date", fmt.Sprintf("%q is not a calendar date (YYYY-MM-DD)", date))
	} else {
		fields.Date = normalized
	}

	if in.Booking != "" {
		booking, err := strconv.Atoi(string(in.Booking))
		switch {
		case err != nil:
			verr.problem("booking", fmt.Sprintf("%q is not a whole number", in.Booking))
		case booking < 0:
			verr.problem("booking", "must not be negative")
		default:
			fields.Booking = booking
		}
	}

	if in.Rating != "" {
		rating, err := strconv.ParseFloat(string(in.Rating), 64)
		switch {
		case err != nil || math.IsNaN(rating):
			verr.problem("rating", fmt.Sprintf("%q is not a number", in.Rating))
		case rating < MinRating || rating > MaxRating:
			verr.problem("rating", fmt.Sprintf("must be between %g and %g", MinRating, MaxRating))
		default:
			fields.Rating = rating
		}
	}

	if d := strings.TrimSpace(in.Difficulty); d != "" {
		if !Difficulty(d).Valid() {
			verr.problem("difficulty", fmt.Sprintf("unknown difficulty %q", d))
		} else {
			fields.Difficulty = Difficulty(d)
		}
	}
	if l := strings.TrimSpace(in.Level); l != "" {
		if !Level(l).Valid() {
			verr.problem("level", fmt.Sprintf("unknown level %q", l))
		} else {
			fields.Level = Level(l)
		}
	}
	if h := strings.TrimSpace(in.HikeType); h != "" {
		if !HikeType(h).Valid() {
			verr.problem("hikeType", fmt.Sprintf("unknown hike type %q", h))
		} else {
			fields.HikeType = HikeType(h)
		}
	}

	for i, entry := range in.Itinerary {
		label := strings.TrimSpace(entry.Label)
		if label == "" {
			verr.problem(fmt.Sprintf("itinerary[%d].label", i), "must not be empty")
			continue
		}
		fields.Itinerary = append(fields.Itinerary, ItineraryEntry{Label: label, Details: strings.TrimSpace(entry.Details)})
	}
	fields.Inclusive = cleanItems("inclusive", in.Inclusive, verr)
	fields.Exclusive = cleanItems("exclusive", in.Exclusive, verr)

	if !verr.empty() {
		return TourFields{}, verr
	}
	return fields, nil
}

func cleanItems(field string, items []string, verr *ValidationError) []string {
	out := []string{}
	for i, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			verr.problem(fmt.Sprintf("%s[%d]", field, i), "must not be empty")
			continue
		}
		out = append(out, item)
	}
	return out
}

// normalizeDate accepts YYYY-MM-DD or an RFC 3339 timestamp and keeps the
// calendar date only.
func normalizeDate(s string) (string, bool) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t.Format(DateLayout), true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format(DateLayout), true
	}
	return "", false
}

func isHTTPURL(s string) bool {
	u, err := url.ParseRequestURI(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
