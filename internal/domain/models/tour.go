package models

import (
	"gorm.io/datatypes"
)

// Difficulty of a tour.
type Difficulty string

const (
	DifficultyEasy        Difficulty = "Easy"
	DifficultyMedium      Difficulty = "Medium"
	DifficultyChallenging Difficulty = "Challenging"
	DifficultyHard        Difficulty = "Hard"
)

// Level is the fitness/experience level a tour targets.
type Level string

const (
	LevelBeginner     Level = "Beginner"
	LevelIntermediate Level = "Intermediate"
	LevelAdvanced     Level = "Advanced"
)

// HikeType describes how long a tour runs.
type HikeType string

const (
	HikeTypeDayHike    HikeType = "Day Hike"
	HikeTypeOvernight  HikeType = "Overnight"
	HikeTypeMultiDay   HikeType = "Multi-Day"
	HikeTypeExpedition HikeType = "Expedition"
)

// Defaults applied to fields a caller leaves out.
const (
	DefaultBooking    = 0
	DefaultRating     = 5.0
	DefaultDifficulty = DifficultyMedium
	DefaultLevel      = LevelIntermediate
	DefaultHikeType   = HikeTypeDayHike

	MinRating = 1.0
	MaxRating = 5.0

	// DateLayout is the only stored date format.
	DateLayout = "2006-01-02"
)

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyChallenging, DifficultyHard:
		return true
	}
	return false
}

// Valid reports whether l is a known level.
func (l Level) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Valid reports whether h is a known hike type.
func (h HikeType) Valid() bool {
	switch h {
	case HikeTypeDayHike, HikeTypeOvernight, HikeTypeMultiDay, HikeTypeExpedition:
		return true
	}
	return false
}

// ItineraryEntry is one labelled step of a tour programme.
type ItineraryEntry struct {
	Label   string `json:"label"`
	Details string `json:"details"`
}

// Tour is a bookable hiking product.
type Tour struct {
	BaseModel
	TourName    string                              `gorm:"type:varchar(200);not null" json:"tourName"`
	Price       float64                             `gorm:"not null" json:"price"`
	Booking     int                                 `gorm:"not null;default:0" json:"booking"`
	Images      datatypes.JSONSlice[string]         `gorm:"type:json" json:"images"`
	Rating      float64                             `gorm:"not null" json:"rating"`
	Difficulty  Difficulty                          `gorm:"type:varchar(20);not null" json:"difficulty"`
	Level       Level                               `gorm:"type:varchar(20);not null" json:"level"`
	HikeType    HikeType                            `gorm:"type:varchar(20);not null" json:"hikeType"`
	Location    string                              `gorm:"type:varchar(200);not null" json:"location"`
	Date        string                              `gorm:"type:varchar(10);index;not null" json:"date"`
	Description string                              `gorm:"type:text" json:"description"`
	Summary     string                              `gorm:"type:text" json:"summary"`
	Itinerary   datatypes.JSONSlice[ItineraryEntry] `gorm:"type:json" json:"itinerary"`
	Inclusive   datatypes.JSONSlice[string]         `gorm:"type:json" json:"inclusive"`
	Exclusive   datatypes.JSONSlice[string]         `gorm:"type:json" json:"exclusive"`
}

// TourFields is the complete, validated state of a tour. Create and update both
// take every field; nothing is merged with a previous record.
type TourFields struct {
	TourName    string
	Price       float64
	Booking     int
	Images      []string
	Rating      float64
	Difficulty  Difficulty
	Level       Level
	HikeType    HikeType
	Location    string
	Date        string
	Description string
	Summary     string
	Itinerary   []ItineraryEntry
	Inclusive   []string
	Exclusive   []string
}

// Apply overwrites every mutable column of t with f. Slices are copied.
func (f TourFields) Apply(t *Tour) {
	t.TourName = f.TourName
	t.Price = f.Price
	t.Booking = f.Booking
	t.Images = datatypes.NewJSONSlice(append([]string{}, f.Images...))
	t.Rating = f.Rating
	t.Difficulty = f.Difficulty
	t.Level = f.Level
	t.HikeType = f.HikeType
	t.Location = f.Location
	t.Date = f.Date
	t.Description = f.Description
	t.Summary = f.Summary
	t.Itinerary = datatypes.NewJSONSlice(append([]ItineraryEntry{}, f.Itinerary...))
	t.Inclusive = datatypes.NewJSONSlice(append([]string{}, f.Inclusive...))
	t.Exclusive = datatypes.NewJSONSlice(append([]string{}, f.Exclusive...))
}

// Columns returns f keyed by column name, for GORM map updates.
func (f TourFields) Columns() map[string]interface{} {
	var t Tour
	f.Apply(&t)
	return map[string]interface{}{
		"tour_name":   t.TourName,
		"price":       t.Price,
		"booking":     t.Booking,
		"images":      t.Images,
		"rating":      t.Rating,
		"difficulty":  t.Difficulty,
		"level":       t.Level,
		"hike_type":   t.HikeType,
		"location":    t.Location,
		"date":        t.Date,
		"description": t.Description,
		"summary":     t.Summary,
		"itinerary":   t.Itinerary,
		"inclusive":   t.Inclusive,
		"exclusive":   t.Exclusive,
	}
}

// Clone returns a deep copy so callers never share slices with a store.
func (t *Tour) Clone() *Tour {
	c := *t
	c.Images = datatypes.NewJSONSlice(append([]string{}, t.Images...))
	c.Itinerary = datatypes.NewJSONSlice(append([]ItineraryEntry{}, t.Itinerary...))
	c.Inclusive = datatypes.NewJSONSlice(append([]string{}, t.Inclusive...))
	c.Exclusive = datatypes.NewJSONSlice(append([]string{}, t.Exclusive...))
	return &c
}
