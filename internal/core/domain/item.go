package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	MaxTitleLength  = 100
	MinReleaseYear  = 1900
	DefaultGenre    = "Drama"
	MaxDailyRateMin = 0
)

// Genres is the fixed catalog genre list. Items must carry one of these.
var Genres = []string{
	"Action",
	"Adventure",
	"Animation",
	"Biography",
	"Comedy",
	"Crime",
	"Documentary",
	"Drama",
	"Family",
	"Fantasy",
	"History",
	"Horror",
	"Music",
	"Mystery",
	"Romance",
	"Science Fiction",
	"Thriller",
	"War",
	"Western",
}

// ValidGenre reports whether g is a member of the genre list.
func ValidGenre(g string) bool {
	for _, known := range Genres {
		if g == known {
			return true
		}
	}
	return false
}

var imageURLPattern = regexp.MustCompile(`^https?://.+\.(jpg|jpeg|png|webp|gif)$`)

// Item is a rentable catalog entry.
type Item struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Genre       string    `json:"genre"`
	DailyRate   float64   `json:"daily_rate"`
	InStock     bool      `json:"in_stock"`
	ReleaseYear int       `json:"release_year,omitempty"`
	Director    string    `json:"director,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Normalize trims free-text fields and applies schema defaults.
func (i *Item) Normalize() {
	i.Title = strings.TrimSpace(i.Title)
	i.Director = strings.TrimSpace(i.Director)
	if i.Genre == "" {
		i.Genre = DefaultGenre
	}
}

// Validate checks the item against the catalog schema and returns the full
// list of violations, nil when the item is valid. Callers should Normalize
// first.
func (i *Item) Validate() error {
	var ve ValidationErrors

	if i.Title == "" {
		ve = append(ve, FieldError{Field: "title", Message: "title is required"})
	} else if len(i.Title) > MaxTitleLength {
		ve = append(ve, FieldError{Field: "title", Message: fmt.Sprintf("title must be at most %d characters", MaxTitleLength)})
	}

	if !ValidGenre(i.Genre) {
		ve = append(ve, FieldError{Field: "genre", Message: "genre must be one of: " + strings.Join(Genres, ", ")})
	}

	if i.DailyRate < MaxDailyRateMin {
		ve = append(ve, FieldError{Field: "daily_rate", Message: "daily rate must not be negative"})
	}

	// Zero means unset; the field is optional.
	if i.ReleaseYear != 0 {
		maxYear := time.Now().Year() + 1
		if i.ReleaseYear < MinReleaseYear || i.ReleaseYear > maxYear {
			ve = append(ve, FieldError{Field: "release_year", Message: fmt.Sprintf("release year must be between %d and %d", MinReleaseYear, maxYear)})
		}
	}

	if i.ImageURL != "" && !imageURLPattern.MatchString(i.ImageURL) {
		ve = append(ve, FieldError{Field: "image_url", Message: "image URL must be an http(s) link ending in .jpg, .jpeg, .png, .webp or .gif"})
	}

	if len(ve) > 0 {
		return ve
	}
	return nil
}
