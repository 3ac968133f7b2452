package swapi

import (
	"strings"
	"time"
)

// blueEyeMarker is the substring that classifies a character as blue-eyed.
const blueEyeMarker = "blue"

// Character is a single SWAPI person record. All fields are strings as
// served by the API.
type Character struct {
	Name      string `json:"name"              yaml:"name"`
	BirthYear string `json:"birth_year"        yaml:"birth_year"`
	EyeColor  string `json:"eye_color"         yaml:"eye_color"`
	Created   string `json:"created,omitempty" yaml:"created,omitempty"`
}

// BlueEyed reports whether the eye color mentions blue ("blue", "blue-gray").
func (c Character) BlueEyed() bool {
	return strings.Contains(c.EyeColor, blueEyeMarker)
}

// CreatedAt parses the creation timestamp. The second return value is false
// when the field is missing or not RFC 3339.
func (c Character) CreatedAt() (time.Time, bool) {
	if c.Created == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, c.Created)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// PeoplePage is one page of the /people/ listing.
type PeoplePage struct {
	Count    int         `json:"count"`
	Next     *string     `json:"next"`
	Previous *string     `json:"previous"`
	Results  []Character `json:"results"`
}
