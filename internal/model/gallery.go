package model

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Exhibition is a single entry of a gallery's exhibition registry.
type Exhibition struct {
	Name string `json:"name"`
	Year int    `json:"year"`
}

// Snapshot is a value copy of a Gallery's state.
type Snapshot struct {
	Name         string       `json:"gallery_name"`
	City         string       `json:"city"`
	AreaSqM      float64      `json:"area_sq_m"`
	OpenToPublic bool         `json:"open_to_public"`
	Exhibitions  []Exhibition `json:"exhibitions"`
}

// Gallery is an exhibition space with validated descriptive fields and an
// insertion-ordered exhibition registry.
// A Gallery never holds an invalid name, city or area: a rejected assignment
// leaves the previous value in place.
// It is not safe for concurrent use.
type Gallery struct {
	name         string
	city         string
	areaSqM      float64
	openToPublic bool

	exhibitions []Exhibition
	index       map[string]int
}

// New constructs a Gallery, validating name, city and area in that order.
func New(name, city string, areaSqM float64, openToPublic bool) (*Gallery, error) {
	g := &Gallery{
		exhibitions: make([]Exhibition, 0),
		index:       make(map[string]int),
	}
	if err := g.SetName(name); err != nil {
		return nil, err
	}
	if err := g.SetCity(city); err != nil {
		return nil, err
	}
	if err := g.SetAreaSqM(areaSqM); err != nil {
		return nil, err
	}
	g.SetOpenToPublic(openToPublic)
	return g, nil
}

func (g *Gallery) Name() string       { return g.name }
func (g *Gallery) City() string       { return g.city }
func (g *Gallery) AreaSqM() float64   { return g.areaSqM }
func (g *Gallery) OpenToPublic() bool { return g.openToPublic }

// SetName accepts only non-blank values made entirely of letters and digits.
func (g *Gallery) SetName(v string) error {
	if strings.TrimSpace(v) == "" {
		return ErrInvalidName
	}
	for _, r := range v {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return ErrInvalidName
		}
	}
	g.name = v
	return nil
}

// SetCity accepts only non-blank values whose first character is a letter.
func (g *Gallery) SetCity(v string) error {
	if strings.TrimSpace(v) == "" {
		return ErrInvalidCity
	}
	if r, _ := utf8.DecodeRuneInString(v); !unicode.IsLetter(r) {
		return ErrInvalidCity
	}
	g.city = v
	return nil
}

// SetAreaSqM accepts strictly positive values. NaN is rejected.
func (g *Gallery) SetAreaSqM(v float64) error {
	if !(v > 0) {
		return ErrInvalidArea
	}
	g.areaSqM = v
	return nil
}

func (g *Gallery) SetOpenToPublic(v bool) {
	g.openToPublic = v
}

// Exhibitions returns a copy of the registry in insertion order.
func (g *Gallery) Exhibitions() []Exhibition {
	out := make([]Exhibition, len(g.exhibitions))
	copy(out, g.exhibitions)
	return out
}

// Exhibition looks up the year registered for name.
func (g *Gallery) Exhibition(name string) (int, bool) {
	i, ok := g.index[name]
	if !ok {
		return 0, false
	}
	return g.exhibitions[i].Year, true
}

// Len returns the number of registered exhibitions.
func (g *Gallery) Len() int { return len(g.exhibitions) }

// AddExhibition registers name for year unless it is already present.
// The outcome is reported through the returned message only.
func (g *Gallery) AddExhibition(name string, year int) string {
	if _, ok := g.index[name]; ok {
		return fmt.Sprintf("Exhibition \"%s\" already exists.", name)
	}
	g.index[name] = len(g.exhibitions)
	g.exhibitions = append(g.exhibitions, Exhibition{Name: name, Year: year})
	return fmt.Sprintf("Exhibition \"%s\" added for the year %d.", name, year)
}

// RemoveExhibition deletes name from the registry, keeping the order of the
// remaining entries.
func (g *Gallery) RemoveExhibition(name string) string {
	i, ok := g.index[name]
	if !ok {
		return fmt.Sprintf("Exhibition \"%s\" not found.", name)
	}
	g.exhibitions = append(g.exhibitions[:i], g.exhibitions[i+1:]...)
	delete(g.index, name)
	for j := i; j < len(g.exhibitions); j++ {
		g.index[g.exhibitions[j].Name] = j
	}
	return fmt.Sprintf("Exhibition \"%s\" removed.", name)
}

// ListExhibitions renders one "name: year" line per exhibition, or a notice
// when the gallery is closed for public.
func (g *Gallery) ListExhibitions() string {
	if !g.openToPublic {
		return fmt.Sprintf("Gallery %s is currently closed for public! Check for updates later on.", g.name)
	}
	lines := make([]string, 0, len(g.exhibitions))
	for _, e := range g.exhibitions {
		lines = append(lines, fmt.Sprintf("%s: %d", e.Name, e.Year))
	}
	return strings.Join(lines, "\n")
}

// Snapshot returns a value copy of the gallery's current state.
func (g *Gallery) Snapshot() Snapshot {
	return Snapshot{
		Name:         g.name,
		City:         g.city,
		AreaSqM:      g.areaSqM,
		OpenToPublic: g.openToPublic,
		Exhibitions:  g.Exhibitions(),
	}
}
