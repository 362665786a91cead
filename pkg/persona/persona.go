package persona

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"sync"

	"punchline/pkg/apperr"
	"punchline/pkg/utils"
)

// ErrNotFound is returned by Get for ids outside the catalog. It is an
// invalid-input error: the caller picked a voice that does not exist.
var ErrNotFound = fmt.Errorf("%w: unknown comedian voice", apperr.ErrInvalidInput)

var slugRX = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Persona is a comedian voice used to parameterize prompts.
type Persona struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Style     string   `json:"style"`
	Examples  []string `json:"examples"`
	Directive string   `json:"directive"`
}

// Summary is the public listing view of a persona. Examples and directive
// stay server-side.
type Summary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Style string `json:"style"`
}

func (p Persona) Summary() Summary {
	return Summary{ID: p.ID, Name: p.Name, Style: p.Style}
}

func (p Persona) clone() Persona {
	p.Examples = slices.Clone(p.Examples)
	return p
}

func (p Persona) validate() error {
	switch {
	case !slugRX.MatchString(p.ID):
		return fmt.Errorf("persona id %q is not a lowercase hyphenated slug", p.ID)
	case strings.TrimSpace(p.Name) == "":
		return fmt.Errorf("persona %q has no name", p.ID)
	case strings.TrimSpace(p.Style) == "":
		return fmt.Errorf("persona %q has no style", p.ID)
	case strings.TrimSpace(p.Directive) == "":
		return fmt.Errorf("persona %q has no directive", p.ID)
	case !slices.ContainsFunc(p.Examples, func(s string) bool { return strings.TrimSpace(s) != "" }):
		return fmt.Errorf("persona %q has no examples", p.ID)
	}
	return nil
}

// Catalog is a read-only registry of personas. It is safe for concurrent
// use since nothing mutates it after NewCatalog returns.
type Catalog struct {
	personas []Persona
	byID     map[string]int
}

// NewCatalog validates and copies personas into a catalog, preserving their
// order for listing.
func NewCatalog(personas ...Persona) (*Catalog, error) {
	if len(personas) == 0 {
		return nil, fmt.Errorf("catalog needs at least one persona")
	}
	c := &Catalog{
		personas: make([]Persona, 0, len(personas)),
		byID:     make(map[string]int, len(personas)),
	}
	for _, p := range personas {
		if err := p.validate(); err != nil {
			return nil, err
		}
		if _, ok := c.byID[p.ID]; ok {
			return nil, fmt.Errorf("duplicate persona id %q", p.ID)
		}
		c.byID[p.ID] = len(c.personas)
		c.personas = append(c.personas, p.clone())
	}
	return c, nil
}

// List returns every persona's public summary in catalog order.
func (c *Catalog) List() []Summary {
	out := make([]Summary, 0, len(c.personas))
	for _, p := range c.personas {
		out = append(out, p.Summary())
	}
	return out
}

// Get looks up a persona by exact, case-sensitive id.
func (c *Catalog) Get(id string) (Persona, error) {
	i, ok := c.byID[id]
	if !ok {
		return Persona{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return c.personas[i].clone(), nil
}

func (c *Catalog) Len() int { return len(c.personas) }

// Load reads a JSON array of personas from path.
func Load(path string) (*Catalog, error) {
	personas, err := utils.Load[[]Persona](path)
	if err != nil {
		return nil, fmt.Errorf("load personas from %s: %w", path, err)
	}
	c, err := NewCatalog(personas...)
	if err != nil {
		return nil, fmt.Errorf("load personas from %s: %w", path, err)
	}
	return c, nil
}

// Default returns the builtin catalog. It is built once per process.
var Default = sync.OnceValue(func() *Catalog {
	c, err := NewCatalog(builtin...)
	if err != nil {
		panic(err)
	}
	return c
})
