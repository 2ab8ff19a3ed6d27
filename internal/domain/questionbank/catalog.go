package questionbank

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed banks.yaml
var defaultBanks []byte

type bankFile struct {
	Roles []struct {
		Role      string   `yaml:"role"`
		Questions []string `yaml:"questions"`
	} `yaml:"roles"`
}

// Catalog is an in-memory set of banks keyed by role. It is read-only after
// construction and safe for concurrent use.
type Catalog struct {
	banks map[string]*Bank
	order []string
}

var _ Lookup = (*Catalog)(nil)

// NewCatalog builds a catalog from banks. Later banks with the same role
// replace earlier ones.
func NewCatalog(banks ...*Bank) *Catalog {
	c := &Catalog{banks: make(map[string]*Bank)}
	for _, b := range banks {
		if _, exists := c.banks[b.Role]; !exists {
			c.order = append(c.order, b.Role)
		}
		c.banks[b.Role] = b
	}
	return c
}

// DefaultCatalog returns the built-in banks.
func DefaultCatalog() *Catalog {
	c, err := Parse(defaultBanks)
	if err != nil {
		panic("questionbank: embedded banks are invalid: " + err.Error())
	}
	return c
}

// LoadFile reads a YAML bank file of the form
//
//	roles:
//	  - role: Go Developer
//	    questions:
//	      - What is a goroutine?
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML bank document.
func Parse(data []byte) (*Catalog, error) {
	var f bankFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse bank yaml: %w", err)
	}

	seen := make(map[string]bool)
	banks := make([]*Bank, 0, len(f.Roles))
	for i, r := range f.Roles {
		role := strings.TrimSpace(r.Role)
		if role == "" {
			return nil, fmt.Errorf("bank %d: role is required", i)
		}
		if seen[role] {
			return nil, fmt.Errorf("bank %q: duplicate role", role)
		}
		seen[role] = true

		b := New(role)
		for _, q := range r.Questions {
			if err := b.AddQuestion(q); err != nil {
				return nil, fmt.Errorf("bank %q: %w", role, err)
			}
		}
		banks = append(banks, b)
	}

	return NewCatalog(banks...), nil
}

// Banks returns the banks in their declaration order. Roles uses the same order.
func (c *Catalog) Banks() []*Bank {
	out := make([]*Bank, 0, len(c.order))
	for _, role := range c.order {
		out = append(out, c.banks[role])
	}
	return out
}

func (c *Catalog) Questions(_ context.Context, role string) ([]string, error) {
	b, ok := c.banks[role]
	if !ok {
		return []string{}, nil
	}
	out := make([]string, len(b.Questions))
	copy(out, b.Questions)
	return out, nil
}

func (c *Catalog) Roles(_ context.Context) ([]string, error) {
	roles := make([]string, len(c.order))
	copy(roles, c.order)
	return roles, nil
}
