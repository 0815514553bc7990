package certification

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrNotFound is returned when a certification ID is not in the catalog.
var ErrNotFound = errors.New("certification not found")

// Lookup resolves certifications by ID. It is the contract the study plan
// generator and the roadmap builder need from a catalog.
type Lookup interface {
	Lookup(id string) (Certification, bool)
}

// Catalog holds a validated set of certifications with precomputed indices.
type Catalog struct {
	certs      []Certification
	byID       map[string]*Certification
	byProvider map[Provider][]Certification
	byRole     map[Role][]Certification
	dependents map[string][]string
	topoOrder  []Certification
	topoIndex  map[string]int
}

var _ Lookup = (*Catalog)(nil)

var defaultCatalog = sync.OnceValue(func() *Catalog {
	c, err := New(seedCertifications())
	if err != nil {
		panic(fmt.Sprintf("certification: invalid built-in catalog: %v", err))
	}
	return c
})

// Default returns the built-in catalog.
func Default() *Catalog {
	return defaultCatalog()
}

// New validates certs and builds a catalog from them.
func New(certs []Certification) (*Catalog, error) {
	if err := validateCertifications(certs); err != nil {
		return nil, err
	}
	return buildCatalog(certs), nil
}

// buildCatalog constructs all indices including topological order
// (Kahn's algorithm). certs must already be validated.
func buildCatalog(certs []Certification) *Catalog {
	c := &Catalog{
		certs:      make([]Certification, len(certs)),
		byID:       make(map[string]*Certification, len(certs)),
		byProvider: make(map[Provider][]Certification),
		byRole:     make(map[Role][]Certification),
		dependents: make(map[string][]string),
		topoIndex:  make(map[string]int, len(certs)),
	}
	copy(c.certs, certs)

	for i := range c.certs {
		c.byID[c.certs[i].ID] = &c.certs[i]
	}

	for i := range c.certs {
		for _, prereqID := range c.certs[i].Prerequisites {
			c.dependents[prereqID] = append(c.dependents[prereqID], c.certs[i].ID)
		}
	}

	inDegree := make(map[string]int, len(c.certs))
	for i := range c.certs {
		inDegree[c.certs[i].ID] = len(c.certs[i].Prerequisites)
	}

	var queue []string
	for id, deg := range inDegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}
	sort.Strings(queue)

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		c.topoOrder = append(c.topoOrder, *c.byID[id])

		deps := make([]string, len(c.dependents[id]))
		copy(deps, c.dependents[id])
		sort.Strings(deps)
		for _, depID := range deps {
			inDegree[depID]--
			if inDegree[depID] == 0 {
				queue = append(queue, depID)
			}
		}
	}
	for i, cert := range c.topoOrder {
		c.topoIndex[cert.ID] = i
	}

	for _, cert := range c.certs {
		c.byProvider[cert.Provider] = append(c.byProvider[cert.Provider], cert)
		for _, role := range cert.Roles {
			c.byRole[role] = append(c.byRole[role], cert)
		}
	}
	for p := range c.byProvider {
		c.sortByLevel(c.byProvider[p])
	}
	for r := range c.byRole {
		c.sortByLevel(c.byRole[r])
	}

	return c
}

// sortByLevel orders by level rank, then topological index.
func (c *Catalog) sortByLevel(certs []Certification) {
	sort.SliceStable(certs, func(i, j int) bool {
		ri, rj := certs[i].Level.Rank(), certs[j].Level.Rank()
		if ri != rj {
			return ri < rj
		}
		return c.topoIndex[certs[i].ID] < c.topoIndex[certs[j].ID]
	})
}

// Lookup returns the certification with the given ID.
func (c *Catalog) Lookup(id string) (Certification, bool) {
	cert, ok := c.byID[id]
	if !ok {
		return Certification{}, false
	}
	return *cert, true
}

// Get returns the certification with the given ID, or an error wrapping
// ErrNotFound.
func (c *Catalog) Get(id string) (Certification, error) {
	cert, ok := c.Lookup(id)
	if !ok {
		return Certification{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return cert, nil
}

// All returns every certification in declaration order.
func (c *Catalog) All() []Certification {
	result := make([]Certification, len(c.certs))
	copy(result, c.certs)
	return result
}

// Len returns the number of certifications.
func (c *Catalog) Len() int {
	return len(c.certs)
}

// ByProvider returns a provider's certifications, entry-level first.
func (c *Catalog) ByProvider(p Provider) []Certification {
	certs := c.byProvider[p]
	result := make([]Certification, len(certs))
	copy(result, certs)
	return result
}

// ByRole returns the certifications that support a role, entry-level first.
func (c *Catalog) ByRole(r Role) []Certification {
	certs := c.byRole[r]
	result := make([]Certification, len(certs))
	copy(result, certs)
	return result
}

// TopoOrder returns all certifications in prerequisite order.
func (c *Catalog) TopoOrder() []Certification {
	result := make([]Certification, len(c.topoOrder))
	copy(result, c.topoOrder)
	return result
}

// TopoIndex returns the position of id in TopoOrder, or -1.
func (c *Catalog) TopoIndex(id string) int {
	idx, ok := c.topoIndex[id]
	if !ok {
		return -1
	}
	return idx
}

// Dependents returns the IDs of certifications that list id as a direct
// prerequisite.
func (c *Catalog) Dependents(id string) []string {
	deps := c.dependents[id]
	result := make([]string, len(deps))
	copy(result, deps)
	sort.Strings(result)
	return result
}

// PrerequisiteChain returns every transitive prerequisite of id, in
// topological order. The certification itself is not included.
func (c *Catalog) PrerequisiteChain(id string) ([]Certification, error) {
	if _, ok := c.byID[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}

	seen := make(map[string]bool)
	var visit func(string)
	visit = func(cur string) {
		for _, p := range c.byID[cur].Prerequisites {
			if seen[p] {
				continue
			}
			seen[p] = true
			visit(p)
		}
	}
	visit(id)

	chain := make([]Certification, 0, len(seen))
	for pid := range seen {
		chain = append(chain, *c.byID[pid])
	}
	sort.Slice(chain, func(i, j int) bool {
		return c.topoIndex[chain[i].ID] < c.topoIndex[chain[j].ID]
	})
	return chain, nil
}
