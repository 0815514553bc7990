package certification

import (
	"fmt"
	"math"
	"strings"
)

// weightTolerance is how far the sum of topic weights may drift from 100.
const weightTolerance = 1.0

// ValidationError lists every structural problem found in a catalog.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("certification catalog validation failed:\n  %s", strings.Join(e.Problems, "\n  "))
}

// validateCertifications performs all structural checks on the given set.
// Returns a *ValidationError describing all problems found, or nil.
func validateCertifications(certs []Certification) error {
	var errs []string

	if len(certs) == 0 {
		return &ValidationError{Problems: []string{"catalog has no certifications"}}
	}

	idSet := make(map[string]bool, len(certs))
	for _, c := range certs {
		if c.ID == "" {
			errs = append(errs, fmt.Sprintf("certification %q has an empty ID", c.Name))
			continue
		}
		if idSet[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate certification ID: %q", c.ID))
		}
		idSet[c.ID] = true
	}

	for _, c := range certs {
		if c.Name == "" {
			errs = append(errs, fmt.Sprintf("certification %q has an empty name", c.ID))
		}
		if !knownProvider(c.Provider) {
			errs = append(errs, fmt.Sprintf("certification %q has unknown provider %q", c.ID, c.Provider))
		}
		if c.Level.Rank() < 0 {
			errs = append(errs, fmt.Sprintf("certification %q has unknown level %q", c.ID, c.Level))
		}
		if c.Difficulty < 1 || c.Difficulty > 5 {
			errs = append(errs, fmt.Sprintf("certification %q: difficulty must be in [1, 5], got %d", c.ID, c.Difficulty))
		}
		for _, r := range c.Roles {
			if !IsKnownRole(r) {
				errs = append(errs, fmt.Sprintf("certification %q has unknown role %q", c.ID, r))
			}
		}
		errs = append(errs, validateTopics(c)...)

		for _, prereqID := range c.Prerequisites {
			if prereqID == c.ID {
				errs = append(errs, fmt.Sprintf("certification %q lists itself as a prerequisite", c.ID))
				continue
			}
			if !idSet[prereqID] {
				errs = append(errs, fmt.Sprintf("certification %q references nonexistent prerequisite %q", c.ID, prereqID))
			}
		}
	}

	if cycle := findCycle(certs, idSet); len(cycle) > 0 {
		errs = append(errs, fmt.Sprintf("cycle detected involving certifications: %s", strings.Join(cycle, ", ")))
	}

	if len(errs) > 0 {
		return &ValidationError{Problems: errs}
	}
	return nil
}

func validateTopics(c Certification) []string {
	if len(c.ExamTopics) == 0 {
		return []string{fmt.Sprintf("certification %q has no exam topics", c.ID)}
	}

	var errs []string
	for i, t := range c.ExamTopics {
		prefix := fmt.Sprintf("certification %q topic %d", c.ID, i+1)
		if t.Name == "" {
			errs = append(errs, prefix+": empty name")
		}
		if t.Weight < 0 || t.Weight > 100 {
			errs = append(errs, fmt.Sprintf("%s: weight must be in [0, 100], got %g", prefix, t.Weight))
		}
	}
	if total := c.TotalWeight(); math.Abs(total-100) > weightTolerance {
		errs = append(errs, fmt.Sprintf("certification %q: topic weights sum to %g, want 100", c.ID, total))
	}
	return errs
}

// findCycle runs Kahn's algorithm over the known prerequisite edges and
// returns the IDs left with unresolved in-degree.
func findCycle(certs []Certification, idSet map[string]bool) []string {
	inDegree := make(map[string]int, len(certs))
	adj := make(map[string][]string)
	for _, c := range certs {
		if _, ok := inDegree[c.ID]; !ok {
			inDegree[c.ID] = 0
		}
		for _, p := range c.Prerequisites {
			if !idSet[p] || p == c.ID {
				continue
			}
			inDegree[c.ID]++
			adj[p] = append(adj[p], c.ID)
		}
	}

	var queue []string
	for _, c := range certs {
		if inDegree[c.ID] == 0 {
			queue = append(queue, c.ID)
		}
	}

	visited := make(map[string]bool, len(certs))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if visited[id] {
			continue
		}
		visited[id] = true
		for _, dep := range adj[id] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	var cycle []string
	for _, c := range certs {
		if !visited[c.ID] {
			cycle = append(cycle, c.ID)
		}
	}
	return cycle
}

func knownProvider(p Provider) bool {
	for _, known := range AllProviders() {
		if p == known {
			return true
		}
	}
	return false
}
