package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/abhisek/certplan/internal/certification"
	"github.com/abhisek/certplan/internal/config"
	"github.com/abhisek/certplan/internal/resources"
	"github.com/abhisek/certplan/internal/roadmap"
	"github.com/samber/lo"
)

func parseProvider(s string) (certification.Provider, error) {
	p := certification.Provider(strings.ToLower(strings.TrimSpace(s)))
	if !lo.Contains(certification.AllProviders(), p) {
		names := lo.Map(certification.AllProviders(), func(p certification.Provider, _ int) string { return string(p) })
		return "", fmt.Errorf("unknown provider %q (want one of %s)", s, strings.Join(names, ", "))
	}
	return p, nil
}

func parseRole(s string) (certification.Role, error) {
	r := certification.Role(strings.ToLower(strings.TrimSpace(s)))
	if !certification.IsKnownRole(r) {
		names := lo.Map(certification.AllRoles(), func(r certification.Role, _ int) string { return string(r) })
		return "", fmt.Errorf("unknown role %q (want one of %s)", s, strings.Join(names, ", "))
	}
	return r, nil
}

// parseRatings reads domain=rating pairs. Domains that are not mentioned
// are rated zero.
func parseRatings(pairs []string) (map[roadmap.Domain]int, error) {
	ratings := make(map[roadmap.Domain]int, len(roadmap.AllDomains()))
	for _, d := range roadmap.AllDomains() {
		ratings[d] = 0
	}
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("rating %q: want domain=rating", pair)
		}
		d := roadmap.Domain(strings.ToLower(strings.TrimSpace(name)))
		if !lo.Contains(roadmap.AllDomains(), d) {
			return nil, fmt.Errorf("%w: %q", roadmap.ErrUnknownDomain, name)
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 0 || n > roadmap.MaxRating {
			return nil, fmt.Errorf("%w: %s=%s, want 0-%d", roadmap.ErrInvalidRating, name, value, roadmap.MaxRating)
		}
		ratings[d] = n
	}
	return ratings, nil
}

func parseKinds(values []string) ([]resources.Kind, error) {
	kinds := make([]resources.Kind, 0, len(values))
	for _, v := range values {
		k, err := resources.ParseKind(strings.TrimSpace(v))
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return lo.Uniq(kinds), nil
}

// parseDate parses a YYYY-MM-DD date in local time. Empty means zero.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.ParseInLocation(config.DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	return t, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
