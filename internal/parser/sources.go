package parser

import "github.com/skundu/trademind/internal/models"

// DedupeSources collapses a citation list to entries unique by URI, in
// first-occurrence order. On a URI collision the first-seen title wins.
// Entries missing a title or a URI are excluded before deduplication.
func DedupeSources(sources []models.Source) []models.Source {
	seen := make(map[string]struct{}, len(sources))
	out := make([]models.Source, 0, len(sources))

	for _, s := range sources {
		if s.Title == "" || s.URI == "" {
			continue
		}
		if _, ok := seen[s.URI]; ok {
			continue
		}
		seen[s.URI] = struct{}{}
		out = append(out, s)
	}

	return out
}
