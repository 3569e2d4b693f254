package catalog

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Match is one catalog entry returned by Filter.
type Match struct {
	At       Coordinate
	Category string
	Item     Item
	Distance int
}

// Entries returns every item of the catalog in row-major order.
func (c *Catalog) Entries() []Match {
	out := make([]Match, 0, len(c.keys))
	for ci, cat := range c.categories {
		for ii, item := range cat.Items {
			out = append(out, Match{At: Coordinate{category: ci, item: ii}, Category: cat.Label, Item: item})
		}
	}
	return out
}

// Filter ranks catalog entries against query. Fuzzy matches on the item name
// come first, ordered by edit distance and then catalog order. When nothing
// matches fuzzily, entries whose name or key contain the query are returned in
// catalog order. An empty query returns every entry.
func (c *Catalog) Filter(query string) []Match {
	entries := c.Entries()
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return entries
	}
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Item.Name
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, names)
	if len(ranks) > 0 {
		sort.SliceStable(ranks, func(i, j int) bool {
			if ranks[i].Distance != ranks[j].Distance {
				return ranks[i].Distance < ranks[j].Distance
			}
			return ranks[i].OriginalIndex < ranks[j].OriginalIndex
		})
		out := make([]Match, 0, len(ranks))
		for _, rank := range ranks {
			m := entries[rank.OriginalIndex]
			m.Distance = rank.Distance
			out = append(out, m)
		}
		return out
	}
	lower := strings.ToLower(trimmed)
	out := make([]Match, 0, len(entries))
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Item.Name), lower) || strings.Contains(strings.ToLower(entry.Item.Key), lower) {
			out = append(out, entry)
		}
	}
	return out
}
