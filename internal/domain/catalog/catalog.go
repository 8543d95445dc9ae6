package catalog

import (
	"sort"
	"strings"
)

// Catalog is an immutable lookup over the standard parameter set. It resolves
// free-text test names from imported documents to canonical keys.
type Catalog struct {
	byKey         map[string]Parameter
	byDisplayName map[string]string // normalized display name -> key
	keys          []string          // sorted, for deterministic iteration
}

// New builds a catalog from the given parameters. Duplicate keys keep the
// first entry.
func New(params []Parameter) *Catalog {
	c := &Catalog{
		byKey:         make(map[string]Parameter, len(params)),
		byDisplayName: make(map[string]string, len(params)),
	}
	for _, p := range params {
		if _, ok := c.byKey[p.Key]; ok {
			continue
		}
		c.byKey[p.Key] = p
		c.byDisplayName[Normalize(p.DisplayName)] = p.Key
		c.keys = append(c.keys, p.Key)
	}
	sort.Strings(c.keys)
	return c
}

// Default returns the catalog built from the built-in parameter table.
func Default() *Catalog {
	return New(builtinParameters)
}

// Normalize canonicalizes a raw test name: lower-case, parenthesized segments
// stripped, spaces and hyphens collapsed to underscores.
func Normalize(name string) string {
	var b strings.Builder
	depth := 0
	for _, r := range name {
		switch {
		case r == '(':
			depth++
		case r == ')':
			if depth > 0 {
				depth--
			}
		case depth == 0:
			b.WriteRune(r)
		}
	}
	s := strings.ToLower(strings.TrimSpace(b.String()))
	s = strings.ReplaceAll(s, "-", " ")
	return strings.Join(strings.Fields(s), "_")
}

// Lookup returns the parameter for a canonical key.
func (c *Catalog) Lookup(key string) (Parameter, bool) {
	p, ok := c.byKey[key]
	return p, ok
}

// LookupByDisplayName matches a display name case-insensitively.
func (c *Catalog) LookupByDisplayName(name string) (Parameter, bool) {
	key, ok := c.byDisplayName[Normalize(name)]
	if !ok {
		return Parameter{}, false
	}
	return c.byKey[key], true
}

// Resolve maps a raw extracted test name to a catalog parameter:
//  1. normalized name matches a key exactly,
//  2. normalized name matches a display name exactly,
//  3. substring match in either direction against keys and display names.
//
// Substring ties are broken deterministically: the candidate sharing the
// longest common prefix with the query wins, then the lexicographically
// smallest key.
func (c *Catalog) Resolve(rawName string) (Parameter, bool) {
	n := Normalize(rawName)
	if n == "" {
		return Parameter{}, false
	}
	if p, ok := c.byKey[n]; ok {
		return p, true
	}
	if key, ok := c.byDisplayName[n]; ok {
		return c.byKey[key], true
	}

	bestKey := ""
	bestPrefix := -1
	for _, key := range c.keys {
		display := Normalize(c.byKey[key].DisplayName)
		if !matchesEither(n, key) && !matchesEither(n, display) {
			continue
		}
		prefix := commonPrefixLen(n, key)
		if dp := commonPrefixLen(n, display); dp > prefix {
			prefix = dp
		}
		if prefix > bestPrefix {
			bestPrefix = prefix
			bestKey = key
		}
	}
	if bestKey == "" {
		return Parameter{}, false
	}
	return c.byKey[bestKey], true
}

// Keys returns all canonical keys in sorted order.
func (c *Catalog) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// List returns parameters filtered by category ("" for all), paginated.
func (c *Catalog) List(category Category, limit, offset int) ([]Parameter, int) {
	var all []Parameter
	for _, key := range c.keys {
		p := c.byKey[key]
		if category != "" && p.Category != category {
			continue
		}
		all = append(all, p)
	}
	total := len(all)
	if offset >= total {
		return []Parameter{}, total
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total
}

// Size returns the number of parameters in the catalog.
func (c *Catalog) Size() int { return len(c.keys) }

func matchesEither(query, target string) bool {
	if query == "" || target == "" {
		return false
	}
	return strings.Contains(target, query) || strings.Contains(query, target)
}

func commonPrefixLen(a, b string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
