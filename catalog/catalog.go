// Copyright (c) 2026, The chromo-map Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catalog aggregates named colormaps from multiple upstream
// sources (matplotlib, plotly, ColorBrewer) into one registry.
//
// The registry is built explicitly and lazily: [Default] constructs
// the shared instance on first use, and [Build] returns a fresh
// private instance. Nothing is assembled at package init time.
package catalog

import (
	"embed"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"
	"github.com/pirsquared/chromo-map/colors/gradient"
)

//go:embed data/*.toml
var dataFS embed.FS

// Source identifies the upstream project a palette came from.
type Source string

const (
	Matplotlib  Source = "matplotlib"
	Plotly      Source = "plotly"
	ColorBrewer Source = "colorbrewer"
)

// sources in priority order for [Catalog.Search]: ColorBrewer is the
// most curated, plotly the least.
var searchPriority = map[Source]int{ColorBrewer: 3, Matplotlib: 2, Plotly: 1}

// scoreBySource weights for the quality score used by
// [Catalog.Get]: matplotlib is preferred for consistency.
var scoreBySource = map[Source]float64{Matplotlib: 30, Plotly: 25, ColorBrewer: 20}

// Entry is one named colormap in the registry.
type Entry struct {
	Name     string
	Category string
	Source   Source
	Gradient *gradient.Gradient
}

// Catalog is an immutable registry of colormap entries. Build one
// with [Build] or use the shared lazily-built [Default] instance.
type Catalog struct {
	entries []Entry
	byName  map[string][]Entry
}

// palettesFile is the on-disk shape of one embedded source file.
type palettesFile struct {
	Palettes []struct {
		Name     string   `toml:"name"`
		Category string   `toml:"category"`
		Colors   []string `toml:"colors"`
	} `toml:"palettes"`
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalog
)

// Default returns the shared catalog, building it on first call.
// The embedded data is static, so a build failure here is a
// programming error and panics.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Build()
		if err != nil {
			panic("catalog.Default: " + err.Error())
		}
		defaultCat = c
	})
	return defaultCat
}

// Build parses the embedded palette data and returns a new Catalog.
// Callers that want refresh semantics or isolation from the shared
// instance use this directly.
func Build() (*Catalog, error) {
	c := &Catalog{byName: make(map[string][]Entry)}
	for _, src := range []Source{Matplotlib, Plotly, ColorBrewer} {
		raw, err := dataFS.ReadFile("data/" + string(src) + ".toml")
		if err != nil {
			return nil, fmt.Errorf("catalog.Build: %w", err)
		}
		var file palettesFile
		if err := toml.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("catalog.Build: %s: %w", src, err)
		}
		for _, p := range file.Palettes {
			g, err := gradient.FromHexes(p.Colors, p.Name)
			if err != nil {
				return nil, fmt.Errorf("catalog.Build: %s/%s: %w", src, p.Name, err)
			}
			e := Entry{Name: p.Name, Category: p.Category, Source: src, Gradient: g}
			c.entries = append(c.entries, e)
			key := strings.ToLower(p.Name)
			c.byName[key] = append(c.byName[key], e)
		}
	}
	return c, nil
}

// Len returns the number of entries, counting the same name from
// different sources separately.
func (c *Catalog) Len() int { return len(c.entries) }

// Names returns the sorted, deduplicated palette names.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.byName))
	for name := range c.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the gradient registered under the given name,
// case-insensitively. When the name exists in several sources, the
// entry with the highest quality score wins. The second return
// reports whether the name was found.
func (c *Catalog) Get(name string) (*gradient.Gradient, bool) {
	candidates := c.byName[strings.ToLower(name)]
	if len(candidates) == 0 {
		return nil, false
	}
	best := candidates[0]
	bestScore := qualityScore(best)
	for _, e := range candidates[1:] {
		if s := qualityScore(e); s > bestScore {
			best, bestScore = e, s
		}
	}
	return best.Gradient, true
}

// Search returns the best entry whose name matches the given regular
// expression, case-insensitively unless caseSensitive is set. An
// invalid pattern is retried as a literal string rather than
// erroring. Matches are ranked by source priority
// (ColorBrewer > matplotlib > plotly), then by color count.
// It returns nil when nothing matches.
func (c *Catalog) Search(pattern string, caseSensitive bool) *gradient.Gradient {
	if strings.TrimSpace(pattern) == "" {
		return nil
	}
	if !caseSensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		re = regexp.MustCompile(regexp.QuoteMeta(pattern))
	}

	var matches []Entry
	for _, e := range c.entries {
		if re.MatchString(e.Name) {
			matches = append(matches, e)
		}
	}
	if len(matches) == 0 {
		return nil
	}
	sort.SliceStable(matches, func(i, j int) bool {
		pi, pj := searchPriority[matches[i].Source], searchPriority[matches[j].Source]
		if pi != pj {
			return pi > pj
		}
		return matches[i].Gradient.Len() > matches[j].Gradient.Len()
	})
	return matches[0].Gradient
}

// BySource returns all entries from the given source, in data order.
func (c *Catalog) BySource(src Source) []Entry {
	var es []Entry
	for _, e := range c.entries {
		if e.Source == src {
			es = append(es, e)
		}
	}
	return es
}

// ByCategory returns all entries in the given category
// (sequential, diverging, qualitative, cyclic), in data order.
func (c *Catalog) ByCategory(category string) []Entry {
	var es []Entry
	for _, e := range c.entries {
		if e.Category == category {
			es = append(es, e)
		}
	}
	return es
}

// Swatch returns the entries of the given source as a [gradient.Swatch].
func (c *Catalog) Swatch(src Source) *gradient.Swatch {
	var gs []*gradient.Gradient
	for _, e := range c.BySource(src) {
		gs = append(gs, e.Gradient)
	}
	return gradient.NewSwatch(gs, string(src))
}

// qualityScore ranks entries sharing a name across sources: longer
// palettes and shorter names score higher, with a per-source
// preference weighting.
func qualityScore(e Entry) float64 {
	score := 0.0

	n := float64(e.Gradient.Len()) / 10
	if n > 1 {
		n = 1
	}
	score += n * 20

	if s, ok := scoreBySource[e.Source]; ok {
		score += s
	} else {
		score += 10
	}

	score -= float64(len(e.Name)) / 50 * 5

	// Smoothness bonus for anything long enough to interpolate.
	if e.Gradient.Len() >= 3 {
		score += 10
	}
	return score
}
