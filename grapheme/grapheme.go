// Package grapheme computes the terminal column width of UTF-8 text and
// iterates it cluster by cluster (UAX #29 grapheme clusters), the leaf
// dependency of the cell buffer and renderer.
package grapheme

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Cluster is one grapheme cluster as it will occupy a cell buffer: its
// text and the number of terminal columns it occupies (0 for a
// zero-width cluster, otherwise 1 or 2 — wider clusters are clamped to
// 2, per the Cell invariant that width never exceeds a continuation
// cell).
type Cluster struct {
	Text  string
	Width int
}

// Iterate walks s cluster by cluster, calling fn for each. fn returning
// false stops iteration early.
func Iterate(s string, fn func(Cluster) bool) {
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cl := Cluster{Text: g.Str(), Width: clusterWidth(g.Runes())}
		if !fn(cl) {
			return
		}
	}
}

// Clusters returns every grapheme cluster of s as a slice.
func Clusters(s string) []Cluster {
	var out []Cluster
	Iterate(s, func(c Cluster) bool {
		out = append(out, c)
		return true
	})
	return out
}

// StringWidth returns the total terminal column width of s.
func StringWidth(s string) int {
	total := 0
	Iterate(s, func(c Cluster) bool {
		total += c.Width
		return true
	})
	return total
}

// clusterWidth derives a cluster's column width from its constituent
// runes. Zero-width joiners/marks contribute 0; the cluster's width is
// the max width of any rune in it, clamped to [0, 2] since a cell can
// only ever be single- or double-width.
func clusterWidth(runes []rune) int {
	width := 0
	for _, r := range runes {
		w := runewidth.RuneWidth(r)
		if w > width {
			width = w
		}
	}
	if width > 2 {
		width = 2
	}
	return width
}
