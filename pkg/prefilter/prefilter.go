// Package prefilter narrows the definitions worth matching against an input
// by looking for their keywords first.
package prefilter

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
	"github.com/praetorian-inc/rejigs/pkg/types"
)

// Prefilter uses Aho-Corasick for efficient keyword matching.
// Keywords and input are compared lower-cased.
type Prefilter struct {
	matcher    *ahocorasick.Matcher
	defs       []*types.Definition // all definitions, in input order
	keywords   []string            // keyword at each matcher index
	keywordIdx map[string][]int    // keyword -> indexes into defs
	always     map[int]bool        // definitions without keywords
}

// New creates a prefilter from definitions.
func New(defs []*types.Definition) *Prefilter {
	pf := &Prefilter{
		defs:       defs,
		keywordIdx: make(map[string][]int),
		always:     make(map[int]bool),
	}

	for i, d := range defs {
		if len(d.Keywords) == 0 {
			// No keywords = always check this definition
			pf.always[i] = true
			continue
		}
		for _, kw := range d.Keywords {
			kw = strings.ToLower(kw)
			if _, seen := pf.keywordIdx[kw]; !seen {
				pf.keywords = append(pf.keywords, kw)
			}
			pf.keywordIdx[kw] = append(pf.keywordIdx[kw], i)
		}
	}

	// Build Aho-Corasick matcher if we have keywords
	if len(pf.keywords) > 0 {
		pf.matcher = ahocorasick.NewStringMatcher(pf.keywords)
	}

	return pf
}

// Filter returns the definitions that might match input: those with a
// keyword present in input and those without keywords. The result keeps
// the order the definitions were given in.
func (pf *Prefilter) Filter(input string) []*types.Definition {
	candidates := make(map[int]bool, len(pf.always))
	for i := range pf.always {
		candidates[i] = true
	}

	if pf.matcher != nil {
		for _, hit := range pf.matcher.Match([]byte(strings.ToLower(input))) {
			for _, i := range pf.keywordIdx[pf.keywords[hit]] {
				candidates[i] = true
			}
		}
	}

	result := make([]*types.Definition, 0, len(candidates))
	for i, d := range pf.defs {
		if candidates[i] {
			result = append(result, d)
		}
	}
	return result
}

// Keywords returns the distinct lower-cased keywords the prefilter looks for.
func (pf *Prefilter) Keywords() []string {
	return append([]string(nil), pf.keywords...)
}
