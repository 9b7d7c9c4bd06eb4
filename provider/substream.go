package provider

import (
	"maps"

	"github.com/katalvlaran/lvgen/isaac"
)

// substreams caches lazily derived sub-providers by key.
type substreams struct {
	byKey map[string]*Provider
}

func newSubstreams() *substreams {
	return &substreams{byKey: make(map[string]*Provider)}
}

func (s *substreams) len() int { return len(s.byKey) }

// snapshot copies every cached sub-provider (and, recursively, its own cache)
// at its current position.
func (s *substreams) snapshot() *substreams {
	c := &substreams{byKey: make(map[string]*Provider, len(s.byKey))}
	for k, sub := range maps.All(s.byKey) {
		c.byKey[k] = sub.Copy()
	}

	return c
}

// Substream returns the sub-provider cached under key, deriving it on first
// use. Its seed depends only on p's identity token and key, so equal Providers
// derive equal sub-streams; it starts with p's current scales.
//
// Sub-streams let a generator draw auxiliary randomness (permutation positions,
// lookahead choices) without interleaving with the values it draws from p.
func (p *Provider) Substream(key string) *Provider {
	if sub, ok := p.st.subs.byKey[key]; ok {
		return sub
	}

	seed := SeedFromUint64(deriveSeed64(p.id, key))
	core, err := isaac.New(seed)
	if err != nil {
		// SeedFromUint64 always yields isaac.SeedSize words.
		panic("provider: derived seed rejected: " + err.Error())
	}
	sub := &Provider{
		st:             &stream{core: core, subs: newSubstreams()},
		scale:          p.scale,
		secondaryScale: p.secondaryScale,
		id:             fingerprint(seed),
		log:            p.log.WithName(key),
	}
	p.st.subs.byKey[key] = sub
	p.log.V(1).Info("substream derived", "key", key, "id", sub.id)

	return sub
}
