package provider

import (
	"encoding/binary"
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
)

// ID returns the identity token: a fingerprint of the seed shared by every
// copy and view of the Provider. Sub-streams are derived from it.
func (p *Provider) ID() uint64 { return p.id }

// Equal reports whether p and q have the same seed, cursor state, scale and
// secondaryScale, i.e. whether they will produce the same future values.
func (p *Provider) Equal(q *Provider) bool {
	if p == nil || q == nil {
		return p == q
	}
	return p.scale == q.scale &&
		p.secondaryScale == q.secondaryScale &&
		p.st.core.State() == q.st.core.State() &&
		slices.Equal(p.Seed(), q.Seed())
}

// Hash returns a hash consistent with Equal.
func (p *Provider) Hash() uint64 {
	st := p.st.core.State()
	buf := make([]byte, 0, 4*(3*len(st.Results))+64)
	for _, w := range p.Seed() {
		buf = binary.LittleEndian.AppendUint32(buf, w)
	}
	for _, w := range st.Results {
		buf = binary.LittleEndian.AppendUint32(buf, w)
	}
	for _, w := range st.Memory {
		buf = binary.LittleEndian.AppendUint32(buf, w)
	}
	buf = binary.LittleEndian.AppendUint32(buf, st.A)
	buf = binary.LittleEndian.AppendUint32(buf, st.B)
	buf = binary.LittleEndian.AppendUint32(buf, st.C)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(st.Count))
	buf = binary.LittleEndian.AppendUint64(buf, st.Drawn)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(p.scale))
	buf = binary.LittleEndian.AppendUint64(buf, uint64(p.secondaryScale))

	return xxhash.Sum64(buf)
}

// String renders the configuration and cursor for debugging, e.g.
// "Provider{scale=32, secondaryScale=8, seed=#9f04c1a2b3d4e5f6, position=17}".
// Seed() returns the full seed when the fingerprint is not enough.
func (p *Provider) String() string {
	return fmt.Sprintf("Provider{scale=%d, secondaryScale=%d, seed=#%016x, position=%d}",
		p.scale, p.secondaryScale, p.id, p.Position())
}
