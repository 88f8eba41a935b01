// Package resolver translates pending GDCS attribute values into a
// physical DMX multiverse: it walks every fixture's channel functions,
// applies any explicitly-set value, and defers relation writes for
// virtual channel functions until all fixtures have been examined, so
// that followers resolve against their masters' already-computed
// values.
//
// Grounded on original_source/crates/zeevonk/src/server/resolver.rs.
package resolver

import (
	"github.com/zeevonk-project/zeevonk-go/internal/attribute"
	"github.com/zeevonk-project/zeevonk-go/internal/dmx"
	"github.com/zeevonk-project/zeevonk-go/internal/show"
	"github.com/zeevonk-project/zeevonk-go/internal/value"
)

// AttributeValues is the set of pending (explicitly requested) values
// keyed by fixture path and attribute.
type AttributeValues interface {
	Get(path show.FixturePath, attr attribute.Attribute) (value.ClampedValue, bool)
}

type deferredWrite struct {
	relation show.Relation
	value    value.ClampedValue
}

// Resolve walks every fixture in patch, resolves each channel
// function's effective value from pending, and writes the result into
// multiverse.
func Resolve(patch *show.Patch, pending AttributeValues, multiverse *dmx.Multiverse) {
	r := &resolverPass{patch: patch, pending: pending, multiverse: multiverse}
	r.run()
}

type resolverPass struct {
	patch      *show.Patch
	pending    AttributeValues
	multiverse *dmx.Multiverse

	deferred []deferredWrite
}

func (r *resolverPass) run() {
	for _, path := range r.patch.FixturePaths() {
		r.resolveFixture(path)
	}

	deferred := r.deferred
	r.deferred = nil
	for _, dw := range deferred {
		fixture, ok := r.patch.Fixtures[dw.relation.FixturePath]
		if !ok {
			continue
		}
		cf, ok := fixture.ChannelFunctions[dw.relation.Attribute]
		if !ok {
			continue
		}
		r.setChannelFunctionValue(cf, dw.value)
	}
}

func (r *resolverPass) resolveFixture(path show.FixturePath) {
	fixture, ok := r.patch.Fixtures[path]
	if !ok {
		return
	}
	for attr, cf := range fixture.ChannelFunctions {
		v, ok := r.pending.Get(path, attr)
		if !ok {
			continue
		}
		r.setChannelFunctionValue(cf, v)
	}
}

func (r *resolverPass) getChannelFunctionValue(path show.FixturePath, attr attribute.Attribute) (value.ClampedValue, bool) {
	return r.pending.Get(path, attr)
}

func (r *resolverPass) setChannelFunctionValue(cf show.FixtureChannelFunction, v value.ClampedValue) {
	if !cf.Kind.IsVirtual {
		for _, av := range v.ToAddressValues(cf.Kind.Addresses) {
			r.multiverse.SetValue(av.Address, av.Value)
		}
		return
	}

	for _, rel := range cf.Kind.Relations {
		switch rel.Kind {
		case show.RelationKindMultiply:
			followerValue, ok := r.getChannelFunctionValue(rel.FixturePath, rel.Attribute)
			if !ok {
				continue
			}
			newValue := value.New(followerValue.AsFloat32() * v.AsFloat32())
			r.deferred = append(r.deferred, deferredWrite{relation: rel, value: newValue})
		case show.RelationKindOverride:
			r.deferred = append(r.deferred, deferredWrite{relation: rel, value: v})
		}
	}
}
