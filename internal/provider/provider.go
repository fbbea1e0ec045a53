// Package provider defines the read-only boundary between the
// navigation core and the live host simulation. The core never inspects
// host internals: it consumes classified entities and documented query
// results, all of which may be absent at any call.
package provider

import (
	"fmt"

	"github.com/sablewing/gridspeak/internal/logging"
	"github.com/sablewing/gridspeak/internal/spatial"
)

// Kind is the classified category of a host object. Classification
// happens once, at this boundary, instead of runtime type switching
// deeper in the core.
type Kind int

const (
	KindUnknown Kind = iota
	KindStructure
	KindUnit
	KindResource
	KindFeature
)

var kindNames = map[Kind]string{
	KindUnknown:   "unknown",
	KindStructure: "structure",
	KindUnit:      "unit",
	KindResource:  "resource",
	KindFeature:   "feature",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Entity is a classified, position-bearing host object handed to the
// spatial search layer.
type Entity struct {
	Pos  spatial.Point
	Name string
	Kind Kind
}

// Raw carries the host-visible traits a live object exposes before
// classification.
type Raw struct {
	Pos          spatial.Point
	Name         string
	Category     string
	HasFootprint bool
	Mobile       bool
	Harvestable  bool
}

type rule struct {
	kind Kind
	pred func(Raw) bool
}

// Classifier turns raw host objects into tagged entities via an ordered
// predicate chain; the first (most specific) matching rule wins.
type Classifier struct {
	rules []rule
}

// DefaultClassifier orders categories most-specific-first: a placed
// structure outranks a mobile unit, which outranks a harvestable
// resource, which outranks any remaining map feature.
func DefaultClassifier() *Classifier {
	return &Classifier{rules: []rule{
		{KindStructure, func(r Raw) bool { return r.HasFootprint }},
		{KindUnit, func(r Raw) bool { return r.Mobile }},
		{KindResource, func(r Raw) bool { return r.Harvestable }},
		{KindFeature, func(r Raw) bool { return r.Category != "" }},
	}}
}

// Classify returns the tagged entity for a raw host object.
func (c *Classifier) Classify(raw Raw) Entity {
	kind := KindUnknown
	for _, r := range c.rules {
		if r.pred(raw) {
			kind = r.kind
			break
		}
	}
	return Entity{Pos: raw.Pos, Name: raw.Name, Kind: kind}
}

// SafeQuery invokes a collaborator query and converts any panic into the
// absent case. Provider calls may race with host teardown; the worst
// permitted outcome is a missing announcement, never a crash.
func SafeQuery[T any](fn func() (T, bool)) (val T, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logging.Error(fmt.Errorf("provider query panicked: %v", r))
			var zero T
			val, ok = zero, false
		}
	}()
	return fn()
}
