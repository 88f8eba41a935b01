// Package attribute implements the GDTF attribute enum: the named and
// indexed-family "feature" identifiers a channel function can control
// (Dimmer, Pan, Gobo(n), EffectsAdjust(n,m), ...), plus a Custom escape
// for fixture-specific names GDTF doesn't standardize.
//
// Grounded on original_source/src/gdcs/attr.rs. That source encodes each
// attribute as a separate enum variant with hand-written Display/FromStr
// match arms; Go has no sum-type match exhaustiveness check to lean on,
// so this keeps the fidelity by going table-driven instead: one slice of
// descriptor entries drives both String() and ParseAttribute(), so the
// two can never drift out of sync with each other (they did, in four
// places, in the original - see "Known source asymmetries" below).
package attribute

import "strconv"

// Kind names an attribute family. The zero value is not a valid Kind.
type Kind string

// Attribute is a GDTF attribute value: a Kind plus up to two index
// parameters (N, M) for indexed families, or a free-form name when
// Kind is KindCustom.
type Attribute struct {
	Kind   Kind
	N      uint8
	M      uint8
	Custom string
}

// String renders the attribute's canonical wire form, the same text a
// GDTF channel function's Name attribute would carry.
func (a Attribute) String() string {
	if a.Kind == KindCustom {
		return a.Custom
	}
	if s, ok := literalStrings[a.Kind]; ok {
		return s
	}
	if p, ok := arity1ByKind[a.Kind]; ok {
		return p.Prefix + strconv.Itoa(int(a.N)) + p.Suffix
	}
	if p, ok := arity2ByKind[a.Kind]; ok {
		return p.Prefix + strconv.Itoa(int(a.N)) + p.Middle + strconv.Itoa(int(a.M)) + p.Suffix
	}
	return string(a.Kind)
}

// ParseAttribute parses s into an Attribute. Parsing never fails: any
// string not matching a known literal or indexed-family pattern becomes
// Custom(s). For every non-Custom Attribute a, ParseAttribute(a.String())
// == a.
func ParseAttribute(s string) Attribute {
	if k, ok := kindByLiteral[s]; ok {
		return Attribute{Kind: k}
	}
	for _, p := range arity1Specs {
		if n, ok := extractN(s, p.Prefix, p.Suffix); ok {
			return Attribute{Kind: p.Kind, N: n}
		}
	}
	for _, p := range arity2Specs {
		if n, m, ok := extractNM(s, p.Prefix, p.Middle, p.Suffix); ok {
			return Attribute{Kind: p.Kind, N: n, M: m}
		}
	}
	return Attribute{Kind: KindCustom, Custom: s}
}

// extractN strips prefix and suffix from s and parses the remainder as a
// uint8. An empty suffix means "parse the entire remainder as a number".
func extractN(s, prefix, suffix string) (uint8, bool) {
	rest, ok := stripPrefix(s, prefix)
	if !ok {
		return 0, false
	}
	if suffix != "" {
		rest, ok = stripSuffix(rest, suffix)
		if !ok {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(rest, 10, 8)
	if err != nil {
		return 0, false
	}
	return uint8(n), true
}

// extractNM strips prefix, splits on the first occurrence of middle, and
// parses the two surrounding numbers (minus any trailing suffix on the
// second).
func extractNM(s, prefix, middle, suffix string) (uint8, uint8, bool) {
	rest, ok := stripPrefix(s, prefix)
	if !ok {
		return 0, 0, false
	}
	idx := indexOf(rest, middle)
	if idx < 0 {
		return 0, 0, false
	}
	nPart := rest[:idx]
	n, err := strconv.ParseUint(nPart, 10, 8)
	if err != nil {
		return 0, 0, false
	}
	afterMiddle := rest[idx+len(middle):]
	if suffix != "" {
		afterMiddle, ok = stripSuffix(afterMiddle, suffix)
		if !ok {
			return 0, 0, false
		}
	}
	m, err := strconv.ParseUint(afterMiddle, 10, 8)
	if err != nil {
		return 0, 0, false
	}
	return uint8(n), uint8(m), true
}

func stripPrefix(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || s[:len(prefix)] != prefix {
		return "", false
	}
	return s[len(prefix):], true
}

func stripSuffix(s, suffix string) (string, bool) {
	if len(s) < len(suffix) || s[len(s)-len(suffix):] != suffix {
		return "", false
	}
	return s[:len(s)-len(suffix)], true
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

// arity1Spec describes an indexed family with a single parameter N,
// rendered as Prefix + N + Suffix.
type arity1Spec struct {
	Kind           Kind
	Prefix, Suffix string
}

// arity2Spec describes an indexed family with two parameters N and M,
// rendered as Prefix + N + Middle + M + Suffix.
type arity2Spec struct {
	Kind                   Kind
	Prefix, Middle, Suffix string
}

// Known source asymmetries: original_source/src/gdcs/attr.rs's Display
// and FromStr impls disagree on the wire form for four attributes
// (LedFrequency, LedZoneMode, CriMode/UvStability render in mixed case
// but parse only the all-caps acronym form; AnimationWheelMode and
// GoboWheelMSpeed parse a different prefix/suffix split than they
// render), which breaks the round-trip property for those attributes.
// The entries in tables.go use one wire form for both directions so parsing a
// rendered Attribute always recovers it.
