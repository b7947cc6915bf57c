package ctf

import "fmt"

// FieldKind discriminates the concrete type held by a FieldClass, the way
// graft.ValueType discriminates a Value. Downcasts happen through a type
// switch on Kind(), never through a separate "type" string field.
type FieldKind int

const (
	// KindInteger is a leaf holding a fixed-width binary integer.
	KindInteger FieldKind = iota
	// KindEnumeration is an Integer plus a set of labeled ranges.
	KindEnumeration
	// KindFloating is a leaf IEEE-754 value.
	KindFloating
	// KindString is a leaf null-terminated or length-prefixed text value.
	KindString
	// KindStructure is an ordered sequence of named members.
	KindStructure
	// KindVariant selects one of several named options via a tag reference.
	KindVariant
	// KindArray is a fixed-length repetition of one element class.
	KindArray
	// KindSequence is a dynamically-length repetition of one element class.
	KindSequence
)

// String renders the kind for diagnostics.
func (k FieldKind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindEnumeration:
		return "enumeration"
	case KindFloating:
		return "floating-point"
	case KindString:
		return "string"
	case KindStructure:
		return "structure"
	case KindVariant:
		return "variant"
	case KindArray:
		return "array"
	case KindSequence:
		return "sequence"
	default:
		return fmt.Sprintf("unknown-kind(%d)", int(k))
	}
}

// ByteOrder is the wire byte order of an Integer field class.
type ByteOrder int

const (
	// NativeByteOrder leaves byte order to the platform / trace default.
	NativeByteOrder ByteOrder = iota
	LittleEndian
	BigEndian
)

// IntegerBase is an Integer's preferred display base. It is descriptive
// only: nothing in this module renders values with it, and the resolver
// never branches on it.
type IntegerBase int

const (
	Decimal IntegerBase = iota
	Binary
	Octal
	Hexadecimal
)

// FieldClass is the tagged union described in spec.md §3. Every concrete
// field class type implements it; Kind reports which one a caller holds,
// replacing the source's `type` discriminator + downcast idiom.
type FieldClass interface {
	Kind() FieldKind
}

// Integer is a fixed-width binary integer leaf.
type Integer struct {
	SizeBits    uint
	Alignment   uint
	IsSigned    bool
	Base        IntegerBase
	ByteOrder   ByteOrder
	TextEncoded bool
}

func (*Integer) Kind() FieldKind { return KindInteger }

// EnumerationRange is one labeled [Lower, Upper] range of an Enumeration.
type EnumerationRange struct {
	Label string
	Lower int64
	Upper int64
}

// Enumeration is an Integer plus a set of labeled ranges.
type Enumeration struct {
	Integer Integer
	Ranges  []EnumerationRange
}

func (*Enumeration) Kind() FieldKind { return KindEnumeration }

// Floating is an IEEE-754 leaf.
type Floating struct {
	ExponentBits uint
	MantissaBits uint
	ByteOrder    ByteOrder
}

func (*Floating) Kind() FieldKind { return KindFloating }

// String is a leaf text value.
type String struct {
	Encoding string
}

func (*String) Kind() FieldKind { return KindString }

// Member is one named slot of a Structure.
type Member struct {
	Name  string
	Class FieldClass
}

// Structure is an ordered sequence of named members.
type Structure struct {
	Members []Member
}

func (*Structure) Kind() FieldKind { return KindStructure }

// NewStructure builds a Structure and rejects the malformed input a TSDL
// parser should never hand the resolver: empty or duplicate member names.
// Mirrors graft.NewDocumentFromInterface's habit of validating constructor
// input rather than deferring the check to first use.
func NewStructure(members ...Member) (*Structure, error) {
	seen := make(map[string]bool, len(members))
	for _, m := range members {
		if m.Name == "" {
			return nil, fmt.Errorf("ctf: structure member name must not be empty")
		}
		if seen[m.Name] {
			return nil, fmt.Errorf("ctf: duplicate structure member %q", m.Name)
		}
		seen[m.Name] = true
	}
	return &Structure{Members: append([]Member(nil), members...)}, nil
}

// MemberIndex returns the position of the named member, or -1.
func (s *Structure) MemberIndex(name string) int {
	for i, m := range s.Members {
		if m.Name == name {
			return i
		}
	}
	return -1
}

// Option is one named alternative of a Variant.
type Option struct {
	Name  string
	Class FieldClass
}

// Variant selects one of several named options via a tag reference that,
// once resolved, must point to an Enumeration field class (spec.md §3
// invariant).
type Variant struct {
	Options []Option

	// TagRef is the unresolved textual path expression naming the tag field.
	TagRef string

	// TagPath and TagClass are populated by the resolver on success. Both
	// are back-references: TagClass must never be treated as owning.
	TagPath  *FieldPath
	TagClass FieldClass
}

func (*Variant) Kind() FieldKind { return KindVariant }

// NewVariant builds a Variant and rejects empty/duplicate option names.
func NewVariant(tagRef string, options ...Option) (*Variant, error) {
	seen := make(map[string]bool, len(options))
	for _, o := range options {
		if o.Name == "" {
			return nil, fmt.Errorf("ctf: variant option name must not be empty")
		}
		if seen[o.Name] {
			return nil, fmt.Errorf("ctf: duplicate variant option %q", o.Name)
		}
		seen[o.Name] = true
	}
	return &Variant{Options: append([]Option(nil), options...), TagRef: tagRef}, nil
}

// OptionIndex returns the position of the named option, or -1.
func (v *Variant) OptionIndex(name string) int {
	for i, o := range v.Options {
		if o.Name == name {
			return i
		}
	}
	return -1
}

// Array is a fixed-length repetition of one element class.
type Array struct {
	Element FieldClass
	Length  uint64
}

func (*Array) Kind() FieldKind { return KindArray }

// Sequence is a dynamically-length repetition of one element class, whose
// length field class, once resolved, must be an unsigned Integer (spec.md
// §3 invariant).
type Sequence struct {
	Element FieldClass

	// LengthRef is the unresolved textual path expression naming the length field.
	LengthRef string

	// LengthPath and LengthClass are populated by the resolver on success,
	// as back-references (see Variant.TagClass).
	LengthPath  *FieldPath
	LengthClass FieldClass
}

func (*Sequence) Kind() FieldKind { return KindSequence }

// IsUnsignedInteger reports whether fc is an *Integer with IsSigned == false,
// the type-compatibility requirement for a resolved sequence length.
func IsUnsignedInteger(fc FieldClass) bool {
	i, ok := fc.(*Integer)
	return ok && !i.IsSigned
}

// IsEnumeration reports whether fc is an *Enumeration, the type-compatibility
// requirement for a resolved variant tag.
func IsEnumeration(fc FieldClass) bool {
	_, ok := fc.(*Enumeration)
	return ok
}

// IsCompound reports whether fc has children a path can descend into.
func IsCompound(fc FieldClass) bool {
	switch fc.(type) {
	case *Structure, *Variant, *Array, *Sequence:
		return true
	default:
		return false
	}
}
