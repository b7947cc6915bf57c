package ctf

import "testing"

func TestNewStructureRejectsEmptyName(t *testing.T) {
	_, err := NewStructure(Member{Name: "", Class: &Integer{SizeBits: 8}})
	if err == nil {
		t.Fatal("expected an error for an empty member name, got none")
	}
}

func TestNewStructureRejectsDuplicateName(t *testing.T) {
	_, err := NewStructure(
		Member{Name: "a", Class: &Integer{SizeBits: 8}},
		Member{Name: "a", Class: &Integer{SizeBits: 16}},
	)
	if err == nil {
		t.Fatal("expected an error for a duplicate member name, got none")
	}
}

func TestNewStructureAndMemberIndex(t *testing.T) {
	s, err := NewStructure(
		Member{Name: "len", Class: &Integer{SizeBits: 32}},
		Member{Name: "data", Class: &Sequence{}},
	)
	if err != nil {
		t.Fatalf("NewStructure: unexpected error: %v", err)
	}
	if got := s.MemberIndex("len"); got != 0 {
		t.Fatalf("MemberIndex(len) = %d, want 0", got)
	}
	if got := s.MemberIndex("data"); got != 1 {
		t.Fatalf("MemberIndex(data) = %d, want 1", got)
	}
	if got := s.MemberIndex("missing"); got != -1 {
		t.Fatalf("MemberIndex(missing) = %d, want -1", got)
	}
}

func TestNewVariantRejectsEmptyAndDuplicateNames(t *testing.T) {
	if _, err := NewVariant("tag", Option{Name: "", Class: &Integer{}}); err == nil {
		t.Fatal("expected an error for an empty option name, got none")
	}
	if _, err := NewVariant("tag",
		Option{Name: "a", Class: &Integer{}},
		Option{Name: "a", Class: &Floating{}},
	); err == nil {
		t.Fatal("expected an error for a duplicate option name, got none")
	}
}

func TestNewVariantAndOptionIndex(t *testing.T) {
	v, err := NewVariant("state",
		Option{Name: "idle", Class: &Structure{}},
		Option{Name: "active", Class: &Integer{SizeBits: 32}},
	)
	if err != nil {
		t.Fatalf("NewVariant: unexpected error: %v", err)
	}
	if got := v.OptionIndex("active"); got != 1 {
		t.Fatalf("OptionIndex(active) = %d, want 1", got)
	}
	if got := v.OptionIndex("missing"); got != -1 {
		t.Fatalf("OptionIndex(missing) = %d, want -1", got)
	}
}

func TestIsUnsignedInteger(t *testing.T) {
	if !IsUnsignedInteger(&Integer{SizeBits: 32, IsSigned: false}) {
		t.Fatal("expected an unsigned Integer to qualify")
	}
	if IsUnsignedInteger(&Integer{SizeBits: 32, IsSigned: true}) {
		t.Fatal("expected a signed Integer to be rejected")
	}
	if IsUnsignedInteger(&Floating{}) {
		t.Fatal("expected a non-Integer field class to be rejected")
	}
}

func TestIsEnumeration(t *testing.T) {
	if !IsEnumeration(&Enumeration{Integer: Integer{SizeBits: 8}}) {
		t.Fatal("expected an Enumeration to qualify")
	}
	if IsEnumeration(&Integer{SizeBits: 8}) {
		t.Fatal("expected a plain Integer to be rejected")
	}
}

func TestIsCompound(t *testing.T) {
	compound := []FieldClass{&Structure{}, &Variant{}, &Array{}, &Sequence{}}
	for _, fc := range compound {
		if !IsCompound(fc) {
			t.Fatalf("IsCompound(%T) = false, want true", fc)
		}
	}

	leaves := []FieldClass{&Integer{}, &Enumeration{}, &Floating{}, &String{}}
	for _, fc := range leaves {
		if IsCompound(fc) {
			t.Fatalf("IsCompound(%T) = true, want false", fc)
		}
	}
}

func TestFieldKindString(t *testing.T) {
	cases := map[FieldKind]string{
		KindInteger:     "integer",
		KindEnumeration: "enumeration",
		KindFloating:    "floating-point",
		KindString:      "string",
		KindStructure:   "structure",
		KindVariant:     "variant",
		KindArray:       "array",
		KindSequence:    "sequence",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Fatalf("FieldKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
