package resolver

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/antmicro/ctfresolve/pkg/ctf"
	"github.com/antmicro/ctfresolve/pkg/ctf/resolver/rerrors"
)

func TestResolveScenarios(t *testing.T) {
	Convey("Sibling length", t, func() {
		// {len: uint32, data: seq<uint8>[len]} in event payload.
		data := &ctf.Sequence{Element: &ctf.Integer{SizeBits: 8, IsSigned: false}, LengthRef: "len"}
		payload, err := ctf.NewStructure(
			ctf.Member{Name: "len", Class: &ctf.Integer{SizeBits: 32, IsSigned: false}},
			ctf.Member{Name: "data", Class: data},
		)
		So(err, ShouldBeNil)

		trace := singleEventTrace(payload)

		err = Resolve(trace)

		So(err, ShouldBeNil)
		So(data.LengthPath, ShouldNotBeNil)
		So(data.LengthPath.Root, ShouldEqual, ctf.ScopeEventPayload)
		So(data.LengthPath.Indices, ShouldResemble, []int{0})
		So(data.LengthClass, ShouldEqual, ctf.FieldClass(payload.Members[0].Class))
	})

	Convey("Absolute cross-scope variant tag", t, func() {
		kind := &ctf.Enumeration{
			Integer: ctf.Integer{SizeBits: 8, IsSigned: false},
			Ranges: []ctf.EnumerationRange{
				{Label: "A", Lower: 0, Upper: 0},
				{Label: "B", Lower: 1, Upper: 1},
			},
		}
		commonContext, err := ctf.NewStructure(ctf.Member{Name: "kind", Class: kind})
		So(err, ShouldBeNil)

		body, err := ctf.NewVariant("stream.event.context.kind",
			ctf.Option{Name: "A", Class: &ctf.Structure{}},
			ctf.Option{Name: "B", Class: &ctf.Integer{SizeBits: 32}},
		)
		So(err, ShouldBeNil)

		payload, err := ctf.NewStructure(ctf.Member{Name: "body", Class: body})
		So(err, ShouldBeNil)

		trace := singleEventTrace(payload)
		trace.Streams[0].EventCommonContext = commonContext

		err = Resolve(trace)

		So(err, ShouldBeNil)
		So(body.TagPath, ShouldNotBeNil)
		So(body.TagPath.Root, ShouldEqual, ctf.ScopeEventCommonContext)
		So(body.TagPath.Indices, ShouldResemble, []int{0})
		So(body.TagClass, ShouldEqual, ctf.FieldClass(kind))
	})

	Convey("Causality violation", t, func() {
		// {data: seq<uint8>[len], len: uint32} -- len comes after data.
		data := &ctf.Sequence{Element: &ctf.Integer{SizeBits: 8, IsSigned: false}, LengthRef: "len"}
		payload, err := ctf.NewStructure(
			ctf.Member{Name: "data", Class: data},
			ctf.Member{Name: "len", Class: &ctf.Integer{SizeBits: 32, IsSigned: false}},
		)
		So(err, ShouldBeNil)

		trace := singleEventTrace(payload)

		err = Resolve(trace)

		So(err, ShouldNotBeNil)
		So(rerrors.Is(err, rerrors.KindCausality), ShouldBeTrue)
		So(data.LengthPath, ShouldBeNil)
	})

	Convey("Wrong target type", t, func() {
		// Length reference resolves to a signed integer.
		data := &ctf.Sequence{Element: &ctf.Integer{SizeBits: 8, IsSigned: false}, LengthRef: "len"}
		payload, err := ctf.NewStructure(
			ctf.Member{Name: "len", Class: &ctf.Integer{SizeBits: 32, IsSigned: true}},
			ctf.Member{Name: "data", Class: data},
		)
		So(err, ShouldBeNil)

		trace := singleEventTrace(payload)

		err = Resolve(trace)

		So(err, ShouldNotBeNil)
		So(rerrors.Is(err, rerrors.KindType), ShouldBeTrue)
		So(data.LengthPath, ShouldBeNil)
	})

	Convey("Missing stream class", t, func() {
		// Absolute reference to stream.packet.context from the packet header,
		// before any stream class has been processed.
		body, err := ctf.NewVariant("stream.packet.context.x",
			ctf.Option{Name: "only", Class: &ctf.Integer{SizeBits: 8}},
		)
		So(err, ShouldBeNil)

		header, err := ctf.NewStructure(ctf.Member{Name: "body", Class: body})
		So(err, ShouldBeNil)

		trace := &ctf.TraceClass{
			Name:         "example",
			PacketHeader: header,
		}

		err = Resolve(trace)

		So(err, ShouldNotBeNil)
		So(rerrors.Is(err, rerrors.KindScopePrecondition), ShouldBeTrue)
	})

	Convey("Nested relative", t, func() {
		// Payload {a: struct{b: uint32, c: seq<uint8>[b]}}.
		c := &ctf.Sequence{Element: &ctf.Integer{SizeBits: 8, IsSigned: false}, LengthRef: "b"}
		inner, err := ctf.NewStructure(
			ctf.Member{Name: "b", Class: &ctf.Integer{SizeBits: 32, IsSigned: false}},
			ctf.Member{Name: "c", Class: c},
		)
		So(err, ShouldBeNil)

		payload, err := ctf.NewStructure(ctf.Member{Name: "a", Class: inner})
		So(err, ShouldBeNil)

		trace := singleEventTrace(payload)

		err = Resolve(trace)

		So(err, ShouldBeNil)
		So(c.LengthPath, ShouldNotBeNil)
		So(c.LengthPath.Root, ShouldEqual, ctf.ScopeEventPayload)
		So(c.LengthPath.Indices, ShouldResemble, []int{0, 0})
	})
}

func TestResolveIsIdempotentOnTranslatedLayers(t *testing.T) {
	Convey("Re-resolving an already-translated event is a no-op", t, func() {
		data := &ctf.Sequence{Element: &ctf.Integer{SizeBits: 8, IsSigned: false}, LengthRef: "len"}
		payload, err := ctf.NewStructure(
			ctf.Member{Name: "len", Class: &ctf.Integer{SizeBits: 32, IsSigned: false}},
			ctf.Member{Name: "data", Class: data},
		)
		So(err, ShouldBeNil)

		trace := singleEventTrace(payload)
		So(Resolve(trace), ShouldBeNil)

		firstPath := data.LengthPath

		trace.Streams[0].Events[0].Translated = true
		// Corrupt the already-resolved reference; a translated layer must
		// never be revisited, so this must survive untouched.
		data.LengthRef = "does-not-exist"

		So(Resolve(trace), ShouldBeNil)
		So(data.LengthPath, ShouldEqual, firstPath)
	})
}

func singleEventTrace(payload *ctf.Structure) *ctf.TraceClass {
	return &ctf.TraceClass{
		Name: "example",
		Streams: []*ctf.StreamClass{{
			Name: "default",
			Events: []*ctf.EventClass{{
				Name:    "record",
				Payload: payload,
			}},
		}},
	}
}
