package main

import (
	"fmt"

	"github.com/antmicro/ctfresolve/pkg/ctf"
	"github.com/geofffranks/simpleyaml"
)

// decodeTraceClass parses a trace-class document with simpleyaml into
// generic map/slice values and converts those into the pkg/ctf domain types
// the resolver operates on. Mirrors cmd/graft/main.go's own habit of decoding
// permissive YAML into plain Go values before handing them to the engine.
func decodeTraceClass(data []byte) (*ctf.TraceClass, error) {
	y, err := simpleyaml.NewYaml(data)
	if err != nil {
		return nil, fmt.Errorf("parsing trace class document: %w", err)
	}

	root, err := y.Map()
	if err != nil {
		return nil, fmt.Errorf("trace class document root is not a map: %w", err)
	}

	return decodeTrace(root)
}

func decodeTrace(m map[interface{}]interface{}) (*ctf.TraceClass, error) {
	trace := &ctf.TraceClass{
		Name:       stringField(m, "name"),
		Translated: boolField(m, "translated"),
	}

	if raw, ok := m["packet_header"]; ok {
		header, err := decodeStructure(raw)
		if err != nil {
			return nil, fmt.Errorf("packet_header: %w", err)
		}
		trace.PacketHeader = header
	}

	rawStreams, _ := m["streams"].([]interface{})
	for i, rawStream := range rawStreams {
		streamMap, ok := rawStream.(map[interface{}]interface{})
		if !ok {
			return nil, fmt.Errorf("streams[%d]: expected a map", i)
		}
		stream, err := decodeStream(streamMap)
		if err != nil {
			return nil, fmt.Errorf("streams[%d]: %w", i, err)
		}
		trace.Streams = append(trace.Streams, stream)
	}

	return trace, nil
}

func decodeStream(m map[interface{}]interface{}) (*ctf.StreamClass, error) {
	stream := &ctf.StreamClass{
		Name:       stringField(m, "name"),
		Translated: boolField(m, "translated"),
	}

	if raw, ok := m["packet_context"]; ok {
		fc, err := decodeStructure(raw)
		if err != nil {
			return nil, fmt.Errorf("packet_context: %w", err)
		}
		stream.PacketContext = fc
	}
	if raw, ok := m["event_header"]; ok {
		fc, err := decodeStructure(raw)
		if err != nil {
			return nil, fmt.Errorf("event_header: %w", err)
		}
		stream.EventHeader = fc
	}
	if raw, ok := m["event_common_context"]; ok {
		fc, err := decodeStructure(raw)
		if err != nil {
			return nil, fmt.Errorf("event_common_context: %w", err)
		}
		stream.EventCommonContext = fc
	}

	rawEvents, _ := m["events"].([]interface{})
	for i, rawEvent := range rawEvents {
		eventMap, ok := rawEvent.(map[interface{}]interface{})
		if !ok {
			return nil, fmt.Errorf("events[%d]: expected a map", i)
		}
		event, err := decodeEvent(eventMap)
		if err != nil {
			return nil, fmt.Errorf("events[%d]: %w", i, err)
		}
		stream.Events = append(stream.Events, event)
	}

	return stream, nil
}

func decodeEvent(m map[interface{}]interface{}) (*ctf.EventClass, error) {
	event := &ctf.EventClass{
		Name:       stringField(m, "name"),
		Translated: boolField(m, "translated"),
	}

	if raw, ok := m["specific_context"]; ok {
		fc, err := decodeStructure(raw)
		if err != nil {
			return nil, fmt.Errorf("specific_context: %w", err)
		}
		event.SpecificContext = fc
	}
	if raw, ok := m["payload"]; ok {
		fc, err := decodeStructure(raw)
		if err != nil {
			return nil, fmt.Errorf("payload: %w", err)
		}
		event.Payload = fc
	}

	return event, nil
}

// decodeStructure decodes a top-level scope root, which spec.md treats as
// always a compound Structure.
func decodeStructure(raw interface{}) (*ctf.Structure, error) {
	fc, err := decodeFieldClass(raw)
	if err != nil {
		return nil, err
	}
	s, ok := fc.(*ctf.Structure)
	if !ok {
		return nil, fmt.Errorf("scope root must be a structure, got %s", fc.Kind())
	}
	return s, nil
}

// decodeFieldClass decodes one node of the field-class tree, dispatching on
// its "kind" discriminator.
func decodeFieldClass(raw interface{}) (ctf.FieldClass, error) {
	m, ok := raw.(map[interface{}]interface{})
	if !ok {
		return nil, fmt.Errorf("field class must be a map")
	}

	switch kind := stringField(m, "kind"); kind {
	case "integer":
		return &ctf.Integer{
			SizeBits: uintField(m, "size_bits"),
			IsSigned: boolField(m, "signed"),
		}, nil

	case "enumeration":
		base := ctf.Integer{SizeBits: uintField(m, "size_bits"), IsSigned: boolField(m, "signed")}
		var ranges []ctf.EnumerationRange
		rawRanges, _ := m["ranges"].([]interface{})
		for _, rawRange := range rawRanges {
			rm, ok := rawRange.(map[interface{}]interface{})
			if !ok {
				return nil, fmt.Errorf("enumeration range must be a map")
			}
			ranges = append(ranges, ctf.EnumerationRange{
				Label: stringField(rm, "label"),
				Lower: intField(rm, "lower"),
				Upper: intField(rm, "upper"),
			})
		}
		return &ctf.Enumeration{Integer: base, Ranges: ranges}, nil

	case "floating":
		return &ctf.Floating{
			ExponentBits: uintField(m, "exponent_bits"),
			MantissaBits: uintField(m, "mantissa_bits"),
		}, nil

	case "string":
		return &ctf.String{Encoding: stringField(m, "encoding")}, nil

	case "structure":
		var members []ctf.Member
		rawMembers, _ := m["members"].([]interface{})
		for i, rawMember := range rawMembers {
			mm, ok := rawMember.(map[interface{}]interface{})
			if !ok {
				return nil, fmt.Errorf("members[%d]: expected a map", i)
			}
			class, err := decodeFieldClass(mm["class"])
			if err != nil {
				return nil, fmt.Errorf("members[%d]: %w", i, err)
			}
			members = append(members, ctf.Member{Name: stringField(mm, "name"), Class: class})
		}
		return ctf.NewStructure(members...)

	case "variant":
		var options []ctf.Option
		rawOptions, _ := m["options"].([]interface{})
		for i, rawOption := range rawOptions {
			om, ok := rawOption.(map[interface{}]interface{})
			if !ok {
				return nil, fmt.Errorf("options[%d]: expected a map", i)
			}
			class, err := decodeFieldClass(om["class"])
			if err != nil {
				return nil, fmt.Errorf("options[%d]: %w", i, err)
			}
			options = append(options, ctf.Option{Name: stringField(om, "name"), Class: class})
		}
		return ctf.NewVariant(stringField(m, "tag_ref"), options...)

	case "array":
		element, err := decodeFieldClass(m["element"])
		if err != nil {
			return nil, fmt.Errorf("array element: %w", err)
		}
		return &ctf.Array{Element: element, Length: uint64(uintField(m, "length"))}, nil

	case "sequence":
		element, err := decodeFieldClass(m["element"])
		if err != nil {
			return nil, fmt.Errorf("sequence element: %w", err)
		}
		return &ctf.Sequence{Element: element, LengthRef: stringField(m, "length_ref")}, nil

	default:
		return nil, fmt.Errorf("unknown field class kind %q", kind)
	}
}

func stringField(m map[interface{}]interface{}, key string) string {
	s, _ := m[key].(string)
	return s
}

func boolField(m map[interface{}]interface{}, key string) bool {
	b, _ := m[key].(bool)
	return b
}

func uintField(m map[interface{}]interface{}, key string) uint {
	switch v := m[key].(type) {
	case int:
		return uint(v)
	case int64:
		return uint(v)
	case float64:
		return uint(v)
	default:
		return 0
	}
}

func intField(m map[interface{}]interface{}, key string) int64 {
	switch v := m[key].(type) {
	case int:
		return int64(v)
	case int64:
		return v
	case float64:
		return int64(v)
	default:
		return 0
	}
}
