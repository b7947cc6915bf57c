package resolver

import (
	"testing"

	"github.com/antmicro/ctfresolve/pkg/ctf"
)

func TestClassifyScopeAbsolute(t *testing.T) {
	cases := []struct {
		expr string
		root ctf.ScopeRoot
		skip int
	}{
		{"trace.packet.header.magic", ctf.ScopePacketHeader, 3},
		{"stream.packet.context.len", ctf.ScopePacketContext, 3},
		{"stream.event.header.id", ctf.ScopeEventHeader, 3},
		{"stream.event.context.state", ctf.ScopeEventCommonContext, 3},
		{"event.context.state", ctf.ScopeEventSpecificContext, 2},
		{"event.fields.len", ctf.ScopeEventPayload, 2},
	}

	for _, c := range cases {
		tokens, err := TokenizePath(c.expr)
		if err != nil {
			t.Fatalf("TokenizePath(%q): %v", c.expr, err)
		}
		got := classifyScope(tokens)
		if !got.absolute {
			t.Fatalf("classifyScope(%q): expected absolute, got relative", c.expr)
		}
		if got.root != c.root {
			t.Fatalf("classifyScope(%q): root = %v, want %v", c.expr, got.root, c.root)
		}
		if got.skip != c.skip {
			t.Fatalf("classifyScope(%q): skip = %d, want %d", c.expr, got.skip, c.skip)
		}
	}
}

func TestClassifyScopeRelative(t *testing.T) {
	cases := []string{"len", "header.id", "a.b.c", "event", "streamer.foo"}

	for _, expr := range cases {
		tokens, err := TokenizePath(expr)
		if err != nil {
			t.Fatalf("TokenizePath(%q): %v", expr, err)
		}
		got := classifyScope(tokens)
		if got.absolute {
			t.Fatalf("classifyScope(%q): expected relative, got absolute root %v", expr, got.root)
		}
	}
}

func TestClassifyScopeRequiresFullPrefix(t *testing.T) {
	// A two-token expression can never match a three-token prefix, even
	// when its tokens agree with the prefix's leading tokens.
	tokens, err := TokenizePath("stream.packet")
	if err != nil {
		t.Fatalf("TokenizePath: %v", err)
	}
	got := classifyScope(tokens)
	if got.absolute {
		t.Fatalf("classifyScope(%q): expected relative (prefix too short), got absolute", "stream.packet")
	}
}
