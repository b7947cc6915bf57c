// Package ctf holds the static data model shared by a CTF trace class: its
// field classes, the paths that locate them, and the trace/stream/event
// layers that own them. The resolver that turns textual references into
// validated paths lives in the sibling package pkg/ctf/resolver.
package ctf
