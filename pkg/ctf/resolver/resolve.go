package resolver

import (
	"github.com/antmicro/ctfresolve/log"
	"github.com/antmicro/ctfresolve/pkg/ctf"
	"github.com/antmicro/ctfresolve/pkg/ctf/resolver/rerrors"
)

// Context is the transient per-run state described in spec.md §3's
// "Resolve Context": the six scope-root pointers for the layer currently
// being processed, the translation preconditions that gate absolute
// resolution into each of them, the current root-scope tag, and the
// descent stack. It is built fresh by Resolve and discarded on return.
type Context struct {
	roots ctf.ScopeRoots

	traceTranslated bool

	streamPresent    bool
	streamTranslated bool

	eventPresent    bool
	eventTranslated bool

	currentRoot ctf.ScopeRoot
	stack       *descentStack
}

// checkPrecondition enforces spec.md §4.5's layer-translation precondition
// table for the given absolute-reference root scope.
func (ctx *Context) checkPrecondition(root ctf.ScopeRoot, expr string) error {
	fail := func(msg string) error {
		return rerrors.New(rerrors.KindScopePrecondition, expr, msg).WithScope(root.String())
	}

	switch root {
	case ctf.ScopePacketHeader:
		if ctx.traceTranslated {
			return fail("trace class is already translated")
		}
	case ctf.ScopePacketContext, ctf.ScopeEventHeader, ctf.ScopeEventCommonContext:
		if !ctx.streamPresent {
			return fail("no stream class is present at this scope")
		}
		if ctx.streamTranslated {
			return fail("stream class is already translated")
		}
	case ctf.ScopeEventSpecificContext, ctf.ScopeEventPayload:
		if !ctx.eventPresent {
			return fail("no event class is present at this scope")
		}
		if ctx.eventTranslated {
			return fail("event class is already translated")
		}
	}
	return nil
}

// Resolve runs the resolver over a trace class, mutating every
// not-yet-translated sequence/variant node's length/tag path and class
// in place (spec.md §4.8). It returns the first unresolvable reference as
// an error and aborts the whole trace class; no partial result is exposed.
func Resolve(trace *ctf.TraceClass) error {
	ctx := &Context{stack: newDescentStack()}
	ctx.traceTranslated = trace.Translated

	if !trace.Translated {
		ctx.roots = ctf.ScopeRoots{PacketHeader: trace.PacketHeader}
		ctx.currentRoot = ctf.ScopePacketHeader
		if err := resolveRoot(ctx, trace.PacketHeader); err != nil {
			log.ERROR("resolve: trace class %q: %s", trace.Name, err)
			return err
		}
	}

	for _, stream := range trace.Streams {
		ctx.streamPresent = true
		ctx.streamTranslated = stream.Translated
		ctx.roots = ctf.ScopeRoots{
			PacketHeader:       trace.PacketHeader,
			PacketContext:      stream.PacketContext,
			EventHeader:        stream.EventHeader,
			EventCommonContext: stream.EventCommonContext,
		}

		if !stream.Translated {
			for _, pair := range []struct {
				root ctf.ScopeRoot
				fc   *ctf.Structure
			}{
				{ctf.ScopePacketContext, stream.PacketContext},
				{ctf.ScopeEventHeader, stream.EventHeader},
				{ctf.ScopeEventCommonContext, stream.EventCommonContext},
			} {
				ctx.currentRoot = pair.root
				if err := resolveRoot(ctx, pair.fc); err != nil {
					log.ERROR("resolve: stream class %q: %s", stream.Name, err)
					return err
				}
			}
		}

		for _, event := range stream.Events {
			ctx.eventPresent = true
			ctx.eventTranslated = event.Translated
			ctx.roots = ctf.ScopeRoots{
				PacketHeader:         trace.PacketHeader,
				PacketContext:        stream.PacketContext,
				EventHeader:          stream.EventHeader,
				EventCommonContext:   stream.EventCommonContext,
				EventSpecificContext: event.SpecificContext,
				EventPayload:         event.Payload,
			}

			if !event.Translated {
				for _, pair := range []struct {
					root ctf.ScopeRoot
					fc   *ctf.Structure
				}{
					{ctf.ScopeEventSpecificContext, event.SpecificContext},
					{ctf.ScopeEventPayload, event.Payload},
				} {
					ctx.currentRoot = pair.root
					if err := resolveRoot(ctx, pair.fc); err != nil {
						log.ERROR("resolve: event class %q: %s", event.Name, err)
						return err
					}
				}
			}
		}
	}

	return nil
}

// resolveRoot performs the pre/in/post traversal of one scope root's tree
// (spec.md §4.8): on enter, resolve any sequence/variant reference found;
// for any compound, push it, visit children with the stack's top index set
// to each child's position, and pop on exit.
func resolveRoot(ctx *Context, root *ctf.Structure) error {
	if root == nil {
		return nil
	}
	return visit(ctx, root)
}

func visit(ctx *Context, fc ctf.FieldClass) error {
	if fc == nil {
		return nil
	}

	switch c := fc.(type) {
	case *ctf.Sequence:
		if err := resolveSequence(ctx, c); err != nil {
			return err
		}
		return visitCompound(ctx, c, func() error {
			ctx.stack.setTopIndex(ctf.ElementIndex)
			return visit(ctx, c.Element)
		})

	case *ctf.Variant:
		if err := resolveVariant(ctx, c); err != nil {
			return err
		}
		return visitCompound(ctx, c, func() error {
			for i, opt := range c.Options {
				ctx.stack.setTopIndex(i)
				if err := visit(ctx, opt.Class); err != nil {
					return err
				}
			}
			return nil
		})

	case *ctf.Structure:
		return visitCompound(ctx, c, func() error {
			for i, m := range c.Members {
				ctx.stack.setTopIndex(i)
				if err := visit(ctx, m.Class); err != nil {
					return err
				}
			}
			return nil
		})

	case *ctf.Array:
		return visitCompound(ctx, c, func() error {
			ctx.stack.setTopIndex(ctf.ElementIndex)
			return visit(ctx, c.Element)
		})

	default:
		return nil
	}
}

// visitCompound pushes fc onto the descent stack for the duration of body,
// guaranteeing the pop happens even on error.
func visitCompound(ctx *Context, fc ctf.FieldClass, body func() error) error {
	ctx.stack.push(fc)
	err := body()
	ctx.stack.pop()
	return err
}

func resolveSequence(ctx *Context, seq *ctf.Sequence) error {
	log.DEBUG("resolving sequence length reference %q", seq.LengthRef)

	path, class, err := resolveExpr(ctx, seq.LengthRef)
	if err != nil {
		return err
	}

	sourcePath := ctx.stack.indices()
	if err := validateSequenceLength(seq.LengthRef, sourcePath, ctx.currentRoot, path, class); err != nil {
		log.ERROR("sequence length reference %q: %s", seq.LengthRef, err)
		return err
	}

	seq.LengthPath = path
	seq.LengthClass = class
	return nil
}

func resolveVariant(ctx *Context, v *ctf.Variant) error {
	log.DEBUG("resolving variant tag reference %q", v.TagRef)

	path, class, err := resolveExpr(ctx, v.TagRef)
	if err != nil {
		return err
	}

	sourcePath := ctx.stack.indices()
	if err := validateVariantTag(v.TagRef, sourcePath, ctx.currentRoot, path, class); err != nil {
		log.ERROR("variant tag reference %q: %s", v.TagRef, err)
		return err
	}

	v.TagPath = path
	v.TagClass = class
	return nil
}

// resolveExpr implements spec.md §4.4-4.6: tokenize, classify, and dispatch
// to absolute or relative resolution.
func resolveExpr(ctx *Context, expr string) (*ctf.FieldPath, ctf.FieldClass, error) {
	tokens, err := TokenizePath(expr)
	if err != nil {
		log.ERROR("tokenizing path %q: %s", expr, err)
		return nil, nil, err
	}

	cl := classifyScope(tokens)
	if cl.absolute {
		log.TRACE("path %q classified as absolute scope %s", expr, cl.root)
		return resolveAbsolute(ctx, cl, tokens, expr)
	}

	log.TRACE("path %q classified as relative", expr)
	return resolveRelative(ctx, tokens, expr)
}
