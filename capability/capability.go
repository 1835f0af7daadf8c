// Package capability defines a backend's declared feature set and the
// compatibility check that gates whether a given scene may be run against
// it, mirroring original_source's CapabilitySet/RequiredFeatures contract.
package capability

import "fmt"

// Set describes what a backend.Backend supports. Backends report a fixed
// Set from their Info() call; the harness never mutates it.
type Set struct {
	MaxWidth, MaxHeight int

	// Fill rules
	SupportsNonZero bool
	SupportsEvenOdd bool

	// Stroke caps
	SupportsCapButt   bool
	SupportsCapRound  bool
	SupportsCapSquare bool

	// Stroke joins
	SupportsJoinMiter bool
	SupportsJoinRound bool
	SupportsJoinBevel bool

	// Dash support
	SupportsDashes bool

	// Gradients
	SupportsLinear bool
	SupportsRadial bool

	// Clipping
	SupportsClipping bool

	// Compositing (baseline: source-over)
	SupportsSourceOver bool

	// Concurrency
	SupportsParallel bool
	MaxThreads       int
}

// Required describes what a scene (or benchmark case) needs from a
// backend. The harness derives this from a scene's opcode/paint content
// and from the active BenchmarkPolicy's thread count.
type Required struct {
	Width, Height int

	NeedsNonZero bool
	NeedsEvenOdd bool

	NeedsCapButt   bool
	NeedsCapRound  bool
	NeedsCapSquare bool

	NeedsJoinMiter bool
	NeedsJoinRound bool
	NeedsJoinBevel bool

	NeedsDashes bool

	NeedsLinear bool
	NeedsRadial bool

	NeedsClipping bool

	NeedsParallel bool
}

// Check evaluates Required against Set and returns a reason string of the
// form "UNSUPPORTED_FEATURE:<flag>" for the first unmet requirement, in a
// fixed check order, or ("", true) if every requirement is met. The order
// mirrors original_source's CheckCompatibility (evenodd, cap_round,
// cap_square, join_round, join_bevel, dashes, radial_gradient, clipping),
// with a leading dimensions check, a linear_gradient check just before
// radial_gradient, and a trailing parallel_render check added:
// original_source's CapabilitySet::All()
// leaves linear_gradient and parallel_render as always-satisfied baseline
// or harness-level concerns, but spec §3 lists them as Capabilities flags
// like any other, so this port checks them explicitly too.
func Check(req Required, set Set) (reason string, ok bool) {
	if req.Width > set.MaxWidth || req.Height > set.MaxHeight {
		return "UNSUPPORTED_FEATURE:dimensions", false
	}
	if req.NeedsEvenOdd && !set.SupportsEvenOdd {
		return "UNSUPPORTED_FEATURE:evenodd", false
	}
	if req.NeedsCapRound && !set.SupportsCapRound {
		return "UNSUPPORTED_FEATURE:cap_round", false
	}
	if req.NeedsCapSquare && !set.SupportsCapSquare {
		return "UNSUPPORTED_FEATURE:cap_square", false
	}
	if req.NeedsJoinRound && !set.SupportsJoinRound {
		return "UNSUPPORTED_FEATURE:join_round", false
	}
	if req.NeedsJoinBevel && !set.SupportsJoinBevel {
		return "UNSUPPORTED_FEATURE:join_bevel", false
	}
	if req.NeedsDashes && !set.SupportsDashes {
		return "UNSUPPORTED_FEATURE:dashes", false
	}
	if req.NeedsLinear && !set.SupportsLinear {
		return "UNSUPPORTED_FEATURE:linear_gradient", false
	}
	if req.NeedsRadial && !set.SupportsRadial {
		return "UNSUPPORTED_FEATURE:radial_gradient", false
	}
	if req.NeedsClipping && !set.SupportsClipping {
		return "UNSUPPORTED_FEATURE:clipping", false
	}
	if req.NeedsParallel && !set.SupportsParallel {
		return "UNSUPPORTED_FEATURE:parallel_render", false
	}
	return "", true
}

// String renders a Set for diagnostic logging.
func (s Set) String() string {
	return fmt.Sprintf(
		"Set{max=%dx%d evenodd=%t caps=%t/%t/%t joins=%t/%t/%t dashes=%t linear=%t radial=%t clip=%t sourceover=%t parallel=%t threads=%d}",
		s.MaxWidth, s.MaxHeight, s.SupportsEvenOdd,
		s.SupportsCapButt, s.SupportsCapRound, s.SupportsCapSquare,
		s.SupportsJoinMiter, s.SupportsJoinRound, s.SupportsJoinBevel,
		s.SupportsDashes, s.SupportsLinear, s.SupportsRadial, s.SupportsClipping,
		s.SupportsSourceOver, s.SupportsParallel, s.MaxThreads)
}
