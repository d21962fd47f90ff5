package field

import (
	"errors"
	"fmt"
)

// Placement session errors.
var (
	ErrPlacementActive   = errors.New("field: a placement session is already active")
	ErrPlacementInactive = errors.New("field: no placement session is active")
	ErrNoOptionMappings  = errors.New("field: options field has no option mappings to place")
)

// PlacementState is the phase of an in-progress field placement.
type PlacementState int

const (
	PlacementIdle PlacementState = iota
	PlacementCollectingOptions
	PlacementPlacing
	PlacementComplete
)

func (s PlacementState) String() string {
	switch s {
	case PlacementIdle:
		return "idle"
	case PlacementCollectingOptions:
		return "collectingOptions"
	case PlacementPlacing:
		return "placing"
	case PlacementComplete:
		return "complete"
	default:
		return fmt.Sprintf("PlacementState(%d)", int(s))
	}
}

// PlacementSession tracks a field placement that spans multiple caller
// interactions, such as a dialog closing before the user clicks positions on
// the canvas. It is owned and passed around by the orchestrating caller; the
// session never reaches into any shared state.
//
// Single-variant fields move idle → placing → complete in one click.
// Options-variant fields first collect their mappings, then place each mapping
// in order.
type PlacementSession struct {
	state PlacementState
	field *Field
	index int // next option mapping to place
}

// NewPlacementSession returns an idle session.
func NewPlacementSession() *PlacementSession {
	return &PlacementSession{state: PlacementIdle}
}

// State returns the current phase.
func (s *PlacementSession) State() PlacementState { return s.state }

// Field returns the field being placed, or nil when idle.
func (s *PlacementSession) Field() *Field { return s.field }

// Index returns the option mapping index awaiting placement.
func (s *PlacementSession) Index() int { return s.index }

// Begin starts placing f. Options-variant fields enter collectingOptions
// until OptionsCollected is called; single-variant fields await one Place.
func (s *PlacementSession) Begin(f *Field) error {
	if s.state != PlacementIdle && s.state != PlacementComplete {
		return ErrPlacementActive
	}
	s.field = f
	s.index = 0
	if f.Variant == VariantOptions {
		s.state = PlacementCollectingOptions
	} else {
		s.state = PlacementPlacing
	}
	return nil
}

// OptionsCollected moves an options-variant session from collectingOptions to
// placing. The field must have at least one mapping by then.
func (s *PlacementSession) OptionsCollected() error {
	if s.state != PlacementCollectingOptions {
		return ErrPlacementInactive
	}
	if len(s.field.OptionMappings) == 0 {
		return ErrNoOptionMappings
	}
	s.state = PlacementPlacing
	return nil
}

// Place records one clicked position. For single-variant fields it sets the
// field position and completes. For options-variant fields it sets the
// current mapping's position and advances; the session completes after the
// last mapping.
func (s *PlacementSession) Place(pos Position) error {
	if s.state != PlacementPlacing {
		return ErrPlacementInactive
	}
	p := pos
	if s.field.Variant == VariantOptions {
		s.field.OptionMappings[s.index].Position = &p
		s.index++
		if s.index >= len(s.field.OptionMappings) {
			s.state = PlacementComplete
		}
		return nil
	}
	s.field.Position = &p
	s.state = PlacementComplete
	return nil
}

// Cancel abandons the session and returns to idle. Positions already placed
// are kept; the caller decides whether to discard the field.
func (s *PlacementSession) Cancel() {
	s.state = PlacementIdle
	s.field = nil
	s.index = 0
}
