package geometry

import (
	"errors"
	"math"

	"github.com/daylerjeff199906/event-management-app-sub001/internal/domain"
)

var (
	// ErrDragInProgress is returned when Start is called while a drag is active
	ErrDragInProgress = errors.New("drag already in progress")
	// ErrNoActiveDrag is returned when Move, End or Cancel is called while idle
	ErrNoActiveDrag = errors.New("no active drag")
)

// DragState is the interaction state of the resize controller.
type DragState int

const (
	StateIdle DragState = iota
	StateDragging
)

// DragResize resizes a map by tracking a screen-space handle while the
// underlying truth stays in logical units. Pointer deltas are divided by the
// scale captured at drag start: the scale depends on the dimensions and the
// dimensions change during the drag, so recomputing it live would make the
// conversion factor a moving target and cause runaway growth or shrinkage.
//
// The controller assumes UI-event-loop semantics: one goroutine, moves applied
// synchronously in arrival order. A second Start before End or Cancel fails.
type DragResize struct {
	viewport float64

	state DragState

	// committed dimensions, logical units
	width, height float64

	// captured at Start
	startPointerX, startPointerY float64
	startWidth, startHeight      float64
	scale                        float64

	// live dimensions while dragging
	currentWidth, currentHeight float64
}

// NewDragResize creates a controller for a map with the given committed
// dimensions. A non-positive viewport falls back to DefaultViewportSize.
func NewDragResize(width, height, viewport float64) *DragResize {
	if viewport <= 0 {
		viewport = DefaultViewportSize
	}
	return &DragResize{
		viewport: viewport,
		width:    width,
		height:   height,
	}
}

// State returns the current interaction state.
func (d *DragResize) State() DragState {
	return d.state
}

// Size returns the dimensions the preview should show: the live dimensions
// while dragging, the committed ones otherwise.
func (d *DragResize) Size() (width, height float64) {
	if d.state == StateDragging {
		return d.currentWidth, d.currentHeight
	}
	return d.width, d.height
}

// Start begins a drag at the given pointer position, freezing the scale for
// the duration of the drag.
func (d *DragResize) Start(pointerX, pointerY float64) error {
	if d.state == StateDragging {
		return ErrDragInProgress
	}
	d.state = StateDragging
	d.startPointerX = pointerX
	d.startPointerY = pointerY
	d.startWidth = d.width
	d.startHeight = d.height
	d.currentWidth = d.width
	d.currentHeight = d.height
	d.scale = Scale(d.width, d.height, d.viewport)
	return nil
}

// Move applies a pointer position, converting the screen-space delta to
// logical units and clamping at the minimum map size. Returns the live
// dimensions after the move.
func (d *DragResize) Move(pointerX, pointerY float64) (width, height float64, err error) {
	if d.state != StateDragging {
		return 0, 0, ErrNoActiveDrag
	}
	d.currentWidth = math.Max(domain.MinMapSize, d.startWidth+(pointerX-d.startPointerX)/d.scale)
	d.currentHeight = math.Max(domain.MinMapSize, d.startHeight+(pointerY-d.startPointerY)/d.scale)
	return d.currentWidth, d.currentHeight, nil
}

// End commits the live dimensions and returns to idle. Pointer-up anywhere
// ends the drag; callers must route the up event here even when the pointer
// has left the preview surface.
func (d *DragResize) End() (width, height float64, err error) {
	if d.state != StateDragging {
		return 0, 0, ErrNoActiveDrag
	}
	d.width = d.currentWidth
	d.height = d.currentHeight
	d.state = StateIdle
	return d.width, d.height, nil
}

// Cancel abandons the drag, restoring the dimensions committed before Start.
func (d *DragResize) Cancel() error {
	if d.state != StateDragging {
		return ErrNoActiveDrag
	}
	d.currentWidth = d.width
	d.currentHeight = d.height
	d.state = StateIdle
	return nil
}
