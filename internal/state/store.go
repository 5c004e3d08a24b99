package state

import (
	"slices"

	"SketchBoard/internal/geom"
)

// Store is the ordered log of committed annotations plus the redo stack.
// Insertion order is z-order: later annotations paint on top.
//
// Store is not safe for concurrent use; it lives on the UI event loop.
type Store struct {
	items []*Annotation
	redo  []*Annotation
	clock clock

	// OnChange is called after every mutation. Every mutation
	// invalidates the rendered scene.
	OnChange func(Op)
}

func NewStore() *Store {
	return &Store{clock: newClock()}
}

func (s *Store) emit(t OpType, a *Annotation) {
	if s.OnChange == nil {
		return
	}
	op := Op{Type: t, Site: s.clock.site}
	if a != nil {
		op.ID, op.Seq = a.ID, a.Seq
	}
	s.OnChange(op)
}

// Commit appends a new annotation and clears the redo stack.
func (s *Store) Commit(g geom.Geometry, st Style, h geom.HandleSet, pivot geom.Point) *Annotation {
	g.Path = slices.Clone(g.Path)
	a := &Annotation{
		ID:       newAnnotationID(),
		Seq:      s.clock.tick(),
		Geometry: g,
		Style:    st,
		Handles:  h,
		Pivot:    pivot,
	}
	s.items = append(s.items, a)
	clear(s.redo)
	s.redo = s.redo[:0]
	s.emit(OpCommit, a)
	return a
}

// Undo moves the topmost annotation onto the redo stack. It reports false
// when the store is empty.
func (s *Store) Undo() (*Annotation, bool) {
	n := len(s.items)
	if n == 0 {
		return nil, false
	}
	a := s.items[n-1]
	s.items[n-1] = nil
	s.items = s.items[:n-1]
	a.Selected = false
	s.redo = append(s.redo, a)
	s.emit(OpUndo, a)
	return a, true
}

// Redo puts the most recently undone annotation back on top. It reports
// false when there is nothing to redo.
func (s *Store) Redo() (*Annotation, bool) {
	n := len(s.redo)
	if n == 0 {
		return nil, false
	}
	a := s.redo[n-1]
	s.redo[n-1] = nil
	s.redo = s.redo[:n-1]
	s.items = append(s.items, a)
	s.emit(OpRedo, a)
	return a, true
}

// All returns the annotations bottom to top.
func (s *Store) All() []*Annotation {
	return slices.Clone(s.items)
}

func (s *Store) Len() int { return len(s.items) }
func (s *Store) RedoLen() int { return len(s.redo) }

// TopmostHitAt scans from the top and returns the first annotation for
// which hit reports true, or nil.
func (s *Store) TopmostHitAt(p geom.Point, hit func(*Annotation, geom.Point) bool) *Annotation {
	for i := len(s.items) - 1; i >= 0; i-- {
		if hit(s.items[i], p) {
			return s.items[i]
		}
	}
	return nil
}

// Selected returns the selected annotation, or nil.
func (s *Store) Selected() *Annotation {
	for _, a := range s.items {
		if a.Selected {
			return a
		}
	}
	return nil
}

// Select marks a as the only selected annotation. A nil a clears the
// selection.
func (s *Store) Select(a *Annotation) {
	prev := s.Selected()
	if prev == a {
		return
	}
	for _, it := range s.items {
		it.Selected = false
	}
	if a != nil {
		a.Selected = true
	}
	s.emit(OpSelect, a)
}

// Move shifts a by delta. Geometry and handles stay untouched.
func (s *Store) Move(a *Annotation, delta geom.Point) {
	if a == nil || delta == (geom.Point{}) {
		return
	}
	a.Style.Translate = a.Style.Translate.Add(delta)
	s.emit(OpMove, a)
}

// ClearSelection deselects every annotation.
func (s *Store) ClearSelection() { s.Select(nil) }
