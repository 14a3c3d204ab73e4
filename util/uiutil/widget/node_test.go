package widget

import (
	"image"
	"testing"
)

func TestNodeMarks(t *testing.T) {
	root := NewRectangle(nil)
	root.SetWrapperForRoot(root)
	a := NewRectangle(nil)
	b := NewRectangle(nil)
	root.Append(a)
	a.Append(b)
	root.LayoutTree()
	root.PaintTree()
	if root.TreeNeedsPaint() || root.TreeNeedsLayout() {
		t.Fatal("marks not cleared")
	}

	b.MarkNeedsPaint()
	if !root.HasAnyMarks(MarkChildNeedsPaint) || !a.HasAnyMarks(MarkChildNeedsPaint) {
		t.Fatal("paint mark not propagated")
	}
	if root.TreeNeedsLayout() {
		t.Fatal("unexpected layout mark")
	}

	b.MarkNeedsLayout()
	if !root.HasAnyMarks(MarkChildNeedsLayout) {
		t.Fatal("layout mark not propagated")
	}
}

func TestNodeSetMarksVisibility(t *testing.T) {
	root := NewRectangle(nil)
	root.SetWrapperForRoot(root)
	a := NewRectangle(nil)
	root.Append(a)
	root.LayoutTree()
	root.PaintTree()

	// not a visibility mark
	a.SetMarks(MarkPointerInside, true)
	if root.TreeNeedsLayout() {
		t.Fatal("unexpected layout mark")
	}

	a.SetMarks(MarkForceZeroBounds, true)
	if !root.HasAnyMarks(MarkNeedsLayout | MarkNeedsPaint) {
		t.Fatal("parent not marked")
	}
	root.LayoutTree()
	root.PaintTree()

	// no change, no marks
	a.SetMarks(MarkForceZeroBounds, true)
	if root.TreeNeedsLayout() {
		t.Fatal("unexpected layout mark")
	}
}

func TestNodeForceZeroBounds(t *testing.T) {
	root := NewRectangle(nil)
	root.SetWrapperForRoot(root)
	root.Bounds = image.Rect(0, 0, 10, 10)
	a := NewRectangle(nil)
	b := NewRectangle(nil)
	root.Append(a, b)

	a.AddMarks(MarkForceZeroBounds)
	root.LayoutTree()
	if a.Bounds != (image.Rectangle{}) || b.Bounds != root.Bounds {
		t.Fatal(a.Bounds, b.Bounds)
	}
}

func TestNodeRemove(t *testing.T) {
	root := NewRectangle(nil)
	root.SetWrapperForRoot(root)
	a := NewRectangle(nil)
	b := NewRectangle(nil)
	c := NewRectangle(nil)
	root.Append(a, c)
	root.InsertBefore(b, c.Embed())
	if root.ChildsLen() != 3 || a.NextSibling() != b.Embed() || b.NextSibling() != c.Embed() {
		t.Fatal("bad order")
	}
	root.Remove(b)
	if root.ChildsLen() != 2 || a.NextSibling() != c.Embed() || b.Parent != nil {
		t.Fatal("bad remove")
	}
}

func TestNodeMeasure(t *testing.T) {
	root := NewRectangle(nil)
	root.SetWrapperForRoot(root)
	a := NewRectangle(nil)
	a.Size = image.Point{5, 1}
	b := NewRectangle(nil)
	b.Size = image.Point{2, 8}
	c := &ENode{}
	c.Append(a, b)
	root.Append(c)
	if m := c.Measure(image.Point{}); m != (image.Point{5, 8}) {
		t.Fatal(m)
	}
}
