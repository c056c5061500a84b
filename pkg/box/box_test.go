package box

import (
	"testing"

	"github.com/matzehuels/flexlayout/pkg/flex"
)

func window() *Box {
	root := NewContainer("window", flex.Horizontal, 10)
	root.Append(New("sidebar", 80, 0))

	content := NewContainer("content", flex.Vertical, 0)
	content.Append(New("header", 0, 20))
	content.Append(New("body", 0, 30), flex.WithFlex())
	root.Append(content, flex.WithFlex())
	return root
}

func TestComputeNested(t *testing.T) {
	root := window()
	Compute(root, flex.Size{Width: 300, Height: 100})

	if got := root.DesiredSize(); got != (flex.Size{Width: 90, Height: 50}) {
		t.Errorf("root DesiredSize() = %v, want {90 50}", got)
	}

	want := map[string]flex.Rect{
		"window":  {X: 0, Y: 0, Width: 300, Height: 100},
		"sidebar": {X: 0, Y: 0, Width: 80, Height: 100},
		"content": {X: 90, Y: 0, Width: 210, Height: 100},
		"header":  {X: 90, Y: 0, Width: 210, Height: 20},
		"body":    {X: 90, Y: 20, Width: 210, Height: 80},
	}

	var order []string
	root.Walk(func(v Visit) bool {
		order = append(order, v.Box.Name)
		if w, ok := want[v.Box.Name]; !ok || v.Abs != w {
			t.Errorf("%s abs = %v, want %v", v.Box.Name, v.Abs, w)
		}
		return true
	})

	wantOrder := []string{"window", "sidebar", "content", "header", "body"}
	if len(order) != len(wantOrder) {
		t.Fatalf("Walk() visited %v, want %v", order, wantOrder)
	}
	for i := range order {
		if order[i] != wantOrder[i] {
			t.Errorf("Walk()[%d] = %s, want %s", i, order[i], wantOrder[i])
		}
	}
}

func TestWalkReportsParentAttributes(t *testing.T) {
	root := window()
	root.Walk(func(v Visit) bool {
		switch v.Box.Name {
		case "window":
			if v.Parent != nil || v.Depth != 0 {
				t.Errorf("root visit = parent %v depth %d", v.Parent, v.Depth)
			}
		case "content":
			if !v.Attrs.Flex || v.Parent != root || v.Depth != 1 {
				t.Errorf("content visit = %+v", v)
			}
		case "body":
			if !v.Attrs.Flex || v.Depth != 2 || v.Parent.Name != "content" {
				t.Errorf("body visit = %+v", v)
			}
		}
		return true
	})
}

func TestWalkStops(t *testing.T) {
	n := 0
	window().Walk(func(Visit) bool {
		n++
		return n < 2
	})
	if n != 2 {
		t.Errorf("Walk() visited %d boxes after stop, want 2", n)
	}
}

func TestLeafMeasureClamps(t *testing.T) {
	b := New("leaf", 120, 40)
	if got := b.DesiredSize(); got != (flex.Size{Width: 120, Height: 40}) {
		t.Errorf("initial DesiredSize() = %v, want intrinsic", got)
	}

	b.Measure(flex.Size{Width: 100, Height: -5})
	if got := b.DesiredSize(); got != (flex.Size{Width: 100, Height: 0}) {
		t.Errorf("DesiredSize() = %v, want {100 0}", got)
	}
	if b.MeasureCount() != 1 {
		t.Errorf("MeasureCount() = %d, want 1", b.MeasureCount())
	}
}

func TestContainerIntrinsicOverride(t *testing.T) {
	b := NewContainer("panel", flex.Horizontal, 0)
	b.Intrinsic = flex.Size{Width: 50}
	b.Append(New("a", 200, 30))

	b.Measure(flex.Size{Width: 400, Height: 100})
	if got := b.DesiredSize(); got != (flex.Size{Width: 50, Height: 30}) {
		t.Errorf("DesiredSize() = %v, want {50 30}", got)
	}
}

func TestSkipMeasureBox(t *testing.T) {
	root := NewContainer("row", flex.Horizontal, 0)
	cached := New("cached", 40, 10)
	root.Append(cached, flex.WithSkipMeasure())
	root.Append(New("other", 60, 10))

	Compute(root, flex.Size{Width: 100, Height: 10})
	if cached.MeasureCount() != 0 {
		t.Errorf("MeasureCount() = %d, want 0", cached.MeasureCount())
	}
	if !cached.Arranged() {
		t.Error("Arranged() = false, want true")
	}
	if got := cached.Rect(); got != (flex.Rect{Width: 40, Height: 10}) {
		t.Errorf("Rect() = %v, want {0 0 40 10}", got)
	}
}

func TestNativeAlignment(t *testing.T) {
	tests := []struct {
		name  string
		o     flex.Orientation
		setup func(*Box)
		want  flex.Rect
	}{
		{
			name:  "row uses vertical alignment",
			o:     flex.Horizontal,
			setup: func(b *Box) { b.VAlign = flex.AlignEnd; b.HAlign = flex.AlignStart },
			want:  flex.Rect{X: 0, Y: 80, Width: 100, Height: 20},
		},
		{
			name:  "column uses horizontal alignment",
			o:     flex.Vertical,
			setup: func(b *Box) { b.HAlign = flex.AlignCenter; b.VAlign = flex.AlignEnd },
			want:  flex.Rect{X: 40, Y: 0, Width: 20, Height: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := NewContainer("root", tt.o, 0)
			leaf := New("leaf", 20, 20)
			tt.setup(leaf)
			root.Append(leaf, flex.WithFlex())

			Compute(root, flex.Size{Width: 100, Height: 100})
			if got := leaf.Rect(); got != tt.want {
				t.Errorf("Rect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindAndCount(t *testing.T) {
	root := window()
	if got := root.Find("body"); got == nil || got.Name != "body" {
		t.Errorf("Find(body) = %v", got)
	}
	if got := root.Find("missing"); got != nil {
		t.Errorf("Find(missing) = %v, want nil", got)
	}
	if got := root.Count(); got != 5 {
		t.Errorf("Count() = %d, want 5", got)
	}
	if got := len(root.Find("content").Children()); got != 2 {
		t.Errorf("len(Children()) = %d, want 2", got)
	}
}

func TestReset(t *testing.T) {
	root := window()
	Compute(root, flex.Size{Width: 300, Height: 100})
	root.Reset()

	root.Walk(func(v Visit) bool {
		if v.Box.Arranged() || v.Box.MeasureCount() != 0 || v.Box.Rect() != (flex.Rect{}) {
			t.Errorf("%s not reset", v.Box.Name)
		}
		return true
	})
}
