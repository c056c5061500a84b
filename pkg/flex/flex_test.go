package flex

import (
	"math"
	"testing"
)

const eps = 1e-9

func approx(a, b float64) bool { return math.Abs(a-b) < eps }

func approxRect(a, b Rect) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y) && approx(a.Width, b.Width) && approx(a.Height, b.Height)
}

// fakeElement desires its intrinsic size clamped to what it is offered.
type fakeElement struct {
	intrinsic Size
	desired   Size
	native    Alignment
	measured  []Size
	arranged  []Rect
}

func newFake(w, h float64) *fakeElement {
	return &fakeElement{intrinsic: Size{w, h}, desired: Size{w, h}}
}

func (f *fakeElement) Measure(available Size) {
	f.measured = append(f.measured, available)
	f.desired = Size{
		Width:  math.Min(f.intrinsic.Width, available.Width),
		Height: math.Min(f.intrinsic.Height, available.Height),
	}
}

func (f *fakeElement) Arrange(r Rect)    { f.arranged = append(f.arranged, r) }
func (f *fakeElement) DesiredSize() Size { return f.desired }

func (f *fakeElement) rect(t *testing.T) Rect {
	t.Helper()
	if len(f.arranged) == 0 {
		t.Fatal("element was never arranged")
	}
	return f.arranged[len(f.arranged)-1]
}

// alignedElement reports a native cross alignment.
type alignedElement struct {
	*fakeElement
	align Alignment
}

func (a alignedElement) CrossAlignment(Orientation) Alignment { return a.align }

func layout(c *Container, s Size) Size {
	d := c.Measure(s)
	c.Arrange(s)
	return d
}

func TestAvailableContentSize(t *testing.T) {
	tests := []struct {
		name        string
		available   FlexSize
		count       int
		spacing     float64
		wantContent FlexSize
		wantSpacing float64
	}{
		{"no children", FlexSize{200, 50}, 0, 10, FlexSize{200, 50}, 0},
		{"single child", FlexSize{200, 50}, 1, 10, FlexSize{200, 50}, 0},
		{"three children", FlexSize{200, 50}, 3, 10, FlexSize{180, 50}, 20},
		{"spacing exceeds space", FlexSize{15, 50}, 3, 10, FlexSize{0, 50}, 20},
		{"negative spacing", FlexSize{200, 50}, 3, -10, FlexSize{200, 50}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content, spacing := AvailableContentSize(tt.available, tt.count, tt.spacing)
			if content != tt.wantContent {
				t.Errorf("content = %v, want %v", content, tt.wantContent)
			}
			if spacing != tt.wantSpacing {
				t.Errorf("spacing = %v, want %v", spacing, tt.wantSpacing)
			}
		})
	}
}

func TestDesiredContentSize(t *testing.T) {
	desired := []FlexSize{{50, 10}, {30, 40}, {20, 25}}

	got := DesiredContentSize(desired, FlexSize{500, 500})
	if got != (FlexSize{100, 40}) {
		t.Errorf("DesiredContentSize() = %v, want {100 40}", got)
	}

	got = DesiredContentSize(desired, FlexSize{80, 30})
	if got != (FlexSize{80, 30}) {
		t.Errorf("clamped DesiredContentSize() = %v, want {80 30}", got)
	}
}

func TestDistributeMain(t *testing.T) {
	items := []Item{
		{Desired: FlexSize{Longitudinal: 40}, Attributes: Attributes{Grow: 1}},
		{Desired: FlexSize{Longitudinal: 10}, Attributes: Attributes{Flex: true, Grow: 2}},
		{Desired: FlexSize{Longitudinal: 70}, Attributes: Attributes{Grow: 1, Position: Absolute}},
		{Desired: FlexSize{Longitudinal: 10}, Attributes: Attributes{Flex: true, Grow: 3, Position: Absolute}},
		{Desired: FlexSize{Longitudinal: 20}, Attributes: Attributes{Flex: true, Grow: 1}},
	}

	d := DistributeMain(items, 100)
	if !d.AnyFlex {
		t.Error("AnyFlex = false, want true")
	}
	if d.TotalGrow != 3 {
		t.Errorf("TotalGrow = %d, want 3", d.TotalGrow)
	}
	if d.Remaining != 60 {
		t.Errorf("Remaining = %v, want 60", d.Remaining)
	}
}

func TestDistributeMainNeverNegative(t *testing.T) {
	items := []Item{
		{Desired: FlexSize{Longitudinal: 80}},
		{Desired: FlexSize{Longitudinal: 80}},
	}
	if d := DistributeMain(items, 100); d.Remaining != 0 || d.AnyFlex {
		t.Errorf("DistributeMain() = %+v, want zero remaining without flex", d)
	}
}

func TestAllocateFlexProportional(t *testing.T) {
	items := []Item{
		{Attributes: Attributes{Flex: true, Grow: 1}},
		{Attributes: Attributes{Flex: true, Grow: 2}},
		{Attributes: Attributes{Flex: true, Grow: 1}},
	}

	const r = 333.0
	got := Allocate(items, FlexSize{Longitudinal: r})
	want := []float64{r / 4, r / 2, r / 4}

	var sum float64
	for i := range want {
		if !approx(got[i], want[i]) {
			t.Errorf("allotment[%d] = %v, want %v", i, got[i], want[i])
		}
		sum += got[i]
	}
	if !approx(sum, r) {
		t.Errorf("sum = %v, want %v", sum, r)
	}
}

func TestAllocateZeroTotalGrow(t *testing.T) {
	items := []Item{
		{Desired: FlexSize{Longitudinal: 30}},
		{Desired: FlexSize{Longitudinal: 25}, Attributes: Attributes{Flex: true, Grow: 0}},
		{Desired: FlexSize{Longitudinal: 15}, Attributes: Attributes{Flex: true, Grow: -4}},
	}

	got := Allocate(items, FlexSize{Longitudinal: 200})
	want := []float64{30, 25, 15}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("allotment[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestAllocateNegativeGrowCountsAsZero(t *testing.T) {
	items := []Item{
		{Attributes: Attributes{Flex: true, Grow: -1}},
		{Attributes: Attributes{Flex: true, Grow: 1}},
	}
	got := Allocate(items, FlexSize{Longitudinal: 100})
	if got[0] != 0 || got[1] != 100 {
		t.Errorf("Allocate() = %v, want [0 100]", got)
	}
}

func TestScaleFactor(t *testing.T) {
	tests := []struct {
		available, desired, want float64
	}{
		{180, 150, 1.2},
		{100, 200, 0.5},
		{100, 0, 0},
		{-10, 50, 0},
	}
	for _, tt := range tests {
		if got := ScaleFactor(tt.available, tt.desired); !approx(got, tt.want) {
			t.Errorf("ScaleFactor(%v, %v) = %v, want %v", tt.available, tt.desired, got, tt.want)
		}
	}
}

func TestAllocateUnboundedContent(t *testing.T) {
	inf := math.Inf(1)
	tests := []struct {
		name  string
		items []Item
		want  []float64
	}{
		{
			name: "scaled zero stays zero",
			items: []Item{
				{Desired: FlexSize{Longitudinal: 50}},
				{Desired: FlexSize{Longitudinal: 0}},
			},
			want: []float64{inf, 0},
		},
		{
			name: "zero weight flex gets nothing",
			items: []Item{
				{Attributes: Attributes{Flex: true, Grow: 0}},
				{Attributes: Attributes{Flex: true, Grow: 1}},
			},
			want: []float64{0, inf},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Allocate(tt.items, FlexSize{Longitudinal: inf, Lateral: 100})
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("allotment[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMeasureUnboundedWidth(t *testing.T) {
	c := NewRow()
	wide, empty := newFake(50, 20), newFake(0, 20)
	c.Add(wide)
	c.Add(empty)

	got := c.Measure(Size{Width: math.Inf(1), Height: 100})
	if got.Width != 50 || got.Height != 20 {
		t.Errorf("Measure() = %v, want {50 20}", got)
	}
	for _, m := range empty.measured {
		if math.IsNaN(m.Width) || math.IsNaN(m.Height) {
			t.Fatalf("zero-width child measured with %v", empty.measured)
		}
	}
	if last := empty.measured[len(empty.measured)-1]; last.Width != 0 {
		t.Errorf("zero-width child remeasured at width %v, want 0", last.Width)
	}
}

func TestScenarioUniformScale(t *testing.T) {
	c := NewRow()
	c.SetSpacing(10)
	kids := []*fakeElement{newFake(50, 20), newFake(50, 20), newFake(50, 20)}
	for _, k := range kids {
		c.Add(k)
	}

	desired := layout(c, Size{200, 40})
	if !approx(desired.Width, 170) || !approx(desired.Height, 20) {
		t.Errorf("Measure() = %v, want {170 20}", desired)
	}

	wantX := []float64{0, 70, 140}
	for i, k := range kids {
		r := k.rect(t)
		if !approx(r.Width, 60) {
			t.Errorf("child %d width = %v, want 60", i, r.Width)
		}
		if !approx(r.X, wantX[i]) {
			t.Errorf("child %d x = %v, want %v", i, r.X, wantX[i])
		}
	}
}

func TestScenarioFlexFill(t *testing.T) {
	c := NewRow()
	fixed := newFake(100, 30)
	grow := newFake(20, 30)
	c.Add(fixed)
	c.Add(grow, WithGrow(1))

	layout(c, Size{300, 30})

	if r := fixed.rect(t); r.X != 0 || r.Width != 100 {
		t.Errorf("fixed rect = %v, want x=0 width=100", r)
	}
	if r := grow.rect(t); r.X != 100 || r.Width != 200 {
		t.Errorf("flex rect = %v, want x=100 width=200", r)
	}
	if last := grow.measured[len(grow.measured)-1]; last.Width != 200 {
		t.Errorf("flex child re-measured at %v, want width 200", last)
	}
}

func TestScenarioNoChildren(t *testing.T) {
	c := NewColumn()
	if got := c.Measure(Size{120, 80}); got != (Size{120, 80}) {
		t.Errorf("Measure() = %v, want {120 80}", got)
	}
	if got := c.Measure(Size{-5, 80}); got != (Size{0, 80}) {
		t.Errorf("Measure() with negative width = %v, want {0 80}", got)
	}
	if got := c.Arrange(Size{120, 80}); got != (Size{120, 80}) {
		t.Errorf("Arrange() = %v, want {120 80}", got)
	}
	if got := c.Plan(Size{120, 80}); got != nil {
		t.Errorf("Plan() = %v, want nil", got)
	}
}

func TestShrinkToFit(t *testing.T) {
	c := NewRow()
	c.SetSpacing(5)
	kids := []*fakeElement{newFake(100, 10), newFake(100, 10), newFake(100, 10)}
	for _, k := range kids {
		c.Add(k)
	}

	available := Size{210, 10}
	desired := layout(c, available)
	if desired.Width > available.Width {
		t.Errorf("Measure() width = %v exceeds available %v", desired.Width, available.Width)
	}

	var total float64
	for i, k := range kids {
		r := k.rect(t)
		if r.Width < 0 {
			t.Errorf("child %d width = %v, want non-negative", i, r.Width)
		}
		if !approx(r.Width, 200.0/3) {
			t.Errorf("child %d width = %v, want %v", i, r.Width, 200.0/3)
		}
		total += r.Width
	}
	if total+10 > available.Width+eps {
		t.Errorf("arranged total %v + spacing exceeds %v", total, available.Width)
	}
}

func TestGrowIsCappedByIntrinsicOnRemeasure(t *testing.T) {
	c := NewRow()
	a, b := newFake(40, 10), newFake(60, 10)
	c.Add(a)
	c.Add(b)

	c.Measure(Size{200, 10})
	if a.desired.Width != 40 || b.desired.Width != 60 {
		t.Errorf("desired widths = %v, %v, want intrinsic 40, 60", a.desired.Width, b.desired.Width)
	}
	c.Arrange(Size{200, 10})
	if ra, rb := a.rect(t), b.rect(t); !approx(ra.Width+rb.Width, 200) {
		t.Errorf("arranged widths %v + %v, want 200", ra.Width, rb.Width)
	}
}

func TestAbsoluteChildren(t *testing.T) {
	c := NewRow()
	c.SetSpacing(10)
	first := newFake(50, 20)
	overlay := newFake(30, 15)
	rest := newFake(10, 20)
	c.Add(first)
	c.Add(overlay, WithAbsolute())
	c.Add(rest, WithFlex())

	layout(c, Size{200, 40})

	// Two in-flow children: one gap of 10.
	content := Size{190, 40}
	if len(overlay.measured) != 1 || overlay.measured[0] != content {
		t.Errorf("absolute measured with %v, want single call with %v", overlay.measured, content)
	}
	if r := overlay.rect(t); r != (Rect{0, 0, 190, 40}) {
		t.Errorf("absolute rect = %v, want full content at origin", r)
	}
	if r := rest.rect(t); r.X != 60 || r.Width != 140 {
		t.Errorf("flex rect = %v, want x=60 width=140", r)
	}
}

func TestSpacingSeparatesInFlowChildrenOnly(t *testing.T) {
	t.Run("two overlays between two in-flow", func(t *testing.T) {
		c := NewRow()
		c.SetSpacing(10)
		a, over1, over2, b := newFake(50, 20), newFake(30, 15), newFake(20, 10), newFake(40, 20)
		c.Add(a)
		c.Add(over1, WithAbsolute())
		c.Add(over2, WithAbsolute())
		c.Add(b)

		layout(c, Size{200, 40})

		for _, over := range []*fakeElement{over1, over2} {
			if r := over.rect(t); r != (Rect{0, 0, 190, 40}) {
				t.Errorf("absolute rect = %v, want {0 0 190 40}", r)
			}
		}
		if r := b.rect(t); !approx(r.X, a.rect(t).Width+10) {
			t.Errorf("second in-flow x = %v, want %v", r.X, a.rect(t).Width+10)
		}
	})

	t.Run("all absolute", func(t *testing.T) {
		c := NewRow()
		c.SetSpacing(10)
		kids := []*fakeElement{newFake(30, 15), newFake(20, 10), newFake(60, 30)}
		for _, k := range kids {
			c.Add(k, WithAbsolute())
		}

		layout(c, Size{200, 40})

		for i, k := range kids {
			if len(k.measured) != 1 || k.measured[0] != (Size{200, 40}) {
				t.Errorf("child %d measured with %v, want single call with {200 40}", i, k.measured)
			}
			if r := k.rect(t); r != (Rect{0, 0, 200, 40}) {
				t.Errorf("child %d rect = %v, want {0 0 200 40}", i, r)
			}
		}
	})
}

func TestAbsoluteDoesNotAdvanceCursor(t *testing.T) {
	c := NewColumn()
	c.SetSpacing(4)
	a, abs, b := newFake(10, 20), newFake(10, 500), newFake(10, 20)
	c.Add(a)
	c.Add(abs, WithAbsolute())
	c.Add(b)

	c.Arrange(Size{10, 44})
	if r := b.rect(t); r.Y != a.rect(t).Height+4 {
		t.Errorf("second in-flow y = %v, want %v", r.Y, a.rect(t).Height+4)
	}
	if r := abs.rect(t); r.X != 0 || r.Y != 0 {
		t.Errorf("absolute origin = (%v,%v), want (0,0)", r.X, r.Y)
	}
}

func TestSkipMeasure(t *testing.T) {
	c := NewRow()
	cached := newFake(80, 30)
	cached.desired = Size{45, 12}
	other := newFake(50, 30)
	c.Add(cached, WithSkipMeasure())
	c.Add(other)

	before := cached.DesiredSize()
	c.Measure(Size{300, 30})
	if len(cached.measured) != 0 {
		t.Errorf("skip-measure child measured %d times, want 0", len(cached.measured))
	}
	if cached.DesiredSize() != before {
		t.Errorf("desired = %v, want unchanged %v", cached.DesiredSize(), before)
	}

	c.Arrange(Size{300, 30})
	if len(cached.arranged) != 1 {
		t.Fatalf("skip-measure child arranged %d times, want 1", len(cached.arranged))
	}
	if w := cached.rect(t).Width; !approx(w, 45*300.0/95) {
		t.Errorf("width = %v, want cached share %v", w, 45*300.0/95)
	}
}

func TestCrossAlignment(t *testing.T) {
	tests := []struct {
		align Alignment
		want  Rect
	}{
		{AlignAuto, Rect{0, 0, 100, 100}},
		{AlignStretch, Rect{0, 0, 100, 100}},
		{AlignStart, Rect{0, 0, 100, 40}},
		{AlignCenter, Rect{0, 30, 100, 40}},
		{AlignEnd, Rect{0, 60, 100, 40}},
	}

	for _, tt := range tests {
		t.Run(tt.align.String(), func(t *testing.T) {
			c := NewRow()
			e := newFake(100, 40)
			c.Add(e, WithAlign(tt.align))
			c.Arrange(Size{100, 100})
			if got := e.rect(t); got != tt.want {
				t.Errorf("rect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCrossAlignmentClampsOversizedChild(t *testing.T) {
	c := NewColumn()
	e := newFake(300, 10)
	c.Add(e, WithAlign(AlignCenter))
	c.Arrange(Size{100, 10})
	if got := e.rect(t); got != (Rect{0, 0, 100, 10}) {
		t.Errorf("rect = %v, want {0 0 100 10}", got)
	}
}

func TestNativeAlignment(t *testing.T) {
	c := NewColumn()
	e := alignedElement{newFake(20, 10), AlignEnd}
	override := alignedElement{newFake(20, 10), AlignEnd}
	c.Add(e)
	c.Add(override, WithAlign(AlignStart))
	c.Arrange(Size{100, 20})

	if got := e.rect(t); got.X != 80 || got.Width != 20 {
		t.Errorf("native end rect = %v, want x=80 width=20", got)
	}
	if got := override.rect(t); got.X != 0 {
		t.Errorf("attribute override rect = %v, want x=0", got)
	}
}

func TestArrangeShortCircuitsOnZeroDesired(t *testing.T) {
	c := NewRow()
	a, b := newFake(0, 10), newFake(0, 10)
	c.Add(a, WithFlex())
	c.Add(b)

	if got := c.Arrange(Size{100, 10}); got != (Size{100, 10}) {
		t.Errorf("Arrange() = %v, want final size", got)
	}
	if len(a.arranged)+len(b.arranged) != 0 {
		t.Error("children arranged despite zero desired content")
	}
}

func TestMeasureNeverExceedsAvailable(t *testing.T) {
	c := NewRow()
	c.SetSpacing(50)
	for i := 0; i < 4; i++ {
		c.Add(newFake(30, 90))
	}

	available := Size{100, 60}
	got := c.Measure(available)
	if got.Width > available.Width || got.Height > available.Height {
		t.Errorf("Measure() = %v, exceeds available %v", got, available)
	}
}

func TestMeasureReportsPreDistributionSize(t *testing.T) {
	c := NewRow()
	c.SetSpacing(10)
	c.Add(newFake(40, 10))
	c.Add(newFake(60, 10), WithFlex())

	got := c.Measure(Size{500, 10})
	if got.Width != 110 {
		t.Errorf("Measure() width = %v, want 110", got.Width)
	}
}

func TestAxisSymmetry(t *testing.T) {
	type spec struct {
		w, h  float64
		opts  []ChildOption
		align Alignment
	}
	specs := []spec{
		{w: 40, h: 12},
		{w: 10, h: 30, opts: []ChildOption{WithGrow(2)}},
		{w: 25, h: 18, align: AlignCenter},
		{w: 60, h: 70, opts: []ChildOption{WithAbsolute()}, align: AlignEnd},
		{w: 5, h: 8, opts: []ChildOption{WithFlex()}, align: AlignStart},
	}
	available := Size{320, 50}

	for _, scale := range []bool{false, true} {
		row, col := NewRow(), NewColumn()
		row.SetSpacing(6)
		col.SetSpacing(6)

		var rows, cols []*fakeElement
		for _, s := range specs {
			opts := append([]ChildOption{WithAlign(s.align)}, s.opts...)
			if scale {
				opts = []ChildOption{WithAlign(s.align)}
			}
			r, c := newFake(s.w, s.h), newFake(s.h, s.w)
			row.Add(r, opts...)
			col.Add(c, opts...)
			rows = append(rows, r)
			cols = append(cols, c)
		}

		dr := layout(row, available)
		dc := layout(col, Size{available.Height, available.Width})
		if dr != (Size{dc.Height, dc.Width}) {
			t.Errorf("scale=%v: desired %v and %v are not swapped", scale, dr, dc)
		}
		for i := range rows {
			r, c := rows[i].rect(t), cols[i].rect(t)
			swapped := Rect{X: c.Y, Y: c.X, Width: c.Height, Height: c.Width}
			if !approxRect(r, swapped) {
				t.Errorf("scale=%v child %d: row %v, column swapped %v", scale, i, r, swapped)
			}
		}
	}
}

func TestOrientationRoundTrip(t *testing.T) {
	s := Size{Width: 13, Height: 7}
	for _, o := range []Orientation{Horizontal, Vertical} {
		if got := o.ToSize(o.ToFlex(s)); got != s {
			t.Errorf("%v round trip = %v, want %v", o, got, s)
		}
	}
	if got := Vertical.Rect(FlexSize{5, 2}, FlexSize{30, 10}); got != (Rect{2, 5, 10, 30}) {
		t.Errorf("Vertical.Rect() = %v, want {2 5 10 30}", got)
	}
}

func TestPlanMatchesArrange(t *testing.T) {
	c := NewRow()
	c.SetSpacing(3)
	a, b := newFake(20, 10), newFake(30, 10)
	c.Add(a, WithAlign(AlignStart))
	c.Add(b, WithGrow(1))

	c.Measure(Size{100, 10})
	slots := c.Plan(Size{100, 10})
	if len(slots) != 2 {
		t.Fatalf("Plan() returned %d slots, want 2", len(slots))
	}
	if len(a.arranged) != 0 {
		t.Error("Plan() arranged a child")
	}
	c.Arrange(Size{100, 10})
	for i, e := range []*fakeElement{a, b} {
		if slots[i].Child.Element != e {
			t.Errorf("slot %d child mismatch", i)
		}
		if got := e.rect(t); got.X != slots[i].Rect.X || got.Width != slots[i].Rect.Width {
			t.Errorf("slot %d = %v, arranged %v", i, slots[i].Rect, got)
		}
	}
}

func TestAttributeAccessors(t *testing.T) {
	c := NewRow()
	e := newFake(1, 1)
	stranger := newFake(1, 1)
	c.Add(e)

	if c.Grow(e) != DefaultGrow || c.Flex(e) || c.PositionOf(e) != Relative || c.SkipMeasure(e) || c.Align(e) != AlignAuto {
		t.Errorf("default attributes = %+v", c.Children()[0].Attributes)
	}

	c.SetFlex(e, true)
	c.SetGrow(e, 4)
	c.SetPosition(e, Absolute)
	c.SetSkipMeasure(e, true)
	c.SetAlign(e, AlignEnd)

	want := Attributes{Flex: true, Grow: 4, Position: Absolute, SkipMeasure: true, Align: AlignEnd}
	if got := c.Children()[0].Attributes; got != want {
		t.Errorf("attributes = %+v, want %+v", got, want)
	}
	if c.SetFlex(stranger, true) {
		t.Error("SetFlex() on a non-child = true, want false")
	}
	if c.Grow(stranger) != DefaultGrow {
		t.Errorf("Grow() on a non-child = %d, want %d", c.Grow(stranger), DefaultGrow)
	}

	c.SetSpacing(-3)
	if c.Spacing != 0 {
		t.Errorf("Spacing = %v, want 0", c.Spacing)
	}
}
