package flex

import "fmt"

// Element is a host-owned layout participant.
//
// Measure asks the element to compute its desired size for the given
// available size; the result is read back through DesiredSize. Arrange
// commits the element's final rectangle, relative to the container origin.
type Element interface {
	Measure(available Size)
	Arrange(r Rect)
	DesiredSize() Size
}

// Aligner is implemented by elements that carry their own cross-axis
// alignment. It is consulted when a child's Align attribute is AlignAuto.
// o is the orientation of the container asking: a horizontal container
// wants the element's vertical alignment and vice versa.
type Aligner interface {
	CrossAlignment(o Orientation) Alignment
}

// Position controls whether a child takes part in the flow.
type Position uint8

const (
	// Relative children are placed one after the other along the main axis.
	Relative Position = iota
	// Absolute children are placed at the content origin and occupy no flow space.
	Absolute
)

func (p Position) String() string {
	switch p {
	case Relative:
		return "relative"
	case Absolute:
		return "absolute"
	default:
		return fmt.Sprintf("Position(%d)", uint8(p))
	}
}

// Alignment is a child's placement along the lateral axis.
type Alignment uint8

const (
	// AlignAuto defers to the element's Aligner, falling back to AlignStretch.
	AlignAuto Alignment = iota
	// AlignStretch fills the lateral extent.
	AlignStretch
	// AlignStart places the child at the lateral start with its desired size.
	AlignStart
	// AlignCenter centers the child's desired size in the lateral extent.
	AlignCenter
	// AlignEnd places the child at the lateral end with its desired size.
	AlignEnd
)

func (a Alignment) String() string {
	switch a {
	case AlignAuto:
		return "auto"
	case AlignStretch:
		return "stretch"
	case AlignStart:
		return "start"
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return fmt.Sprintf("Alignment(%d)", uint8(a))
	}
}

// DefaultGrow is the grow weight of a child that does not set one.
const DefaultGrow = 1

// Attributes are the per-child layout settings.
type Attributes struct {
	// Flex marks the child as sharing the space left by fixed children.
	Flex bool
	// Grow is the child's weight within the flexible space. Negative values
	// are treated as zero.
	Grow int
	// Position takes the child out of the flow when Absolute.
	Position Position
	// SkipMeasure leaves the element's cached desired size untouched during
	// Measure. The child is still arranged.
	SkipMeasure bool
	// Align is the lateral placement.
	Align Alignment
}

// DefaultAttributes returns the attributes of a freshly added child.
func DefaultAttributes() Attributes {
	return Attributes{Grow: DefaultGrow}
}

// InFlow reports whether the child takes part in main-axis placement.
func (a Attributes) InFlow() bool { return a.Position != Absolute }

func (a Attributes) weight() int {
	if a.Grow < 0 {
		return 0
	}
	return a.Grow
}

// Child pairs a host element with its layout attributes.
type Child struct {
	Element Element
	Attributes
}

// alignment resolves AlignAuto through the element.
func (c *Child) alignment(o Orientation) Alignment {
	if c.Align != AlignAuto {
		return c.Align
	}
	if a, ok := c.Element.(Aligner); ok {
		if v := a.CrossAlignment(o); v != AlignAuto {
			return v
		}
	}
	return AlignStretch
}

// ChildOption configures a child as it is added.
type ChildOption func(*Attributes)

// WithFlex marks the child as flexible.
func WithFlex() ChildOption { return func(a *Attributes) { a.Flex = true } }

// WithGrow marks the child as flexible with the given weight.
func WithGrow(grow int) ChildOption {
	return func(a *Attributes) { a.Flex = true; a.Grow = grow }
}

// WithPosition sets the child's position.
func WithPosition(p Position) ChildOption { return func(a *Attributes) { a.Position = p } }

// WithAbsolute takes the child out of the flow.
func WithAbsolute() ChildOption { return WithPosition(Absolute) }

// WithSkipMeasure excludes the child from measurement.
func WithSkipMeasure() ChildOption { return func(a *Attributes) { a.SkipMeasure = true } }

// WithAlign sets the child's lateral alignment.
func WithAlign(al Alignment) ChildOption { return func(a *Attributes) { a.Align = al } }

// WithAttributes replaces all attributes at once.
func WithAttributes(attrs Attributes) ChildOption { return func(a *Attributes) { *a = attrs } }
