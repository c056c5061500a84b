package flex

// Item is the axis-relative view of a child that the distributor works on.
type Item struct {
	Desired FlexSize
	Attributes
}

// Distribution is the outcome of classifying items into fixed and flexible.
type Distribution struct {
	// Remaining is the longitudinal space left after all fixed in-flow items.
	Remaining float64
	// TotalGrow is the sum of grow weights of in-flow flex items.
	TotalGrow int
	// AnyFlex reports whether at least one in-flow item is flex-marked.
	AnyFlex bool
}

// DistributeMain removes the desired longitudinal size of every fixed in-flow
// item from available and sums the grow weights of the flexible ones.
// Absolute items neither consume nor receive flow space.
func DistributeMain(items []Item, available float64) Distribution {
	d := Distribution{Remaining: nonNegative(available)}
	for _, it := range items {
		if !it.InFlow() {
			continue
		}
		if !it.Flex {
			d.Remaining = nonNegative(d.Remaining - it.Desired.Longitudinal)
			continue
		}
		d.AnyFlex = true
		d.TotalGrow += it.weight()
	}
	return d
}

// Share returns the longitudinal size a flex item receives.
// With a zero total weight the item keeps its desired size; otherwise a
// zero-weight item receives nothing, even from an unbounded pool.
func (d Distribution) Share(it Item) float64 {
	if d.TotalGrow <= 0 {
		return nonNegative(it.Desired.Longitudinal)
	}
	if it.weight() == 0 {
		return 0
	}
	return d.Remaining * float64(it.weight()) / float64(d.TotalGrow)
}

// ScaleFactor is the uniform factor applied to in-flow items when none is
// flexible. A zero desired total yields zero.
func ScaleFactor(available, desired float64) float64 {
	if desired <= 0 {
		return 0
	}
	return nonNegative(available) / desired
}

// Allocate returns the longitudinal allotment of every item for the given
// content size. Absolute items are allotted the full content longitudinal
// extent.
func Allocate(items []Item, content FlexSize) []float64 {
	out := make([]float64, len(items))
	d := DistributeMain(items, content.Longitudinal)

	var scale float64
	if !d.AnyFlex {
		desired := make([]FlexSize, len(items))
		for i, it := range items {
			desired[i] = it.Desired
		}
		scale = ScaleFactor(content.Longitudinal, contentSum(desired).Longitudinal)
	}

	for i, it := range items {
		switch {
		case !it.InFlow():
			out[i] = content.Longitudinal
		case d.AnyFlex && it.Flex:
			out[i] = d.Share(it)
		case d.AnyFlex:
			out[i] = nonNegative(it.Desired.Longitudinal)
		case it.Desired.Longitudinal <= 0:
			// Zero stays zero, including under an infinite factor.
			out[i] = 0
		default:
			out[i] = nonNegative(it.Desired.Longitudinal) * scale
		}
	}
	return out
}
