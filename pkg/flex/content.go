package flex

// AvailableContentSize returns the space left for children once the gaps
// between childCount in-flow children are removed, along with the total
// spacing. The longitudinal result never goes below zero; the lateral extent
// is left unchanged.
func AvailableContentSize(available FlexSize, childCount int, spacing float64) (FlexSize, float64) {
	if childCount <= 1 {
		return available, 0
	}
	total := float64(childCount-1) * nonNegative(spacing)
	return FlexSize{
		Longitudinal: nonNegative(available.Longitudinal - total),
		Lateral:      available.Lateral,
	}, total
}

// DesiredContentSize aggregates desired sizes into the content size a row of
// children wants: longitudinal extents are summed, lateral ones maxed. The
// result is clamped to available.
func DesiredContentSize(desired []FlexSize, available FlexSize) FlexSize {
	return minFlex(contentSum(desired), available)
}

// contentSum is DesiredContentSize without the clamp.
func contentSum(desired []FlexSize) FlexSize {
	var sum FlexSize
	for _, d := range desired {
		sum.Longitudinal += nonNegative(d.Longitudinal)
		if d.Lateral > sum.Lateral {
			sum.Lateral = d.Lateral
		}
	}
	return sum
}
