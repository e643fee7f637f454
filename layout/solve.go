package layout

import "sort"

// Segment is one non-overlapping sub-range of a solved axis.
type Segment struct {
	Start, Length uint16
}

// Solve allocates constraints over an axis of the given length, spacing
// apart, and returns their absolute offsets and lengths in order. See
// Split for the plain-size variant used internally.
func Solve(length uint16, constraints []Constraint, spacing uint16) []Segment {
	sizes := Split(int(length), constraints, int(spacing))
	segments := make([]Segment, len(sizes))
	pos := 0
	for i, s := range sizes {
		segments[i] = Segment{Start: uint16(pos), Length: uint16(s)}
		pos += s + int(spacing)
	}
	return segments
}

// Split resolves constraints over a 1-D axis of the given length and
// spacing, returning each constraint's solved size in order. Sizes sum,
// together with the injected spacing, to at most length; if every
// constraint is Fill, the sizes sum to exactly length minus the total
// spacing (largest-remainder distribution consumes every remaining
// cell).
func Split(length int, constraints []Constraint, spacing int) []int {
	n := len(constraints)
	if n == 0 {
		return nil
	}

	totalSpacing := spacing * (n - 1)
	if totalSpacing < 0 {
		totalSpacing = 0
	}
	avail := length - totalSpacing
	if avail < 0 {
		avail = 0
	}

	desired := make([]int, n)
	fillWeights := make([]int, n)
	total := 0

	for i, c := range constraints {
		switch c.Kind {
		case KindLength:
			desired[i] = int(c.Value)
		case KindPercentage:
			desired[i] = roundDiv(avail*int(c.Value), 100)
		case KindRatio:
			if c.Den == 0 {
				desired[i] = 0
			} else {
				desired[i] = roundDiv(avail*int(c.Num), int(c.Den))
			}
		case KindMin:
			desired[i] = int(c.Value)
		case KindMax:
			v := int(c.Value)
			if v > avail {
				v = avail
			}
			desired[i] = v
		case KindFill:
			desired[i] = 0
			fillWeights[i] = int(c.Weight)
		}
		if desired[i] < 0 {
			desired[i] = 0
		}
		total += desired[i]
	}

	remaining := avail - total
	if remaining > 0 {
		totalFillWeight := 0
		for _, w := range fillWeights {
			totalFillWeight += w
		}
		if totalFillWeight > 0 {
			shares := distributeLargestRemainder(remaining, fillWeights)
			for i := range desired {
				desired[i] += shares[i]
			}
		}
	} else if remaining < 0 {
		shrinkOversubscribed(constraints, desired, -remaining)
	}

	return desired
}

// shrinkOversubscribed reduces desired in place to absorb excess cells,
// shrinking groups in the priority order Fill, Max, Percentage/Ratio,
// Length, Min (Min is shrunk last — it is the most protected kind).
// Within a group, the reduction is distributed proportionally to each
// member's current size using largest-remainder.
func shrinkOversubscribed(constraints []Constraint, desired []int, excess int) {
	groups := [][]Kind{
		{KindFill},
		{KindMax},
		{KindPercentage, KindRatio},
		{KindLength},
		{KindMin},
	}

	for _, kinds := range groups {
		if excess <= 0 {
			return
		}
		var idxs []int
		for i, c := range constraints {
			for _, k := range kinds {
				if c.Kind == k {
					idxs = append(idxs, i)
					break
				}
			}
		}
		if len(idxs) == 0 {
			continue
		}
		weights := make([]int, len(idxs))
		groupTotal := 0
		for k, idx := range idxs {
			weights[k] = desired[idx]
			groupTotal += desired[idx]
		}
		if groupTotal == 0 {
			continue
		}
		shrinkAmt := excess
		if shrinkAmt > groupTotal {
			shrinkAmt = groupTotal
		}
		shares := distributeLargestRemainder(shrinkAmt, weights)
		for k, idx := range idxs {
			desired[idx] -= shares[k]
			if desired[idx] < 0 {
				desired[idx] = 0
			}
		}
		excess -= shrinkAmt
	}
}

// roundDiv computes round(num/den) with half-up rounding, for
// non-negative num and positive den.
func roundDiv(num, den int) int {
	if den == 0 {
		return 0
	}
	return (num + den/2) / den
}

// distributeLargestRemainder splits total into len(weights) non-negative
// integer shares proportional to weights, using integer largest
// remainder: each share is floor(total*w/sumW), with the residual cells
// handed one at a time to the entries with the largest fractional
// remainder, ties broken by earlier index.
func distributeLargestRemainder(total int, weights []int) []int {
	n := len(weights)
	shares := make([]int, n)
	if total <= 0 {
		return shares
	}
	sumW := 0
	for _, w := range weights {
		sumW += w
	}
	if sumW <= 0 {
		return shares
	}

	remainders := make([]int, n)
	base := 0
	for i, w := range weights {
		num := total * w
		shares[i] = num / sumW
		remainders[i] = num % sumW
		base += shares[i]
	}

	leftover := total - base
	if leftover <= 0 {
		return shares
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]] > remainders[order[b]]
	})

	for k := 0; k < leftover && k < n; k++ {
		shares[order[k]]++
	}
	return shares
}
