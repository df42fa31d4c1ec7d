package layout

import "fmt"

// Layout constants
const (
	MinFixedCells   = 3  // Fixed panes never shrink below this
	BookmarksWidth  = 40 // Default width of the bookmarks pane
	StatusBarHeight = 1
	BorderWidth     = 1
)

// Axis is the direction a split lays its children out along.
type Axis int

const (
	// Horizontal places children side by side and divides the width.
	Horizontal Axis = iota
	// Vertical stacks children and divides the height.
	Vertical
)

// String returns the axis name for debugging.
func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		return "unknown"
	}
}

// Length picks the dimension the axis divides.
func (a Axis) Length(width, height int) int {
	if a == Vertical {
		return height
	}
	return width
}

// PolicyKind tags a SizePolicy.
type PolicyKind int

const (
	Proportional PolicyKind = iota
	Fixed
	ProportionalAdjusted
	FixedAdjusted
)

// SizePolicy is a pane's declared sizing rule. Layout reads it, never writes it.
type SizePolicy struct {
	Kind  PolicyKind
	Cells int // Baseline for Fixed and FixedAdjusted
	Delta int // Cumulative override for the adjusted kinds
}

// ProportionalPolicy shares the remaining space equally with siblings.
func ProportionalPolicy() SizePolicy {
	return SizePolicy{Kind: Proportional}
}

// FixedPolicy reserves cells at creation.
func FixedPolicy(cells int) SizePolicy {
	return SizePolicy{Kind: Fixed, Cells: cells}
}

// IsFixed reports whether the policy reserves cells ahead of proportional siblings.
func (p SizePolicy) IsFixed() bool {
	return p.Kind == Fixed || p.Kind == FixedAdjusted
}

// FixedCells returns the reserved cells after applying the delta and the floor.
func (p SizePolicy) FixedCells() int {
	switch p.Kind {
	case Fixed:
		return p.Cells
	case FixedAdjusted:
		return max(p.Cells+p.Delta, MinFixedCells)
	default:
		return 0
	}
}

// Adjust returns the policy with delta folded into its override.
func (p SizePolicy) Adjust(delta int) SizePolicy {
	switch p.Kind {
	case Proportional:
		return SizePolicy{Kind: ProportionalAdjusted, Delta: delta}
	case Fixed:
		return SizePolicy{Kind: FixedAdjusted, Cells: p.Cells, Delta: delta}
	default:
		p.Delta += delta
		return p
	}
}

func (p SizePolicy) String() string {
	switch p.Kind {
	case Proportional:
		return "proportional"
	case Fixed:
		return fmt.Sprintf("fixed(%d)", p.Cells)
	case ProportionalAdjusted:
		return fmt.Sprintf("proportional%+d", p.Delta)
	case FixedAdjusted:
		return fmt.Sprintf("fixed(%d)%+d", p.Cells, p.Delta)
	default:
		return "unknown"
	}
}

// Allocate divides available cells among children with the given policies.
// Fixed children are reserved first; the rest is split equally among the
// proportional children, shifted by the adjusted children's deltas. When
// available covers the reserved cells, the result sums to available.
func Allocate(available int, policies []SizePolicy) []int {
	sizes := make([]int, len(policies))
	if len(policies) == 0 {
		return sizes
	}

	reserved := 0
	fixedCount := 0
	adjustment := 0
	for i, p := range policies {
		switch {
		case p.IsFixed():
			sizes[i] = p.FixedCells()
			reserved += sizes[i]
			fixedCount++
		case p.Kind == ProportionalAdjusted:
			adjustment += p.Delta
		}
	}

	if reserved > available {
		shrinkFixed(sizes, policies, reserved-available)
		return sizes
	}

	toDivide := available - reserved
	n := len(policies) - fixedCount

	// Nothing shares the space: the last child absorbs what is left.
	if n == 0 {
		sizes[len(sizes)-1] += toDivide
		return sizes
	}

	base := toDivide/n - abs(adjustment)/n
	if adjustment < 0 {
		base = toDivide/n + abs(adjustment)/n
	}
	remainder := toDivide%n - adjustment%n

	for i, p := range policies {
		switch p.Kind {
		case Proportional:
			sizes[i] = base
		case ProportionalAdjusted:
			sizes[i] = base + p.Delta
		}
	}

	// The remainder can exceed n, so keep cycling until it is spent.
	for remainder != 0 {
		for i, p := range policies {
			if remainder == 0 {
				break
			}
			if p.IsFixed() {
				continue
			}
			if remainder > 0 {
				sizes[i]++
				remainder--
			} else {
				sizes[i]--
				remainder++
			}
		}
	}

	rebalanceNegative(sizes, policies)
	return sizes
}

// shrinkFixed takes excess cells back from fixed children, last first,
// without crossing the minimum.
func shrinkFixed(sizes []int, policies []SizePolicy, excess int) {
	for i := len(sizes) - 1; i >= 0 && excess > 0; i-- {
		if !policies[i].IsFixed() {
			continue
		}
		give := min(excess, max(sizes[i]-MinFixedCells, 0))
		sizes[i] -= give
		excess -= give
	}
}

// rebalanceNegative clamps proportional children at zero and takes the
// deficit from the largest proportional sibling.
func rebalanceNegative(sizes []int, policies []SizePolicy) {
	deficit := 0
	for i, p := range policies {
		if !p.IsFixed() && sizes[i] < 0 {
			deficit -= sizes[i]
			sizes[i] = 0
		}
	}
	for deficit > 0 {
		largest := -1
		for i, p := range policies {
			if p.IsFixed() {
				continue
			}
			if largest < 0 || sizes[i] > sizes[largest] {
				largest = i
			}
		}
		if largest < 0 || sizes[largest] == 0 {
			return
		}
		take := min(deficit, sizes[largest])
		sizes[largest] -= take
		deficit -= take
	}
}

// Offsets returns the starting cell of each allocation.
func Offsets(sizes []int) []int {
	offsets := make([]int, len(sizes))
	acc := 0
	for i, s := range sizes {
		offsets[i] = acc
		acc += s
	}
	return offsets
}

// ContentWidth returns the inner width for content (excluding borders).
func ContentWidth(panelWidth int) int {
	return max(panelWidth-BorderWidth*2, 0)
}

// ContentHeight returns the inner height for content (excluding borders).
func ContentHeight(panelHeight int) int {
	return max(panelHeight-BorderWidth*2, 0)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
