package character

import "sort"

// BaseHP and BaseAP are the flat components of the capacity formulas.
const (
	BaseHP = 10
	BaseAP = 5
)

// DeriveMaxHP returns 10 + athletics. Negative input is not rejected.
func DeriveMaxHP(athletics int) int {
	return BaseHP + athletics
}

// DeriveMaxAP returns the sum of the two highest skill levels plus 5.
//
// Postcondition: the result is invariant under permutation of levels. When
// fewer than two levels are supplied the missing ones count as 0.
func DeriveMaxAP(levels []int) int {
	sorted := make([]int, len(levels), max(len(levels), 2))
	copy(sorted, levels)
	for len(sorted) < 2 {
		sorted = append(sorted, 0)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	return sorted[0] + sorted[1] + BaseAP
}

// ClampCurrentToMax returns min(current, maxValue).
func ClampCurrentToMax(current, maxValue int) int {
	if current > maxValue {
		return maxValue
	}
	return current
}

// Capacities are the derived maxima for a set of skills.
type Capacities struct {
	MaxHP int
	MaxAP int
}

// Derive computes both maxima from skills.
func Derive(skills Skills) Capacities {
	return Capacities{
		MaxHP: DeriveMaxHP(skills.Athletics),
		MaxAP: DeriveMaxAP(skills.Levels()),
	}
}

// StatBlock is what the sheet shows: derived maxima and current values
// clamped to them.
type StatBlock struct {
	Capacities
	CurrentHP int
	CurrentAP int
}

// Sheet derives the stat block for c. The character itself is not modified.
func Sheet(c Character) StatBlock {
	caps := Derive(c.Skills)
	return StatBlock{
		Capacities: caps,
		CurrentHP:  ClampCurrentToMax(c.CurrentHP, caps.MaxHP),
		CurrentAP:  ClampCurrentToMax(c.CurrentAP, caps.MaxAP),
	}
}

// Clamped returns a copy of c with CurrentHP and CurrentAP clamped to the
// maxima derived from its skills.
func (c Character) Clamped() Character {
	sb := Sheet(c)
	c.CurrentHP = sb.CurrentHP
	c.CurrentAP = sb.CurrentAP
	return c
}
