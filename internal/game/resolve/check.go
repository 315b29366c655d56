// Package resolve implements the dice resolution procedures: skill checks
// against a difficulty class, the weighted yes/no oracle and rolls against
// the d6 oracle tables.
package resolve

// DefaultDC is the difficulty class used when none is supplied.
const DefaultDC = 8

// SkillCheckInput carries the raw values a check is resolved against. The
// zero value is not a sensible check; use NewSkillCheckInput for defaults.
type SkillCheckInput struct {
	Skill    int
	DC       int
	Modifier int
}

// NewSkillCheckInput returns an input with skill 0, DefaultDC and modifier 0.
func NewSkillCheckInput() SkillCheckInput {
	return SkillCheckInput{DC: DefaultDC}
}

// SkillCheckResult is the outcome of a single skill check.
type SkillCheckResult struct {
	SkillCheckInput
	Dice    []int
	Roll    int
	Total   int
	Success bool
}

// EvaluateSkillCheck resolves a check for an already rolled 2d6 total.
//
// Postcondition: Total == roll + in.Skill + in.Modifier; Success == Total >= in.DC.
func EvaluateSkillCheck(roll int, in SkillCheckInput) SkillCheckResult {
	total := roll + in.Skill + in.Modifier
	return SkillCheckResult{
		SkillCheckInput: in,
		Roll:            roll,
		Total:           total,
		Success:         total >= in.DC,
	}
}
