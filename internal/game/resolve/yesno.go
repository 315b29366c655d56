package resolve

import (
	"fmt"
	"strings"
)

// Likelihood weights the yes/no oracle.
type Likelihood string

const (
	Unlikely Likelihood = "unlikely"
	Possible Likelihood = "possible"
	Likely   Likelihood = "likely"
)

// Likelihoods lists the accepted likelihoods from least to most favourable.
var Likelihoods = []Likelihood{Unlikely, Possible, Likely}

// ParseLikelihood resolves a case-insensitive likelihood name. An empty name
// yields Possible.
func ParseLikelihood(name string) (Likelihood, error) {
	n := Likelihood(strings.ToLower(strings.TrimSpace(name)))
	switch n {
	case "":
		return Possible, nil
	case Unlikely, Possible, Likely:
		return n, nil
	}
	return "", fmt.Errorf("unknown likelihood %q", name)
}

// Threshold is the minimum d6 roll that answers YES. Unknown likelihoods use
// the Possible threshold.
func (l Likelihood) Threshold() int {
	switch l {
	case Unlikely:
		return 5
	case Likely:
		return 3
	default:
		return 4
	}
}

// Answer is the polarity of a yes/no result.
type Answer string

const (
	Yes Answer = "YES"
	No  Answer = "NO"
)

// Emphasis qualifies an answer. The d6 oracle marks only its extreme rolls;
// there is no weak level because no roll produces one.
type Emphasis int

const (
	EmphasisNone Emphasis = iota
	EmphasisStrong
)

func (e Emphasis) String() string {
	if e == EmphasisStrong {
		return "strong"
	}
	return "none"
}

// Qualifier texts attached to the extreme rolls.
const (
	QualifierHigh = "and then some"
	QualifierLow  = "not at all"
)

// YesNoResult is the outcome of one yes/no oracle roll.
type YesNoResult struct {
	Likelihood Likelihood
	Roll       int
	Threshold  int
	Answer     Answer
	Emphasis   Emphasis
	Qualifier  string
}

// EvaluateYesNo resolves the oracle for an already rolled d6.
//
// Answer and emphasis are computed independently from the same die: a 6 is
// always "and then some" and a 1 is always "not at all", whatever the answer.
// So a 1 under Likely is NO "not at all", and a 6 under Unlikely is YES "and
// then some".
// TODO: confirm with the game's author whether emphasis should follow the answer.
func EvaluateYesNo(roll int, l Likelihood) YesNoResult {
	res := YesNoResult{
		Likelihood: l,
		Roll:       roll,
		Threshold:  l.Threshold(),
		Answer:     No,
	}
	if roll >= res.Threshold {
		res.Answer = Yes
	}
	switch roll {
	case 6:
		res.Emphasis, res.Qualifier = EmphasisStrong, QualifierHigh
	case 1:
		res.Emphasis, res.Qualifier = EmphasisStrong, QualifierLow
	}
	return res
}

// String renders the answer with its qualifier, e.g. "YES (and then some!)".
func (r YesNoResult) String() string {
	if r.Qualifier == "" {
		return string(r.Answer)
	}
	return fmt.Sprintf("%s (%s!)", r.Answer, r.Qualifier)
}
