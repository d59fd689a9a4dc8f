package reduce

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Strategy selects which redexes a reduction contracts and in which order.
type Strategy int

const (
	// CBN is call-by-name: weak head reduction, arguments are substituted
	// unreduced.
	CBN Strategy = iota
	// NOR is normal order: leftmost-outermost reduction to normal form.
	NOR
	// CBV is call-by-value: arguments are reduced to weak normal form before
	// substitution and abstraction bodies are left alone.
	CBV
	// APP is applicative order: leftmost-innermost reduction to normal form.
	APP
	// HAP is hybrid applicative order. Function positions are reduced by CBV.
	HAP
	// HSR is head spine reduction: reduces to head normal form.
	HSR
	// HNO is hybrid normal order. Function positions are reduced by HSR.
	HNO
)

var strategies = []Strategy{CBN, NOR, CBV, APP, HAP, HSR, HNO}

var strategyNames = []string{"CBN", "NOR", "CBV", "APP", "HAP", "HSR", "HNO"}

var strategyDescriptions = []string{
	"call-by-name",
	"normal order",
	"call-by-value",
	"applicative order",
	"hybrid applicative order",
	"head spine reduction",
	"hybrid normal order",
}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// Description returns the long name of s.
func (s Strategy) Description() string {
	if s < 0 || int(s) >= len(strategyDescriptions) {
		return s.String()
	}
	return strategyDescriptions[s]
}

// Strategies returns every strategy in declaration order.
func Strategies() []Strategy {
	return slices.Clone(strategies)
}

// ParseStrategy looks up a strategy by its short name, ignoring case.
func ParseStrategy(name string) (Strategy, error) {
	i := slices.Index(strategyNames, strings.ToUpper(strings.TrimSpace(name)))
	if i < 0 {
		return 0, fmt.Errorf("unknown strategy %q (want one of %s)", name, strings.Join(strategyNames, ", "))
	}
	return Strategy(i), nil
}
