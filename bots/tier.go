package bots

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Tier is a difficulty level from MinTier (weakest) to MaxTier.
type Tier int

const (
	MinTier Tier = 1
	MaxTier Tier = 10
)

var ErrInvalidTier = errors.New("tier must be between 1 and 10")

type Strategy int

const (
	StrategyRandom Strategy = iota + 1
	StrategyCaptures
	StrategySearch
)

// TierConfig is what a tier resolves to. Depth, Pool and BestProbability
// only apply to StrategySearch. When BestProbability is set the best
// candidate is played with that probability and the second best otherwise;
// when it is zero a candidate is drawn uniformly from the top Pool.
type TierConfig struct {
	Strategy        Strategy
	Depth           int
	Pool            int
	BestProbability float64
}

func ParseTier(s string) (Tier, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse tier %q: %w", s, ErrInvalidTier)
	}
	t := Tier(n)
	if !t.Valid() {
		return 0, fmt.Errorf("parse tier %d: %w", n, ErrInvalidTier)
	}
	return t, nil
}

func (t Tier) Valid() bool {
	return t >= MinTier && t <= MaxTier
}

// Clamp forces t into [MinTier, MaxTier].
func (t Tier) Clamp() Tier {
	if t < MinTier {
		return MinTier
	}
	if t > MaxTier {
		return MaxTier
	}
	return t
}

func (t Tier) String() string {
	return fmt.Sprintf("tier %d", int(t))
}

// Config resolves the tier to its strategy. Out of range tiers are clamped.
func (t Tier) Config() TierConfig {
	switch t = t.Clamp(); {
	case t == 1:
		return TierConfig{Strategy: StrategyRandom}
	case t == 2:
		return TierConfig{Strategy: StrategyCaptures}
	case t <= 4:
		return TierConfig{Strategy: StrategySearch, Depth: 2, Pool: 5}
	case t <= 7:
		return TierConfig{Strategy: StrategySearch, Depth: 3, Pool: 3}
	default:
		return TierConfig{Strategy: StrategySearch, Depth: 4, Pool: 2, BestProbability: 0.9}
	}
}
