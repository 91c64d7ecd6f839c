package cart

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ShippingProgress describes how far a subtotal is from the free-shipping threshold.
type ShippingProgress struct {
	Threshold decimal.Decimal `json:"threshold" swaggertype:"string" example:"75.00"`
	Remaining decimal.Decimal `json:"remaining" swaggertype:"string" example:"15.00"`
	Qualifies bool            `json:"qualifies" example:"false"`
	// Percent is 0-100, for progress bars.
	Percent float64 `json:"percent" example:"80"`
}

// FreeShipping computes free-shipping progress for a subtotal.
func FreeShipping(subtotal, threshold decimal.Decimal) ShippingProgress {
	remaining := threshold.Sub(subtotal)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	percent := 100.0
	if threshold.IsPositive() {
		percent = clamp(subtotal.Div(threshold).Mul(hundred).InexactFloat64(), 0, 100)
	}

	return ShippingProgress{
		Threshold: threshold,
		Remaining: remaining,
		Qualifies: subtotal.GreaterThanOrEqual(threshold),
		Percent:   percent,
	}
}

// RewardTier is one step of a tiered promotion.
type RewardTier struct {
	Threshold decimal.Decimal `json:"threshold" swaggertype:"string" example:"100.00"`
	Label     string          `json:"label" example:"10% off"`
}

// RewardProgress describes the next unmet tier for a subtotal.
type RewardProgress struct {
	Unlocked []RewardTier `json:"unlocked"`
	// Next is nil when every tier is unlocked.
	Next      *RewardTier     `json:"next,omitempty"`
	Remaining decimal.Decimal `json:"remaining" swaggertype:"string"`
	// Progress is 0-1 between the previous tier's threshold and Next.
	Progress float64 `json:"progress" example:"0.4"`
}

// Rewards walks the tiers in ascending threshold order and returns the first unmet
// tier with linear progress from the previous tier (or zero) towards it.
func Rewards(subtotal decimal.Decimal, tiers []RewardTier) RewardProgress {
	sorted := make([]RewardTier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Threshold.LessThan(sorted[j].Threshold)
	})

	result := RewardProgress{Unlocked: []RewardTier{}, Remaining: decimal.Zero, Progress: 1}
	previous := decimal.Zero
	for i := range sorted {
		tier := sorted[i]
		if subtotal.GreaterThanOrEqual(tier.Threshold) {
			result.Unlocked = append(result.Unlocked, tier)
			previous = tier.Threshold
			continue
		}

		next := tier
		result.Next = &next
		result.Remaining = tier.Threshold.Sub(subtotal)
		span := tier.Threshold.Sub(previous)
		if span.IsPositive() {
			result.Progress = clamp(subtotal.Sub(previous).Div(span).InexactFloat64(), 0, 1)
		} else {
			result.Progress = 0
		}
		break
	}
	return result
}

// ParseRewardTiers parses "threshold:label" pairs separated by commas,
// e.g. "50:Free tote,100:10% off".
func ParseRewardTiers(s string) ([]RewardTier, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	tiers := make([]RewardTier, 0, len(parts))
	for _, p := range parts {
		threshold, label, ok := strings.Cut(strings.TrimSpace(p), ":")
		if !ok || strings.TrimSpace(label) == "" {
			return nil, fmt.Errorf("reward tier %q: expected threshold:label", p)
		}
		d, err := decimal.NewFromString(strings.TrimSpace(threshold))
		if err != nil {
			return nil, fmt.Errorf("reward tier %q: %w", p, err)
		}
		if d.IsNegative() {
			return nil, fmt.Errorf("reward tier %q: threshold must not be negative", p)
		}
		tiers = append(tiers, RewardTier{Threshold: d, Label: strings.TrimSpace(label)})
	}
	return tiers, nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
