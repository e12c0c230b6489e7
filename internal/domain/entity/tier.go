package entity

// Tier is one of the five fixed reward categories. Payout is in tenths of a
// coin; Weight is the relative draw probability. The table is process-wide
// constant configuration: it is not persisted and not user-editable.
type Tier struct {
	Name   string  `json:"name"`
	Payout int64   `json:"-"`
	Weight float64 `json:"-"`
}

// Tier names
const (
	TierCommon    = "common"
	TierRare      = "rare"
	TierUnique    = "unique"
	TierLegendary = "legendary"
	TierMythic    = "mythic"
)

// DefaultTiers returns the fixed reward table: payouts 0.1, 0.5, 1, 10, 25
// coins with weights 0.40, 0.30, 0.15, 0.10, 0.05.
func DefaultTiers() []Tier {
	return []Tier{
		{Name: TierCommon, Payout: 1, Weight: 0.40},
		{Name: TierRare, Payout: 5, Weight: 0.30},
		{Name: TierUnique, Payout: 10, Weight: 0.15},
		{Name: TierLegendary, Payout: 100, Weight: 0.10},
		{Name: TierMythic, Payout: 250, Weight: 0.05},
	}
}

// TierByName looks a tier up in the default table
func TierByName(name string) (Tier, bool) {
	for _, tier := range DefaultTiers() {
		if tier.Name == name {
			return tier, true
		}
	}
	return Tier{}, false
}
