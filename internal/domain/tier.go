package domain

// Tier is a subscription level. Tiers are totally ordered
// (starter < business < premium) but the ordering is only used for
// upgrade/downgrade comparisons in the settings screen, never for
// feature authorization — that goes through CanAccess.
type Tier string

const (
	TierStarter  Tier = "starter"
	TierBusiness Tier = "business"
	TierPremium  Tier = "premium"
)

// Monthly subscription price per tier, in FCFA.
var TierPrices = map[Tier]int64{
	TierStarter:  0,
	TierBusiness: 5000,
	TierPremium:  15000,
}

var tierRank = map[Tier]int{
	TierStarter:  0,
	TierBusiness: 1,
	TierPremium:  2,
}

// ParseTier maps a stored string to a Tier, defaulting to starter for
// anything unknown (the store may hold stale or missing values).
func ParseTier(s string) Tier {
	switch Tier(s) {
	case TierBusiness:
		return TierBusiness
	case TierPremium:
		return TierPremium
	default:
		return TierStarter
	}
}

func (t Tier) Valid() bool {
	_, ok := tierRank[t]
	return ok
}

// Less reports whether t is a strictly lower tier than o.
func (t Tier) Less(o Tier) bool {
	return tierRank[t] < tierRank[o]
}

func (t Tier) String() string { return string(t) }
