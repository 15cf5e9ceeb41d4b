package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanAccessDashboardMatrix(t *testing.T) {
	assert.False(t, CanAccess(TierStarter, FeatureDashboardStats))
	assert.True(t, CanAccess(TierBusiness, FeatureDashboardStats))
	assert.True(t, CanAccess(TierPremium, FeatureDashboardStats))
}

func TestCanAccessBaseFeaturesForAllTiers(t *testing.T) {
	for _, tier := range []Tier{TierStarter, TierBusiness, TierPremium} {
		assert.True(t, CanAccess(tier, FeaturePOSBasic), "pos_basic for %s", tier)
		assert.True(t, CanAccess(tier, FeatureSalesHistory), "sales_history for %s", tier)
		assert.True(t, CanAccess(tier, FeatureReceiptPrinting), "receipt_printing for %s", tier)
	}
}

func TestCanAccessPremiumOnly(t *testing.T) {
	for _, f := range []string{FeatureMultiShop, FeatureExports, FeatureAdvancedCharts} {
		assert.False(t, CanAccess(TierStarter, f), "%s must be hidden from starter", f)
		assert.False(t, CanAccess(TierBusiness, f), "%s must be hidden from business", f)
		assert.True(t, CanAccess(TierPremium, f), "%s must be open to premium", f)
	}
}

// Unknown feature keys fail closed for every tier.
func TestCanAccessUnknownFeature(t *testing.T) {
	for _, tier := range []Tier{TierStarter, TierBusiness, TierPremium} {
		assert.False(t, CanAccess(tier, "time_travel"))
		assert.False(t, CanAccess(tier, ""))
	}
}

func TestTierOrdering(t *testing.T) {
	assert.True(t, TierStarter.Less(TierBusiness))
	assert.True(t, TierBusiness.Less(TierPremium))
	assert.False(t, TierPremium.Less(TierBusiness))
	assert.False(t, TierStarter.Less(TierStarter))
}

func TestParseTierDefaultsToStarter(t *testing.T) {
	assert.Equal(t, TierBusiness, ParseTier("business"))
	assert.Equal(t, TierStarter, ParseTier("gold"))
	assert.Equal(t, TierStarter, ParseTier(""))
}
