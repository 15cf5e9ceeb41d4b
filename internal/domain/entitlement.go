package domain

// Feature keys. The set is closed and known at build time.
const (
	FeaturePOSBasic        = "pos_basic"
	FeatureSalesHistory    = "sales_history"
	FeatureReceiptPrinting = "receipt_printing"
	FeatureStockTracking   = "stock_tracking"
	FeatureDashboardStats  = "dashboard_stats"
	FeatureMultiUser       = "multi_user"
	FeatureLowStockAlerts  = "low_stock_alerts"
	FeatureMultiShop       = "multi_shop"
	FeatureQRCodes         = "qr_codes"
	FeatureWhatsAppAlerts  = "whatsapp_alerts"
	FeatureExports         = "exports"
	FeatureAdvancedCharts  = "advanced_charts"
)

// featureTiers is the single source of truth for entitlements. Access
// decisions consult this table, not the tier ordering, even though the
// table happens to form a superset chain today.
var featureTiers = map[string][]Tier{
	FeaturePOSBasic:        {TierStarter, TierBusiness, TierPremium},
	FeatureSalesHistory:    {TierStarter, TierBusiness, TierPremium},
	FeatureReceiptPrinting: {TierStarter, TierBusiness, TierPremium},
	FeatureStockTracking:   {TierStarter, TierBusiness, TierPremium},

	FeatureDashboardStats: {TierBusiness, TierPremium},
	FeatureMultiUser:      {TierBusiness, TierPremium},
	FeatureLowStockAlerts: {TierBusiness, TierPremium},

	FeatureMultiShop:      {TierPremium},
	FeatureQRCodes:        {TierPremium},
	FeatureWhatsAppAlerts: {TierPremium},
	FeatureExports:        {TierPremium},
	FeatureAdvancedCharts: {TierPremium},
}

// CanAccess reports whether the given tier may use a feature.
// Unknown feature keys fail closed.
func CanAccess(tier Tier, feature string) bool {
	for _, t := range featureTiers[feature] {
		if t == tier {
			return true
		}
	}
	return false
}
