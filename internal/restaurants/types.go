package restaurants

// #region record

// Record is one restaurant row. The experiential tiers (food quality,
// crowdedness, length of stay) are synthetic augmentation columns consumed
// only by the preference reasoning rules; they may be empty for rows imported
// from an unaugmented dataset.
type Record struct {
	Name         string
	PriceRange   string
	Area         string
	Food         string
	Phone        string
	Addr         string
	Postcode     string
	FoodQuality  string
	Crowdedness  string
	LengthOfStay string
}

// #endregion

// #region tiers

// Augmentation tier values, mirroring the dataset expansion tool.
var (
	FoodQualityTiers  = []string{"mediocre", "good", "great"}
	CrowdednessTiers  = []string{"low", "medium", "busy"}
	LengthOfStayTiers = []string{"short", "medium", "long"}
)

// #endregion
