package model

// Update frequencies for inventory items. Daily items are weighed every
// shift; weekly items (flour sacks, oil cans) only once a week.
const (
	FrequencyDaily  = "daily"
	FrequencyWeekly = "weekly"
)

func ValidFrequency(f string) bool {
	return f == FrequencyDaily || f == FrequencyWeekly
}

// InventoryItem is one weighed raw material. StartingWeight and EndingWeight
// bracket the current period; their difference is the actual usage a daily
// report snapshots. Starting-weight changes are gated, ending-weight changes
// are not.
type InventoryItem struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	StartingWeight  float64 `json:"startingWeight"`
	EndingWeight    float64 `json:"endingWeight"`
	Unit            string  `json:"unit"`
	LastUpdated     string  `json:"lastUpdated"`
	UpdateFrequency string  `json:"updateFrequency"`
}

// InventoryUpdate carries a partial update; nil fields are left unchanged.
// Whatever subset is set, LastUpdated is touched to the app date.
type InventoryUpdate struct {
	Name            *string
	StartingWeight  *float64
	EndingWeight    *float64
	Unit            *string
	UpdateFrequency *string
}
