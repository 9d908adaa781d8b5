package model

// CatalogTask describes one stop on the cleaning route shown to staff.
type CatalogTask struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Order  int    `json:"order"`
	Weight int    `json:"weight"`
	Advice string `json:"advice"`
}

// TaskCatalog is the fixed route, in walking order. Weights sum to 100.
var TaskCatalog = []CatalogTask{
	{ID: "trash", Label: "Trash collection", Order: 1, Weight: 10, Advice: "Check the bottom of the bin and under the desk."},
	{ID: "bed", Label: "Bed making", Order: 2, Weight: 30, Advice: "Smooth every wrinkle out of the sheets and align the pillow logos."},
	{ID: "bath", Label: "Bathroom", Order: 3, Weight: 20, Advice: "Look for hair in the drain and water scale on the mirror."},
	{ID: "sink", Label: "Washbasin", Order: 4, Weight: 15, Advice: "Wipe water drops off the glasses and put amenities back in place."},
	{ID: "floor", Label: "Floor (vacuum)", Order: 5, Weight: 15, Advice: "Vacuum from the back of the room toward the door and even out the carpet pile."},
	{ID: "amen", Label: "Final check", Order: 6, Weight: 10, Advice: "Look back from the door, test the lights and check for forgotten items."},
}
