package inventory

// Item is a stock-keeping record for floor materials.
type Item struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	Unit         string `json:"unit"`
	MinThreshold int    `json:"minThreshold"`
}

// LowStock reports whether the item has fallen below its threshold.
func (i Item) LowStock() bool {
	return i.Quantity < i.MinThreshold
}
