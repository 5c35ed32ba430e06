package domain

// BookingSummary is the derived cost breakdown for a completed selection.
// It is recomputed on every read from the current selection and never stored,
// so it can never go stale relative to the state it was derived from.
type BookingSummary struct {
	Vehicle    Vehicle `json:"vehicle"`
	Days       int     `json:"days"`
	BaseCost   Money   `json:"baseCost"`
	AddonsCost Money   `json:"addonsCost"`
	Subtotal   Money   `json:"subtotal"`
	Tax        Money   `json:"tax"`
	Total      Money   `json:"total"`
	// Addons holds the resolved Addon objects for the selected ids,
	// in selection (insertion) order.
	Addons []Addon `json:"addons"`
}
