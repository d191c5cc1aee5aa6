package tourguide

// Options control tour behavior. They may be changed at any time and are
// read on each step render, except UseSpotlight which is read once at
// Start time: toggling it mid-tour neither creates nor destroys the
// spotlight.
type Options struct {
	// DisableScroll locks host scrolling at the current offset while a
	// step is shown.
	DisableScroll bool `json:"disableScroll"`
	// UseSpotlight masks everything except the target zone.
	UseSpotlight bool `json:"useSpotlight"`
	// Language selects the button-label table ("en" or "fr").
	Language string `json:"language"`
	// ScrollMargin is the margin hint, in cells, used when scrolling a
	// target into view.
	ScrollMargin int `json:"scrollMargin"`
	// SpotlightPadding is the clear margin kept around the target.
	SpotlightPadding int `json:"spotlightPadding"`
}

// DefaultOptions returns the option defaults.
func DefaultOptions() Options {
	return Options{
		DisableScroll:    true,
		UseSpotlight:     true,
		Language:         "en",
		ScrollMargin:     50,
		SpotlightPadding: 1,
	}
}
