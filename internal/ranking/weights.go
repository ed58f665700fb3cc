package ranking

// Weights are the terms of the weighted score. Every term is in score points;
// a candidate starts at Base.
type Weights struct {
	Base float64

	// FocusWindow is added when the slot starts inside the focus peak.
	FocusWindow float64
	// FocusProximity is the most a slot outside the peak can earn; it decays
	// linearly to zero at FocusFalloffMinutes away from the peak.
	FocusProximity      float64
	FocusFalloffMinutes float64

	// ProximityPerDay is charged per day between the anchor date and the slot
	// (or, for LAST_MINUTE users, between the slot and the deadline), capped at
	// ProximityCap. EARLY users pay EarlyMultiplier times as much.
	ProximityPerDay float64
	ProximityCap    float64
	EarlyMultiplier float64

	// PreferenceTime is added when the slot starts in the preferred part of day.
	PreferenceTime float64
	// PreferredDay and PreferredTaskDay reward the user's general and
	// task-type-specific preferred weekdays.
	PreferredDay     float64
	PreferredTaskDay float64

	// WorkHoursPenalty is charged for slots that run past the workday end.
	// HIGH flexibility users are charged HighFlexibilityFactor of it.
	WorkHoursPenalty      float64
	HighFlexibilityFactor float64
}

func DefaultWeights() Weights {
	return Weights{
		Base:                  50,
		FocusWindow:           20,
		FocusProximity:        10,
		FocusFalloffMinutes:   120,
		ProximityPerDay:       2,
		ProximityCap:          30,
		EarlyMultiplier:       1.5,
		PreferenceTime:        10,
		PreferredDay:          6,
		PreferredTaskDay:      10,
		WorkHoursPenalty:      25,
		HighFlexibilityFactor: 0.5,
	}
}
