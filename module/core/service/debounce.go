package service

const DefaultExitThreshold = 3

// DebounceSession holds the confirmation state for one journey. Sessions are
// independent: concurrent journeys each carry their own and must not share.
type DebounceSession struct {
	LastConfirmedZoneID string
	PendingExits        int
}

// DebounceFilter smooths the raw zone signal for consumers that react to
// confirmed state, such as route progress. An entry commits immediately; an
// exit commits only after threshold consecutive outside observations, so a
// vehicle flickering across a polygon boundary does not toggle its zone.
// The raw status store is unaffected and always holds the undebounced truth.
type DebounceFilter struct {
	threshold int
}

func NewDebounceFilter(threshold int) *DebounceFilter {
	if threshold <= 0 {
		threshold = DefaultExitThreshold
	}
	return &DebounceFilter{threshold: threshold}
}

// Observe feeds one raw zone resolution ("" means outside every zone) into
// the session and returns the confirmed zone id plus whether it changed.
func (f *DebounceFilter) Observe(s *DebounceSession, rawZoneID string) (string, bool) {
	switch {
	case rawZoneID != "" && rawZoneID != s.LastConfirmedZoneID:
		s.LastConfirmedZoneID = rawZoneID
		s.PendingExits = 0
		return rawZoneID, true

	case rawZoneID != "":
		s.PendingExits = 0
		return rawZoneID, false

	case s.LastConfirmedZoneID != "":
		s.PendingExits++
		if s.PendingExits >= f.threshold {
			s.LastConfirmedZoneID = ""
			s.PendingExits = 0
			return "", true
		}
		return s.LastConfirmedZoneID, false

	default:
		return "", false
	}
}
