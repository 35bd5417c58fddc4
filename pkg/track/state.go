package track

// State is a track's life-cycle stage. Deleted is a transient marker;
// the Tracker removes reaped tracks from its collection outright
// rather than surfacing them in this state.
type State int

const (
	Tentative State = iota
	Confirmed
	Deleted
)

func (s State) String() string {
	switch s {
	case Tentative:
		return "tentative"
	case Confirmed:
		return "confirmed"
	case Deleted:
		return "deleted"
	default:
		return "unknown"
	}
}
