package sync

// DefaultPullDays bounds the provider fetch window when the caller gives
// none.
const DefaultPullDays = 30

type PullInput struct {
	HorizonDays int // 0 → DefaultPullDays
}

// PullOutput reports what one pull did. Fetched counts provider events
// seen; Created and Updated count local rows written.
type PullOutput struct {
	Fetched int
	Created int
	Updated int
}
