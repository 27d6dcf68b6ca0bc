package traveller

// Option configures a Traveller at construction time, the standard
// functional-options pattern for multi-knob constructors.
type Option func(*config)

type config struct {
	poolCapacity int
	swapFile     string
	lrThreshold  int
	maxQueue     int
	observer     Observer
}

func defaultConfig() *config {
	return &config{
		poolCapacity: 4096,
		lrThreshold:  0,
		maxQueue:     0, // 0 = unbounded
		observer:     NopObserver{},
	}
}

// WithPoolCapacity sets the maximum number of live States the
// underlying pool.Pool may hold at once (spec §4.6, "Optional
// settings: pool capacity").
func WithPoolCapacity(n int) Option {
	return func(c *config) { c.poolCapacity = n }
}

// WithSwapFile records a file-backed pool.FileRegion path for very
// large parses (spec §4.6, "swap file path"; spec §4.5, "file-backed
// variant"). The Traveller only records the path; a caller that needs
// the State pool itself backed by disk rather than process heap opens
// its own pool.FileRegion at this path.
func WithSwapFile(path string) Option {
	return func(c *config) { c.swapFile = path }
}

// WithLRThreshold sets the maximum number of re-entries of the same arc
// at the same start offset tolerated before LeftRecursion is raised (spec
// §4.6, "LR threshold"). A positive n guards every arc. With n <= 0 (the
// default) only Once-marked arcs are guarded, and they tolerate one
// re-entry; other arcs are not checked at all.
func WithLRThreshold(n int) Option {
	return func(c *config) { c.lrThreshold = n }
}

// WithMaxQueue records a search-queue length setting (spec §4.6,
// "maximum search-queue elements (observability)"). The scheduler does
// not read it: the queue is never capped and its length is not reported.
func WithMaxQueue(n int) Option {
	return func(c *config) { c.maxQueue = n }
}

// WithObserver installs the Observer every scheduling event is
// dispatched to (spec §4.6, "Observer hooks").
func WithObserver(o Observer) Option {
	return func(c *config) { c.observer = o }
}
