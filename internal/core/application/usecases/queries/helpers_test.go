package queries_test

// noopTracker satisfies the repositories' aggregate tracker when tests seed
// data outside a unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(int64, any) {}
