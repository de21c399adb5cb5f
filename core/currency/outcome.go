package currency

// Outcome is the result of a rate fetch: Fetched or Fallback. Callers
// always get a usable snapshot.
type Outcome interface {
	Snapshot() *Snapshot
	outcome()
}

// Fetched carries rates returned by the endpoint
type Fetched struct {
	Snap *Snapshot
	// Degraded is set when the endpoint itself served its fallback table
	Degraded bool
}

// Fallback carries the built-in table and why it was used
type Fallback struct {
	Snap   *Snapshot
	Reason error
}

func (f Fetched) Snapshot() *Snapshot  { return f.Snap }
func (f Fallback) Snapshot() *Snapshot { return f.Snap }

func (Fetched) outcome()  {}
func (Fallback) outcome() {}

// IsFallback reports whether o is a local fallback
func IsFallback(o Outcome) bool {
	_, ok := o.(Fallback)
	return ok
}
