package brandslanding

// View names which page variant renders.
type View int

const (
	ViewLoading View = iota
	ViewNotFound
	ViewContent
)

func (v View) String() string {
	switch v {
	case ViewLoading:
		return "loading"
	case ViewNotFound:
		return "not-found"
	default:
		return "content"
	}
}

// Gate picks the view for a load status. Only a pending load shows the
// loading view. A load that never ran has no brand, so it renders not-found
// like a rejected load, a missing brand or a disabled landing page.
func Gate(status LoadStatus, brand *Brand, enabled bool) View {
	switch status {
	case StatusPending:
		return ViewLoading
	case StatusRejected:
		return ViewNotFound
	}
	// TODO: split "brand missing" from transient load errors once the
	// source reports an error kind.
	if brand == nil || !enabled {
		return ViewNotFound
	}
	return ViewContent
}
