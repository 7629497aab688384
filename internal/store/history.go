package store

// Navigator appends routes to a navigation history.
type Navigator interface {
	Push(route string)
}

// History is an ordered, mutable sequence of routes.
type History []string

var _ Navigator = (*History)(nil)

// Push appends route.
func (h *History) Push(route string) {
	*h = append(*h, route)
}

// DispatchNavigator is a [Navigator] that records routes in a [Store] as [Navigate] commands.
type DispatchNavigator struct {
	Dispatch func(Command)
}

// Push dispatches a [Navigate] command for route.
func (n DispatchNavigator) Push(route string) {
	n.Dispatch(Navigate{Route: route})
}
