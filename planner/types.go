package planner

import (
	"fmt"
	"strings"
)

// DepotSite is the fixed start/end location of every route.
const DepotSite = 0

// Task is a measurement required at a site.
type Task struct {
	Site        int `yaml:"site" json:"site"`
	Measurement int `yaml:"measurement" json:"measurement"`
}

// String renders the task as "site:measurement".
func (t Task) String() string { return fmt.Sprintf("%d:%d", t.Site, t.Measurement) }

// StopKind discriminates the Stop variants. The zero value is invalid.
type StopKind uint8

const (
	// KindDepot marks the depot stop at either end of a route.
	KindDepot StopKind = iota + 1
	// KindTask marks an interior stop serving a Task.
	KindTask
)

// Stop is one entry of a Route: either the depot or a visit serving a Task.
// Task is meaningful only when Kind == KindTask.
type Stop struct {
	Kind StopKind
	Task Task
}

// Depot returns the depot stop.
func Depot() Stop { return Stop{Kind: KindDepot} }

// Visit returns the stop serving t.
func Visit(t Task) Stop { return Stop{Kind: KindTask, Task: t} }

// IsDepot reports whether s is the depot stop.
func (s Stop) IsDepot() bool { return s.Kind == KindDepot }

// Site returns the site index of the stop (DepotSite for the depot).
func (s Stop) Site() int {
	if s.Kind == KindDepot {
		return DepotSite
	}

	return s.Task.Site
}

// String renders the depot as "D" and a task as "site:measurement".
func (s Stop) String() string {
	switch s.Kind {
	case KindDepot:
		return "D"
	case KindTask:
		return s.Task.String()
	default:
		return "?"
	}
}

// Route is the ordered stop sequence of one robot, bookended by the depot.
type Route []Stop

// EmptyRoute returns [depot, depot].
func EmptyRoute() Route { return Route{Depot(), Depot()} }

// NewRoute wraps tasks with depot stops, preserving their order.
func NewRoute(tasks ...Task) Route {
	r := make(Route, 0, len(tasks)+2)
	r = append(r, Depot())
	for _, t := range tasks {
		r = append(r, Visit(t))
	}

	return append(r, Depot())
}

// Clone returns an independent copy of r.
func (r Route) Clone() Route {
	if r == nil {
		return nil
	}
	out := make(Route, len(r))
	copy(out, r)

	return out
}

// Interior returns the stops strictly between the bookending depots.
// The returned slice aliases r.
func (r Route) Interior() []Stop {
	if len(r) < 2 {
		return nil
	}

	return r[1 : len(r)-1]
}

// Tasks returns the tasks served by r in visiting order.
func (r Route) Tasks() []Task {
	in := r.Interior()
	out := make([]Task, 0, len(in))
	for _, s := range in {
		if s.Kind == KindTask {
			out = append(out, s.Task)
		}
	}

	return out
}

// Sites returns the site sequence of r, depots included.
func (r Route) Sites() []int {
	out := make([]int, len(r))
	for i, s := range r {
		out[i] = s.Site()
	}

	return out
}

// InsertBeforeEnd returns a copy of r with t inserted immediately before the
// final depot stop.
func (r Route) InsertBeforeEnd(t Task) Route {
	out := make(Route, 0, len(r)+1)
	out = append(out, r[:len(r)-1]...)
	out = append(out, Visit(t))

	return append(out, r[len(r)-1])
}

// Remove deletes the first interior stop serving t in place and reports
// whether one was found. The backing array of r is reused.
func (r *Route) Remove(t Task) bool {
	rt := *r
	for i := 1; i < len(rt)-1; i++ {
		if rt[i].Kind == KindTask && rt[i].Task == t {
			*r = append(rt[:i], rt[i+1:]...)
			return true
		}
	}

	return false
}

// Equal reports whether r and o visit the same stops in the same order.
func (r Route) Equal(o Route) bool {
	if len(r) != len(o) {
		return false
	}
	for i := range r {
		if r[i] != o[i] {
			return false
		}
	}

	return true
}

// String renders the route as "[D 3:0 1:2 D]".
func (r Route) String() string {
	parts := make([]string, len(r))
	for i, s := range r {
		parts[i] = s.String()
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// Solution maps robot id → Route. Routes has one entry per robot.
type Solution struct {
	Routes []Route
}

// NumRobots returns the number of routes.
func (s *Solution) NumRobots() int { return len(s.Routes) }

// TaskCount returns the number of interior stops over all routes.
func (s *Solution) TaskCount() int {
	n := 0
	for _, r := range s.Routes {
		n += len(r.Interior())
	}

	return n
}

// Clone returns a deep copy of s.
func (s *Solution) Clone() Solution {
	out := Solution{Routes: make([]Route, len(s.Routes))}
	for i, r := range s.Routes {
		out.Routes[i] = r.Clone()
	}

	return out
}

// RobotPair is an unordered pair of robots (A < B) sharing at least one capability.
type RobotPair struct {
	A, B int
}

// String renders the pair as "(a,b)".
func (p RobotPair) String() string { return fmt.Sprintf("(%d,%d)", p.A, p.B) }
