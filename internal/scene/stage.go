package scene

import "github.com/san-kum/arcade2d/internal/vec"

// Listener receives component attach/detach events and the fixed-update
// tick. The physics world subscribes through this interface alone.
type Listener interface {
	ComponentAttached(n *Node, c Component)
	ComponentDetached(n *Node, c Component)
	Tick(dt, timeScale float64)
}

// Stage is the scene root. Nodes parented (transitively) under the stage
// root are live; their components are visible to listeners.
type Stage struct {
	Root      *Node
	View      vec.Rect
	TimeScale float64

	listeners []Listener
}

func NewStage(view vec.Rect) *Stage {
	st := &Stage{
		Root:      NewNode("root"),
		View:      view,
		TimeScale: 1,
	}
	st.Root.live = true
	st.Root.stage = st
	return st
}

// AddListener subscribes l to attach/detach events and ticks.
func (st *Stage) AddListener(l Listener) {
	if l == nil {
		return
	}
	st.listeners = append(st.listeners, l)
}

// RemoveListener unsubscribes l.
func (st *Stage) RemoveListener(l Listener) {
	for i, have := range st.listeners {
		if have == l {
			st.listeners = append(st.listeners[:i], st.listeners[i+1:]...)
			return
		}
	}
}

// Advance delivers one fixed-update tick to every listener.
func (st *Stage) Advance(dt float64) {
	ts := st.TimeScale
	if ts == 0 {
		return
	}
	for _, l := range st.listeners {
		l.Tick(dt, ts)
	}
}

func (st *Stage) announceAttached(n *Node, c Component) {
	for _, l := range st.listeners {
		l.ComponentAttached(n, c)
	}
}

func (st *Stage) announceDetached(n *Node, c Component) {
	for _, l := range st.listeners {
		l.ComponentDetached(n, c)
	}
}
