package scene

import "github.com/san-kum/arcade2d/internal/vec"

// ComponentKind discriminates component categories for listeners.
type ComponentKind int

const (
	KindBody ComponentKind = iota
	KindShape
)

// Component is anything attachable to a node. The scene graph does not
// interpret components beyond their kind; listeners do.
type Component interface {
	Kind() ComponentKind
}

// Node is a scene-graph node. Position and Scale are local to the parent;
// Rotation is carried for completeness but axis-aligned colliders ignore it.
type Node struct {
	Name     string
	Position vec.Vec2
	Scale    vec.Vec2
	Rotation float64
	Size     vec.Vec2

	parent     *Node
	children   []*Node
	components []Component
	stage      *Stage
	live       bool
}

func NewNode(name string) *Node {
	return &Node{Name: name, Scale: vec.Vec2{X: 1, Y: 1}}
}

func (n *Node) Parent() *Node     { return n.parent }
func (n *Node) Children() []*Node { return n.children }
func (n *Node) Live() bool        { return n.live }

// WorldTransform composes position and scale down the ancestor chain.
func (n *Node) WorldTransform() (pos, scale vec.Vec2) {
	if n.parent == nil {
		return n.Position, n.Scale
	}
	ppos, pscale := n.parent.WorldTransform()
	pos = vec.Vec2{X: ppos.X + n.Position.X*pscale.X, Y: ppos.Y + n.Position.Y*pscale.Y}
	scale = vec.Vec2{X: pscale.X * n.Scale.X, Y: pscale.Y * n.Scale.Y}
	return pos, scale
}

// WorldPosition returns the node origin in world units.
func (n *Node) WorldPosition() vec.Vec2 {
	pos, _ := n.WorldTransform()
	return pos
}

// SetWorldPosition moves the node so its world origin lands on p,
// compensating for the parent transform.
func (n *Node) SetWorldPosition(p vec.Vec2) {
	if n.parent == nil {
		n.Position = p
		return
	}
	ppos, pscale := n.parent.WorldTransform()
	sx, sy := pscale.X, pscale.Y
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	n.Position = vec.Vec2{X: (p.X - ppos.X) / sx, Y: (p.Y - ppos.Y) / sy}
}

// AddChild parents child under n. If n is live the whole subtree goes
// live and its components are announced to the stage listeners.
func (n *Node) AddChild(child *Node) {
	if child == nil || child == n || child.parent != nil {
		return
	}
	child.parent = n
	n.children = append(n.children, child)
	if n.live {
		child.setLive(n.stage)
	}
}

// RemoveChild detaches child from n, announcing component removal for
// the whole subtree first when it was live.
func (n *Node) RemoveChild(child *Node) {
	if child == nil || child.parent != n {
		return
	}
	if child.live {
		child.setDead()
	}
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			break
		}
	}
	child.parent = nil
}

// Remove detaches n from its parent.
func (n *Node) Remove() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// Attach adds a component. Live nodes announce it immediately.
func (n *Node) Attach(c Component) {
	if c == nil {
		return
	}
	n.components = append(n.components, c)
	if n.live && n.stage != nil {
		n.stage.announceAttached(n, c)
	}
}

// Detach removes a component, announcing removal first on live nodes.
func (n *Node) Detach(c Component) {
	for i, have := range n.components {
		if have == c {
			if n.live && n.stage != nil {
				n.stage.announceDetached(n, c)
			}
			n.components = append(n.components[:i], n.components[i+1:]...)
			return
		}
	}
}

// Component returns the first attached component of the given kind.
func (n *Node) Component(kind ComponentKind) Component {
	for _, c := range n.components {
		if c.Kind() == kind {
			return c
		}
	}
	return nil
}

// Components returns all attached components of the given kind.
func (n *Node) Components(kind ComponentKind) []Component {
	var out []Component
	for _, c := range n.components {
		if c.Kind() == kind {
			out = append(out, c)
		}
	}
	return out
}

func (n *Node) setLive(st *Stage) {
	n.stage = st
	n.live = true
	if st != nil {
		// bodies before shapes so listeners can bind shapes to an
		// already-registered body
		for _, c := range n.components {
			if c.Kind() == KindBody {
				st.announceAttached(n, c)
			}
		}
		for _, c := range n.components {
			if c.Kind() != KindBody {
				st.announceAttached(n, c)
			}
		}
	}
	for _, child := range n.children {
		child.setLive(st)
	}
}

func (n *Node) setDead() {
	for _, child := range n.children {
		child.setDead()
	}
	if n.stage != nil {
		for _, c := range n.components {
			if c.Kind() != KindBody {
				n.stage.announceDetached(n, c)
			}
		}
		for _, c := range n.components {
			if c.Kind() == KindBody {
				n.stage.announceDetached(n, c)
			}
		}
	}
	n.live = false
	n.stage = nil
}
