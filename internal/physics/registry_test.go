package physics_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/arcade2d/internal/physics"
	"github.com/san-kum/arcade2d/internal/scene"
	"github.com/san-kum/arcade2d/internal/vec"
)

func newBodyAt(x, y float64, shapes ...*physics.Collider) (*physics.Body, func(w *physics.World)) {
	b := physics.NewBody()
	b.Pos = vec.Vec2{X: x, Y: y}
	return b, func(w *physics.World) {
		for _, s := range shapes {
			Expect(w.AddShape(b, s)).To(Succeed())
		}
		Expect(w.AddBody(b)).To(Succeed())
	}
}

// expectRegistryInvariants verifies the registry never holds two pairs
// for the same unordered shape combination or a pair within one body.
func expectRegistryInvariants(w *physics.World) {
	seen := map[[2]uint64]bool{}
	for _, p := range w.Pairs() {
		Expect(p.BodyA()).NotTo(BeIdenticalTo(p.BodyB()),
			"pair connects a body to itself")
		a, b := p.ShapeA().ID(), p.ShapeB().ID()
		if a > b {
			a, b = b, a
		}
		key := [2]uint64{a, b}
		Expect(seen[key]).To(BeFalse(), "duplicate pair for one shape combination")
		seen[key] = true
	}
}

var _ = Describe("Pair registry", func() {
	var w *physics.World

	BeforeEach(func() {
		w = physics.New()
		w.Gravity = vec.Vec2{}
	})

	It("creates one pair per unordered shape combination", func() {
		_, addA := newBodyAt(0, 0, physics.NewCircle(0, 0, 10))
		_, addB := newBodyAt(50, 0, physics.NewCircle(0, 0, 10))
		_, addC := newBodyAt(100, 0, physics.NewBox(0, 0, 20, 20))
		addA(w)
		addB(w)
		addC(w)

		Expect(w.Pairs()).To(HaveLen(3))
		expectRegistryInvariants(w)
	})

	It("ignores duplicate adds and unknown removals", func() {
		a, addA := newBodyAt(0, 0, physics.NewCircle(0, 0, 10))
		_, addB := newBodyAt(50, 0, physics.NewCircle(0, 0, 10))
		addA(w)
		addB(w)

		Expect(w.AddBody(a)).To(Succeed())
		Expect(w.Pairs()).To(HaveLen(1))

		stranger := physics.NewBody()
		w.RemoveBody(stranger)
		Expect(w.Pairs()).To(HaveLen(1))
		Expect(w.Bodies()).To(HaveLen(2))
		expectRegistryInvariants(w)
	})

	It("rejects nil arguments", func() {
		Expect(w.AddBody(nil)).To(MatchError(physics.ErrNilBody))
		Expect(w.AddShape(nil, physics.NewCircle(0, 0, 1))).To(MatchError(physics.ErrNilBody))
		Expect(w.AddShape(physics.NewBody(), nil)).To(MatchError(physics.ErrNilShape))
	})

	It("rejects stealing a shape from another body", func() {
		a, addA := newBodyAt(0, 0)
		shape := physics.NewCircle(0, 0, 10)
		Expect(w.AddShape(a, shape)).To(Succeed())
		addA(w)

		thief := physics.NewBody()
		Expect(w.AddShape(thief, shape)).To(MatchError(physics.ErrShapeOwned))
	})

	It("releases every pair when a body leaves", func() {
		a, addA := newBodyAt(0, 0, physics.NewCircle(0, 0, 10))
		_, addB := newBodyAt(50, 0, physics.NewCircle(0, 0, 10))
		_, addC := newBodyAt(100, 0, physics.NewCircle(0, 0, 10))
		addA(w)
		addB(w)
		addC(w)
		Expect(w.Pairs()).To(HaveLen(3))

		w.RemoveBody(a)
		Expect(w.Pairs()).To(HaveLen(1))
		Expect(a.Pairs()).To(BeEmpty())
		expectRegistryInvariants(w)
	})

	It("maintains uniqueness across add/remove/add-shape churn", func() {
		a, addA := newBodyAt(0, 0, physics.NewCircle(0, 0, 10))
		b, addB := newBodyAt(50, 0, physics.NewCircle(0, 0, 10))
		addA(w)
		addB(w)

		extra := physics.NewBox(0, 0, 10, 10)
		Expect(w.AddShape(a, extra)).To(Succeed())
		Expect(w.Pairs()).To(HaveLen(2))
		expectRegistryInvariants(w)

		w.RemoveShape(a, extra)
		Expect(w.Pairs()).To(HaveLen(1))

		w.RemoveBody(b)
		Expect(w.Pairs()).To(BeEmpty())
		Expect(w.AddBody(b)).To(Succeed())
		Expect(w.Pairs()).To(HaveLen(1))
		expectRegistryInvariants(w)
	})

	Describe("default shape", func() {
		var (
			stage *scene.Stage
			node  *scene.Node
			body  *physics.Body
		)

		BeforeEach(func() {
			stage = scene.NewStage(vec.Rect{W: 800, H: 600})
			w.BindStage(stage)

			_, addOther := newBodyAt(200, 200, physics.NewCircle(0, 0, 10))
			addOther(w)

			body = physics.NewBody()
			node = scene.NewNode("crate")
			node.Size = vec.Vec2{X: 30, Y: 30}
			node.Attach(body)
			stage.Root.AddChild(node)
		})

		It("pairs through the implicit full-body shape", func() {
			Expect(w.Pairs()).To(HaveLen(1))
			p := w.Pairs()[0]
			Expect(p.ShapeA().Default() || p.ShapeB().Default()).To(BeTrue())
		})

		It("retires the default shape when the first explicit shape arrives", func() {
			explicit := physics.NewCircle(0, 0, 15)
			node.Attach(explicit)

			Expect(w.Pairs()).To(HaveLen(1))
			p := w.Pairs()[0]
			Expect(p.ShapeA().Default()).To(BeFalse())
			Expect(p.ShapeB().Default()).To(BeFalse())
			expectRegistryInvariants(w)
		})

		It("restores the default shape when the last explicit shape leaves", func() {
			explicit := physics.NewCircle(0, 0, 15)
			node.Attach(explicit)
			node.Detach(explicit)

			Expect(w.Pairs()).To(HaveLen(1))
			p := w.Pairs()[0]
			Expect(p.ShapeA().Default() || p.ShapeB().Default()).To(BeTrue())
			expectRegistryInvariants(w)
		})

		It("tears everything down when the node leaves the stage", func() {
			node.Remove()
			Expect(w.Pairs()).To(BeEmpty())
			Expect(w.Bodies()).To(HaveLen(1))
			Expect(body.Pairs()).To(BeEmpty())
		})
	})
})
