package metrics

import "github.com/san-kum/arcade2d/internal/physics"

// KineticEnergy averages total kinetic energy over the observed steps.
type KineticEnergy struct {
	name    string
	total   float64
	samples int
}

func NewKineticEnergy() *KineticEnergy {
	return &KineticEnergy{name: "kinetic_energy"}
}

func (k *KineticEnergy) Name() string { return k.name }

func (k *KineticEnergy) Observe(w *physics.World, t float64) {
	step := 0.0
	for _, b := range w.Bodies() {
		inv := b.InvMass()
		if inv == 0 {
			continue
		}
		step += 0.5 * (1 / inv) * b.Velocity.LengthSq()
	}
	k.total += step
	k.samples++
}

func (k *KineticEnergy) Value() float64 {
	if k.samples == 0 {
		return 0
	}
	return k.total / float64(k.samples)
}

func (k *KineticEnergy) Reset() {
	k.total = 0
	k.samples = 0
}
