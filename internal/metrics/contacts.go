package metrics

import "github.com/san-kum/arcade2d/internal/physics"

// ContactCount averages the number of active contacts per step.
type ContactCount struct {
	name    string
	total   int
	samples int
}

func NewContactCount() *ContactCount {
	return &ContactCount{name: "contacts"}
}

func (c *ContactCount) Name() string { return c.name }

func (c *ContactCount) Observe(w *physics.World, t float64) {
	c.total += len(w.Contacts())
	c.samples++
}

func (c *ContactCount) Value() float64 {
	if c.samples == 0 {
		return 0
	}
	return float64(c.total) / float64(c.samples)
}

func (c *ContactCount) Reset() {
	c.total = 0
	c.samples = 0
}
