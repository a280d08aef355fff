package physics

// pairPool is an explicit free list for one pair kind. Pairs are reset
// on release and reused on acquire; steady-state stepping never
// allocates.
type pairPool struct {
	free []Pair
	make func() Pair
}

func (p *pairPool) acquire() Pair {
	if n := len(p.free); n > 0 {
		pair := p.free[n-1]
		p.free[n-1] = nil
		p.free = p.free[:n-1]
		return pair
	}
	return p.make()
}

func (p *pairPool) release(pair Pair) {
	pair.Reset()
	p.free = append(p.free, pair)
}

// pools holds one free list per pair kind.
type pools struct {
	boxBox       pairPool
	circleCircle pairPool
	boxCircle    pairPool
}

func newPools() *pools {
	return &pools{
		boxBox:       pairPool{make: func() Pair { return &BoxToBox{} }},
		circleCircle: pairPool{make: func() Pair { return &CircleToCircle{} }},
		boxCircle:    pairPool{make: func() Pair { return &BoxToCircle{} }},
	}
}

func (ps *pools) forKind(kind PairKind) *pairPool {
	switch kind {
	case PairBoxBox:
		return &ps.boxBox
	case PairCircleCircle:
		return &ps.circleCircle
	default:
		return &ps.boxCircle
	}
}

// acquireFor picks the pool from the two shape kinds and initializes the
// pair with the box canonicalized on the A side for mixed combinations.
func (ps *pools) acquireFor(sa, sb *Collider) Pair {
	var p Pair
	switch {
	case sa.kind == ShapeBox && sb.kind == ShapeBox:
		p = ps.boxBox.acquire()
	case sa.kind == ShapeCircle && sb.kind == ShapeCircle:
		p = ps.circleCircle.acquire()
	default:
		p = ps.boxCircle.acquire()
		if sa.kind != ShapeBox {
			sa, sb = sb, sa
		}
	}
	p.Set(sa, sb, sa.body, sb.body)
	return p
}
