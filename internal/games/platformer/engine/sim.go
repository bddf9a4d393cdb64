package engine

import "math"

// Remainders shorter than this are rounding residue of the sub-step split.
const stepEpsilon = 1e-9

// Advance moves the level forward by dt seconds with the given keys held.
//
// The delta is split into sub-steps no longer than Params.MaxStep. In each
// sub-step every actor updates once in list order; coins collected during a
// pass leave the actor list only after the pass completes.
func (l *Level) Advance(dt float64, keys Keys) {
	if !(dt > 0) {
		return
	}

	if l.status.Terminal() {
		l.finishDelay -= dt
	}

	for dt > stepEpsilon {
		step := math.Min(dt, l.params.MaxStep)
		for _, actor := range l.actors {
			actor.update(step, l, keys)
		}
		l.compact()
		dt -= step
	}
}

// compact drops collected coins and re-resolves the player index.
func (l *Level) compact() {
	if len(l.removed) == 0 {
		return
	}

	live := l.actors[:0]
	for _, actor := range l.actors {
		if _, gone := l.removed[actor]; gone {
			continue
		}
		if actor.Kind() == KindPlayer {
			l.player = len(live)
		}
		live = append(live, actor)
	}
	for i := len(live); i < len(l.actors); i++ {
		l.actors[i] = nil
	}
	l.actors = live
	clear(l.removed)
}
