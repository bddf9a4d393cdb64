package engine

import "math"

// ObstacleAt classifies what a rectangle at pos with the given size runs
// into. TileEmpty means the rectangle is free.
//
// Leaving the grid to the left, right or top counts as hitting a wall;
// leaving it at the bottom counts as lava. Inside the grid the covered cells
// are scanned row by row and the first non-empty tile wins.
func (l *Level) ObstacleAt(pos, size Vec) Tile {
	xStart := int(math.Floor(pos.X))
	xEnd := int(math.Ceil(pos.X + size.X))
	yStart := int(math.Floor(pos.Y))
	yEnd := int(math.Ceil(pos.Y + size.Y))

	if xStart < 0 || xEnd > l.width || yStart < 0 {
		return TileWall
	}
	if yEnd > l.height {
		return TileLava
	}

	for y := yStart; y < yEnd; y++ {
		for x := xStart; x < xEnd; x++ {
			if tile := l.grid[y][x]; tile != TileEmpty {
				return tile
			}
		}
	}
	return TileEmpty
}

// ActorAt returns the first live actor, other than subject, whose rectangle
// overlaps subject's. Coins collected earlier in the current sub-step are
// ignored. Returns nil when nothing overlaps.
func (l *Level) ActorAt(subject Actor) Actor {
	for _, other := range l.actors {
		if other == subject {
			continue
		}
		if _, gone := l.removed[other]; gone {
			continue
		}
		if overlaps(subject, other) {
			return other
		}
	}
	return nil
}
