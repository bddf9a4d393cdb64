package engine

// Tile is the static classification of one grid cell.
type Tile uint8

const (
	TileEmpty Tile = iota // Nothing; actors pass freely
	TileWall              // Blocks movement
	TileLava              // Kills the player on contact
)

// String returns the string representation of a tile.
func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileWall:
		return "wall"
	case TileLava:
		return "lava"
	default:
		return "unknown"
	}
}

// tileFor maps a plan character to its tile. Unknown characters are empty.
func tileFor(ch byte) Tile {
	switch ch {
	case 'x':
		return TileWall
	case '!':
		return TileLava
	default:
		return TileEmpty
	}
}
