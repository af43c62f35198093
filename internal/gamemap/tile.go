package gamemap

// TileKind identifies the type of a map tile.
type TileKind uint8

const (
	TileWall      TileKind = iota
	TilePerimeter          // outer boundary wall, rendered differently from interior walls
	TileFloor
	TileTeleport
)

// Fire is the burning state of a tile. Active tiles count down once per
// tick and stop burning when TicksRemaining reaches zero.
type Fire struct {
	Active         bool
	TicksRemaining int
}

// Tile holds the kind, decoration, and visibility state for one map cell.
type Tile struct {
	Kind        TileKind
	Blocked     bool
	BlocksSight bool
	Explored    bool
	Visible     bool
	HasCorpse   bool
	Fire        Fire
}

// MakeWall returns a blocking, opaque interior wall tile.
func MakeWall() Tile {
	return Tile{Kind: TileWall, Blocked: true, BlocksSight: true}
}

// MakePerimeter returns a blocking, opaque outer-boundary wall tile.
// A perimeter tile is always blocked and sight-blocking.
func MakePerimeter() Tile {
	return Tile{Kind: TilePerimeter, Blocked: true, BlocksSight: true}
}

// MakeFloor returns a passable, transparent floor tile.
func MakeFloor() Tile {
	return Tile{Kind: TileFloor}
}

// MakeTeleport returns a passable teleport tile. A teleport tile is never
// blocked.
func MakeTeleport() Tile {
	return Tile{Kind: TileTeleport}
}

// Open reports whether the tile itself permits movement. Entities standing
// on the tile are not considered; see system.IsBlocked for that.
func (t Tile) Open() bool {
	return !t.Blocked
}

// Teleportable reports whether a teleported player may land here: the tile
// must be open and must not itself be a teleport tile, so a relocation can
// never chain into another one.
func (t Tile) Teleportable() bool {
	return !t.Blocked && t.Kind != TileTeleport
}
