package maze

// Cell represents a single cell in a maze grid.
// Each wall flag is shared with the neighbouring cell on that side, so a cell's
// NorthWall always matches the SouthWall of the cell above it.
type Cell struct {
	NorthWall bool // NorthWall indicates whether there is a wall on the top side of the cell.
	SouthWall bool // SouthWall indicates whether there is a wall on the bottom side of the cell.
	EastWall  bool // EastWall indicates whether there is a wall on the right side of the cell.
	WestWall  bool // WestWall indicates whether there is a wall on the left side of the cell.
}

// closedCell returns a cell with all four walls standing.
func closedCell() Cell {
	return Cell{NorthWall: true, SouthWall: true, EastWall: true, WestWall: true}
}

// HasNorthWall returns true if there is a wall on the top side of the cell.
func (c Cell) HasNorthWall() bool {
	return c.NorthWall
}

// HasSouthWall returns true if there is a wall on the bottom side of the cell.
func (c Cell) HasSouthWall() bool {
	return c.SouthWall
}

// HasEastWall returns true if there is a wall on the right side of the cell.
func (c Cell) HasEastWall() bool {
	return c.EastWall
}

// HasWestWall returns true if there is a wall on the left side of the cell.
func (c Cell) HasWestWall() bool {
	return c.WestWall
}

// Walls is the renderer-facing view of a cell's wall flags.
type Walls struct {
	Top    bool `json:"top"`
	Left   bool `json:"left"`
	Bottom bool `json:"bottom"`
	Right  bool `json:"right"`
}

// Walls returns the wall flags of the cell.
func (c Cell) Walls() Walls {
	return Walls{Top: c.NorthWall, Left: c.WestWall, Bottom: c.SouthWall, Right: c.EastWall}
}

// CellPosition represents the position of a cell in the maze grid.
type CellPosition struct {
	Row int `json:"row"` // Row index of the cell
	Col int `json:"col"` // Column index of the cell
}

// Step returns the position one cell away in the given direction.
func (cp CellPosition) Step(dir string) CellPosition {
	delta := Directions[dir]
	return CellPosition{Row: cp.Row + delta.Row, Col: cp.Col + delta.Col}
}

// Move represents a movement from one cell to an adjacent one in a specific direction.
type Move struct {
	From      CellPosition // Starting cell
	To        CellPosition // Destination cell
	Direction string       // Direction of the move (North, South, East, West)
}
