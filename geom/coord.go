package geom

// Segment tags one of the four quadrants produced by a pair of cut lines.
type Segment int

const (
	// NE is the quadrant north and east of the reference point.
	NE Segment = iota
	// SE is the quadrant south and east of the reference point.
	SE
	// SW is the quadrant south and west of the reference point.
	SW
	// NW is the quadrant north and west of the reference point.
	NW
)

// String renders the segment as its two-letter compass name.
func (s Segment) String() string {
	switch s {
	case NE:
		return "NE"
	case SE:
		return "SE"
	case SW:
		return "SW"
	case NW:
		return "NW"
	default:
		return "??"
	}
}

// Coord is a pair of integer grid coordinates. Directional predicates use
// the device's inverted convention: smaller x is north, smaller y is east.
type Coord struct {
	X, Y int
}

// IsNorthOf reports whether c lies strictly north of other (c.X < other.X).
func (c Coord) IsNorthOf(other Coord) bool { return c.X < other.X }

// IsSouthOf reports whether c lies strictly south of other (c.X > other.X).
func (c Coord) IsSouthOf(other Coord) bool { return c.X > other.X }

// IsEastOf reports whether c lies strictly east of other (c.Y < other.Y).
func (c Coord) IsEastOf(other Coord) bool { return c.Y < other.Y }

// IsWestOf reports whether c lies strictly west of other (c.Y > other.Y).
func (c Coord) IsWestOf(other Coord) bool { return c.Y > other.Y }

// SegmentFrom classifies c into one of the four quadrants relative to ref.
// Points exactly on either cut line fall to the "false" side of the
// corresponding predicate, i.e. south or west.
func (c Coord) SegmentFrom(ref Coord) Segment {
	switch north, east := c.IsNorthOf(ref), c.IsEastOf(ref); {
	case north && east:
		return NE
	case north && !east:
		return NW
	case !north && east:
		return SE
	default:
		return SW
	}
}
