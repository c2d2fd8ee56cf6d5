package pipindex

import "github.com/fpga-tools/arcpart/device"

// Index holds the four directional buckets built for one partition pass.
// It is built once and never resized; only the uses field inside each
// bucket entry is mutated afterward.
type Index struct {
	buckets map[Key]Bucket
	stats   Stats
}

// Build iterates pips once and keeps those lying on the cut at x or y,
// within the inclusive [xLo, xHi] x [yLo, yHi] active bounds, with a
// non-internal direction. Each kept pip is inserted into north/south
// and/or east/west buckets keyed by its own location.
// Insertion order follows pip iteration order so bucket tie-breaking is
// stable across runs.
func Build(pips []device.PipID, dev device.Device, x, y, xLo, xHi, yLo, yHi int) *Index {
	idx := &Index{buckets: make(map[Key]Bucket)}

	for _, p := range pips {
		loc := dev.PipLocation(p)
		if loc.X != x && loc.Y != y {
			continue
		}
		if loc.X < xLo || loc.X > xHi || loc.Y < yLo || loc.Y > yHi {
			continue
		}
		dir := dev.PipDirection(p)
		if dir.IsInternal() {
			continue
		}

		idx.stats.Candidates++
		e := &entry{pip: p}

		if dir.DX < 0 {
			idx.stats.North++
			idx.insert(Key{X: loc.X, Y: loc.Y, Dir: North}, e)
		}
		if dir.DX > 0 {
			idx.stats.South++
			idx.insert(Key{X: loc.X, Y: loc.Y, Dir: South}, e)
		}
		if dir.DY < 0 {
			idx.stats.East++
			idx.insert(Key{X: loc.X, Y: loc.Y, Dir: East}, e)
		}
		if dir.DY > 0 {
			idx.stats.West++
			idx.insert(Key{X: loc.X, Y: loc.Y, Dir: West}, e)
		}
	}

	return idx
}

func (idx *Index) insert(k Key, e *entry) {
	idx.buckets[k] = append(idx.buckets[k], e)
}

// Stats returns the candidate-pip breakdown recorded while building idx.
func (idx *Index) Stats() Stats { return idx.stats }

// Bucket returns the bucket at key k, or nil if it is empty.
func (idx *Index) Bucket(k Key) Bucket { return idx.buckets[k] }
