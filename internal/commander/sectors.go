package commander

import "math"

// Sector is one coarse rectangular world partition. The analyzer owns a
// fixed-size array of these and rewrites them wholesale each pass — partial
// updates are the classic source of stale-sector bugs, so there are none.
type Sector struct {
	X, Y          float64 // top-left world corner
	Width, Height float64
	TotalDPS      float64
	ThreatSum     float64
	EnemyCount    int
}

// CenterX returns the world X of the sector center.
func (s *Sector) CenterX() float64 { return s.X + s.Width/2 }

// CenterY returns the world Y of the sector center.
func (s *Sector) CenterY() float64 { return s.Y + s.Height/2 }

// SectorAnalyzer aggregates per-sector threat and turret DPS for fast coarse
// queries and the debug overlay.
type SectorAnalyzer struct {
	cols, rows int
	sectorW    float64
	sectorH    float64
	sectors    []Sector
}

// NewSectorAnalyzer partitions a worldW x worldH area into cols x rows sectors.
func NewSectorAnalyzer(worldW, worldH, cols, rows int) *SectorAnalyzer {
	sa := &SectorAnalyzer{
		cols:    cols,
		rows:    rows,
		sectorW: float64(worldW) / float64(cols),
		sectorH: float64(worldH) / float64(rows),
		sectors: make([]Sector, cols*rows),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			sa.sectors[r*cols+c] = Sector{
				X:      float64(c) * sa.sectorW,
				Y:      float64(r) * sa.sectorH,
				Width:  sa.sectorW,
				Height: sa.sectorH,
			}
		}
	}
	return sa
}

// Cols returns the sector grid width.
func (sa *SectorAnalyzer) Cols() int { return sa.cols }

// Rows returns the sector grid height.
func (sa *SectorAnalyzer) Rows() int { return sa.rows }

// Sectors returns the sector array. Read-only by convention — only Recompute
// mutates it, within a single director tick.
func (sa *SectorAnalyzer) Sectors() []Sector {
	return sa.sectors
}

// SectorAt returns the sector containing a world point, or nil if the point
// is outside the world.
func (sa *SectorAnalyzer) SectorAt(wx, wy float64) *Sector {
	c := int(math.Floor(wx / sa.sectorW))
	r := int(math.Floor(wy / sa.sectorH))
	if c < 0 || r < 0 || c >= sa.cols || r >= sa.rows {
		return nil
	}
	return &sa.sectors[r*sa.cols+c]
}

// Recompute zeroes every sector and re-aggregates from the snapshot: enemies
// contribute faction-weighted threat and a head count to their containing
// sector; each unit contributes its DPS to every sector whose center falls
// within the unit's range.
func (sa *SectorAnalyzer) Recompute(snap Snapshot) {
	for i := range sa.sectors {
		sa.sectors[i].TotalDPS = 0
		sa.sectors[i].ThreatSum = 0
		sa.sectors[i].EnemyCount = 0
	}

	for _, e := range snap.Enemies {
		s := sa.SectorAt(e.X, e.Y)
		if s == nil {
			continue
		}
		s.ThreatSum += e.ThreatLevel * e.Faction.ThreatModifier()
		s.EnemyCount++
	}

	for _, u := range snap.Units {
		r2 := u.Range * u.Range
		for i := range sa.sectors {
			s := &sa.sectors[i]
			dx := s.CenterX() - u.X
			dy := s.CenterY() - u.Y
			if dx*dx+dy*dy <= r2 {
				s.TotalDPS += u.DPS
			}
		}
	}
}

// HottestSector returns the sector with the highest threat sum, or nil when
// no sector holds any threat.
func (sa *SectorAnalyzer) HottestSector() *Sector {
	var best *Sector
	for i := range sa.sectors {
		s := &sa.sectors[i]
		if s.ThreatSum <= 0 {
			continue
		}
		if best == nil || s.ThreatSum > best.ThreatSum {
			best = s
		}
	}
	return best
}
