package galaxy

import "simeis/internal/model"

// ScanResult :
// Position-only view of everything discovered within scan range.
type ScanResult struct {
	Planets  []model.PlanetInfo
	Stations []model.StationInfo
}

// Scan :
// Surveys every sector within `rank-1` sectors of `center` along each
// axis, generating any sector not yet visited. A rank of 1 scans only
// the sector the ship currently sits in. Sectors lying outside the
// coordinate range of `SpaceUnit` are skipped.
func (g *Galaxy) Scan(center model.Coord, rank uint8) ScanResult {
	radius := int64(0)
	if rank > 1 {
		radius = int64(rank) - 1
	}

	origin := sectorOf(center)
	result := ScanResult{}

	maxSector := int64(^model.SpaceUnit(0)) / int64(sectorSize)
	inBounds := func(v int64) bool { return v >= 0 && v <= maxSector }

	g.mu.Lock()
	defer g.mu.Unlock()

	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			for dz := -radius; dz <= radius; dz++ {
				sc := SectorCoord{X: origin.X + dx, Y: origin.Y + dy, Z: origin.Z + dz}
				if !inBounds(sc.X) || !inBounds(sc.Y) || !inBounds(sc.Z) {
					continue
				}
				sector := g.sectorAtLocked(sc)

				for i := range sector.Planets {
					result.Planets = append(result.Planets, sector.Planets[i].Scan())
				}
				for _, st := range sector.Stations {
					result.Stations = append(result.Stations, st.Scan())
				}
			}
		}
	}

	return result
}

// sectorAtLocked :
// Same as sectorAt but addressed directly by sector coordinate, used
// by Scan which walks a cube of sectors rather than a single point.
func (g *Galaxy) sectorAtLocked(sc SectorCoord) *Sector {
	if s, ok := g.sectors[sc]; ok {
		return s
	}

	s := &Sector{
		Planets:  make([]model.Planet, 0, planetsPerSector),
		Stations: make(map[model.StationId]*model.Station),
	}
	for i := 0; i < planetsPerSector; i++ {
		s.Planets = append(s.Planets, g.randomPlanet(sc))
	}
	g.sectors[sc] = s
	return s
}
