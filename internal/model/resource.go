package model

// Resource :
// Tagged variant over the small closed set of commodities. Enumeration
// order is the catalog iteration order used everywhere a stable walk
// over all resources is needed (market drift, extraction rate lookup).
type Resource int

const (
	Stone Resource = iota
	Iron
	Helium
	Ozone
	Fuel
	HullPlate
)

// AllResources :
// Every resource in catalog order.
var AllResources = []Resource{Stone, Iron, Helium, Ozone, Fuel, HullPlate}

// ParseResource :
// The inverse of String, used by the HTTP collaborator to turn a path
// segment back into a Resource.
func ParseResource(s string) (Resource, *GameError) {
	for _, r := range AllResources {
		if r.String() == s {
			return r, nil
		}
	}
	return 0, ErrInvalidArgument("resource")
}

func (r Resource) String() string {
	switch r {
	case Stone:
		return "Stone"
	case Iron:
		return "Iron"
	case Helium:
		return "Helium"
	case Ozone:
		return "Ozone"
	case Fuel:
		return "Fuel"
	case HullPlate:
		return "HullPlate"
	default:
		return "Unknown"
	}
}

// resourceAttrs :
// Immutable catalog attributes for a resource. Defaults are compiled
// in below; `LoadCatalogOverride` may replace them from a YAML file at
// startup.
type resourceAttrs struct {
	basePrice            float64
	volume               float64
	extractionDifficulty float64
}

var catalog = map[Resource]resourceAttrs{
	Stone:     {basePrice: 3.5, volume: 0.85, extractionDifficulty: 0.08},
	Iron:      {basePrice: 7.0, volume: 0.3, extractionDifficulty: 2.0},
	Helium:    {basePrice: 3.5, volume: 0.85, extractionDifficulty: 0.08},
	Ozone:     {basePrice: 7.0, volume: 0.3, extractionDifficulty: 2.0},
	Fuel:      {basePrice: 5.0, volume: 2.0, extractionDifficulty: 0},
	HullPlate: {basePrice: 3.5, volume: 0.05, extractionDifficulty: 0},
}

// BasePrice :
// Currency per unit the market starts (and mean-reverts) at.
func (r Resource) BasePrice() float64 {
	return catalog[r].basePrice
}

// Volume :
// Cargo units consumed per unit of this resource.
func (r Resource) Volume() float64 {
	return catalog[r].volume
}

// ExtractionDifficulty :
// Raw difficulty used by the extraction rate formula. Only defined for
// extractable (non-crafted) resources.
func (r Resource) ExtractionDifficulty() float64 {
	return catalog[r].extractionDifficulty
}

// Mineable :
// Whether a Miner module operator of the given rank can extract this
// resource from a solid planet. Stone is always mineable; Iron needs
// rank > 3; everything else is never mined.
func (r Resource) Mineable(rank uint8) bool {
	switch r {
	case Stone:
		return true
	case Iron:
		return rank > 3
	default:
		return false
	}
}

// Suckable :
// Whether a GasSucker module operator of the given rank can extract
// this resource from a gaseous planet.
func (r Resource) Suckable(rank uint8) bool {
	switch r {
	case Helium:
		return true
	case Ozone:
		return rank > 3
	default:
		return false
	}
}
