package demo

import "fmt"

// Common areas in Pune for more realistic location naming.
var puneAreas = []string{
	"Shivaji Nagar", "Kothrud", "Hadapsar", "Baner", "Aundh",
	"Viman Nagar", "Kharadi", "Hinjewadi", "Pimple Saudagar",
	"Deccan Gymkhana", "Camp", "Kondhwa", "Pashan", "Magarpatta",
	"Wakad", "Kalyani Nagar", "Koregaon Park", "Pimpri-Chinchwad",
	"Yerwada", "Swargate", "Katraj", "Warje", "Bibwewadi", "Mundhwa",
}

var garbageTypes = []string{
	"plastic waste", "household trash", "construction debris",
	"electronic waste", "garden waste", "food waste", "medical waste",
	"paper waste", "glass waste", "mixed garbage",
}

var severities = []string{
	"small amount of", "moderate amount of", "large pile of",
	"scattered", "overflowing bin with",
}

var places = []string{
	"beside the road", "on the sidewalk", "in a vacant lot",
	"near a bus stop", "behind the building", "under the bridge",
	"by the park", "at the street corner", "near the market",
	"outside the mall",
}

var impacts = []string{
	"It's attracting stray animals",
	"It's blocking the path",
	"It's causing bad odor",
	"It's affecting local businesses",
	"It's been there for a week",
	"It's flowing into the drain",
	"It needs immediate attention",
	"Residents are complaining",
	"It's near a school zone",
	"It's a health hazard",
}

// buildDescription assembles the templated sentence used for every
// synthetic report.
func buildDescription(severity, garbageType, place, area, impact string) string {
	return fmt.Sprintf("%s %s found %s in %s. %s.", severity, garbageType, place, area, impact)
}

func (g *Generator) randomDescription() string {
	return buildDescription(
		severities[g.rng.Intn(len(severities))],
		garbageTypes[g.rng.Intn(len(garbageTypes))],
		places[g.rng.Intn(len(places))],
		puneAreas[g.rng.Intn(len(puneAreas))],
		impacts[g.rng.Intn(len(impacts))],
	)
}
