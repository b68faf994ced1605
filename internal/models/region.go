package models

import "strings"

// Region is a closed enumeration of the storefront regions (pricing
// country/currency). Regions are grouped by continent for UI sectioning.
type Region int

const (
	RegionUS Region = iota
	RegionCA
	RegionMX
	RegionBR
	RegionAR
	RegionCL
	RegionGB
	RegionDE
	RegionFR
	RegionES
	RegionIT
	RegionNL
	RegionBE
	RegionAT
	RegionCH
	RegionPL
	RegionCZ
	RegionPT
	RegionGR
	RegionSE
	RegionNO
	RegionDK
	RegionFI
	RegionTR
	RegionJP
	RegionKR
	RegionCN
	RegionIN
	RegionSG
	RegionAU
	RegionNZ
	RegionZA
)

// AllRegions lists every region grouped by continent, in display order.
var AllRegions = []Region{
	RegionUS, RegionCA, RegionMX,
	RegionBR, RegionAR, RegionCL,
	RegionGB, RegionDE, RegionFR, RegionES, RegionIT, RegionNL, RegionBE,
	RegionAT, RegionCH, RegionPL, RegionCZ, RegionPT, RegionGR, RegionSE,
	RegionNO, RegionDK, RegionFI, RegionTR,
	RegionJP, RegionKR, RegionCN, RegionIN, RegionSG,
	RegionAU, RegionNZ,
	RegionZA,
}

type regionInfo struct {
	code      string
	name      string
	continent string
}

var regionTable = map[Region]regionInfo{
	RegionUS: {"US", "United States", "North America"},
	RegionCA: {"CA", "Canada", "North America"},
	RegionMX: {"MX", "Mexico", "North America"},
	RegionBR: {"BR", "Brazil", "South America"},
	RegionAR: {"AR", "Argentina", "South America"},
	RegionCL: {"CL", "Chile", "South America"},
	RegionGB: {"GB", "United Kingdom", "Europe"},
	RegionDE: {"DE", "Germany", "Europe"},
	RegionFR: {"FR", "France", "Europe"},
	RegionES: {"ES", "Spain", "Europe"},
	RegionIT: {"IT", "Italy", "Europe"},
	RegionNL: {"NL", "Netherlands", "Europe"},
	RegionBE: {"BE", "Belgium", "Europe"},
	RegionAT: {"AT", "Austria", "Europe"},
	RegionCH: {"CH", "Switzerland", "Europe"},
	RegionPL: {"PL", "Poland", "Europe"},
	RegionCZ: {"CZ", "Czechia", "Europe"},
	RegionPT: {"PT", "Portugal", "Europe"},
	RegionGR: {"GR", "Greece", "Europe"},
	RegionSE: {"SE", "Sweden", "Europe"},
	RegionNO: {"NO", "Norway", "Europe"},
	RegionDK: {"DK", "Denmark", "Europe"},
	RegionFI: {"FI", "Finland", "Europe"},
	RegionTR: {"TR", "Turkey", "Europe"},
	RegionJP: {"JP", "Japan", "Asia"},
	RegionKR: {"KR", "South Korea", "Asia"},
	RegionCN: {"CN", "China", "Asia"},
	RegionIN: {"IN", "India", "Asia"},
	RegionSG: {"SG", "Singapore", "Asia"},
	RegionAU: {"AU", "Australia", "Oceania"},
	RegionNZ: {"NZ", "New Zealand", "Oceania"},
	RegionZA: {"ZA", "South Africa", "Africa"},
}

// Legacy region identifiers from the upstream tracker's first API
// generation, still accepted in persisted configs.
var legacyRegionAliases = map[string]Region{
	"EU1": RegionDE,
	"EU2": RegionFR,
	"BR2": RegionBR,
}

// DefaultRegion is used when no region has been configured.
const DefaultRegion = RegionUS

// Code returns the ISO 3166-1 alpha-2 country code sent to the API.
func (r Region) Code() string {
	return regionTable[r].code
}

// Name returns the display name of the region.
func (r Region) Name() string {
	return regionTable[r].name
}

// Continent returns the continent the region is grouped under.
func (r Region) Continent() string {
	return regionTable[r].continent
}

// RegionFromCode resolves a country code (or legacy alias) to a Region. The
// lookup is case-insensitive. The second return is false for unknown codes.
func RegionFromCode(code string) (Region, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	for _, r := range AllRegions {
		if regionTable[r].code == code {
			return r, true
		}
	}
	if r, ok := legacyRegionAliases[code]; ok {
		return r, true
	}
	return DefaultRegion, false
}

// Continents returns the distinct continents in display order.
func Continents() []string {
	var out []string
	seen := map[string]bool{}
	for _, r := range AllRegions {
		c := regionTable[r].continent
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
