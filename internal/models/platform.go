package models

// Platform is a closed enumeration of the shops deals can be filtered by.
// PlatformAll is the sentinel meaning "no shop filter".
type Platform int

const (
	PlatformAll Platform = iota
	PlatformAllYouPlay
	PlatformBlizzard
	PlatformDLGamer
	PlatformDreamgame
	PlatformEAStore
	PlatformEpicGames
	PlatformFanatical
	PlatformFireFlower
	PlatformGameBillet
	PlatformGamersGate
	PlatformGamesload
	PlatformGamesPlanetDE
	PlatformGamesPlanetFR
	PlatformGamesPlanetUK
	PlatformGamesPlanetUS
	PlatformGog
	PlatformGreenManGaming
	PlatformHumbleStore
	PlatformIndieGala
	PlatformJoyBuggy
	PlatformMacGameStore
	PlatformMicrosoftStore
	PlatformNewegg
	PlatformNuuvem
	PlatformPlanetPlay
	PlatformPlayerLand
	PlatformPlaysum
	PlatformSteam
	PlatformUbisoftStore
	PlatformWinGameStore
	PlatformZoomPlatform
)

// AllPlatforms lists every platform in display order, sentinel first.
var AllPlatforms = []Platform{
	PlatformAll,
	PlatformAllYouPlay,
	PlatformBlizzard,
	PlatformDLGamer,
	PlatformDreamgame,
	PlatformEAStore,
	PlatformEpicGames,
	PlatformFanatical,
	PlatformFireFlower,
	PlatformGameBillet,
	PlatformGamersGate,
	PlatformGamesload,
	PlatformGamesPlanetDE,
	PlatformGamesPlanetFR,
	PlatformGamesPlanetUK,
	PlatformGamesPlanetUS,
	PlatformGog,
	PlatformGreenManGaming,
	PlatformHumbleStore,
	PlatformIndieGala,
	PlatformJoyBuggy,
	PlatformMacGameStore,
	PlatformMicrosoftStore,
	PlatformNewegg,
	PlatformNuuvem,
	PlatformPlanetPlay,
	PlatformPlayerLand,
	PlatformPlaysum,
	PlatformSteam,
	PlatformUbisoftStore,
	PlatformWinGameStore,
	PlatformZoomPlatform,
}

var platformNames = map[Platform]string{
	PlatformAll:            "All Platforms",
	PlatformAllYouPlay:     "AllYouPlay",
	PlatformBlizzard:       "Blizzard",
	PlatformDLGamer:        "DLGamer",
	PlatformDreamgame:      "Dreamgame",
	PlatformEAStore:        "EA Store",
	PlatformEpicGames:      "Epic Game Store",
	PlatformFanatical:      "Fanatical",
	PlatformFireFlower:     "FireFlower",
	PlatformGameBillet:     "GameBillet",
	PlatformGamersGate:     "GamersGate",
	PlatformGamesload:      "Gamesload",
	PlatformGamesPlanetDE:  "GamesPlanet DE",
	PlatformGamesPlanetFR:  "GamesPlanet FR",
	PlatformGamesPlanetUK:  "GamesPlanet UK",
	PlatformGamesPlanetUS:  "GamesPlanet US",
	PlatformGog:            "GOG",
	PlatformGreenManGaming: "GreenManGaming",
	PlatformHumbleStore:    "Humble Store",
	PlatformIndieGala:      "IndieGala Store",
	PlatformJoyBuggy:       "JoyBuggy",
	PlatformMacGameStore:   "MacGameStore",
	PlatformMicrosoftStore: "Microsoft Store",
	PlatformNewegg:         "Newegg",
	PlatformNuuvem:         "Nuuvem",
	PlatformPlanetPlay:     "PlanetPlay",
	PlatformPlayerLand:     "PlayerLand",
	PlatformPlaysum:        "Playsum",
	PlatformSteam:          "Steam",
	PlatformUbisoftStore:   "Ubisoft Store",
	PlatformWinGameStore:   "WinGameStore",
	PlatformZoomPlatform:   "ZOOM Platform",
}

// Upstream numeric shop identifiers.
var platformShopIDs = map[Platform]int{
	PlatformAllYouPlay:     2,
	PlatformBlizzard:       4,
	PlatformDLGamer:        13,
	PlatformDreamgame:      15,
	PlatformEAStore:        52,
	PlatformEpicGames:      16,
	PlatformFanatical:      6,
	PlatformFireFlower:     17,
	PlatformGameBillet:     20,
	PlatformGamersGate:     24,
	PlatformGamesload:      25,
	PlatformGamesPlanetDE:  27,
	PlatformGamesPlanetFR:  28,
	PlatformGamesPlanetUK:  26,
	PlatformGamesPlanetUS:  29,
	PlatformGog:            35,
	PlatformGreenManGaming: 36,
	PlatformHumbleStore:    37,
	PlatformIndieGala:      42,
	PlatformJoyBuggy:       65,
	PlatformMacGameStore:   47,
	PlatformMicrosoftStore: 48,
	PlatformNewegg:         49,
	PlatformNuuvem:         50,
	PlatformPlanetPlay:     73,
	PlatformPlayerLand:     74,
	PlatformPlaysum:        70,
	PlatformSteam:          61,
	PlatformUbisoftStore:   62,
	PlatformWinGameStore:   64,
	PlatformZoomPlatform:   72,
}

// Name returns the display name of the platform.
func (p Platform) Name() string {
	return platformNames[p]
}

// ShopID returns the upstream shop identifier. The second return is false
// for PlatformAll, which carries no shop filter.
func (p Platform) ShopID() (int, bool) {
	id, ok := platformShopIDs[p]
	return id, ok
}

// PlatformFromName resolves a display name back to a Platform, defaulting to
// PlatformAll for unknown names.
func PlatformFromName(name string) Platform {
	for _, p := range AllPlatforms {
		if p.Name() == name {
			return p
		}
	}
	return PlatformAll
}
