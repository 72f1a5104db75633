package recommend

import "strings"

// synonymsByTerm maps a canonical term to related terms used for query
// expansion. Lookup is single-level: synonyms of synonyms are not followed.
// The table is read-only after process start.
var synonymsByTerm = map[string][]string{
	// Product types
	"headphones": {
		"headphone", "headset", "earphones", "earbuds", "audio device",
		"audio", "sound", "listening device", "cordless audio", "cordless",
	},
	"keyboard": {"keyboards", "typing", "keys", "input device", "mechanical"},
	"laptop": {
		"notebook", "computer", "ultrabook", "pc", "device", "computing",
		"workstation",
	},
	"speaker":   {"speakers", "audio", "sound system", "sound", "music"},
	"camera":    {"cameras", "security cam", "webcam", "surveillance"},
	"display":   {"screen", "monitor", "display", "hub"},
	"charger":   {"charging", "power adapter", "power supply", "power", "charge"},
	"powerbank": {"battery pack", "portable charger", "power bank", "battery"},

	// Features
	"wireless":     {"cordless", "bluetooth", "wire-free", "no wires", "wifi"},
	"portable":     {"mobile", "travel", "carry", "lightweight", "compact"},
	"gaming":       {"game", "gamer", "games", "play", "rgb"},
	"professional": {"pro", "work", "business", "office", "premium"},
	"premium":      {"high-end", "quality", "luxury", "top", "professional", "best"},

	// Use cases
	"music":       {"audio", "sound", "listening", "songs", "entertainment"},
	"work":        {"office", "professional", "business", "productivity", "desk"},
	"travel":      {"portable", "journey", "trip", "commute", "mobile"},
	"home":        {"house", "domestic", "residential", "indoor", "smart home"},
	"security":    {"monitoring", "surveillance", "protection", "safety"},
	"accessories": {"accessory", "addon", "peripheral", "extra"},
	"audio":       {"sound", "music", "listening", "headphones", "speakers"},
}

// FindSynonyms returns the related terms for a word, or an empty slice for
// unknown words. Lookup is case-insensitive.
func FindSynonyms(word string) []string {
	if synonyms, ok := synonymsByTerm[strings.ToLower(word)]; ok {
		return synonyms
	}
	return []string{}
}
