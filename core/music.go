package core

import "strings"

// HitType identifies a percussive timbre in the voice bank
type HitType int

const (
	HitKick HitType = iota
	HitSnare
	HitHihat
	HitClap
	HitRim
	HitCowbell
	HitShaker
	HitConga
	HitTom
	HitTypeCount
)

var hitNames = [...]string{"kick", "snare", "hihat", "clap", "rim", "cowbell", "shaker", "conga", "tom"}

func (h HitType) String() string {
	if h >= 0 && int(h) < len(hitNames) {
		return hitNames[h]
	}
	return "unknown"
}

// Valid reports whether h names a known percussive timbre
func (h HitType) Valid() bool {
	return h >= 0 && h < HitTypeCount
}

// ParseHitType resolves a case-insensitive hit name
func ParseHitType(s string) (HitType, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range hitNames {
		if name == s {
			return HitType(i), true
		}
	}
	return 0, false
}

// HitTypes returns every hit type in declaration order
func HitTypes() []HitType {
	out := make([]HitType, 0, HitTypeCount)
	for h := HitKick; h < HitTypeCount; h++ {
		out = append(out, h)
	}
	return out
}
