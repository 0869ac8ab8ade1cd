package audio

import "fmt"

// DefaultQuality is the tier used when none is specified
const DefaultQuality = "medium"

// QualitySetting is an immutable bitrate/sample-rate/channel preset
// selected once per run
type QualitySetting struct {
	Tier       string
	Bitrate    string // ffmpeg bitrate argument, e.g. "128k"
	SampleRate int    // Hz
	Channels   int
}

// All tiers downmix to mono to keep output small on constrained hosts.
var qualityTable = map[string]QualitySetting{
	"low":    {Tier: "low", Bitrate: "64k", SampleRate: 22050, Channels: 1},
	"medium": {Tier: "medium", Bitrate: "128k", SampleRate: 44100, Channels: 1},
	"high":   {Tier: "high", Bitrate: "192k", SampleRate: 44100, Channels: 1},
}

// ResolveQuality looks up the preset for a tier. Pure lookup, no side
// effects.
func ResolveQuality(tier string) (QualitySetting, error) {
	s, ok := qualityTable[tier]
	if !ok {
		return QualitySetting{}, fmt.Errorf("%w: %q (expected low, medium or high)", ErrInvalidQuality, tier)
	}
	return s, nil
}

// QualityTiers returns the valid tier names in ascending bitrate order
func QualityTiers() []string {
	return []string{"low", "medium", "high"}
}
