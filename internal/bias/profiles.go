package bias

// Profile is a source's baseline on the five dimensions before jitter and
// topic modifiers are applied.
type Profile struct {
	IdeologicalStance  float64
	FactualGrounding   float64
	EmotionalTone      float64
	FramingChoices     float64
	SourceTransparency float64
}

// Curated baselines for known outlets.
var sourceProfiles = map[string]Profile{
	"CNN":                 {IdeologicalStance: -25, FactualGrounding: 75, EmotionalTone: 35, FramingChoices: 40, SourceTransparency: 70},
	"Fox News":            {IdeologicalStance: 45, FactualGrounding: 65, EmotionalTone: 55, FramingChoices: 50, SourceTransparency: 60},
	"Reuters":             {IdeologicalStance: 5, FactualGrounding: 90, EmotionalTone: 15, FramingChoices: 20, SourceTransparency: 85},
	"BBC":                 {IdeologicalStance: -10, FactualGrounding: 85, EmotionalTone: 20, FramingChoices: 25, SourceTransparency: 80},
	"Wall Street Journal": {IdeologicalStance: 20, FactualGrounding: 80, EmotionalTone: 25, FramingChoices: 30, SourceTransparency: 75},
	"The Guardian":        {IdeologicalStance: -35, FactualGrounding: 70, EmotionalTone: 40, FramingChoices: 45, SourceTransparency: 65},
	"Associated Press":    {IdeologicalStance: 0, FactualGrounding: 95, EmotionalTone: 10, FramingChoices: 15, SourceTransparency: 90},
	"New York Times":      {IdeologicalStance: -20, FactualGrounding: 80, EmotionalTone: 30, FramingChoices: 35, SourceTransparency: 75},
}

// neutralProfile is the fallback for outlets without a curated baseline.
var neutralProfile = Profile{
	IdeologicalStance:  0,
	FactualGrounding:   75,
	EmotionalTone:      30,
	FramingChoices:     35,
	SourceTransparency: 70,
}

// ProfileFor returns the baseline profile for source, or the neutral fallback
// when the outlet is unknown.
func ProfileFor(source string) Profile {
	if p, ok := sourceProfiles[source]; ok {
		return p
	}
	return neutralProfile
}
