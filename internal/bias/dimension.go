// Package bias scores articles on five dimensions from per-source baseline
// profiles, bounded random jitter and optional topic modifiers.
package bias

// Dimension identifies one of the five scored bias axes.
type Dimension string

const (
	IdeologicalStance  Dimension = "ideological_stance"
	FactualGrounding   Dimension = "factual_grounding"
	FramingChoices     Dimension = "framing_choices"
	EmotionalTone      Dimension = "emotional_tone"
	SourceTransparency Dimension = "source_transparency"
)

// Dimensions returns all dimensions in canonical order.
func Dimensions() []Dimension {
	return []Dimension{IdeologicalStance, FactualGrounding, FramingChoices, EmotionalTone, SourceTransparency}
}

// Label returns a human-readable name for the dimension.
func (d Dimension) Label() string {
	switch d {
	case IdeologicalStance:
		return "Ideological Stance"
	case FactualGrounding:
		return "Factual Grounding"
	case FramingChoices:
		return "Framing Choices"
	case EmotionalTone:
		return "Emotional Tone"
	case SourceTransparency:
		return "Source Transparency"
	default:
		return string(d)
	}
}
