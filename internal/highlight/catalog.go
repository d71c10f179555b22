package highlight

import "github.com/yushkumar524/BiasLabPrototype/internal/bias"

// Entry pairs a catalog phrase with the dimension it signals.
type Entry struct {
	Text      string
	Dimension bias.Dimension
}

// Catalog is the fixed detection vocabulary. Scan order is the order below —
// ideological, emotional, factual, framing, transparency — and with the cap of
// five highlights per article, reordering the catalog changes which matches
// survive. The order is part of the contract, not an accident of insertion.
var Catalog = []Entry{
	{"devastating blow", bias.IdeologicalStance},
	{"radical agenda", bias.IdeologicalStance},
	{"common-sense solution", bias.IdeologicalStance},
	{"extreme measures", bias.IdeologicalStance},
	{"failed policies", bias.IdeologicalStance},

	{"shocking revelation", bias.EmotionalTone},
	{"catastrophic", bias.EmotionalTone},
	{"unprecedented crisis", bias.EmotionalTone},
	{"explosive", bias.EmotionalTone},
	{"dramatic surge", bias.EmotionalTone},

	{"sources claim", bias.FactualGrounding},
	{"allegedly", bias.FactualGrounding},
	{"reportedly", bias.FactualGrounding},
	{"critics argue", bias.FactualGrounding},

	{"under fire", bias.FramingChoices},
	{"faces backlash", bias.FramingChoices},
	{"controversial", bias.FramingChoices},
	{"defended their position", bias.FramingChoices},

	{"anonymous sources", bias.SourceTransparency},
	{"unnamed officials", bias.SourceTransparency},
	{"according to reports", bias.SourceTransparency},
	{"leaked documents", bias.SourceTransparency},
}

// Color returns the display hex color for a dimension's highlights.
func Color(d bias.Dimension) string {
	switch d {
	case bias.IdeologicalStance:
		return "#ff6b6b"
	case bias.FactualGrounding:
		return "#48dbfb"
	case bias.FramingChoices:
		return "#feca57"
	case bias.EmotionalTone:
		return "#ff9ff3"
	case bias.SourceTransparency:
		return "#54a0ff"
	default:
		return "#cccccc"
	}
}
