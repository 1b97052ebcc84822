package suggest

// Config — скалярные веса и пределы поиска. Значения подобраны вручную на
// типичных опечатках; см. DefaultConfig.
type Config struct {
	MatchCost               float32
	ProximityCost           float32
	AdditionalProximityCost float32
	SubstitutionCost        float32
	OmissionCost            float32
	OmissionCostSameChar    float32
	InsertionCost           float32
	InsertionCostSameChar   float32
	TranspositionCost       float32
	SpaceSubstitutionCost   float32
	NewWordCost             float32
	CompletionCost          float32
	TerminalCost            float32
	BigramWeight            float32

	MaxEdits           int
	MaxWords           int
	MaxCompletionDepth int
	BeamWidth          int
	MaxSuggestions     int
}

var DefaultConfig = Config{
	MatchCost:               0,
	ProximityCost:           0.65,
	AdditionalProximityCost: 1.2,
	SubstitutionCost:        1.8,
	OmissionCost:            1.3,
	OmissionCostSameChar:    0.5,
	InsertionCost:           1.6,
	InsertionCostSameChar:   0.6,
	TranspositionCost:       1.1,
	SpaceSubstitutionCost:   1.4,
	NewWordCost:             1.5,
	CompletionCost:          0.55,
	TerminalCost:            0.1,
	BigramWeight:            0.004,

	MaxEdits:           2,
	MaxWords:           3,
	MaxCompletionDepth: 10,
	BeamWidth:          60,
	MaxSuggestions:     8,
}

// Suggestion is one ranked candidate.
type Suggestion struct {
	Word     string  `json:"word"`
	Distance float32 `json:"distance"`
}
