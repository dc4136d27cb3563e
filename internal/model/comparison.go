package model

// Direction values of Comparison.EntropyDirection.
const (
	DirectionHigher    = "higher"
	DirectionLower     = "lower"
	DirectionUnchanged = "unchanged"
)

// ComparedInput summarises one side of a comparison.
type ComparedInput struct {
	Input            string  `json:"input"`
	Fingerprint      string  `json:"fingerprint"`
	Length           int     `json:"length"`
	UniqueCharacters int     `json:"unique_characters"`
	Entropy          float64 `json:"entropy"`
	PrintableRatio   float64 `json:"printable_ratio"`
}

// Comparison describes how a right-hand input differs from a left-hand one.
// Deltas are right minus left.
type Comparison struct {
	Left  ComparedInput `json:"left"`
	Right ComparedInput `json:"right"`

	// Identical is true when both inputs have the same fingerprint.
	Identical bool `json:"identical"`

	LengthDelta         int     `json:"length_delta"`
	UniqueDelta         int     `json:"unique_delta"`
	EntropyDelta        float64 `json:"entropy_delta"`
	PrintableRatioDelta float64 `json:"printable_ratio_delta"`

	// EntropyDirection is higher, lower or unchanged.
	EntropyDirection string `json:"entropy_direction"`

	// CategoryDeltas holds the count change of every category.
	CategoryDeltas map[Category]int `json:"category_deltas"`

	// SharedCharacters occur in both inputs, in left-hand order.
	SharedCharacters []string `json:"shared_characters"`

	// LeftOnly and RightOnly occur in one input only.
	LeftOnly  []string `json:"left_only"`
	RightOnly []string `json:"right_only"`

	// InsightsGained appear only for the right-hand input,
	// InsightsLost only for the left-hand one.
	InsightsGained []string `json:"insights_gained"`
	InsightsLost   []string `json:"insights_lost"`

	// DecodingsGained and DecodingsLost list codec labels whose success
	// differs between the inputs.
	DecodingsGained []string `json:"decodings_gained"`
	DecodingsLost   []string `json:"decodings_lost"`
}
