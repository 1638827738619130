package models

// LineKind tags one entry of a result breakdown.
type LineKind string

const (
	LineKindValue     LineKind = "value"
	LineKindSeparator LineKind = "separator"
)

// ResultLine is one row of a calculator result: either a labelled value
// ("Cement Bags: 12 bags (50kg)") or a visual separator between the
// quantity section and the cost section. Layout is carried by the Kind tag,
// never by magic label strings.
type ResultLine struct {
	Kind  LineKind `json:"kind"`
	Label string   `json:"label,omitempty"`
	Value string   `json:"value,omitempty"`
}

// ValueLine builds a labelled value line.
func ValueLine(label, value string) ResultLine {
	return ResultLine{Kind: LineKindValue, Label: label, Value: value}
}

// SeparatorLine builds a separator line.
func SeparatorLine() ResultLine {
	return ResultLine{Kind: LineKindSeparator}
}
