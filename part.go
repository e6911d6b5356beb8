package partsledger

import (
	"cmp"
	"fmt"
)

// PartKey identifies a distinct stock-keeping unit.
//
// Two keys are the same part when all three fields are exactly equal. No
// normalization (case, whitespace) is applied. PartKey is comparable and is
// used directly as a map key.
type PartKey struct {
	ItemName   string `json:"itemName"`
	ModelName  string `json:"modelName"`
	PartNumber string `json:"partNumber"`
}

// NewPartKey returns the PartKey for the given fields.
func NewPartKey(item, model, number string) PartKey {
	return PartKey{ItemName: item, ModelName: model, PartNumber: number}
}

// String formats the part as "item model (number)".
func (k PartKey) String() string {
	return fmt.Sprintf("%s %s (%s)", k.ItemName, k.ModelName, k.PartNumber)
}

// Compare orders parts by item name, then model name, then part number.
func (k PartKey) Compare(o PartKey) int {
	if c := cmp.Compare(k.ItemName, o.ItemName); c != 0 {
		return c
	}
	if c := cmp.Compare(k.ModelName, o.ModelName); c != 0 {
		return c
	}
	return cmp.Compare(k.PartNumber, o.PartNumber)
}

// IsZero reports whether all fields are empty.
func (k PartKey) IsZero() bool { return k == PartKey{} }
