package property

import "errors"

var ErrUnknownProperty = errors.New("unknown property")

// Property identifies one of the two sites. The set is closed; values coming
// in over the API are parsed at the boundary and rejected if unknown.
type Property string

const (
	CedarLodge Property = "cedar_lodge"
	ClearLake  Property = "clear_lake"
)

// ClearLakeDayCapacity is the fixed number of per-guest day slots sold per
// date at Clear Lake.
const ClearLakeDayCapacity = 12

func Parse(s string) (Property, error) {
	p := Property(s)
	if !p.IsValid() {
		return "", ErrUnknownProperty
	}
	return p, nil
}

func (p Property) String() string {
	return string(p)
}

func (p Property) IsValid() bool {
	switch p {
	case CedarLodge, ClearLake:
		return true
	default:
		return false
	}
}

func All() []Property {
	return []Property{CedarLodge, ClearLake}
}
