package order

import (
	"strconv"

	"floreria-be/internal/catalog"
)

// ProductRef is a resolved line-item product reference: a kind tag plus the
// numeric id, so both-set and both-unset states are unrepresentable.
type ProductRef struct {
	Kind catalog.Kind
	ID   int64
}

// ParseProductRef resolves a raw client identifier into a ProductRef. Client
// ids may carry a prefix ("bouquet-12", "f_8"); the first contiguous digit
// run is the id.
func ParseProductRef(kind catalog.Kind, raw string) (ProductRef, error) {
	if !kind.Valid() {
		return ProductRef{}, E(KindInvalidProductID, "unknown product kind %q", kind)
	}

	start, end := -1, len(raw)
	for i, r := range raw {
		if r >= '0' && r <= '9' {
			if start == -1 {
				start = i
			}
		} else if start != -1 {
			end = i
			break
		}
	}
	if start == -1 {
		return ProductRef{}, E(KindInvalidProductID, "invalid product id %q", raw)
	}

	id, err := strconv.ParseInt(raw[start:end], 10, 64)
	if err != nil {
		return ProductRef{}, E(KindInvalidProductID, "invalid product id %q", raw)
	}

	return ProductRef{Kind: kind, ID: id}, nil
}
