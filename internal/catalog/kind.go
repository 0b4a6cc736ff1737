package catalog

// Kind tags which product table a reference points at. An order or cart line
// is always exactly one of the two.
type Kind string

const (
	KindBouquet Kind = "bouquet"
	KindFlower  Kind = "flower"
)

func (k Kind) Valid() bool {
	return k == KindBouquet || k == KindFlower
}
