package variant

import "github.com/hemteknik/storefront-backend/internal/catalog"

// Selector holds the live selection state for one product view: the current
// product, the user's in-progress selection, and the option it resolves to.
//
// When the product reference is cleared, resolution does not run and the
// previously resolved option is deliberately kept until a new product
// arrives. That retention mirrors the shipped product behavior and callers
// rely on it; see the selector tests.
type Selector struct {
	product   *catalog.Product
	selection Selection
	selected  *catalog.ProductOption
}

func NewSelector() *Selector {
	return &Selector{selection: Selection{}}
}

// SetProduct swaps the product under selection and re-derives the initial
// selection. A nil product detaches the selector but leaves the selection
// and the last resolved option untouched.
func (s *Selector) SetProduct(product *catalog.Product) {
	if product == nil {
		s.product = nil
		return
	}
	s.product = product
	s.selection = DeriveInitialSelection(product.Options)
	s.resolve()
}

// Choose records one attribute choice and re-resolves. Choices made with no
// product attached are kept for when one arrives.
func (s *Selector) Choose(key, value string) {
	next := s.selection.Clone()
	next[key] = value
	s.selection = next
	if s.product == nil {
		return
	}
	s.resolve()
}

// Selection returns a copy of the in-progress selection.
func (s *Selector) Selection() Selection {
	return s.selection.Clone()
}

// SelectedOption returns the currently resolved option, or nil when the
// selection matches nothing. A nil result is a valid state the caller uses
// to disable purchase actions.
func (s *Selector) SelectedOption() *catalog.ProductOption {
	return s.selected
}

func (s *Selector) resolve() {
	s.selected = ResolveOption(s.product.Options, s.selection)
}
