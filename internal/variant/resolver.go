// Package variant translates between a product's raw option schema and a
// human-selectable variant, and validates a selection against actual stock.
package variant

import (
	"encoding/json"

	"github.com/hemteknik/storefront-backend/internal/catalog"
)

// Selection is an in-progress attribute choice, always string-encoded. It
// may be partial, and it may fail to match any option.
type Selection map[string]string

// Clone returns an independent copy.
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Key returns the canonical serialization of a selection, used as part of a
// cart line's identity. encoding/json sorts map keys, so two selections with
// equal content always serialize identically.
func Key(sel Selection) string {
	if sel == nil {
		sel = Selection{}
	}
	data, err := json.Marshal(sel)
	if err != nil {
		// Marshaling map[string]string cannot fail.
		panic(err)
	}
	return string(data)
}

// DeriveInitialSelection projects the first in-stock option into a
// selection: list-valued attributes take their first element, scalars are
// stringified, quantity is never projected. If no option has stock the
// selection stays empty.
func DeriveInitialSelection(options []catalog.ProductOption) Selection {
	sel := Selection{}
	for _, opt := range options {
		if opt.Quantity <= 0 {
			continue
		}
		for key, attr := range opt.Attrs {
			if value, ok := attr.First(); ok {
				sel[key] = value
			}
		}
		break
	}
	return sel
}

// ResolveOption returns the first option admitting every selected key, or
// nil when none matches. Keys absent from the selection are don't-care, so
// an empty selection matches the first option unconditionally.
func ResolveOption(options []catalog.ProductOption, sel Selection) *catalog.ProductOption {
	for i := range options {
		if optionMatches(&options[i], sel) {
			return &options[i]
		}
	}
	return nil
}

func optionMatches(opt *catalog.ProductOption, sel Selection) bool {
	for key, selected := range sel {
		attr, ok := opt.Attrs[key]
		if !ok {
			return false
		}
		if !attr.Contains(selected) {
			return false
		}
	}
	return true
}
