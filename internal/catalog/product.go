package catalog

import (
	"encoding/json"
	"strconv"
)

// AttrKind tags the shape of a product option attribute.
type AttrKind int

const (
	AttrString AttrKind = iota
	AttrNumber
	AttrList
)

// Scalar is a single attribute value, string- or number-typed. Display and
// matching always go through the stringified form.
type Scalar struct {
	isNumber bool
	str      string
	num      float64
}

func StringScalar(value string) Scalar {
	return Scalar{str: value}
}

func NumberScalar(value float64) Scalar {
	return Scalar{isNumber: true, num: value}
}

func (s Scalar) String() string {
	if s.isNumber {
		return strconv.FormatFloat(s.num, 'f', -1, 64)
	}
	return s.str
}

func (s Scalar) MarshalJSON() ([]byte, error) {
	if s.isNumber {
		return json.Marshal(s.num)
	}
	return json.Marshal(s.str)
}

// AttrValue is one option attribute: a scalar or an ordered list of scalars.
// List values represent sub-SKUs sharing the option's other attributes.
type AttrValue struct {
	kind   AttrKind
	scalar Scalar
	list   []Scalar
}

func StringAttr(value string) AttrValue {
	return AttrValue{kind: AttrString, scalar: StringScalar(value)}
}

func NumberAttr(value float64) AttrValue {
	return AttrValue{kind: AttrNumber, scalar: NumberScalar(value)}
}

func ListAttr(values ...Scalar) AttrValue {
	return AttrValue{kind: AttrList, list: values}
}

func (v AttrValue) Kind() AttrKind {
	return v.kind
}

// First returns the stringified scalar, or the first element of a list.
// Used to project an option into an initial selection.
func (v AttrValue) First() (string, bool) {
	switch v.kind {
	case AttrList:
		if len(v.list) == 0 {
			return "", false
		}
		return v.list[0].String(), true
	default:
		return v.scalar.String(), true
	}
}

// Contains reports whether the attribute admits the selected string value:
// equality against the stringified scalar, or membership for lists.
func (v AttrValue) Contains(selected string) bool {
	switch v.kind {
	case AttrList:
		for _, item := range v.list {
			if item.String() == selected {
				return true
			}
		}
		return false
	default:
		return v.scalar.String() == selected
	}
}

// Values returns the selectable stringified values in order.
func (v AttrValue) Values() []string {
	if v.kind != AttrList {
		return []string{v.scalar.String()}
	}
	out := make([]string, 0, len(v.list))
	for _, item := range v.list {
		out = append(out, item.String())
	}
	return out
}

func (v AttrValue) MarshalJSON() ([]byte, error) {
	if v.kind == AttrList {
		return json.Marshal(v.list)
	}
	return json.Marshal(v.scalar)
}

// ProductOption is one stock-tracked SKU variant: a fixed quantity plus an
// open mapping from attribute name to value. The attribute set is not fixed
// across options of the same product.
type ProductOption struct {
	Quantity int
	Attrs    map[string]AttrValue
}

// optionQuantityKey never appears in Attrs; it is lifted into Quantity.
const optionQuantityKey = "quantity"

func (o *ProductOption) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	o.Quantity = 0
	o.Attrs = make(map[string]AttrValue, len(raw))

	for key, value := range raw {
		if key == optionQuantityKey {
			if err := json.Unmarshal(value, &o.Quantity); err != nil {
				return err
			}
			continue
		}
		attr, ok := decodeAttr(value)
		if !ok {
			// Unsupported value shapes are dropped, not rejected.
			continue
		}
		o.Attrs[key] = attr
	}
	return nil
}

func (o ProductOption) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(o.Attrs)+1)
	for key, attr := range o.Attrs {
		out[key] = attr
	}
	out[optionQuantityKey] = o.Quantity
	return json.Marshal(out)
}

func decodeAttr(raw json.RawMessage) (AttrValue, bool) {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return AttrValue{}, false
	}
	switch typed := value.(type) {
	case string:
		return StringAttr(typed), true
	case float64:
		return NumberAttr(typed), true
	case []any:
		list := make([]Scalar, 0, len(typed))
		for _, item := range typed {
			switch element := item.(type) {
			case string:
				list = append(list, StringScalar(element))
			case float64:
				list = append(list, NumberScalar(element))
			}
		}
		return ListAttr(list...), true
	default:
		return AttrValue{}, false
	}
}

// Product is one catalog entity. Price is a decimal amount encoded as a
// string; Available is the catalog-level flag independent of stock.
type Product struct {
	ID        int             `json:"id"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	Price     string          `json:"price"`
	Available bool            `json:"available"`
	Weight    float64         `json:"weight"`
	Options   []ProductOption `json:"options"`
}

// TotalStock sums quantity across all options.
func (p *Product) TotalStock() int {
	total := 0
	for _, opt := range p.Options {
		total += opt.Quantity
	}
	return total
}

// Purchasable reports whether the product can be bought at all: the catalog
// flag must be set and at least one option must have stock.
func (p *Product) Purchasable() bool {
	return p.Available && p.TotalStock() > 0
}

// Inventory is the statically loaded catalog document.
type Inventory struct {
	Items []Product `json:"items"`
}
