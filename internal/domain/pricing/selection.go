package pricing

import "strings"

// Selection is the visitor's single discount choice, or SelectionNone.
type Selection string

const SelectionNone Selection = "none"

func NewSelection(id *string) Selection {
	if id == nil {
		return SelectionNone
	}
	trimmed := strings.TrimSpace(*id)
	if trimmed == "" || trimmed == string(SelectionNone) {
		return SelectionNone
	}
	return Selection(trimmed)
}

func (s Selection) IsNone() bool {
	return s == SelectionNone || s == ""
}

func (s Selection) String() string {
	if s.IsNone() {
		return string(SelectionNone)
	}
	return string(s)
}

// Resolve returns the eligible option the selection points at. A selection
// that no longer maps into the eligible set resolves to nothing; callers
// fall back to charging the undiscounted amount.
func (s Selection) Resolve(eligible []DiscountOption) (DiscountOption, bool) {
	if s.IsNone() {
		return DiscountOption{}, false
	}
	for _, opt := range eligible {
		if opt.ID == DiscountID(s) {
			return opt, true
		}
	}
	return DiscountOption{}, false
}
