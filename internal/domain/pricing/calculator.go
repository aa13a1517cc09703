package pricing

// FinalAmount applies at most one selected discount to the base or
// visitor-chosen amount. A selection of none, or one that does not resolve
// against the eligible set, leaves the amount unchanged.
//
// The result is advisory on the client side: the backend recomputes it from
// its own item snapshot and that recomputation is what gets charged.
func FinalAmount(amount Money, sel Selection, eligible []DiscountOption) Money {
	opt, ok := sel.Resolve(eligible)
	if !ok {
		return amount
	}
	return amount.ApplyPercentOff(opt.Percent)
}
