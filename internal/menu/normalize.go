package menu

// Normalize validates and coerces one raw item. The second return value
// is false when the item must be dropped: no usable price, a negative
// price, or a missing name. A description equal to the item name is the
// classifier echoing the name back and is treated as no description.
// Names are passed through verbatim, accents and quotes included.
func Normalize(raw RawItem) (Item, bool) {
	if !raw.Price.Valid || raw.Price.Amount < 0 {
		return Item{}, false
	}
	if raw.Name == "" {
		return Item{}, false
	}

	descr := string(raw.Description)
	if descr == raw.Name {
		descr = ""
	}

	item := Item{
		Name:        raw.Name,
		Price:       raw.Price.Amount,
		Description: descr,
	}
	if raw.TaxRate != nil {
		item.TaxRate = *raw.TaxRate
	}
	return item, true
}
