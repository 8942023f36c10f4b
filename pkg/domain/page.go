package domain

// Page selects a window of a listing. Number is 1-based.
type Page struct {
	Number uint
	Size   uint
}

// Offset returns the number of rows preceding the page.
func (p Page) Offset() uint {
	if p.Number <= 1 {
		return 0
	}

	return (p.Number - 1) * p.Size
}

// LastPage returns the number of the last page for total items, never less than 1.
func (p Page) LastPage(total int64) uint {
	if p.Size == 0 || total <= 0 {
		return 1
	}

	return uint((total + int64(p.Size) - 1) / int64(p.Size)) //nolint: gosec
}
