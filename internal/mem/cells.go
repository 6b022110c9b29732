package mem

// DefaultCellsPageSize provides a default for Cells.PageSize.
const DefaultCellsPageSize = 255

// Cells implements a generic paged, append-mostly memory: the backing
// store for a dictionary entry's compiled sequence (spec's "simple arena
// with indices" option for CompiledCell addressing). Pages may not
// necessarily be the same size, but usually are in practice.
type Cells[T any] struct {
	PagedCore
	pages [][]T
	used  uint
}

// Size returns an address one position higher than the highest position
// stored so far.
func (m *Cells[T]) Size() uint {
	return m.used
}

// Load returns a single value from the given address.
// Unallocated pages are left unallocated, resulting in implicit zero values.
// Returns an error if addr exceeds any Limit.
func (m *Cells[T]) Load(addr uint) (T, error) {
	var zero T
	if err := m.checkLimit(addr, "load"); err != nil {
		return zero, err
	}

	if m.PageSize == 0 || len(m.pages) == 0 {
		return zero, nil
	}

	pageID := m.findPage(addr)
	base := m.bases[pageID]
	page := m.pages[pageID]
	if i := int(addr) - int(base); 0 <= i && i < len(page) {
		return page[i], nil
	}

	return zero, nil
}

// Stor stores any values at addr, allocating pages if necessary.
// Returns an error if Limit would be exceeded; no partial store is done.
func (m *Cells[T]) Stor(addr uint, values ...T) error {
	if len(values) == 0 {
		return nil
	}

	end := addr + uint(len(values))
	if err := m.checkLimit(end, "stor"); err != nil {
		return err
	}

	if m.PageSize == 0 {
		m.PageSize = DefaultCellsPageSize
	}
	if end > m.used {
		m.used = end
	}

	for pageID := m.findPage(addr); addr < end; pageID++ {
		base, size, page := m.allocPage(pageID, addr)
		if skip := addr - base; skip > 0 {
			if skip >= size {
				continue
			}
			base += skip
			page = page[skip:]
		}
		n := copy(page, values)
		values = values[n:]
		addr += uint(n)
	}

	return nil
}

// Append stores values starting at Size(), the arena analogue of a slice append.
func (m *Cells[T]) Append(values ...T) uint {
	addr := m.Size()
	_ = m.Stor(addr, values...)
	return addr
}

func (m *Cells[T]) allocPage(pageID int, addr uint) (base, size uint, page []T) {
	base, size, isNew := m.PagedCore.allocPage(pageID, addr)
	if isNew {
		page = make([]T, size)
		if pageID == len(m.bases) {
			m.pages = append(m.pages, page)
		} else {
			m.pages = append(m.pages, nil)
			copy(m.pages[pageID+1:], m.pages[pageID:])
			m.pages[pageID] = page
		}
	} else {
		page = m.pages[pageID]
	}
	return base, size, page
}
