package header_mapping_service

// ColumnMap holds the physical column index of every resolved field.
type ColumnMap map[Field]int

// Index returns -1 for an unresolved field.
func (m ColumnMap) Index(f Field) int {
	if i, ok := m[f]; ok {
		return i
	}
	return -1
}

func (m ColumnMap) Has(f Field) bool {
	_, ok := m[f]
	return ok
}

// DateColumn is the column that decides whether a row is kept: hold date, then
// production date, then any date or day column.
func (m ColumnMap) DateColumn() int {
	for _, f := range []Field{FieldHoldDate, FieldProductionDate, FieldGenericDate} {
		if i := m.Index(f); i >= 0 {
			return i
		}
	}
	return -1
}

// Cell returns the trimmed cell of row for field f, or "" when the field is unresolved
// or the row is short.
func (m ColumnMap) Cell(row []string, f Field) string {
	i := m.Index(f)
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

// ResolveColumns maps every field to a header column. It never fails; unresolved fields
// are simply absent.
func ResolveColumns(header []string) ColumnMap {
	cells := make([]Cell, len(header))
	for i, h := range header {
		cells[i] = NewCell(h)
	}

	out := ColumnMap{}
	for _, r := range rules {
		if out.Has(r.Field) {
			continue
		}
		for i, c := range cells {
			if c.Norm == "" {
				continue
			}
			if r.Match(c) {
				out[r.Field] = i
				break
			}
		}
	}
	return out
}
