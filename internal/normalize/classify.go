package normalize

// Shape tags the detected layout of an uploaded grid. The heuristics are
// fragile pattern-matches on column count and cell type, so they live in
// one function that can be tested and replaced independently of the
// extraction logic.
type Shape int

const (
	// ShapeFull is the documented layout: row 0 titles, row 1 invoice
	// metadata, row 2 customer metadata, rows 3+ line items.
	ShapeFull Shape = iota
	// ShapeSingleRow packs header, customer and exactly one line item
	// into a single data row at fixed column offsets.
	ShapeSingleRow
	// ShapeProductsOnly has line items directly under the title row and
	// no metadata rows at all.
	ShapeProductsOnly
)

func (s Shape) String() string {
	switch s {
	case ShapeSingleRow:
		return "single-row"
	case ShapeProductsOnly:
		return "products-only"
	default:
		return "full"
	}
}

// Classify inspects a grid and picks one of the three layouts. The
// branches are evaluated in priority order and the last always matches,
// so every grid classifies to something.
func Classify(g Grid) Shape {
	// Exactly one row beyond the title row: the quick single-line
	// invoice layout.
	if len(g) == 2 {
		return ShapeSingleRow
	}

	// A product row directly under the title row: description and HSN
	// both present, and the third cell (quantity) empty or numeric.
	// Invoice-metadata rows put a date there instead, which is neither.
	if len(g) > 1 {
		c0, c1, c2 := g.Cell(1, 0), g.Cell(1, 1), g.Cell(1, 2)
		if c0 != "" && c1 != "" && (c2 == "" || isNumeric(c2)) {
			return ShapeProductsOnly
		}
	}

	return ShapeFull
}
