package chess

// Per-square lookup tables. They are computed once when the package is
// initialised and are read-only afterwards; move generation relies on them
// instead of modular arithmetic to detect edge wraparound.
var (
	FirstColumn   = columnTable(0)
	SecondColumn  = columnTable(1)
	SeventhColumn = columnTable(6)
	EighthColumn  = columnTable(7)

	// Rows are counted from the top: FirstRow holds rank 8.
	FirstRow   = rowTable(0)
	SecondRow  = rowTable(1)
	SeventhRow = rowTable(6)
	EighthRow  = rowTable(7)
)

func columnTable(column int) [NumSquares]bool {
	var table [NumSquares]bool
	for sq := Square(0); sq < NumSquares; sq++ {
		table[sq] = sq.Column() == column
	}
	return table
}

func rowTable(row int) [NumSquares]bool {
	var table [NumSquares]bool
	for sq := Square(0); sq < NumSquares; sq++ {
		table[sq] = sq.Row() == row
	}
	return table
}
