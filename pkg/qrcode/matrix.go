package qrcode

// Matrix is the square grid of modules of one encoded QR symbol. It is
// created by Encode and never modified afterwards.
type Matrix struct {
	modules [][]bool
	version int
}

// Side returns the number of modules along one edge, 4*version+17.
func (m *Matrix) Side() int {
	return len(m.modules)
}

// Version returns the QR version (1-40) chosen by the encoder.
func (m *Matrix) Version() int {
	return m.version
}

// Dark reports whether the module at (row, col) is dark.
func (m *Matrix) Dark(row, col int) bool {
	return m.modules[row][col]
}
