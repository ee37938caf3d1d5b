// Package mem provides the flat 64 kB memory that a Cpu executes against.
package mem

// Size is the full addressable range of a 16-bit address bus: 256 pages of
// 256 bytes.
const Size = 64 * 1024

// A Memory is a flat byte array with no banking, mirroring, or protected
// regions. Every address is always readable and writable; a fresh Memory is
// zeroed. Components that want memory-mapped behaviour (e.g. a graphics
// register) watch an address range by convention -- Memory itself never
// intercepts accesses.
type Memory struct {
	Data [Size]byte
}

// Read returns the byte at addr.
func (m *Memory) Read(addr uint16) byte { return m.Data[addr] }

// Write stores data at addr.
func (m *Memory) Write(addr uint16, data byte) { m.Data[addr] = data }

// ReadWord returns the little-endian word at addr: the byte at addr is the
// low byte, the byte at addr+1 the high byte. addr+1 wraps at 0xffff.
func (m *Memory) ReadWord(addr uint16) uint16 {
	return uint16(m.Data[addr]) | uint16(m.Data[addr+1])<<8
}

// WriteWord stores data at addr, low byte first.
func (m *Memory) WriteWord(addr uint16, data uint16) {
	m.Data[addr] = byte(data)
	m.Data[addr+1] = byte(data >> 8)
}

// Load copies an image into memory starting at addr. Images longer than the
// remaining address space wrap around to 0x0000, like every other address
// computation.
func (m *Memory) Load(addr uint16, image []byte) {
	for i, b := range image {
		m.Data[addr+uint16(i)] = b
	}
}
