package comm

// BitOrder selects the order bits are fed from each byte into the CRC.
type BitOrder int

const (
	// LSBFirst feeds bit 0 of each byte first. This is what the IC does.
	LSBFirst BitOrder = iota
	// MSBFirst feeds bit 7 of each byte first.
	MSBFirst
)

// String implements fmt.Stringer.
func (o BitOrder) String() string {
	if o == MSBFirst {
		return "msb-first"
	}
	return "lsb-first"
}

// CRC8 is a bit-serial CRC-8 without initial or final XOR.
type CRC8 struct {
	Poly  byte
	Order BitOrder
}

// DefaultCRC is the datagram CRC used by the IC.
var DefaultCRC = CRC8{Poly: 0x07, Order: LSBFirst}

// Sum calculates the CRC over data.
func (c CRC8) Sum(data []byte) byte {
	var crc byte
	for _, b := range data {
		for i := 0; i < 8; i++ {
			var bit byte
			if c.Order == MSBFirst {
				bit = (b >> (7 - uint(i))) & 1
			} else {
				bit = (b >> uint(i)) & 1
			}
			if (crc>>7)^bit != 0 {
				crc = (crc << 1) ^ c.Poly
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// Checksum calculates the CRC over data using DefaultCRC.
func Checksum(data []byte) byte {
	return DefaultCRC.Sum(data)
}
