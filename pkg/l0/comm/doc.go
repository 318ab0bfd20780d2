// Package comm provides L0 protocol support.
package comm

// L0 protocol is communicated between the host and TMC5240 motor driver
// nodes sharing one signal line (or an SPI/UART variant of it).
//
// Every transaction is a fixed-length datagram shifted out MSB first:
//
//	read request  32 bits  [1010][1001][node][addr<<1][crc]
//	write request 64 bits  [1010][1001][node][addr<<1|1][data:32][crc]
//	reply         64 bits  same layout as a write request
//
// The CRC is CRC-8 (polynomial 0x07) over all preceding bytes. There is no
// acknowledgement for writes; the IFCNT register counts accepted writes.
//
// Producer: host
// Consumer: motor driver node
