// Package hw adapts host peripherals to the links in package comm:
// GPIO pins and SPI ports through periph.io, UARTs through go.bug.st/serial.
package hw
