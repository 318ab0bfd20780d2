// Package v1 contains the L1 wire messages.
package v1

//go:generate protoc --go_out=paths=source_relative:. l1.proto
