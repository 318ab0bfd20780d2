// Package msgs provides L1 protocol support and all message schemas.
package msgs

// L1 protocol is communicated between the host controlling a line of motor
// drivers and remote clients, and carries register level primitives.
//
// Producer: L1 controller (tmcd)
// Consumer: clients (tmccli)
