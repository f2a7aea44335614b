// Package pool
// Author: momentics <momentics@gmail.com>
//
// Receive-buffer pooling for the datagram dispatch path. Each datagram
// worker borrows one buffer per received packet and returns it after the
// lifecycle completes, keeping steady-state allocation off the hot loop.
package pool
