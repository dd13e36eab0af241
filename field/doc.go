// Package field implements arithmetic over the prime field of order
// 2^64 - 2^32 + 1. The prime is NTT friendly: its multiplicative group
// has order divisible by 2^32, so primitive roots of unity exist for
// every power-of-two transform size up to 2^32.
//
// Elements always hold their canonical representative in [0, p); every
// operation reduces before returning. The special form of the prime
// allows exact reduction of 128-bit products without Montgomery or
// Barrett machinery.
package field
