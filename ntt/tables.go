package ntt

import (
	"fmt"
	"sync"

	"stark-math/field"
	"stark-math/internal/logger"
)

// table holds the per-size transform constants: powers of a primitive
// n-th root of unity, powers of its inverse, and n^-1. Tables are built
// once per size and never mutated afterwards.
type table struct {
	n    int
	fwd  []field.Element
	bwd  []field.Element
	nInv field.Element
}

var (
	buildMu sync.Mutex
	tables  sync.Map // transform size -> *table, finished tables only
)

// rootTable returns the shared table for size n, building it on first
// use. Builds are serialized under buildMu so concurrent first requests
// for one size converge on a single build; lookups of finished tables go
// through the sync.Map and never block.
func rootTable(n int) (*table, error) {
	if v, ok := tables.Load(n); ok {
		return v.(*table), nil
	}
	buildMu.Lock()
	defer buildMu.Unlock()
	if v, ok := tables.Load(n); ok {
		return v.(*table), nil
	}
	t, err := buildTable(n)
	if err != nil {
		return nil, err
	}
	tables.Store(n, t)
	return t, nil
}

func buildTable(n int) (*table, error) {
	omega, err := field.PrimitiveRootOfUnity(uint64(n))
	if err != nil {
		return nil, fmt.Errorf("ntt: size %d: %w", n, err)
	}
	omegaInv, err := omega.Inverse()
	if err != nil {
		panic("ntt: primitive root of unity is zero")
	}
	nInv, err := field.New(uint64(n)).Inverse()
	if err != nil {
		panic("ntt: transform size is zero modulo p")
	}
	half := n / 2
	if half == 0 {
		half = 1
	}
	t := &table{
		n:    n,
		fwd:  make([]field.Element, half),
		bwd:  make([]field.Element, half),
		nInv: nInv,
	}
	t.fwd[0] = field.One()
	t.bwd[0] = field.One()
	for i := 1; i < half; i++ {
		t.fwd[i] = t.fwd[i-1].Mul(omega)
		t.bwd[i] = t.bwd[i-1].Mul(omegaInv)
	}
	log := logger.Logger()
	log.Debug().Int("size", n).Msg("built root-of-unity table")
	return t, nil
}
