package gosched

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIOTable_ValidRange(t *testing.T) {
	tbl := newIOTable(3)
	assert.True(t, tbl.valid(0))
	assert.True(t, tbl.valid(2))
	assert.False(t, tbl.valid(-1))
	assert.False(t, tbl.valid(3))
}

func TestIOTable_ParkAndDrainFIFOOrder(t *testing.T) {
	tbl := newIOTable(1)
	a := &thread{tid: 1}
	b := &thread{tid: 2}
	c := &thread{tid: 3}

	tbl.park(0, a)
	tbl.park(0, b)
	tbl.park(0, c)

	woken := tbl.drain(0)
	assert.Equal(t, []*thread{a, b, c}, woken)
}

func TestIOTable_DrainEmptyDeviceReturnsNone(t *testing.T) {
	tbl := newIOTable(1)
	assert.Empty(t, tbl.drain(0))
}

func TestIOTable_DrainLeavesDeviceEmpty(t *testing.T) {
	tbl := newIOTable(1)
	tbl.park(0, &thread{tid: 1})
	tbl.drain(0)
	assert.Empty(t, tbl.drain(0))
}

func TestIOTable_DevicesAreIndependent(t *testing.T) {
	tbl := newIOTable(2)
	a := &thread{tid: 1}
	tbl.park(0, a)
	assert.Empty(t, tbl.drain(1))
	assert.Equal(t, []*thread{a}, tbl.drain(0))
}
