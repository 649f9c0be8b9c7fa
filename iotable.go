package gosched

// ioTable is the fixed-size array of device FIFOs that threads park on
// via Wait and are released from via Signal. Component C4 of the
// scheduler specification.
type ioTable struct {
	devices []fifo[*thread]
}

func newIOTable(ioCount int) *ioTable {
	t := &ioTable{devices: make([]fifo[*thread], ioCount)}
	for i := range t.devices {
		t.devices[i] = *newFIFO[*thread]()
	}
	return t
}

func (t *ioTable) valid(io int) bool {
	return io >= 0 && io < len(t.devices)
}

// park enqueues th on device io's wait FIFO.
func (t *ioTable) park(io int, th *thread) {
	t.devices[io].PushBack(th)
}

// drain removes and returns every thread currently parked on device
// io, in FIFO order, leaving the device empty.
func (t *ioTable) drain(io int) []*thread {
	dev := &t.devices[io]
	woken := make([]*thread, 0, dev.Len())
	for !dev.IsEmpty() {
		woken = append(woken, dev.PopFront())
	}
	return woken
}
