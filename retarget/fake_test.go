package retarget

// fakeHAL is a debug channel with a scripted inbound queue and a clock that
// moves forward by step on every read of it
type fakeHAL struct {
	now  uint32
	step uint32
	in   []byte
	out  []byte

	// arrivals delivers a byte once the clock reaches at
	arrivals []arrival
	polls    int
}

type arrival struct {
	at uint32
	b  byte
}

func (h *fakeHAL) NowMs() uint32 {
	v := h.now
	h.now += h.step
	return v
}

func (h *fakeHAL) IsInboundAvailable() bool {
	h.polls++
	for len(h.arrivals) > 0 && h.now >= h.arrivals[0].at {
		h.in = append(h.in, h.arrivals[0].b)
		h.arrivals = h.arrivals[1:]
	}
	return len(h.in) > 0
}

func (h *fakeHAL) ReceiveByte() byte {
	if len(h.in) == 0 {
		return 0xFF
	}
	b := h.in[0]
	h.in = h.in[1:]
	return b
}

func (h *fakeHAL) SendByte(b byte) {
	h.out = append(h.out, b)
}
