package bsp

import "fmt"

// drawCall records one Range request.
type drawCall struct {
	lo, hi int
}

func (c drawCall) String() string {
	return fmt.Sprintf("[%d,%d)", c.lo, c.hi)
}

// scriptedSource replays fixed values and records every request. A value
// outside the requested range, or running off the end of the script,
// yields lo.
type scriptedSource struct {
	values []int
	calls  []drawCall
}

func newScripted(values ...int) *scriptedSource {
	return &scriptedSource{values: values}
}

func (s *scriptedSource) Range(lo, hi int) int {
	if hi <= lo {
		panic(fmt.Sprintf("empty range [%d, %d)", lo, hi))
	}
	i := len(s.calls)
	s.calls = append(s.calls, drawCall{lo, hi})
	if i < len(s.values) && s.values[i] >= lo && s.values[i] < hi {
		return s.values[i]
	}
	return lo
}

func sameCalls(got, want []drawCall) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
