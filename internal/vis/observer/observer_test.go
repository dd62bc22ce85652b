package observer

import (
	"reflect"
	"testing"
)

func TestSignal_Order(t *testing.T) {
	var s Signal[int]
	var got []string
	s.Connect(func(v int) { got = append(got, "a") })
	s.Connect(func(v int) { got = append(got, "b") })
	s.Connect(func(v int) { got = append(got, "c") })

	s.Emit(1)

	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("dispatch order = %v, want %v", got, want)
	}
}

func TestSignal_Disconnect(t *testing.T) {
	var s Signal[string]
	calls := 0
	c := s.Connect(func(string) { calls++ })
	s.Connect(func(string) { calls += 10 })

	s.Disconnect(c)
	s.Disconnect(c)
	s.Emit("x")

	if calls != 10 {
		t.Errorf("calls = %d, want 10", calls)
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}

func TestSignal_DisconnectDuringEmit(t *testing.T) {
	var s Signal[int]
	var second Connection
	hits := 0
	s.Connect(func(int) { s.Disconnect(second) })
	second = s.Connect(func(int) { hits++ })

	s.Emit(0)
	if hits != 1 {
		t.Errorf("slot removed during emit should still run once, hits = %d", hits)
	}
	s.Emit(0)
	if hits != 1 {
		t.Errorf("slot should be gone on next emit, hits = %d", hits)
	}
}
