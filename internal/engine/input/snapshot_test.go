package input

import "testing"

func TestWithKeys(t *testing.T) {
	base := Snapshot{}
	s := base.WithKeys(KeyW, KeyLShift)

	if !s.Pressed(KeyW) || !s.Pressed(KeyLShift) {
		t.Error("expected W and LShift to be held")
	}
	if s.Pressed(KeyS) {
		t.Error("S should not be held")
	}
	if base.Pressed(KeyW) {
		t.Error("WithKeys must not modify the receiver")
	}
}

func TestPressedOutOfRange(t *testing.T) {
	s := Snapshot{}.WithKeys(Key(-1), keyCount)
	if s.Pressed(Key(-1)) || s.Pressed(keyCount) {
		t.Error("out of range keys must never report pressed")
	}
}

func TestKeyString(t *testing.T) {
	tests := map[Key]string{
		KeyLShift: "LShift",
		KeySpace:  "Space",
		KeyEscape: "Escape",
		Key(99):   "Unknown",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("Key(%d).String() = %q, want %q", int(k), got, want)
		}
	}
}

func TestStaticBackend(t *testing.T) {
	st := &Static{State: Snapshot{LeftButton: true}.WithKeys(KeyA)}
	s := st.Snapshot()
	left, middle, right := s.Buttons()
	if !left || middle || right {
		t.Errorf("unexpected buttons %v %v %v", left, middle, right)
	}
	if !s.Pressed(KeyA) {
		t.Error("expected A held")
	}
}
