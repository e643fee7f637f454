package input

import "testing"

func TestDecodePlainChar(t *testing.T) {
	events := Dispatch([]byte("a"))
	if len(events) != 1 || events[0].Key.Code != KeyChar || events[0].Key.Character != 'a' {
		t.Fatalf("got %+v", events)
	}
}

func TestDecodeCtrlChar(t *testing.T) {
	events := Dispatch([]byte{0x03})
	if len(events) != 1 || events[0].Key.Code != KeyChar || events[0].Key.Character != 'c' || !events[0].Key.Modifiers.Ctrl {
		t.Fatalf("got %+v", events)
	}
}

func TestDecodeEnterTabBackspace(t *testing.T) {
	events := Dispatch([]byte{0x0d, 0x09, 0x7f})
	want := []KeyCode{KeyEnter, KeyTab, KeyBackspace}
	if len(events) != 3 {
		t.Fatalf("got %d events: %+v", len(events), events)
	}
	for i, w := range want {
		if events[i].Key.Code != w {
			t.Fatalf("event %d: got %v want %v", i, events[i].Key.Code, w)
		}
	}
}

func TestDecodeCSIArrowWithCtrlModifier(t *testing.T) {
	events := Dispatch([]byte("\x1b[1;5A"))
	if len(events) != 1 {
		t.Fatalf("got %d events: %+v", len(events), events)
	}
	ev := events[0].Key
	if ev.Code != KeyUp || !ev.Modifiers.Ctrl || ev.Modifiers.Shift || ev.Modifiers.Alt {
		t.Fatalf("got %+v", ev)
	}
}

func TestDecodeVTTildeKeys(t *testing.T) {
	events := Dispatch([]byte("\x1b[3~\x1b[5~"))
	if len(events) != 2 || events[0].Key.Code != KeyDelete || events[1].Key.Code != KeyPageUp {
		t.Fatalf("got %+v", events)
	}
}

func TestDecodeSS3FunctionKeys(t *testing.T) {
	events := Dispatch([]byte("\x1bOP\x1bOQ"))
	if len(events) != 2 || events[0].Key.Code != KeyF1 || events[1].Key.Code != KeyF2 {
		t.Fatalf("got %+v", events)
	}
}

func TestDecodeSGRMousePress(t *testing.T) {
	events := Dispatch([]byte("\x1b[<0;10;5M"))
	if len(events) != 1 || events[0].Kind != EventMouseKind {
		t.Fatalf("got %+v", events)
	}
	m := events[0].Mouse
	if m.Kind != MousePress || m.Button != MouseButtonLeft || m.X != 9 || m.Y != 4 {
		t.Fatalf("got %+v", m)
	}
}

func TestDecodeSGRMouseScrollUp(t *testing.T) {
	events := Dispatch([]byte("\x1b[<64;10;5M"))
	m := events[0].Mouse
	if m.Kind != MouseScrollUp || m.Button != MouseButtonNone {
		t.Fatalf("got %+v", m)
	}
}

func TestDecodeConcatenatedSequencesInOrder(t *testing.T) {
	events := Dispatch([]byte("a\x1b[Ab"))
	if len(events) != 3 {
		t.Fatalf("got %d events: %+v", len(events), events)
	}
	if events[0].Key.Character != 'a' || events[1].Key.Code != KeyUp || events[2].Key.Character != 'b' {
		t.Fatalf("got %+v", events)
	}
}

func TestDecodeMalformedSequenceIsUnknownNotError(t *testing.T) {
	events := Dispatch([]byte("\x1b[9"))
	if len(events) != 1 || events[0].Key.Code != KeyUnknown {
		t.Fatalf("got %+v", events)
	}
}

func TestDecodeAltChar(t *testing.T) {
	events := Dispatch([]byte("\x1bx"))
	if len(events) != 1 || events[0].Key.Code != KeyChar || events[0].Key.Character != 'x' || !events[0].Key.Modifiers.Alt {
		t.Fatalf("got %+v", events)
	}
}

func TestDecodeUTF8MultibyteChar(t *testing.T) {
	events := Dispatch([]byte("世"))
	if len(events) != 1 || events[0].Key.Code != KeyChar || events[0].Key.Character != '世' {
		t.Fatalf("got %+v", events)
	}
}
