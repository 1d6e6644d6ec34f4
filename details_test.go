package advisor

import (
	"encoding/json"
	"testing"
)

func TestDetails_MarshalJSON(t *testing.T) {
	d := Details{num("zeta", 1), text("alpha", "A, B"), num("mid", -2.5)}
	got, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := `{"zeta":1,"alpha":"A, B","mid":-2.5}`; string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}

	got, err = json.Marshal(Details(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := `{}`; string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestDetails_UnmarshalJSON(t *testing.T) {
	var d Details
	if err := json.Unmarshal([]byte(`{"b":2,"a":"x","c":3.5}`), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Details{num("b", 2), text("a", "x"), num("c", 3.5)}
	if len(d) != len(want) {
		t.Fatalf("len = %d, want %d", len(d), len(want))
	}
	for i := range want {
		if d[i] != want[i] {
			t.Errorf("d[%d] = %v, want %v", i, d[i], want[i])
		}
	}
	if v, ok := d.Number("c"); !ok || v != 3.5 {
		t.Errorf("Number(c) = %v, %v, want 3.5, true", v, ok)
	}
	if _, ok := d.Number("a"); ok {
		t.Errorf("Number(a) should not be a number")
	}

	if err := json.Unmarshal([]byte(`{"nested":{"x":1}}`), &d); err == nil {
		t.Errorf("expected an error for nested objects")
	}
	if err := json.Unmarshal([]byte(`[1]`), &d); err == nil {
		t.Errorf("expected an error for arrays")
	}
}

func TestJsonObjectWriter(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w jsonObjectWriter
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "{}"; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("insertion order", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("z", 1).Append("a", "hello")
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := `{"z":1,"a":"hello"}`; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("escaped key", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append(`a"b`, true)
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := `{"a\"b":true}`; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("marshal error", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("ch", make(chan int))
		if _, err := w.MarshalJSON(); err == nil {
			t.Errorf("expected an error")
		}
	})
}
