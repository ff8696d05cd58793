package utilities

import (
	"slices"
	"testing"
)

func TestUtilities_SetReplacesInPlace(t *testing.T) {
	u := New(0)
	u.Set(".a", Declaration{{Name: "x", Value: "1"}})
	u.Set(".b", Declaration{{Name: "x", Value: "2"}})
	u.Set(".a", Declaration{{Name: "x", Value: "3"}})

	if got, want := u.Selectors(), []string{".a", ".b"}; !slices.Equal(got, want) {
		t.Errorf("Selectors() = %v, want %v", got, want)
	}
	d, _ := u.Get(".a")
	if v, _ := d.Get("x"); v != "3" {
		t.Errorf("value = %q, want %q", v, "3")
	}
}

func TestUtilities_Merge(t *testing.T) {
	a := New(0)
	a.Set(".a", Declaration{{Name: "x", Value: "1"}})
	a.Set(".b", Declaration{{Name: "x", Value: "2"}})

	b := New(0)
	b.Set(".c", Declaration{{Name: "x", Value: "3"}})
	b.Set(".a", Declaration{{Name: "x", Value: "4"}})

	a.Merge(b)
	if got, want := a.Selectors(), []string{".a", ".b", ".c"}; !slices.Equal(got, want) {
		t.Errorf("Selectors() = %v, want %v", got, want)
	}
	d, _ := a.Get(".a")
	if v, _ := d.Get("x"); v != "4" {
		t.Errorf("merged value = %q, want %q", v, "4")
	}
	if b.Len() != 2 {
		t.Errorf("source modified, Len() = %d", b.Len())
	}
}

func TestUtilities_Nil(t *testing.T) {
	var u *Utilities
	if u.Len() != 0 {
		t.Error("nil Len() != 0")
	}
	if u.Selectors() != nil {
		t.Error("nil Selectors() != nil")
	}
	if _, ok := u.Get(".a"); ok {
		t.Error("nil Get() found something")
	}
	for range u.All() {
		t.Error("nil All() yielded")
	}
	if !u.Equal(New(0)) {
		t.Error("nil set should equal empty set")
	}
}

func TestUtilities_Equal(t *testing.T) {
	a := DurationUtilities([]Duration{{"75", "75ms"}, {"100", "100ms"}})
	b := DurationUtilities([]Duration{{"100", "100ms"}, {"75", "75ms"}})
	if a.Equal(b) {
		t.Error("sets with different order reported equal")
	}
	c := DurationUtilities([]Duration{{"75", "75ms"}, {"100", "90ms"}})
	if a.Equal(c) {
		t.Error("sets with different values reported equal")
	}
}

func TestDeclaration_Get(t *testing.T) {
	d := Declaration{{Name: "a", Value: "1"}, {Name: "b", Value: ""}}
	if v, ok := d.Get("b"); !ok || v != "" {
		t.Errorf("Get(b) = %q, %v", v, ok)
	}
	if _, ok := d.Get("c"); ok {
		t.Error("Get(c) found absent property")
	}
}
