package club

import "testing"

func TestOptApply(t *testing.T) {
	v := "before"
	Opt[string]{}.apply(&v)
	if v != "before" {
		t.Errorf("zero Opt changed the value to %q", v)
	}
	Set("after").apply(&v)
	if v != "after" {
		t.Errorf("Set did not apply, got %q", v)
	}
	Null[string]().apply(&v)
	if v != "after" {
		t.Errorf("Null should be ignored on non-nullable fields, got %q", v)
	}
}

func TestOptApplyPtr(t *testing.T) {
	note := "before"
	p := &note

	Opt[string]{}.applyPtr(&p)
	if p == nil || *p != "before" {
		t.Errorf("zero Opt changed the pointer")
	}
	Set("after").applyPtr(&p)
	if p == nil || *p != "after" {
		t.Errorf("Set did not apply")
	}
	Null[string]().applyPtr(&p)
	if p != nil {
		t.Errorf("Null did not clear the pointer, got %q", *p)
	}
	Set("again").applyPtr(&p)
	if p == nil || *p != "again" {
		t.Errorf("Set after Null did not apply")
	}
}

func TestOptStates(t *testing.T) {
	var unset Opt[int]
	if unset.IsSet() || unset.IsNull() {
		t.Error("zero Opt should be unset")
	}
	set := Set(7)
	if !set.IsSet() || set.IsNull() || set.Value() != 7 {
		t.Error("Set descriptor misreports its state")
	}
	null := Null[int]()
	if !null.IsSet() || !null.IsNull() || null.Ptr() != nil {
		t.Error("Null descriptor misreports its state")
	}
}
