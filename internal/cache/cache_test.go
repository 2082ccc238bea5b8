package cache

import (
	"testing"

	"tdl/internal/diag"
	"tdl/internal/source"
)

func TestPutThenGetRoundTrips(t *testing.T) {
	c, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
	key := HashContent(`network "X" {}`)
	want := []diag.Diagnostic{
		{Message: "x", Severity: diag.SevWarning, Rule: "ncs-required", Span: source.Span{Line: 1}},
	}
	if err := c.Put(key, want); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}
	got, ok, err := c.Get(key)
	if err != nil || !ok {
		t.Fatalf("expected a cache hit, got ok=%v err=%v", ok, err)
	}
	if len(got) != 1 || got[0].Rule != "ncs-required" {
		t.Fatalf("unexpected cached entry: %+v", got)
	}
}

func TestGetMissReturnsFalseNotError(t *testing.T) {
	c, err := Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	_, ok, err := c.Get(HashContent("anything"))
	if err != nil {
		t.Fatalf("expected no error on a miss, got %v", err)
	}
	if ok {
		t.Fatal("expected a miss for an unwritten key")
	}
}

func TestHashContentIsDeterministic(t *testing.T) {
	a := HashContent(`network "X" {}`)
	b := HashContent(`network "X" {}`)
	if a != b {
		t.Fatal("expected identical content to hash identically")
	}
	c := HashContent(`network "Y" {}`)
	if a == c {
		t.Fatal("expected different content to hash differently")
	}
}
