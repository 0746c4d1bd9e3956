package discovery

import (
	"path/filepath"
	"testing"
)

func TestCollection_InsertSortsByName(t *testing.T) {
	c := NewCollection()
	c.Insert(Project{Name: "zeta"})
	c.Insert(Project{Name: "alpha"})
	c.Insert(Project{Name: "mid"})

	want := []string{"alpha", "mid", "zeta"}
	got := c.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCollection_InsertReplacesDuplicate(t *testing.T) {
	c := NewCollection()
	c.Insert(Project{Name: "x", Description: "first"})
	c.Insert(Project{Name: "x", Description: "second"})

	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}

	p, ok := c.Get("x")
	if !ok {
		t.Fatal("Get(x) not found")
	}
	if p.Description != "second" {
		t.Errorf("Description = %q, want %q (later entry wins)", p.Description, "second")
	}
}

func TestCollection_At(t *testing.T) {
	c := NewCollection()
	c.Insert(Project{Name: "beta"})
	c.Insert(Project{Name: "alpha"})

	p, ok := c.At(0)
	if !ok || p.Name != "alpha" {
		t.Errorf("At(0) = %q, %v; want alpha, true", p.Name, ok)
	}

	p, ok = c.At(1)
	if !ok || p.Name != "beta" {
		t.Errorf("At(1) = %q, %v; want beta, true", p.Name, ok)
	}

	for _, i := range []int{-1, 2} {
		if _, ok := c.At(i); ok {
			t.Errorf("At(%d) = true, want false", i)
		}
	}
}

func TestCollection_Empty(t *testing.T) {
	c := NewCollection()

	if !c.IsEmpty() {
		t.Error("IsEmpty() = false, want true")
	}
	if c.Len() != 0 {
		t.Errorf("Len() = %d, want 0", c.Len())
	}
	if len(c.All()) != 0 {
		t.Errorf("All() = %v, want empty", c.All())
	}
}

func TestProject_DescriptionOrDefault(t *testing.T) {
	p := Project{Name: "alpha"}
	if got := p.DescriptionOrDefault(); got != "No description" {
		t.Errorf("DescriptionOrDefault() = %q, want %q", got, "No description")
	}

	p.Description = "demo"
	if got := p.DescriptionOrDefault(); got != "demo" {
		t.Errorf("DescriptionOrDefault() = %q, want %q", got, "demo")
	}
}

func TestProject_RunPath(t *testing.T) {
	p := Project{Name: "beta", Dir: filepath.Join("/home/user/rust", "beta")}

	want := filepath.Join("/home/user/rust", "beta", "target", "release")
	if got := p.RunPath(); got != want {
		t.Errorf("RunPath() = %q, want %q", got, want)
	}
}
