package geometry

import (
	"testing"
)

func TestIntersectionCache(t *testing.T) {
	c := NewIntersectionCache(8)
	a, b := seg(0, 0, 10, 0), seg(5, -5, 5, 5)

	first, ok1 := c.Intersect(a, b)
	second, ok2 := c.Intersect(a, b)
	if first != second || ok1 != ok2 {
		t.Errorf("expected repeated lookups to agree, got %v/%v and %v/%v", first, ok1, second, ok2)
	}
	if first != (Coords{X: 5, Y: 0}) {
		t.Errorf("expected (5,0), got %v", first)
	}

	stats := c.Stats()
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("expected 1 hit and 1 miss, got %d hits %d misses", stats.Hits, stats.Misses)
	}
}

func TestIntersectionCacheStoresMisses(t *testing.T) {
	c := NewIntersectionCache(8)
	a, b := seg(0, 0, 10, 0), seg(0, 3, 10, 3)

	for i := 0; i < 3; i++ {
		if got, ok := c.Intersect(a, b); ok {
			t.Fatalf("expected no intersection, got %v", got)
		}
	}
	if c.Len() != 1 {
		t.Errorf("expected the miss to be cached once, got %d entries", c.Len())
	}
	if hits := c.Stats().Hits; hits != 2 {
		t.Errorf("expected cached misses to count as hits, got %d", hits)
	}
}

func TestIntersectionCacheKeyIsOrderSensitive(t *testing.T) {
	c := NewIntersectionCache(8)
	a, b := seg(0, 0, 10, 0), seg(5, -5, 5, 5)

	c.Intersect(a, b)
	c.Intersect(b, a)
	if c.Len() != 2 {
		t.Errorf("expected separate entries per argument order, got %d", c.Len())
	}
}

func TestIntersectionCacheIsBounded(t *testing.T) {
	c := NewIntersectionCache(1)
	for i := 0; i < 200; i++ {
		x := float64(i)
		c.Intersect(seg(x, 0, x+10, 0), seg(x+5, -5, x+5, 5))
	}
	if limit := c.Stats().TotalCapacity; c.Len() > limit {
		t.Errorf("expected at most %d entries, got %d", limit, c.Len())
	}
}

func TestLineIntersectionUsesDefaultCache(t *testing.T) {
	SetDefaultCacheCapacity(4)
	a, b := seg(0, 0, 10, 10), seg(0, 10, 10, 0)

	got, ok := LineIntersection(a, b)
	if !ok || got != (Coords{X: 5, Y: 5}) {
		t.Errorf("expected (5,5), got %v ok=%v", got, ok)
	}
	if DefaultCache().Len() != 1 {
		t.Errorf("expected one cached entry, got %d", DefaultCache().Len())
	}
}
