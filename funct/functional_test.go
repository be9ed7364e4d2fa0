package funct

import (
	"errors"
	"strconv"
	"testing"
)

func TestMap(t *testing.T) {
	got, err := Map([]int{1, 2, 3}, func(x int) (string, error) {
		return strconv.Itoa(x * 2), nil
	})
	if err != nil {
		t.Fatalf("Map() error = %v", err)
	}
	if len(got) != 3 || got[0] != "2" || got[2] != "6" {
		t.Fatalf("unexpected result %v", got)
	}
}

func TestMapStopsOnError(t *testing.T) {
	calls := 0
	_, err := Map([]int{1, 2, 3}, func(x int) (int, error) {
		calls++
		if x == 2 {
			return 0, errors.New("boom")
		}
		return x, nil
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 2 {
		t.Fatalf("expected 2 calls, got %d", calls)
	}
}

func TestFilter(t *testing.T) {
	got := Filter([]int{1, 2, 3, 4}, func(x int) bool { return x%2 == 0 })
	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Fatalf("unexpected result %v", got)
	}
	if Filter([]int{1}, func(x int) bool { return false }) != nil {
		t.Fatal("expected nil slice when nothing matches")
	}
}

func TestSome(t *testing.T) {
	if !Some([]string{"a", "b"}, func(x string) bool { return x == "b" }) {
		t.Fatal("expected match")
	}
	if Some(nil, func(x string) bool { return true }) {
		t.Fatal("empty slice must not match")
	}
}
