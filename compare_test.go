package bstree

import (
	"errors"
	"math"
	"strings"
	"testing"
)

type version struct {
	major, minor int
}

func (v version) Compare(other any) (int, error) {
	o, ok := other.(version)
	if !ok {
		return 0, ErrTypeComparison
	}
	if v.major != o.major {
		return v.major - o.major, nil
	}
	return v.minor - o.minor, nil
}

func TestCompareDynamic(t *testing.T) {
	for _, c := range []struct {
		a, b any
		sign int
	}{
		{1, 2, -1},
		{2, 2, 0},
		{int8(3), uint64(2), 1},
		{-1, uint(0), -1},
		{uint(0), -1, 1},
		{1.5, 1, 1},
		{float32(0.5), int16(1), -1},
		{"abc", "abd", -1},
		{"b", "a", 1},
		{version{1, 2}, version{1, 10}, -1},
		{version{2, 0}, version{1, 10}, 1},
	} {
		r, err := CompareDynamic(c.a, c.b)
		if err != nil {
			t.Errorf("%v vs. %v: unexpected error %v", c.a, c.b, err)
			continue
		}
		if sign(r) != c.sign {
			t.Errorf("%v vs. %v: expected %d, have %d", c.a, c.b, c.sign, r)
		}
	}
}

func TestCompareDynamicFailures(t *testing.T) {
	for _, c := range []struct{ a, b any }{
		{1, "1"},
		{"x", 2.0},
		{nil, 1},
		{1, nil},
		{true, false},
		{[]int{1}, []int{2}},
		{version{1, 0}, 1},
	} {
		_, err := CompareDynamic(c.a, c.b)
		if !errors.Is(err, ErrTypeComparison) {
			t.Errorf("%v vs. %v: expected ErrTypeComparison, have %v", c.a, c.b, err)
		}
	}
}

func TestComparableKeys(t *testing.T) {
	r, err := CompareDynamic(version{1, 0}, version{0, 9})
	if err != nil || r <= 0 {
		t.Errorf("expected 1.0 > 0.9, have %d / %v", r, err)
	}
	tree, err := Build(Config[any]{Balancing: AVL}, any(version{1, 0}), any(version{0, 9}), any(version{1, 1}))
	if err != nil {
		t.Fatal(err)
	}
	if min := tree.FindMin(); min.Key() != (version{0, 9}) {
		t.Errorf("expected 0.9 as minimum, have %v", min)
	}
}

func TestCompareFuncErrorsAreFlagged(t *testing.T) {
	failing := errors.New("no order on Sundays")
	tree, _ := New(Config[string]{
		Compare: func(a, b string) (int, error) {
			if strings.HasPrefix(a, "sun") {
				return 0, failing
			}
			return strings.Compare(a, b), nil
		},
	})
	tree.Insert("mon")
	err := tree.Insert("sunday")
	if !errors.Is(err, ErrTypeComparison) || !errors.Is(err, failing) {
		t.Errorf("expected error to wrap both the comparison failure and ErrTypeComparison, have %v", err)
	}
	if tree.Size() != 1 {
		t.Errorf("expected rejected key not to be inserted")
	}
}

func sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

func TestCompareMixedNumbersExactly(t *testing.T) {
	const big = 1 << 53
	for _, c := range []struct {
		a, b any
		sign int
	}{
		{int64(big + 1), float64(big), 1},
		{float64(big), int64(big + 1), -1},
		{float64(big), int64(big), 0},
		{uint64(1<<64 - 1), float64(1 << 63), 1},
		{float64(1 << 64), uint64(1<<64 - 1), 1},
		{int64(-1 << 63), float64(-1 << 63), 0},
		{int64(-1 << 63), -float64(1 << 63) - 4096, 1},
		{math.Inf(1), int64(1<<63 - 1), 1},
		{math.Inf(-1), int64(-1 << 63), -1},
		{-0.5, uint(0), -1},
		{2.5, 2, 1},
		{-2.5, -2, -1},
		{math.NaN(), 0, -1},
		{0, math.NaN(), 1},
	} {
		r, err := CompareDynamic(c.a, c.b)
		if err != nil {
			t.Errorf("%v vs. %v: unexpected error %v", c.a, c.b, err)
			continue
		}
		if sign(r) != c.sign {
			t.Errorf("%v vs. %v: expected %d, have %d", c.a, c.b, c.sign, r)
		}
	}
}

func TestMixedNumberKeysAreDistinct(t *testing.T) {
	tree, err := New(Config[any]{})
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range []any{int64(1<<53 + 1), float64(1 << 53), uint64(1<<53 + 2)} {
		if err := tree.Insert(k); err != nil {
			t.Fatalf("insert %v: %v", k, err)
		}
	}
	if tree.Size() != 3 {
		t.Fatalf("expected 3 distinct keys, have %d", tree.Size())
	}
	if err := tree.Check(); err != nil {
		t.Error(err)
	}
	if min := tree.FindMin(); min.Key() != any(float64(1<<53)) {
		t.Errorf("expected 2^53 as minimum, have %v", min)
	}
}
