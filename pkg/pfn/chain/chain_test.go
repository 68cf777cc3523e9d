package chain

import (
	"errors"
	"testing"

	"github.com/ib-77/pfn/pkg/pfn"
)

func words() []pfn.Clause[int, string] {
	return []pfn.Clause[int, string]{
		pfn.Case(pfn.Eq(1), func(int) string { return "one" }),
		pfn.Case(pfn.Eq(2), func(int) string { return "two" }),
	}
}

func TestFromClauses(t *testing.T) {
	t.Parallel()

	c := FromClauses(words()...)

	if res := c.Call(1); !res.IsMatched() || res.Value() != "one" {
		t.Fatalf("expected 'one', got matched=%v value=%q", res.IsMatched(), res.Value())
	}
	if c.IsDefinedAt(3) {
		t.Fatalf("3 should be outside the domain")
	}
}

func TestOrElseClauses(t *testing.T) {
	t.Parallel()

	c := FromClauses(words()...).
		OrElseClauses(
			pfn.Case(pfn.Between(1, 9), func(int) string { return "digit" }),
		)

	tests := map[int]string{1: "one", 2: "two", 5: "digit"}
	for in, want := range tests {
		if res := c.Call(in); res.Value() != want {
			t.Fatalf("at %d: expected %q, got %q", in, want, res.Value())
		}
	}
	if c.IsDefinedAt(10) || c.Call(10).IsMatched() {
		t.Fatalf("10 should be outside the domain")
	}
}

func TestRestrict(t *testing.T) {
	t.Parallel()

	c := FromClauses(words()...).Restrict(func(n int) bool { return n != 2 })

	if !c.IsDefinedAt(1) || c.IsDefinedAt(2) {
		t.Fatalf("expected domain {1}")
	}
	if res := c.Call(2); res.IsMatched() {
		t.Fatalf("expected unmatched at 2, got %q", res.Value())
	}
}

func TestMap(t *testing.T) {
	t.Parallel()

	c := Map(FromClauses(words()...), func(s string) int { return len(s) })

	if res := c.Call(1); !res.IsMatched() || res.Value() != 3 {
		t.Fatalf("expected 3, got matched=%v value=%d", res.IsMatched(), res.Value())
	}
	if c.IsDefinedAt(0) {
		t.Fatalf("0 should be outside the domain")
	}
}

func TestEnsure(t *testing.T) {
	t.Parallel()

	var seen []int
	c := FromClauses(words()...).Ensure(func(a int, _ string) { seen = append(seen, a) })

	c.IsDefinedAt(1)
	c.IsDefinedAt(2)
	if len(seen) != 0 {
		t.Fatalf("membership probe should not trigger Ensure, got %v", seen)
	}

	c.Call(1)
	c.Call(3)
	if len(seen) != 1 || seen[0] != 1 {
		t.Fatalf("expected side effect only for 1, got %v", seen)
	}
}

func TestNamedAndFinally(t *testing.T) {
	t.Parallel()

	c := FromClauses(words()...).Named("words")

	if c.Build().Name() != "words" {
		t.Fatalf("expected name 'words', got %q", c.Build().Name())
	}

	onMatched := func(s string) string { return s }
	onUnmatched := func(err error) string {
		if !errors.Is(err, pfn.ErrNotDefined) {
			t.Fatalf("expected ErrNotDefined, got %v", err)
		}
		return err.Error()
	}

	if got := Finally(c, 2, onMatched, onUnmatched); got != "two" {
		t.Fatalf("expected 'two', got %q", got)
	}
	if got := Finally(c, 7, onMatched, onUnmatched); got != "pfn: words not defined at 7" {
		t.Fatalf("unexpected unmatched message %q", got)
	}
}

func TestStart_Build(t *testing.T) {
	t.Parallel()

	f := pfn.Total(func(n int) int { return n })
	if Start(f).Build() != f {
		t.Fatalf("Build should return the wrapped function")
	}
}
