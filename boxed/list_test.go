package boxed_test

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-boxed/boxed"
)

type listContainer struct {
	contained []string
	missing   []string
}

func newContainer() listContainer {
	return listContainer{contained: []string{"one", "two", "three"}}
}

func containedList(c listContainer) []string { return c.contained }
func missingList(c listContainer) []string   { return c.missing }

func TestListOf(t *testing.T) {
	c := newContainer()
	l := boxed.ListOf(c.contained)
	assert.Equal(t, len(c.contained), l.Size())
	assert.True(t, l.IsSet())

	unset := boxed.ListOf[string](nil)
	assert.False(t, unset.IsSet())
	assert.True(t, unset.IsEmpty())
	assert.Equal(t, 0, unset.Size())

	zeroLen := boxed.ListOf([]string{})
	assert.True(t, zeroLen.IsSet())
	assert.True(t, zeroLen.IsEmpty())
}

func TestListGetIsIndependentCopy(t *testing.T) {
	src := []string{"a", "b", "c"}
	l := boxed.ListOf(src)

	first := l.Get()
	if diff := cmp.Diff(src, first); diff != "" {
		t.Fatalf("Get() mismatch (-want +got):\n%s", diff)
	}
	first[0] = "z"

	second := l.Get()
	if diff := cmp.Diff([]string{"a", "b", "c"}, second); diff != "" {
		t.Fatalf("second Get() saw mutation (-want +got):\n%s", diff)
	}
	assert.Equal(t, "a", src[0], "caller's slice must not be touched")
}

func TestListDoesNotGrowIntoCallerArray(t *testing.T) {
	backing := make([]int, 3, 10)
	copy(backing, []int{1, 2, 3})
	l := boxed.ListOf(backing)

	out := l.GetWith(func() []int { return backing[:0] })
	out = append(out, 4)
	assert.Equal(t, []int{1, 2, 3, 4}, out)
	assert.Equal(t, []int{1, 2, 3}, l.Get())
}

func TestListGetEmpty(t *testing.T) {
	got := boxed.MapList(boxed.Of(newContainer()), missingList).Get()
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListGetWith(t *testing.T) {
	l := boxed.MapList(boxed.Of(newContainer()), containedList)
	got := l.GetWith(func() []string { return make([]string, 0, 16) })
	assert.Equal(t, []string{"one", "two", "three"}, got)
	assert.Equal(t, 16, cap(got))

	called := false
	empty := boxed.ListOf[string](nil).GetWith(func() []string { called = true; return nil })
	assert.False(t, called, "factory must not be called for an empty list")
	assert.NotNil(t, empty)
}

func TestListFirst(t *testing.T) {
	first, ok := boxed.MapList(boxed.Of(newContainer()), containedList).First()
	require.True(t, ok)
	assert.Equal(t, "one", first)

	_, ok = boxed.MapList(boxed.Of(newContainer()), missingList).First()
	assert.False(t, ok)
}

func TestListSize(t *testing.T) {
	assert.Equal(t, 3, boxed.MapList(boxed.Of(newContainer()), containedList).Size())
}

func TestListStream(t *testing.T) {
	lengths := func(l boxed.List[string]) []int {
		var out []int
		for s := range l.Stream() {
			out = append(out, len(s))
		}
		return out
	}

	assert.Empty(t, lengths(boxed.MapList(boxed.Of(newContainer()), missingList)))

	l := boxed.MapList(boxed.Of(newContainer()), containedList)
	assert.Equal(t, []int{3, 3, 5}, lengths(l))
	// re-derivable
	assert.Equal(t, []int{3, 3, 5}, lengths(l))
	assert.Equal(t, []string{"one", "two", "three"}, slices.Collect(l.Stream()))
}

func TestListStreamEarlyExit(t *testing.T) {
	var seen []string
	for s := range boxed.ListOf([]string{"a", "b", "c"}).Stream() {
		seen = append(seen, s)
		if s == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestListEach(t *testing.T) {
	var idx []int
	boxed.ListOf([]string{"x", "y"}).Each(func(_ string, i int) { idx = append(idx, i) })
	assert.Equal(t, []int{0, 1}, idx)

	boxed.ListOf[string](nil).Each(func(string, int) { t.Fatal("Each called on unset list") })
}

func TestMapListIf(t *testing.T) {
	c := newContainer()
	never := func(listContainer) bool { return false }

	assert.False(t, boxed.MapListIf(boxed.Of(c), never, containedList).IsSet())
	assert.False(t, boxed.MapList(boxed.Empty[listContainer](), containedList).IsSet())
	assert.True(t, boxed.MapListIf(boxed.Of(c), func(listContainer) bool { return true }, containedList).IsNotEmpty())
}
