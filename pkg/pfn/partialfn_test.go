package pfn

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evenHalf() *PartialFn[int, int] {
	return New(
		func(a int) (int, bool) {
			if a%2 != 0 {
				return 0, false
			}
			return a / 2, true
		},
		func(a int) bool { return a%2 == 0 },
	)
}

func TestNew_HandWrittenProcedures(t *testing.T) {
	t.Parallel()

	pf := evenHalf()

	assertMatched(t, pf, 4, 2)
	assertMatched(t, pf, 0, 0)
	assertUnmatched[int, int](t, pf, 3)
}

func TestNew_NilProceduresDefineNothing(t *testing.T) {
	t.Parallel()

	pf := New[int, int](nil, func(int) bool { return true })

	assertUnmatched[int, int](t, pf, 1)
	assert.NotEqual(t, uuid.Nil, pf.ID())
}

func TestPartialFn_ZeroValueDefinesNothing(t *testing.T) {
	t.Parallel()

	var pf PartialFn[int, int]

	assertUnmatched[int, int](t, &pf, 1)
	_, ok := pf.Lift()(1)
	assert.False(t, ok)
	assert.Equal(t, -1, pf.ApplyOrElse(1, func(int) int { return -1 }))
}

func TestNew_DistinctIDs(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, evenHalf().ID(), evenHalf().ID())
}

func TestCall_UnmatchedError(t *testing.T) {
	t.Parallel()

	pf := evenHalf()
	o := pf.Call(7)

	require.True(t, o.IsUnmatched())
	assert.Equal(t, pf.ID(), o.FuncID())

	err := o.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotDefined))
	assert.True(t, IsNotDefined(err))
	assert.Equal(t, fmt.Sprintf("pfn: function %s not defined at 7", pf.ID()), err.Error())

	nd, ok := AsNotDefined[int](err)
	require.True(t, ok)
	assert.Equal(t, 7, nd.Input)
	assert.Equal(t, pf.ID(), nd.Func)

	_, ok = AsNotDefined[string](err)
	assert.False(t, ok)
}

func TestCall_MatchedHasNoError(t *testing.T) {
	t.Parallel()

	o := evenHalf().Call(8)

	assert.NoError(t, o.Err())
	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, 4, v)
	assert.Equal(t, 8, o.Input())
	assert.Equal(t, 4, o.OrElse(-1))
}

func TestCall_UnmatchedProjections(t *testing.T) {
	t.Parallel()

	o := evenHalf().Call(5)

	v, ok := o.Get()
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.Zero(t, o.Value())
	assert.Equal(t, -1, o.OrElse(-1))
}

func TestNamed(t *testing.T) {
	t.Parallel()

	pf := evenHalf()
	named := pf.Named("half")

	assert.Equal(t, pf.ID(), named.ID())
	assert.Equal(t, "half", named.Name())
	assert.Empty(t, pf.Name())
	assert.Equal(t, "half", named.String())

	err := named.Call(1).Err()
	assert.EqualError(t, err, "pfn: half not defined at 1")
	nd, ok := AsNotDefined[int](err)
	require.True(t, ok)
	assert.Equal(t, "half", nd.Name)
}

func TestIsNotDefined_Joined(t *testing.T) {
	t.Parallel()

	joined := errors.Join(errors.New("other"), evenHalf().Call(1).Err())

	assert.True(t, IsNotDefined(joined))
	assert.False(t, IsNotDefined(errors.New("other")))
	assert.False(t, IsNotDefined(nil))
}

func TestOutcome_Constructors(t *testing.T) {
	t.Parallel()

	m := Matched("in", 3)
	assert.True(t, m.IsMatched())
	assert.Equal(t, uuid.Nil, m.FuncID())

	u := Unmatched[string, int]("in")
	assert.True(t, u.IsUnmatched())
	assert.EqualError(t, u.Err(), "pfn: function not defined at in")
}

func TestLift(t *testing.T) {
	t.Parallel()

	lifted := evenHalf().Lift()

	v, ok := lifted(10)
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	_, ok = lifted(11)
	assert.False(t, ok)
}

func TestApplyOrElse(t *testing.T) {
	t.Parallel()

	pf := evenHalf()
	negate := func(a int) int { return -a }

	assert.Equal(t, 3, pf.ApplyOrElse(6, negate))
	assert.Equal(t, -7, pf.ApplyOrElse(7, negate))
}

func TestConcurrentCalls(t *testing.T) {
	t.Parallel()

	pf := Compile(
		CaseIf(Between(0, 1000), func(a int) bool { return a%3 == 0 }, func(a int) int { return a / 3 }),
	)

	wg := &sync.WaitGroup{}
	for w := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for a := w; a < 1000; a += 16 {
				o := pf.Call(a)
				assert.Equal(t, a%3 == 0, o.IsMatched())
				assert.Equal(t, o.IsMatched(), pf.IsDefinedAt(a))
				if o.IsMatched() {
					assert.Equal(t, a/3, o.Value())
				}
			}
		}()
	}
	wg.Wait()
}
