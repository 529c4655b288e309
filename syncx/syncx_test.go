// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package syncx

import (
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"testing"
	"testing/synctest"

	"go.astrophena.name/lice/testutil"
)

func TestLazy(t *testing.T) {
	t.Parallel()

	synctest.Test(t, func(t *testing.T) {
		var l Lazy[int]
		var count int
		var mu sync.Mutex

		f := func() int {
			mu.Lock()
			defer mu.Unlock()
			count++
			return count
		}

		v1 := l.Get(f)
		testutil.AssertEqual(t, v1, 1)

		v2 := l.Get(f)
		testutil.AssertEqual(t, v2, 1)

		testutil.AssertEqual(t, count, 1)

		var l2 Lazy[string]

		f2 := func() (string, error) {
			return "", errors.New("something went wrong")
		}

		ev1, err := l2.GetErr(f2)
		testutil.AssertEqual(t, ev1, "")
		if err == nil {
			t.Fatal("err must not be nil")
		}

		ev2, err := l2.GetErr(f2)
		testutil.AssertEqual(t, ev2, "")
		if err == nil {
			t.Fatal("err must not be nil")
		}
	})
}

func TestQueue(t *testing.T) {
	t.Parallel()

	t.Run("fifo", func(t *testing.T) {
		q := NewQueue[int]()
		for i := range 5 {
			q.Push(i)
		}
		testutil.AssertEqual(t, q.Len(), 5)
		q.Close()

		var got []int
		for {
			v, ok := q.Pop()
			if !ok {
				break
			}
			got = append(got, v)
		}
		testutil.AssertEqual(t, got, []int{0, 1, 2, 3, 4})
		testutil.AssertEqual(t, q.Len(), 0)
	})

	t.Run("push after close", func(t *testing.T) {
		q := NewQueue[string]()
		testutil.AssertEqual(t, q.Push("a"), true)
		q.Close()
		q.Close()
		testutil.AssertEqual(t, q.Push("b"), false)

		v, ok := q.Pop()
		testutil.AssertEqual(t, v, "a")
		testutil.AssertEqual(t, ok, true)
		_, ok = q.Pop()
		testutil.AssertEqual(t, ok, false)
	})

	t.Run("pop blocks until push", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			q := NewQueue[int]()
			var got atomic.Int64
			done := make(chan struct{})
			go func() {
				defer close(done)
				v, ok := q.Pop()
				if ok {
					got.Store(int64(v))
				}
			}()
			synctest.Wait()
			testutil.AssertEqual(t, got.Load(), int64(0))

			q.Push(42)
			<-done
			testutil.AssertEqual(t, got.Load(), int64(42))
		})
	})

	t.Run("close wakes all consumers", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			q := NewQueue[int]()
			var wg sync.WaitGroup
			var exited atomic.Int32
			for range 8 {
				wg.Go(func() {
					for {
						if _, ok := q.Pop(); !ok {
							exited.Add(1)
							return
						}
					}
				})
			}
			synctest.Wait()
			q.Close()
			wg.Wait()
			testutil.AssertEqual(t, exited.Load(), int32(8))
		})
	})

	t.Run("every item consumed once", func(t *testing.T) {
		synctest.Test(t, func(t *testing.T) {
			const items = 1000
			q := NewQueue[int]()

			var (
				mu   sync.Mutex
				seen []int
				wg   sync.WaitGroup
			)
			for range 4 {
				wg.Go(func() {
					for {
						v, ok := q.Pop()
						if !ok {
							return
						}
						mu.Lock()
						seen = append(seen, v)
						mu.Unlock()
					}
				})
			}
			for i := range items {
				q.Push(i)
			}
			q.Close()
			wg.Wait()

			slices.Sort(seen)
			want := make([]int, items)
			for i := range want {
				want[i] = i
			}
			testutil.AssertEqual(t, seen, want)
		})
	})
}

func TestMap(t *testing.T) {
	t.Parallel()

	var m Map[string, int]
	_, ok := m.Load("missing")
	testutil.AssertEqual(t, ok, false)

	m.Store("a", 1)
	v, ok := m.Load("a")
	testutil.AssertEqual(t, v, 1)
	testutil.AssertEqual(t, ok, true)

	actual, loaded := m.LoadOrStore("a", 2)
	testutil.AssertEqual(t, actual, 1)
	testutil.AssertEqual(t, loaded, true)

	actual, loaded = m.LoadOrStore("b", 2)
	testutil.AssertEqual(t, actual, 2)
	testutil.AssertEqual(t, loaded, false)

	m.Delete("a")
	_, ok = m.Load("a")
	testutil.AssertEqual(t, ok, false)

	synctest.Test(t, func(t *testing.T) {
		var cm Map[int, int]
		var wg sync.WaitGroup
		for i := range 100 {
			wg.Go(func() { cm.Store(i, i*i) })
		}
		wg.Wait()

		var n int
		cm.Range(func(k, v int) bool {
			if v != k*k {
				t.Errorf("cm[%d] = %d, want %d", k, v, k*k)
			}
			n++
			return true
		})
		testutil.AssertEqual(t, n, 100)
	})
}
