package data_structures

import (
	"strconv"
	"testing"

	"github.com/dlshle/golodash/test_utils"
)

func TestQueue(t *testing.T) {
	test_utils.NewGroup("queue", "").Cases(test_utils.New("sequential write and read", func() {
		counter := 0
		SIZE := 10
		q := NewQueue[int]()
		for i := 0; i < SIZE; i++ {
			q.Enqueue(i)
		}
		for v, ok := q.TryDequeue().Get(); ok; v, ok = q.TryDequeue().Get() {
			test_utils.AssertEquals(counter, v)
			counter++
		}
		test_utils.AssertEquals(counter, SIZE)
	}), test_utils.New("dequeue removes the first item", func() {
		q := NewQueue[int]()
		q.Enqueue(1)
		q.Enqueue(2)
		q.Enqueue(3)
		test_utils.AssertEquals(q.Dequeue(), 1)
		test_utils.AssertSliceEquals(q.ToSlice(), []int{2, 3})
	}), test_utils.New("dequeue past the end returns zero value", func() {
		q := NewQueue[string]()
		q.Enqueue("first")
		test_utils.AssertEquals(q.Dequeue(), "first")
		test_utils.AssertNoPanic(func() {
			test_utils.AssertEquals(q.Dequeue(), "")
			test_utils.AssertEquals(q.Dequeue(), "")
		})
		test_utils.AssertSliceEquals(q.ToSlice(), []string{})
		q.Enqueue("again")
		test_utils.AssertSliceEquals(q.ToSlice(), []string{"again"})
	}), test_utils.New("empty queue dumps to empty slice", func() {
		test_utils.AssertSliceEquals(NewQueue[int]().ToSlice(), []int{})
		test_utils.AssertFalse(NewQueue[int]().TryDequeue().IsPresent())
	}), test_utils.New("number queue matches generic queue ordering", func() {
		nq := NewNumberQueue()
		sq := NewQueue[string]()
		for i := 0; i < 5; i++ {
			nq.Enqueue(float64(i))
			sq.Enqueue(strconv.Itoa(i))
		}
		test_utils.AssertEquals(nq.Dequeue(), 0.0)
		test_utils.AssertEquals(sq.Dequeue(), "0")
		nq.Enqueue(5)
		sq.Enqueue("5")
		numbers, strs := nq.ToSlice(), sq.ToSlice()
		test_utils.AssertEquals(len(numbers), len(strs))
		for i := range numbers {
			test_utils.AssertEquals(strconv.FormatFloat(numbers[i], 'f', -1, 64), strs[i])
		}
	})).Do(t)
}
