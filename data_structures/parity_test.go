package data_structures

import (
	"math/rand"
	"testing"

	"github.com/dlshle/golodash/test_utils"
	"github.com/emirpasic/gods/lists/singlylinkedlist"
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/stacks/linkedliststack"
)

const parityOps = 500

func toInts(values []interface{}) []int {
	ints := make([]int, len(values))
	for i, v := range values {
		ints[i] = v.(int)
	}
	return ints
}

func TestParityWithGods(t *testing.T) {
	stackCase := test_utils.New("stack", func() {
		rnd := rand.New(rand.NewSource(42))
		ours, ref := NewStack[int](), linkedliststack.New()
		for i := 0; i < parityOps; i++ {
			if rnd.Intn(3) == 0 {
				expected, ok := ref.Pop()
				if !ok {
					expected = 0
				}
				test_utils.AssertEquals(ours.Pop(), expected.(int))
			} else {
				ours.Push(i)
				ref.Push(i)
			}
			test_utils.AssertEquals(ours.Size(), ref.Size())
		}
		test_utils.AssertSliceEquals(ours.ToSlice(), toInts(ref.Values()))
	})
	stackCase.WithMultipleRuns(3)
	test_utils.NewGroup("parity", "random op sequences against gods containers").Cases(
		stackCase,
		test_utils.New("queue", func() {
			rnd := rand.New(rand.NewSource(7))
			ours, ref := NewQueue[int](), linkedlistqueue.New()
			for i := 0; i < parityOps; i++ {
				if rnd.Intn(3) == 0 {
					expected, ok := ref.Dequeue()
					if !ok {
						expected = 0
					}
					test_utils.AssertEquals(ours.Dequeue(), expected.(int))
				} else {
					ours.Enqueue(i)
					ref.Enqueue(i)
				}
			}
			test_utils.AssertSliceEquals(ours.ToSlice(), toInts(ref.Values()))
		}),
		test_utils.New("list", func() {
			ours, ref := NewList[int](), singlylinkedlist.New()
			for i := 0; i < parityOps; i++ {
				ours.Push(i)
				ref.Add(i)
			}
			test_utils.AssertSliceEquals(ours.ToSlice(), toInts(ref.Values()))
		}),
	).Do(t)
}
