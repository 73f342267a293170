package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testItem struct{ id int }

func (t testItem) EntryID() int { return t.id }

func newTestList(t *testing.T, n int) *List[int, testItem] {
	t.Helper()
	l := New[int, testItem]()
	for i := 0; i < n; i++ {
		require.NoError(t, l.Add(testItem{id: i}))
	}
	return l
}

func ids(l *List[int, testItem]) []int {
	out := make([]int, 0, l.Len())
	for _, it := range l.Items() {
		out = append(out, it.id)
	}
	return out
}

// TestMoveEntry exercises scenario S7.
func TestMoveEntry(t *testing.T) {
	l := newTestList(t, 5)
	require.NoError(t, l.MoveEntry(1, 3))
	assert.Equal(t, []int{0, 2, 3, 1, 4}, ids(l))

	require.NoError(t, l.MoveEntry(3, 1))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, ids(l))
}

func TestMoveEntrySamePositionIsIdentity(t *testing.T) {
	l := newTestList(t, 5)
	require.NoError(t, l.MoveEntry(2, 2))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, ids(l))
}

func TestMoveEntryOutOfBounds(t *testing.T) {
	l := newTestList(t, 3)
	err := l.MoveEntry(0, 5)
	require.Error(t, err)
	var listErr *Error
	require.ErrorAs(t, err, &listErr)
	assert.Equal(t, ErrMove, listErr.Kind)
}

func TestAddDuplicateFails(t *testing.T) {
	l := newTestList(t, 2)
	err := l.Add(testItem{id: 0})
	require.Error(t, err)
	var listErr *Error
	require.ErrorAs(t, err, &listErr)
	assert.Equal(t, ErrAlreadyInList, listErr.Kind)
}

func TestAddThenRemoveByIDLeavesListUnchanged(t *testing.T) {
	l := newTestList(t, 3)
	before := ids(l)
	require.NoError(t, l.Add(testItem{id: 99}))
	require.NoError(t, l.RemoveByID(99))
	assert.Equal(t, before, ids(l))
}

func TestReplaceMissingFails(t *testing.T) {
	l := newTestList(t, 2)
	err := l.Replace(testItem{id: 99})
	require.Error(t, err)
	var listErr *Error
	require.ErrorAs(t, err, &listErr)
	assert.Equal(t, ErrNotFound, listErr.Kind)
}

func TestRemoveByIDMissingFails(t *testing.T) {
	l := newTestList(t, 2)
	err := l.RemoveByID(99)
	require.Error(t, err)
}
