package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressFromStatus(t *testing.T) {
	assert.Equal(t, 0, ProgressFromStatus(StatusNotStarted))
	assert.Equal(t, 50, ProgressFromStatus(StatusInProgress))
	assert.Equal(t, 100, ProgressFromStatus(StatusDone))
}

func TestProgressFromChildStatuses(t *testing.T) {
	assert.Equal(t, 0, ProgressFromChildStatuses(nil))
	assert.Equal(t, 0, ProgressFromChildStatuses([]Status{}))
	assert.Equal(t, 100, ProgressFromChildStatuses([]Status{StatusDone}))
	assert.Equal(t, 50, ProgressFromChildStatuses([]Status{StatusDone, StatusNotStarted}))
	assert.Equal(t, 50, ProgressFromChildStatuses([]Status{StatusInProgress}))
}

func TestProgressFromChildStatuses_RoundsHalfUp(t *testing.T) {
	// 2 done out of 3 children: 66.67 rounds to 67.
	got := ProgressFromChildStatuses([]Status{StatusDone, StatusDone, StatusNotStarted})
	assert.Equal(t, 67, got)

	// 1 done out of 3: 33.33 rounds to 33.
	got = ProgressFromChildStatuses([]Status{StatusDone, StatusNotStarted, StatusNotStarted})
	assert.Equal(t, 33, got)
}

func TestCombineProgress(t *testing.T) {
	assert.Equal(t, 0, CombineProgress(nil))
	assert.Equal(t, 50, CombineProgress([]int{100, 0}))
	assert.Equal(t, 100, CombineProgress([]int{100}))
	assert.Equal(t, 67, CombineProgress([]int{100, 100, 0}))
}
