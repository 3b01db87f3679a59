package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestMergeDate_UnsuppliedKeepsCurrent(t *testing.T) {
	cur := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	got, err := MergeDate(&cur, nil)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Equal(cur))
}

func TestMergeDate_EmptyStringClears(t *testing.T) {
	cur := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	got, err := MergeDate(&cur, strPtr(""))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMergeDate_ValueSets(t *testing.T) {
	got, err := MergeDate(nil, strPtr("2025-04-01"))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "2025-04-01", got.Format(DateLayout))
}

func TestMergeDate_BadFormat(t *testing.T) {
	_, err := MergeDate(nil, strPtr("04/01/2025"))
	assert.Error(t, err)
}

func TestMergeString(t *testing.T) {
	assert.Equal(t, "keep", MergeString("keep", nil))
	assert.Equal(t, "", MergeString("old", strPtr("")))
	assert.Equal(t, "new", MergeString("old", strPtr("new")))
}

func TestMergeBool(t *testing.T) {
	b := true
	assert.True(t, MergeBool(false, &b))
	assert.True(t, MergeBool(true, nil))
}
