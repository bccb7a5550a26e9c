package demo

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoIDPages(counts ...int) [][]string {
	var pages [][]string
	n := 0
	for _, count := range counts {
		page := make([]string, count)
		for i := range page {
			page[i] = fmt.Sprintf("demo-%d", n)
			n++
		}
		pages = append(pages, page)
	}
	return pages
}

func TestDeleteAllPagesUntilEmpty(t *testing.T) {
	gw := &countingGateway{demoIDs: demoIDPages(500, 500, 200)}

	var events []progressEvent
	deleted, err := DeleteAll(context.Background(), gw, func(p int, m string) {
		events = append(events, progressEvent{p, m})
	})
	require.NoError(t, err)

	assert.Equal(t, 1200, deleted)
	require.Len(t, gw.deletedPages, 3)
	assert.Len(t, gw.deletedPages[0], 500)
	assert.Len(t, gw.deletedPages[2], 200)
	assert.Empty(t, gw.demoIDs, "no demo pages should remain")

	last := events[len(events)-1]
	assert.Equal(t, progressEvent{100, "Successfully deleted 1200 demo reports."}, last)
}

func TestDeleteAllEmptySetReturnsZero(t *testing.T) {
	gw := &countingGateway{}

	var events []progressEvent
	deleted, err := DeleteAll(context.Background(), gw, func(p int, m string) {
		events = append(events, progressEvent{p, m})
	})
	require.NoError(t, err)

	assert.Zero(t, deleted)
	require.Len(t, events, 2)
	assert.Equal(t, progressEvent{0, "Fetching demo reports..."}, events[0])
	assert.Equal(t, progressEvent{100, "Successfully deleted 0 demo reports."}, events[1])
}

func TestDeleteAllPropagatesQueryError(t *testing.T) {
	gw := &countingGateway{queryErr: errors.New("query exploded")}

	var final progressEvent
	deleted, err := DeleteAll(context.Background(), gw, func(p int, m string) {
		final = progressEvent{p, m}
	})
	require.Error(t, err)

	assert.Zero(t, deleted)
	assert.Equal(t, 100, final.percent)
	assert.Contains(t, final.message, "Could not delete all demo data")
}

func TestDeleteAllPropagatesCommitError(t *testing.T) {
	gw := &countingGateway{
		demoIDs:   demoIDPages(500, 100),
		deleteErr: errors.New("commit failed"),
	}

	deleted, err := DeleteAll(context.Background(), gw, nil)
	require.Error(t, err)
	assert.Zero(t, deleted, "failed first page means nothing was deleted")
}
