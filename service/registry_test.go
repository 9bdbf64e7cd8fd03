package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"myrendezvous/domain"
	"myrendezvous/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameTable_BindLookup(t *testing.T) {
	ctx := context.Background()
	table := NewNameTable()

	b := domain.Binding{Name: "jmxrmi", Address: "myhost:9000", ExportID: "1", BoundAt: helpers.TestNow()}
	require.NoError(t, table.Bind(ctx, b))

	got, err := table.Lookup(ctx, "jmxrmi")
	require.NoError(t, err)
	assert.Equal(t, b, got)

	err = table.Bind(ctx, domain.Binding{Name: "jmxrmi", Address: "other:1"})
	require.Error(t, err)
	assert.True(t, IsBind(err))

	got, err = table.Lookup(ctx, "jmxrmi")
	require.NoError(t, err)
	assert.Equal(t, "myhost:9000", got.Address, "failed bind must not replace the entry")
}

func TestNameTable_Errors(t *testing.T) {
	ctx := context.Background()
	table := NewNameTable()

	_, err := table.Lookup(ctx, "missing")
	assert.True(t, IsEntityNotFound(err))

	assert.True(t, IsEntityNotFound(table.Unbind(ctx, "missing")))
	assert.True(t, IsBadParameter(table.Bind(ctx, domain.Binding{})))
	assert.True(t, IsBadParameter(table.Rebind(ctx, domain.Binding{})))
}

func TestNameTable_RebindUnbindList(t *testing.T) {
	ctx := context.Background()
	table := NewNameTable()

	require.NoError(t, table.Bind(ctx, domain.Binding{Name: "b", Address: "h:1"}))
	require.NoError(t, table.Rebind(ctx, domain.Binding{Name: "b", Address: "h:2"}))
	require.NoError(t, table.Rebind(ctx, domain.Binding{Name: "a", Address: "h:3"}))

	list, err := table.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].Name)
	assert.Equal(t, "h:2", list[1].Address)

	require.NoError(t, table.Unbind(ctx, "a"))
	list, err = table.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestNameTable_ConcurrentBindSameName(t *testing.T) {
	ctx := context.Background()
	table := NewNameTable()

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		won int
	)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := table.Bind(ctx, domain.Binding{Name: "jmxrmi", Address: fmt.Sprintf("h:%d", i+1)}); err == nil {
				mu.Lock()
				won++
				mu.Unlock()
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 1, won)
}
