package mock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipelined/connector"
	"github.com/pipelined/connector/internal/mock"
)

func TestCounter(t *testing.T) {
	e := mock.New()
	require.NoError(t, e.SetValue.Set(3))
	assert.Equal(t, 3, e.Value.Get())
	assert.Equal(t, 3, e.Value.Get())
	assert.Equal(t, 1, e.Calls("SetValue"))
	// not caching output calls the method every time
	assert.Equal(t, 2, e.Calls("Value"))
	assert.Equal(t, []int{3, 3}, e.History())

	assert.Equal(t, 6, e.Value2.Get())
	assert.Equal(t, 6, e.Value2.Get())
	assert.Equal(t, 1, e.Calls("Value2"))

	e.Reset()
	assert.Equal(t, 0, e.Calls("SetValue"))
}

func TestItems(t *testing.T) {
	e := mock.New()
	id, err := e.AddItem.Add(5)
	require.NoError(t, err)
	_, err = e.AddItem.Add(7)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 7}, e.Items.Get())

	_, err = e.AddItemReplace.Replace().Call(id, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 7}, e.Items.Get())

	_, err = e.AddItem.Remove().Call(id)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 7}, e.ItemsByID())

	_, err = e.AddItem.Remove().Call(id)
	assert.Equal(t, mock.ErrUnknownItem, err)
}

func TestNames(t *testing.T) {
	e := mock.New()
	assert.Equal(t, "Example.Items", e.Items.Name())
	assert.Equal(t, "Example.AddItem", e.AddItem.Name())
	assert.Equal(t, "Example.RemoveItem", e.AddItem.Remove().Name())
	assert.Equal(t, "Example.ReplaceItem", e.AddItemReplace.Replace().Name())
	assert.Len(t, connector.Connectors(e), 13)
}
