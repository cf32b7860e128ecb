package multidata_test

import (
	"testing"

	"github.com/rs/xid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pipelined/connector/multidata"
)

func TestData(t *testing.T) {
	d := multidata.New()
	id1 := d.Add(1)
	id2 := d.Add(2)
	id3 := d.Add(3)
	assert.NotEqual(t, id1, id2)
	_, err := xid.FromString(id1)
	assert.NoError(t, err)
	assert.Equal(t, []interface{}{1, 2, 3}, d.Values())
	assert.Equal(t, []string{id1, id2, id3}, d.IDs())

	// replaced value keeps position
	require.NoError(t, d.Replace(id2, 5))
	assert.Equal(t, []interface{}{1, 5, 3}, d.Values())
	v, ok := d.Get(id2)
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	require.NoError(t, d.Remove(id1))
	assert.Equal(t, []interface{}{5, 3}, d.Values())
	assert.Equal(t, 2, d.Len())

	assert.Equal(t, multidata.ErrUnknownID, d.Remove(id1))
	assert.Equal(t, multidata.ErrUnknownID, d.Replace(id1, 1))
	_, ok = d.Get(id1)
	assert.False(t, ok)

	d.Clear()
	assert.Equal(t, 0, d.Len())
	assert.Empty(t, d.Values())
}
