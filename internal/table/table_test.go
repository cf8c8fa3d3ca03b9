package table

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendRow(t *testing.T) {
	tbl := New("key", "lat", "lon")

	require.NoError(t, tbl.AppendRow("A", 1.5, 2.5))
	assert.Equal(t, 1, tbl.NumRows())

	err := tbl.AppendRow("B", 1.0)
	assert.Error(t, err)
	assert.Equal(t, 1, tbl.NumRows())
}

func TestColumnAccess(t *testing.T) {
	tbl := New("key", "value")
	require.NoError(t, tbl.AppendRow("A", 1))
	require.NoError(t, tbl.AppendRow("B", 2.5))

	assert.True(t, tbl.HasColumn("key"))
	assert.False(t, tbl.HasColumn("missing"))

	vals, ok := tbl.Column("value")
	require.True(t, ok)
	assert.Equal(t, []interface{}{1, 2.5}, vals)

	keys, ok := tbl.ColumnStrings("key")
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B"}, keys)

	_, ok = tbl.Column("missing")
	assert.False(t, ok)

	v, ok := tbl.Value(1, "value")
	require.True(t, ok)
	assert.Equal(t, 2.5, v)
}

func TestInnerJoin(t *testing.T) {
	left := New("key", "PC1")
	require.NoError(t, left.AppendRow("A", 0.1))
	require.NoError(t, left.AppendRow("B", 0.2))
	require.NoError(t, left.AppendRow("C", 0.3))

	right := New("key", "lat", "lon", "pop")
	require.NoError(t, right.AppendRow("C", 3.0, 30.0, "south"))
	require.NoError(t, right.AppendRow("A", 1.0, 10.0, "north"))

	merged, err := left.InnerJoin(right, "key")
	require.NoError(t, err)

	// Left columns first, right columns after, key deduplicated.
	assert.Equal(t, []string{"key", "PC1", "lat", "lon", "pop"}, merged.Columns())

	// Only keys present on both sides survive, in left row order.
	require.Equal(t, 2, merged.NumRows())
	keys, _ := merged.ColumnStrings("key")
	assert.Equal(t, []string{"A", "C"}, keys)

	assert.Equal(t, []interface{}{"A", 0.1, 1.0, 10.0, "north"}, merged.Row(0))
	assert.Equal(t, []interface{}{"C", 0.3, 3.0, 30.0, "south"}, merged.Row(1))
}

func TestInnerJoinEmptyIntersection(t *testing.T) {
	left := New("key", "PC1")
	require.NoError(t, left.AppendRow("A", 0.1))

	right := New("key", "lat")
	require.NoError(t, right.AppendRow("Z", 1.0))

	merged, err := left.InnerJoin(right, "key")
	require.NoError(t, err)
	assert.Equal(t, 0, merged.NumRows())
	assert.Equal(t, []string{"key", "PC1", "lat"}, merged.Columns())
}

func TestInnerJoinMissingKeyColumn(t *testing.T) {
	left := New("key")
	right := New("id")

	_, err := left.InnerJoin(right, "key")
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	tbl := New("key", "name", "value")
	require.NoError(t, tbl.AppendRow("A", `said "hi"`, 1.5))
	require.NoError(t, tbl.AppendRow("B", "plain, with comma", 2))

	var buf bytes.Buffer
	require.NoError(t, tbl.WriteCSV(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "key,name,value", lines[0])
	// Fields containing quotes or the delimiter are quoted.
	assert.Equal(t, `A,"said ""hi""",1.5`, lines[1])
	assert.Equal(t, `B,"plain, with comma",2`, lines[2])
}

func TestReadCSV(t *testing.T) {
	in := "\"key\", lat ,lon,site\nA,1.5,10,station one\nB,2,20.25,station two\n"

	tbl, err := ReadCSV(strings.NewReader(in))
	require.NoError(t, err)

	// Headers are trimmed and unquoted; values are coerced.
	assert.Equal(t, []string{"key", "lat", "lon", "site"}, tbl.Columns())
	require.Equal(t, 2, tbl.NumRows())
	assert.Equal(t, []interface{}{"A", 1.5, 10, "station one"}, tbl.Row(0))
	assert.Equal(t, []interface{}{"B", 2, 20.25, "station two"}, tbl.Row(1))
}

func TestCSVRoundTrip(t *testing.T) {
	tbl := New("key", "PC1", "lat")
	require.NoError(t, tbl.AppendRow("A", 0.25, 45.5))
	require.NoError(t, tbl.AppendRow("B", -1.75, 46.25))

	var buf bytes.Buffer
	require.NoError(t, tbl.WriteCSV(&buf))

	back, err := ReadCSV(&buf)
	require.NoError(t, err)
	assert.True(t, tbl.Equal(back))
}

func TestEqual(t *testing.T) {
	a := New("key", "v")
	require.NoError(t, a.AppendRow("A", 1))

	b := New("key", "v")
	require.NoError(t, b.AppendRow("A", 1))

	c := New("key", "v")
	require.NoError(t, c.AppendRow("A", 2))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(New("key")))
	assert.False(t, a.Equal(nil))
}
