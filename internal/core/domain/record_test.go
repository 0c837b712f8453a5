package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRecord_Get tests column lookup
func TestRecord_Get(t *testing.T) {
	rec := Record{Fields: []Field{
		{Column: "Name", Value: "report.pdf"},
		{Column: "Size", Value: int64(2048)},
	}}

	v, ok := rec.Get("Name")
	assert.True(t, ok)
	assert.Equal(t, "report.pdf", v)

	v, ok = rec.Get("Size")
	assert.True(t, ok)
	assert.Equal(t, int64(2048), v)

	_, ok = rec.Get("Extension")
	assert.False(t, ok)
}

// TestRecord_GetString tests string coercion on lookup
func TestRecord_GetString(t *testing.T) {
	rec := Record{Fields: []Field{
		{Column: "Name", Value: "report.pdf"},
		{Column: "Size", Value: int64(2048)},
	}}

	assert.Equal(t, "report.pdf", rec.GetString("Name"))
	assert.Equal(t, "", rec.GetString("Size"), "numeric values are not strings")
	assert.Equal(t, "", rec.GetString("Missing"))
}

// TestRecord_Columns tests column names keep emission order
func TestRecord_Columns(t *testing.T) {
	rec := Record{Fields: []Field{
		{Column: "Name", Value: "a"},
		{Column: "Size", Value: int64(1)},
		{Column: "Date Modified", Value: "01/02/2024 10:00"},
	}}

	assert.Equal(t, []string{"Name", "Size", "Date Modified"}, rec.Columns())
}

// TestRecord_FullPath tests the path fallback chain
func TestRecord_FullPath(t *testing.T) {
	tests := []struct {
		name string
		rec  Record
		want string
	}{
		{
			name: "full path column wins",
			rec: Record{Fields: []Field{
				{Column: ColumnName, Value: "report.pdf"},
				{Column: ColumnFullPath, Value: `C:\docs\report.pdf`},
			}},
			want: `C:\docs\report.pdf`,
		},
		{
			name: "falls back to name",
			rec: Record{Fields: []Field{
				{Column: ColumnName, Value: "report.pdf"},
			}},
			want: "report.pdf",
		},
		{
			name: "empty record",
			rec:  Record{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rec.FullPath())
		})
	}
}

// TestRecord_MarshalJSON tests key order follows field order
func TestRecord_MarshalJSON(t *testing.T) {
	rec := Record{Fields: []Field{
		{Column: "Name", Value: "report.pdf"},
		{Column: "Size", Value: int64(2048)},
		{Column: "Date Modified", Value: "01/02/2024 10:00"},
	}}

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	assert.Equal(t,
		`{"Name":"report.pdf","Size":2048,"Date Modified":"01/02/2024 10:00"}`,
		string(data))
}

// TestRecord_MarshalJSON_Empty tests an empty record encodes as {}
func TestRecord_MarshalJSON_Empty(t *testing.T) {
	data, err := json.Marshal(Record{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

// TestRecord_MarshalJSON_Escaping tests values needing JSON escaping
func TestRecord_MarshalJSON_Escaping(t *testing.T) {
	rec := Record{Fields: []Field{
		{Column: "Name", Value: `weird "name".txt`},
	}}

	data, err := json.Marshal(rec)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, `weird "name".txt`, decoded["Name"])
}

// TestRecord_MarshalJSON_InSlice tests marshalling a result set
func TestRecord_MarshalJSON_InSlice(t *testing.T) {
	records := []Record{
		{Fields: []Field{{Column: "Name", Value: "a.txt"}}},
		{Fields: []Field{{Column: "Name", Value: "b.txt"}}},
	}

	data, err := json.Marshal(records)
	require.NoError(t, err)
	assert.Equal(t, `[{"Name":"a.txt"},{"Name":"b.txt"}]`, string(data))
}
