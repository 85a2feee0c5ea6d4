package onboarding

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-06")
	require.NoError(t, err)
	assert.Equal(t, NewDate(2025, time.January, 6), d)

	d, err = ParseDate("2025-01-06T22:30:00+03:00")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-06", d.String())

	_, err = ParseDate("06/01/2025")
	assert.Error(t, err)
}

func TestDateJSON(t *testing.T) {
	type wrapper struct {
		Due Date `json:"due"`
	}

	data, err := json.Marshal(wrapper{Due: MustParseDate("2025-03-10")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"due":"2025-03-10"}`, string(data))

	var w wrapper
	require.NoError(t, json.Unmarshal(data, &w))
	assert.Equal(t, MustParseDate("2025-03-10"), w.Due)

	data, err = json.Marshal(wrapper{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"due":null}`, string(data))

	require.NoError(t, json.Unmarshal([]byte(`{"due":null}`), &w))
	assert.True(t, w.Due.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`{"due":"2025-03-10T00:00:00Z"}`), &w))
	assert.Equal(t, "2025-03-10", w.Due.String())

	assert.Error(t, json.Unmarshal([]byte(`{"due":20250310}`), &w))
	assert.Error(t, json.Unmarshal([]byte(`{"due":"March 10"}`), &w))
}

func TestDateComparisons(t *testing.T) {
	a := MustParseDate("2025-01-10")
	b := a.AddDays(3)
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.True(t, a.Equal(DateOf(time.Date(2025, 1, 10, 18, 0, 0, 0, time.UTC))))
	assert.False(t, a.IsWeekend())
	assert.True(t, a.AddDays(1).IsWeekend())
	assert.Equal(t, "", Date{}.String())
}
