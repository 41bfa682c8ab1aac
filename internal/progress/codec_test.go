package progress

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProblemProgress_MarshalJSON(t *testing.T) {
	s := ToggleSolved(DefaultStore([]string{testList}), testList, testID, date(2024, time.January, 1))
	s, err := ToggleReview(s, testList, testID, 0, date(2024, time.January, 2))
	require.NoError(t, err)

	data, err := json.Marshal(s.Get(testList, testID))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"solved": true,
		"solvedDate": "2024-01-01",
		"reviews": [true, false, false, false, false],
		"dates": {"initial": "2024-01-01", "review1": "2024-01-02"}
	}`, string(data))
}

func TestProblemProgress_MarshalJSONUnsolved(t *testing.T) {
	data, err := json.Marshal(DefaultProgress())
	require.NoError(t, err)
	assert.JSONEq(t, `{"solved":false,"solvedDate":null,"reviews":[false,false,false,false,false],"dates":{}}`, string(data))
}

func TestStore_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(DefaultStore([]string{"Blind 75", "LeetCode 75"}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"Blind 75":{},"LeetCode 75":{}}`, string(data))

	data, err = json.Marshal(Store{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestDecodeStore_PreservesUnknownLists(t *testing.T) {
	in := `{
		"Blind 75": {"two-sum": {"solved": true, "solvedDate": "2024-01-01", "reviews": [true,false,false,false,false], "dates": {"initial": "2024-01-01", "review1": "2024-01-02"}}},
		"My Custom List": {"whatever": {"solved": true, "solvedDate": "2024-03-03", "reviews": [false,false,false,false,false], "dates": {"initial": "2024-03-03"}}}
	}`
	s, skipped, err := DecodeStore([]byte(in))
	require.NoError(t, err)
	assert.Empty(t, skipped)
	assert.Equal(t, []string{"Blind 75", "My Custom List"}, s.Lists())
	assert.True(t, s.Get("My Custom List", "whatever").Solved)

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, in, string(out))
}

func TestDecodeStore_MalformedEntries(t *testing.T) {
	in := `{
		"Blind 75": {
			"missing-reviews": {"solved": true, "solvedDate": "2024-01-01"},
			"short-reviews": {"solved": true, "solvedDate": "2024-01-01", "reviews": [true]},
			"bad-types": {"solved": "yes", "reviews": "nope", "dates": 7},
			"not-an-object": 42,
			"date-from-initial": {"solved": true, "dates": {"initial": "2024-02-02", "review3": "2024-02-05", "junk": 1}}
		}
	}`
	s, skipped, err := DecodeStore([]byte(in))
	require.NoError(t, err)
	assert.Equal(t, []string{"Blind 75/not-an-object"}, skipped)

	p := s.Get("Blind 75", "missing-reviews")
	assert.True(t, p.Solved)
	assert.Equal(t, [ReviewCount]bool{}, p.Reviews)

	p = s.Get("Blind 75", "short-reviews")
	assert.Equal(t, [ReviewCount]bool{true}, p.Reviews)

	assert.Equal(t, DefaultProgress(), s.Get("Blind 75", "bad-types"))
	assert.Equal(t, DefaultProgress(), s.Get("Blind 75", "not-an-object"))
	assert.Contains(t, s.List("Blind 75"), "not-an-object")

	p = s.Get("Blind 75", "date-from-initial")
	assert.Equal(t, date(2024, time.February, 2), p.SolvedDate)
	assert.NotContains(t, p.Dates, "review3")
	assert.NotContains(t, p.Dates, "junk")
}

func TestDecodeStore_SolvedWithoutDate(t *testing.T) {
	in := `{"Blind 75": {
		"two-sum": {"solved": true, "solvedDate": null, "reviews": [true,false,false,false,false], "dates": {"review1": "2024-01-02"}},
		"bad-initial": {"solved": true, "dates": {"initial": "yesterday"}},
		"valid-anagram": {"solved": true, "solvedDate": "2024-01-01"}
	}}`
	s, skipped, err := DecodeStore([]byte(in))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Blind 75/two-sum", "Blind 75/bad-initial"}, skipped)

	p := s.Get("Blind 75", "two-sum")
	assert.Equal(t, DefaultProgress(), p)
	assert.False(t, IsDue(p, date(2024, time.February, 1)))
	assert.Equal(t, DefaultProgress(), s.Get("Blind 75", "bad-initial"))
	assert.True(t, s.Get("Blind 75", "valid-anagram").Solved)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"solved":true,"solvedDate":null`)

	var pp ProblemProgress
	assert.Error(t, json.Unmarshal([]byte(`{"solved": true}`), &pp))
}

func TestDecodeStore_UnsolvedDropsDates(t *testing.T) {
	in := `{"Blind 75": {"two-sum": {"solved": false, "solvedDate": "2024-01-01", "reviews": [true,true,false,false,false], "dates": {"initial": "2024-01-01"}}}}`
	s, _, err := DecodeStore([]byte(in))
	require.NoError(t, err)
	assert.Equal(t, DefaultProgress(), s.Get("Blind 75", "two-sum"))
}

func TestDecodeStore_RejectsWrongShape(t *testing.T) {
	for _, in := range []string{`[]`, `null`, `"x"`, `{"Blind 75": []}`, `{bad json`} {
		_, _, err := DecodeStore([]byte(in))
		assert.Error(t, err, in)
	}
}

func TestStore_UnmarshalJSON(t *testing.T) {
	var s Store
	require.NoError(t, json.Unmarshal([]byte(`{"Blind 75": {"two-sum": {"solved": true, "solvedDate": "2024-01-01", "reviews": [false,false,false,false,false], "dates": {}}}}`), &s))
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, date(2024, time.January, 1), s.Get("Blind 75", "two-sum").SolvedDate)
}
