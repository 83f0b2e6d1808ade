package record_test

import (
	"encoding/json"
	"errors"
	"testing"

	"botc-assets/core/record"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(pk, title string, src record.Provenance) record.Record {
	return record.Record{PK: record.Key(pk), Title: title, Source: src}
}

func TestMerge_ExtraShadowsRemote(t *testing.T) {
	remote := []record.Record{
		rec("1", "A", record.SourceRemote),
		rec("2", "B", record.SourceRemote),
	}
	extra := []record.Record{rec("2", "B-override", record.SourceExtra)}

	merged, err := record.Merge(extra, remote)
	require.NoError(t, err)

	require.Len(t, merged.Records, 2)
	assert.Equal(t, record.Key("2"), merged.Records[0].PK)
	assert.Equal(t, "B-override", merged.Records[0].Title)
	assert.Equal(t, record.Key("1"), merged.Records[1].PK)
	assert.Equal(t, "A", merged.Records[1].Title)

	require.Len(t, merged.Shadowed, 1)
	assert.Equal(t, "B", merged.Shadowed[0].Title)
}

func TestMerge_Idempotent(t *testing.T) {
	set := []record.Record{
		rec("3", "C", record.SourceRemote),
		rec("1", "A", record.SourceRemote),
		rec("2", "B", record.SourceRemote),
	}

	merged, err := record.Merge(set, set)
	require.NoError(t, err)
	assert.Equal(t, set, merged.Records)
}

func TestMerge_Priority(t *testing.T) {
	homebrew := []record.Record{rec("x", "homebrew", record.SourceHomebrew)}
	extra := []record.Record{rec("x", "extra", record.SourceExtra), rec("y", "extra", record.SourceExtra)}
	remote := []record.Record{rec("y", "remote", record.SourceRemote), rec("z", "remote", record.SourceRemote)}

	merged, err := record.Merge(homebrew, extra, remote)
	require.NoError(t, err)

	got := make(map[record.Key]string)
	for _, r := range merged.Records {
		_, dup := got[r.PK]
		assert.False(t, dup, "duplicate key %s", r.PK)
		got[r.PK] = r.Title
	}
	assert.Equal(t, map[record.Key]string{"x": "homebrew", "y": "extra", "z": "remote"}, got)
	assert.Len(t, merged.Shadowed, 2)
}

func TestMerge_RejectsMissingKey(t *testing.T) {
	_, err := record.Merge([]record.Record{rec("", "nameless", record.SourceExtra)})
	require.Error(t, err)

	var vErr *record.ValidationError
	assert.True(t, errors.As(err, &vErr))
	assert.Equal(t, record.SourceExtra, vErr.Source)
}

func TestSet_AddDisplaces(t *testing.T) {
	s := record.NewSet(rec("1", "first", record.SourceRemote), rec("2", "two", record.SourceRemote))
	s.Add(rec("1", "second", record.SourceExtra))

	assert.Equal(t, 2, s.Len())
	got, ok := s.Get("1")
	require.True(t, ok)
	assert.Equal(t, "second", got.Title)
	assert.Equal(t, record.Key("1"), s.Records()[0].PK)
	assert.False(t, s.Has("3"))
}

func TestKey_JSON(t *testing.T) {
	var r record.Record
	require.NoError(t, json.Unmarshal([]byte(`{"pk": 178, "title": "Trouble Brewing"}`), &r))
	assert.Equal(t, record.Key("178"), r.PK)

	require.NoError(t, json.Unmarshal([]byte(`{"pk": "alice", "title": "Alice"}`), &r))
	assert.Equal(t, record.Key("alice"), r.PK)

	out, err := json.Marshal(record.Key("178"))
	require.NoError(t, err)
	assert.Equal(t, `178`, string(out))

	out, err = json.Marshal(record.Key("alice"))
	require.NoError(t, err)
	assert.Equal(t, `"alice"`, string(out))

	var k record.Key
	assert.Error(t, json.Unmarshal([]byte(`{}`), &k))
}
