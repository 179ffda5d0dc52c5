package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/heatpath/config"
	"github.com/katalvlaran/heatpath/dijkstra"
)

func TestParsePolicies(t *testing.T) {
	doc := `
[policies.long]
min_run = 4
max_run = 10

[policies.crawl]
min_run = 0
max_run = 1
`
	got, err := config.ParsePolicies(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []config.NamedPolicy{
		{Name: "crawl", Policy: dijkstra.Policy{MinRun: 0, MaxRun: 1}},
		{Name: "long", Policy: dijkstra.LongRuns},
	}, got)
}

func TestParsePolicies_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		err  error
		msg  string
	}{
		{"Empty", "", config.ErrNoPolicies, ""},
		{"Invalid", "[policies.bad]\nmin_run = 5\nmax_run = 2\n", dijkstra.ErrBadRunPolicy, `policy "bad"`},
		{"MissingMax", "[policies.bad]\nmin_run = 1\n", dijkstra.ErrBadRunPolicy, ""},
		{"UnknownKey", "[policies.x]\nmin_run = 1\nmax_run = 3\nspeed = 2\n", config.ErrUnknownKey, "policies.x.speed"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.ParsePolicies(strings.NewReader(tc.doc))
			require.ErrorIs(t, err, tc.err)
			if tc.msg != "" {
				assert.Contains(t, err.Error(), tc.msg)
			}
		})
	}
}

func TestParsePolicies_Syntax(t *testing.T) {
	_, err := config.ParsePolicies(strings.NewReader("[policies"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode policies")
}

func TestLoadPolicies(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policies.toml")
	require.NoError(t, os.WriteFile(path, []byte("[policies.short]\nmin_run = 1\nmax_run = 3\n"), 0644))

	got, err := config.LoadPolicies(path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, dijkstra.ShortHops, got[0].Policy)

	_, err = config.LoadPolicies(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
}

func TestDefaultPolicies(t *testing.T) {
	got := config.DefaultPolicies()
	require.Len(t, got, 2)
	for _, p := range got {
		assert.NoError(t, p.Validate(), p.Name)
	}
}
