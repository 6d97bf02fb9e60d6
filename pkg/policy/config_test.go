package policy_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/stackb/importpolicy/pkg/policy"
)

func TestReadConfigFile(t *testing.T) {
	want := &policy.Config{
		Aliases: []policy.AliasConfig{
			{Alias: "@src", Path: "./src"},
		},
		Restricted: policy.RestrictedConfig{
			Paths: []policy.PathConfig{
				{Module: "lodash", Names: []string{"memoize"}, Message: "Please use '@src/libs/memoize' instead."},
			},
			Patterns: []policy.PatternConfig{
				{Group: []string{"@styles/utils/**", "!@styles/utils/FontUtils"}, Message: "use the theme hooks"},
			},
		},
	}

	for name, tc := range map[string]struct {
		filename string
		content  string
	}{
		"yaml": {
			filename: "policy.yaml",
			content: `
aliases:
  - alias: "@src"
    path: ./src
restricted:
  paths:
    - module: lodash
      names: [memoize]
      message: "Please use '@src/libs/memoize' instead."
  patterns:
    - group:
        - "@styles/utils/**"
        - "!@styles/utils/FontUtils"
      message: use the theme hooks
`,
		},
		"json": {
			filename: "policy.json",
			content: `{
  "aliases": [
    {"alias": "@src", "path": "./src"}
  ],
  "restricted": {
    "paths": [
      {"module": "lodash", "names": ["memoize"], "message": "Please use '@src/libs/memoize' instead."}
    ],
    "patterns": [
      {"group": ["@styles/utils/**", "!@styles/utils/FontUtils"], "message": "use the theme hooks"}
    ]
  }
}`,
		},
	} {
		t.Run(name, func(t *testing.T) {
			filename := filepath.Join(t.TempDir(), tc.filename)
			require.NoError(t, os.WriteFile(filename, []byte(tc.content), 0o644))

			got, err := policy.ReadConfigFile(filename)
			require.NoError(t, err)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestReadConfigFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := policy.ReadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
	t.Run("malformed payload", func(t *testing.T) {
		filename := filepath.Join(t.TempDir(), "policy.json")
		require.NoError(t, os.WriteFile(filename, []byte("{"), 0o644))
		_, err := policy.ReadConfigFile(filename)
		require.Error(t, err)
	})
}
