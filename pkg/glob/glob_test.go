package glob

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMatch(t *testing.T) {
	for name, tc := range map[string]struct {
		pattern string
		path    string
		want    bool
	}{
		"exact": {
			pattern: "lodash/memoize",
			path:    "lodash/memoize",
			want:    true,
		},
		"single star within segment": {
			pattern: "lodash/*",
			path:    "lodash/memoize",
			want:    true,
		},
		"single star does not cross separator": {
			pattern: "lodash/*",
			path:    "lodash/fp/memoize",
			want:    false,
		},
		"double star crosses separators": {
			pattern: "@styles/theme/themes/**",
			path:    "@styles/theme/themes/dark/colors",
			want:    true,
		},
		"double star single segment": {
			pattern: "@styles/theme/themes/**",
			path:    "@styles/theme/themes/dark",
			want:    true,
		},
		"extension wildcard": {
			pattern: "**/assets/animations/**/*.json",
			path:    "src/assets/animations/spinner/loading.json",
			want:    true,
		},
		"extension wildcard wrong extension": {
			pattern: "**/assets/animations/**/*.json",
			path:    "src/assets/animations/spinner/loading.svg",
			want:    false,
		},
		"prefix is not a match": {
			pattern: "@styles/utils/**",
			path:    "@styles/utilsExtra/FontUtils",
			want:    false,
		},
		"invalid pattern never matches": {
			pattern: "[",
			path:    "lodash",
			want:    false,
		},
	} {
		t.Run(name, func(t *testing.T) {
			got := Match(tc.pattern, tc.path)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	for name, tc := range map[string]struct {
		includes []string
		excludes []string
		path     string
		want     bool
	}{
		"degenerate": {},
		"include hit": {
			includes: []string{"@styles/utils/**"},
			path:     "@styles/utils/ThemeUtils",
			want:     true,
		},
		"exclude dominates": {
			includes: []string{"@styles/utils/**"},
			excludes: []string{"@styles/utils/FontUtils"},
			path:     "@styles/utils/FontUtils",
			want:     false,
		},
		"any include suffices": {
			includes: []string{"@libs/legacy/**", "@styles/utils/**"},
			path:     "@styles/utils/ThemeUtils",
			want:     true,
		},
		"include order does not matter": {
			includes: []string{"@styles/utils/**", "@libs/legacy/**"},
			path:     "@styles/utils/ThemeUtils",
			want:     true,
		},
		"no include hit": {
			includes: []string{"@styles/utils/**"},
			path:     "@components/Button",
			want:     false,
		},
	} {
		t.Run(name, func(t *testing.T) {
			got := Filter(tc.includes, tc.excludes, tc.path)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	for name, tc := range map[string]struct {
		pattern string
		wantErr bool
	}{
		"simple": {
			pattern: "lodash/*",
		},
		"doublestar": {
			pattern: "**/assets/**/*.json",
		},
		"unterminated class": {
			pattern: "[",
			wantErr: true,
		},
	} {
		t.Run(name, func(t *testing.T) {
			err := Validate(tc.pattern)
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate(%q): got err %v, wantErr %v", tc.pattern, err, tc.wantErr)
			}
		})
	}
}
