package localstate

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestDocument_RemoveProfile(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		id      string
		want    string
		wantErr error
	}{
		{
			name: "removes_every_reference",
			input: `{
				"profile": {
					"info_cache": {"A": {}, "B": {}},
					"profiles_order": ["A", "B"],
					"last_used": "A",
					"last_active_profiles": ["A"]
				}
			}`,
			id: "A",
			want: `{
				"profile": {
					"info_cache": {"B": {}},
					"profiles_order": ["B"],
					"last_used": "Default",
					"last_active_profiles": []
				}
			}`,
		},
		{
			name: "keeps_last_used_when_other_profile",
			input: `{
				"profile": {
					"info_cache": {"A": {}, "B": {}},
					"profiles_order": ["A", "B"],
					"last_used": "B",
					"last_active_profiles": ["B", "A"]
				}
			}`,
			id: "A",
			want: `{
				"profile": {
					"info_cache": {"B": {}},
					"profiles_order": ["B"],
					"last_used": "B",
					"last_active_profiles": ["B"]
				}
			}`,
		},
		{
			name: "adds_missing_profiles_order",
			input: `{
				"profile": {"info_cache": {"A": {"name": "Work"}, "B": {}}}
			}`,
			id: "A",
			want: `{
				"profile": {"info_cache": {"B": {}}, "profiles_order": []}
			}`,
		},
		{
			name: "removes_variations_google_groups_entry",
			input: `{
				"profile": {"info_cache": {"A": {}, "B": {}}, "profiles_order": ["B", "A"]},
				"variations_google_groups": {"A": [1, 2], "B": []}
			}`,
			id: "A",
			want: `{
				"profile": {"info_cache": {"B": {}}, "profiles_order": ["B"]},
				"variations_google_groups": {"B": []}
			}`,
		},
		{
			name: "only_first_last_active_occurrence",
			input: `{
				"profile": {"info_cache": {"A": {}}, "profiles_order": ["A"], "last_active_profiles": ["A", "C", "A"]}
			}`,
			id: "A",
			want: `{
				"profile": {"info_cache": {}, "profiles_order": [], "last_active_profiles": ["C", "A"]}
			}`,
		},
		{
			name: "id_with_path_characters",
			input: `{
				"profile": {"info_cache": {"Profile.1": {}, "Profile*2": {}}, "profiles_order": ["Profile.1", "Profile*2"], "last_used": "Profile.1"},
				"variations_google_groups": {"Profile.1": []}
			}`,
			id: "Profile.1",
			want: `{
				"profile": {"info_cache": {"Profile*2": {}}, "profiles_order": ["Profile*2"], "last_used": "Default"},
				"variations_google_groups": {}
			}`,
		},
		{
			name:    "unknown_profile",
			input:   `{"profile": {"info_cache": {"A": {}}}}`,
			id:      "Z",
			wantErr: ErrUnknownProfile,
		},
		{
			name:    "empty_info_cache",
			input:   `{"profile": {"info_cache": {}}}`,
			id:      "A",
			wantErr: ErrNoProfiles,
		},
		{
			name:    "missing_profile_section",
			input:   `{"browser": {"enabled_labs_experiments": []}}`,
			id:      "A",
			wantErr: ErrNoProfiles,
		},
		{
			name:    "info_cache_not_an_object",
			input:   `{"profile": {"info_cache": ["A"]}}`,
			id:      "A",
			wantErr: ErrNoProfiles,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.input))
			require.NoError(t, err)

			err = doc.RemoveProfile(tt.id)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				// the document must be left untouched
				assert.Equal(t, tt.input, string(doc.Bytes()))
				return
			}
			require.NoError(t, err)

			if diff := cmp.Diff(decode(t, []byte(tt.want)), decode(t, doc.Bytes())); diff != "" {
				t.Errorf("RemoveProfile() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDocument_RemoveProfile_PreservesUnrelatedFields(t *testing.T) {
	input := `{
		"zeta": {"nested": [1, "two", {"three": 3}], "flag": true},
		"profile": {
			"picker_shown": true,
			"info_cache": {"Default": {"name": "Person 1"}, "Profile 1": {"name": "Work", "avatar_icon": "chrome://theme/IDR_PROFILE_AVATAR_26"}},
			"profiles_order": ["Default", "Profile 1"],
			"last_used": "Profile 1",
			"metrics": {"next_bucket_index": 2}
		},
		"alpha": null,
		"variations_google_groups": {"Default": [], "Profile 1": []}
	}`
	doc, err := Parse([]byte(input))
	require.NoError(t, err)

	require.NoError(t, doc.RemoveProfile("Profile 1"))

	before := decode(t, []byte(input))
	after := decode(t, doc.Bytes())

	for _, key := range []string{"zeta", "alpha"} {
		assert.Equal(t, before[key], after[key], key)
	}
	beforeProfile := before["profile"].(map[string]any)
	afterProfile := after["profile"].(map[string]any)
	for _, key := range []string{"picker_shown", "metrics"} {
		assert.Equal(t, beforeProfile[key], afterProfile[key], key)
	}
	assert.Equal(t, map[string]any{"name": "Person 1"}, afterProfile["info_cache"].(map[string]any)["Default"])

	// key order is kept
	assert.Equal(t, []string{"zeta", "profile", "alpha", "variations_google_groups"}, objectKeys(doc.Get("@this")))
	assert.Equal(t, []string{"picker_shown", "info_cache", "profiles_order", "last_used", "metrics"}, objectKeys(doc.Get("profile")))
}

func TestDocument_RemoveProfile_Suggestions(t *testing.T) {
	doc, err := Parse([]byte(`{"profile": {"info_cache": {"Default": {}, "Profile 1": {}, "Profile 2": {}, "Guest Profile": {}}}}`))
	require.NoError(t, err)

	err = doc.RemoveProfile("profile 3")

	var unknown *UnknownProfileError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "profile 3", unknown.ID)
	assert.Equal(t, []string{"Profile 1", "Profile 2"}, unknown.Suggestions)
	assert.EqualError(t, err, `profile "profile 3" not found`)
}
