package localstate

import (
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/common-fate/clio"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// DefaultProfileID is what profile.last_used is reset to when the
// last used profile is removed.
const DefaultProfileID = "Default"

const (
	maxSuggestions        = 3
	maxSuggestionDistance = 2
)

// RemoveProfile removes the profile id from the document: its
// profile.info_cache entry, its references in profile.profiles_order,
// profile.last_used and profile.last_active_profiles, and its
// variations_google_groups entry.
//
// ErrNoProfiles is returned if the document has no profiles and an
// *UnknownProfileError if id isn't one of them. The document is left
// unchanged when an error is returned.
func (d *Document) RemoveProfile(id string) error {
	ids := objectKeys(d.Get(pathInfoCache))
	if len(ids) == 0 {
		return ErrNoProfiles
	}
	if !slices.Contains(ids, id) {
		return &UnknownProfileError{ID: id, Suggestions: suggest(id, ids)}
	}

	raw, err := deleteKey(d.raw, pathInfoCache, id)
	if err != nil {
		return err
	}

	raw, err = deleteFirst(raw, pathProfilesOrder, id)
	if err != nil {
		return err
	}
	if !gjson.GetBytes(raw, pathProfilesOrder).Exists() {
		raw, err = sjson.SetRawBytes(raw, pathProfilesOrder, []byte("[]"))
		if err != nil {
			return err
		}
	}

	lastUsed := gjson.GetBytes(raw, pathLastUsed)
	if lastUsed.Type == gjson.String && lastUsed.Str == id {
		clio.Debugf("resetting %s from %q to %q", pathLastUsed, id, DefaultProfileID)
		raw, err = sjson.SetBytes(raw, pathLastUsed, DefaultProfileID)
		if err != nil {
			return err
		}
	}

	raw, err = deleteFirst(raw, pathLastActiveProfiles, id)
	if err != nil {
		return err
	}

	raw, err = deleteKey(raw, pathVariationsGoogleGroups, id)
	if err != nil {
		return err
	}

	d.raw = raw
	return nil
}

// deleteKey removes key from the object at parent. It is a no-op if
// parent isn't an object or doesn't contain key.
func deleteKey(raw []byte, parent, key string) ([]byte, error) {
	obj := gjson.GetBytes(raw, parent)
	if !obj.IsObject() || !obj.Get(gjson.Escape(key)).Exists() {
		return raw, nil
	}
	clio.Debugf("removing %q from %s", key, parent)
	return sjson.DeleteBytes(raw, keyPath(parent, key))
}

// deleteFirst removes the first string element equal to value from the
// array at path. It is a no-op if path isn't an array or doesn't
// contain value.
func deleteFirst(raw []byte, path, value string) ([]byte, error) {
	arr := gjson.GetBytes(raw, path)
	if !arr.IsArray() {
		return raw, nil
	}
	index := -1
	i := 0
	arr.ForEach(func(_, elem gjson.Result) bool {
		if elem.Type == gjson.String && elem.Str == value {
			index = i
			return false
		}
		i++
		return true
	})
	if index < 0 {
		return raw, nil
	}
	clio.Debugf("removing %q from %s at index %d", value, path, index)
	return sjson.DeleteBytes(raw, path+"."+strconv.Itoa(index))
}

// suggest returns the known profile IDs closest to id.
func suggest(id string, ids []string) []string {
	type candidate struct {
		id       string
		distance int
	}
	var candidates []candidate
	for _, known := range ids {
		distance := fuzzy.LevenshteinDistance(strings.ToLower(id), strings.ToLower(known))
		if distance <= maxSuggestionDistance || fuzzy.MatchFold(id, known) {
			candidates = append(candidates, candidate{id: known, distance: distance})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].distance < candidates[j].distance
	})

	var out []string
	for i := 0; i < len(candidates) && i < maxSuggestions; i++ {
		out = append(out, candidates[i].id)
	}
	return out
}
