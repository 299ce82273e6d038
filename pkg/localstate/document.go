// Package localstate reads and edits Chrome's Local State file, the JSON
// document where the browser keeps its registry of profiles.
//
// Reads go through gjson and edits through sjson, so fields which aren't
// touched keep their position and content.
package localstate

import (
	"bytes"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

const (
	pathInfoCache              = "profile.info_cache"
	pathProfilesOrder          = "profile.profiles_order"
	pathLastUsed               = "profile.last_used"
	pathLastActiveProfiles     = "profile.last_active_profiles"
	pathVariationsGoogleGroups = "variations_google_groups"
)

// Width -1 keeps every array element on its own line.
var indentOptions = &pretty.Options{Width: -1, Indent: "  "}

// Document is a parsed Local State file.
type Document struct {
	raw []byte
}

// Profile is an entry of profile.info_cache.
type Profile struct {
	ID string
	// Name is the display name shown in the Chrome profile picker.
	Name     string
	LastUsed bool
}

// Parse validates data as a JSON object and wraps it in a Document.
func Parse(data []byte) (*Document, error) {
	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		return nil, ErrMalformed
	}
	return &Document{raw: data}, nil
}

// Bytes returns the document as it currently is, without reformatting.
func (d *Document) Bytes() []byte {
	return d.raw
}

// Indented returns the document rendered with two space indentation.
// Key order is preserved.
func (d *Document) Indented() []byte {
	return bytes.TrimSuffix(pretty.PrettyOptions(d.raw, indentOptions), []byte("\n"))
}

// Get returns the value at a gjson path. It is mostly useful for tests
// and debugging.
func (d *Document) Get(path string) gjson.Result {
	return gjson.GetBytes(d.raw, path)
}

// Profiles lists the profiles in profile.info_cache. Profiles listed in
// profile.profiles_order come first, in that order, followed by any
// remaining profiles in document order.
func (d *Document) Profiles() []Profile {
	infoCache := d.Get(pathInfoCache)
	if !infoCache.IsObject() {
		return nil
	}
	lastUsed := d.Get(pathLastUsed)

	var profiles []Profile
	seen := map[string]bool{}
	add := func(id string) {
		if seen[id] {
			return
		}
		entry := infoCache.Get(gjson.Escape(id))
		if !entry.Exists() {
			return
		}
		seen[id] = true
		profiles = append(profiles, Profile{
			ID:       id,
			Name:     entry.Get("name").String(),
			LastUsed: lastUsed.Type == gjson.String && lastUsed.Str == id,
		})
	}

	d.Get(pathProfilesOrder).ForEach(func(_, value gjson.Result) bool {
		if value.Type == gjson.String {
			add(value.Str)
		}
		return true
	})
	for _, id := range objectKeys(infoCache) {
		add(id)
	}
	return profiles
}

// objectKeys returns the keys of a JSON object in document order.
func objectKeys(obj gjson.Result) []string {
	if !obj.IsObject() {
		return nil
	}
	var keys []string
	obj.ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.Str)
		return true
	})
	return keys
}

func keyPath(parent, key string) string {
	return parent + "." + gjson.Escape(key)
}
