// SPDX-License-Identifier: AGPL-3.0-or-later
package baseline

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/tidwall/gjson"
)

// Options configures optional, non-default behavior of the core
// operations. Replaces the source's ambient "missing support" behavior
// with explicit, per-call configuration. The core has no debug logger and
// Options carries no logging setting.
type Options struct {
	// TreatMissingSupportAsUnknown makes a missing __compat.support entry
	// for a queried browser resolve as "no initial support" instead of
	// returning a MissingBrowserSupportError. Defaults to false (strict,
	// matching the spec's mandated behavior).
	TreatMissingSupportAsUnknown bool
}

// Compat is the computation context: it owns the raw BCD bytes and two
// caches — identifier to Browser, identifier to Feature — populated
// lazily and never evicted within one context's lifetime. Guarded by a
// mutex so repeated lookups for the same id are cheap and return the
// same object whether or not callers share one Compat across goroutines.
type Compat struct {
	raw []byte

	mu       sync.Mutex
	browsers map[BrowserID]*Browser
	features map[string]*Feature
	cutoff   *time.Time
}

// Load builds a Compat context from raw BCD JSON bytes. It does not read
// from disk or a package itself — handing it bytes is the caller's
// concern (see spec.md §1's Non-goals on ingestion).
func Load(data []byte) (*Compat, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("baseline: input is not valid JSON")
	}
	return &Compat{
		raw:      data,
		browsers: map[BrowserID]*Browser{},
		features: map[string]*Feature{},
	}, nil
}

// Cutoff returns the BCD __meta.timestamp as a UTC plain date, used as
// the cutoff clock for the keystone/status derivation. Computed once and
// cached.
func (c *Compat) Cutoff() (time.Time, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cutoff != nil {
		return *c.cutoff, nil
	}

	ts := gjson.GetBytes(c.raw, "__meta.timestamp")
	if !ts.Exists() {
		return time.Time{}, fmt.Errorf("baseline: __meta.timestamp missing")
	}
	cutoff, err := ParseInstant(ts.String())
	if err != nil {
		return time.Time{}, err
	}
	c.cutoff = &cutoff
	return cutoff, nil
}

// Browser returns the cached Browser for id, decoding it from the raw
// BCD bytes on first access.
func (c *Compat) Browser(id BrowserID) (*Browser, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if b, ok := c.browsers[id]; ok {
		return b, nil
	}

	b, err := decodeBrowser(c.raw, id)
	if err != nil {
		return nil, err
	}
	c.browsers[id] = b
	return b, nil
}

// Feature returns the cached Feature for a dotted compat key, decoding it
// from the raw BCD bytes on first access.
func (c *Compat) Feature(path string) (*Feature, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if f, ok := c.features[path]; ok {
		return f, nil
	}

	f, err := decodeFeature(c.raw, path)
	if err != nil {
		return nil, err
	}
	c.features[path] = f
	return f, nil
}

// ExpandAncestors enumerates the ancestor paths of key that carry their
// own __compat record (see ExpandAncestors in ancestors.go), reading
// against this context's raw tree.
func (c *Compat) ExpandAncestors(key string) ([]string, error) {
	return ExpandAncestors(c.raw, key)
}

func decodeBrowser(raw []byte, id BrowserID) (*Browser, error) {
	browserPath := "browsers." + gjson.Escape(string(id))
	node := gjson.GetBytes(raw, browserPath)
	if !node.Exists() {
		return nil, &InvalidPathError{Path: browserPath}
	}

	name := node.Get("name").String()
	previewName := node.Get("preview_name").String()

	var entries []rawRelease
	var decodeErr error
	node.Get("releases").ForEach(func(key, value gjson.Result) bool {
		var decoded struct {
			ReleaseDate *string `json:"release_date"`
			Status      string  `json:"status"`
		}
		if err := json.Unmarshal([]byte(value.Raw), &decoded); err != nil {
			decodeErr = fmt.Errorf("baseline: decoding %s release %s: %w", id, key.String(), err)
			return false
		}

		var date *time.Time
		if decoded.ReleaseDate != nil {
			t, err := time.Parse(dateLayout, *decoded.ReleaseDate)
			if err != nil {
				decodeErr = fmt.Errorf("baseline: invalid release_date for %s %s: %w", id, key.String(), err)
				return false
			}
			date = &t
		}

		entries = append(entries, rawRelease{
			version: key.String(),
			date:    date,
			status:  ReleaseStatus(decoded.Status),
		})
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}

	return NewBrowser(id, name, entries, previewName), nil
}

func decodeFeature(raw []byte, path string) (*Feature, error) {
	escaped := escapeGJSONPath(path)

	compatNode := gjson.GetBytes(raw, escaped+".__compat")
	if !compatNode.Exists() {
		if !gjson.GetBytes(raw, escaped).Exists() {
			return nil, &InvalidPathError{Path: path}
		}
		return nil, &MissingCompatRecordError{Path: path}
	}

	support := map[BrowserID][]SupportStatement{}
	var decodeErr error
	compatNode.Get("support").ForEach(func(key, value gjson.Result) bool {
		stmts, err := decodeSupportStatements(value)
		if err != nil {
			decodeErr = fmt.Errorf("baseline: decoding support for %s/%s: %w", path, key.String(), err)
			return false
		}
		support[BrowserID(key.String())] = stmts
		return true
	})
	if decodeErr != nil {
		return nil, decodeErr
	}

	return &Feature{
		Path:       path,
		Deprecated: compatNode.Get("status.deprecated").Bool(),
		Support:    support,
	}, nil
}

func decodeSupportStatements(value gjson.Result) ([]SupportStatement, error) {
	if value.IsArray() {
		var stmts []SupportStatement
		if err := json.Unmarshal([]byte(value.Raw), &stmts); err != nil {
			return nil, err
		}
		return stmts, nil
	}

	var stmt SupportStatement
	if err := json.Unmarshal([]byte(value.Raw), &stmt); err != nil {
		return nil, err
	}
	return []SupportStatement{stmt}, nil
}
