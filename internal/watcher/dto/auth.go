package dto

import "encoding/json"

// TokenFields are the auth response keys that may carry the bearer token,
// in priority order.
var TokenFields = []string{"access_token", "id_token", "token"}

// DiscoverResponse is the body of POST /api/authenticate/discover.
// Only the token fields matter; everything else is ignored.
type DiscoverResponse map[string]json.RawMessage

// Token returns the first candidate field holding a non-empty string.
// Absent, null and empty values are skipped. Non-string values are skipped
// too, even truthy ones like {"access_token": 42}: only strings are accepted
// as bearer tokens, so a later string candidate wins over them. ok is false
// when no candidate matched.
func (r DiscoverResponse) Token() (token string, field string, ok bool) {
	for _, key := range TokenFields {
		raw, present := r[key]
		if !present {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil || s == "" {
			continue
		}
		return s, key, true
	}
	return "", "", false
}
