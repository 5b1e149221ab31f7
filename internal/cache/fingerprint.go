package cache

import "encoding/json"

// Key builds a stable cache key from a resource name and its call parameters.
// Structurally equal parameters always produce the same key regardless of map
// insertion order: the params are round-tripped through JSON, which writes
// object keys in sorted order.
func Key(resource string, params any) string {
	if params == nil {
		return resource
	}
	fp := fingerprint(params)
	if fp == "" || fp == "{}" || fp == "null" {
		return resource
	}
	return resource + ":" + fp
}

func fingerprint(params any) string {
	raw, err := json.Marshal(params)
	if err != nil {
		return ""
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return ""
	}
	canonical, err := json.Marshal(generic)
	if err != nil {
		return ""
	}
	return string(canonical)
}
