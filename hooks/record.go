package hooks

// Record is the host's stored configuration for one named entity. Keys the
// host does not know about are kept as-is.
type Record map[string]interface{}

// Records maps entity name to record for one kind.
type Records map[string]Record

// Args are the registration arguments a stored record is turned into.
type Args map[string]interface{}

// Clone returns a shallow copy.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Clone returns a shallow copy.
func (a Args) Clone() Args {
	out := make(Args, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// String returns the value under key when it is a string.
func (r Record) String(key string) string {
	if s, ok := r[key].(string); ok {
		return s
	}
	return ""
}
