package statement

// RawRecord is one blank-line delimited block of `key: value` lines, with
// keys kept in file order.
type RawRecord struct {
	keys   []string
	values map[string]string
}

func NewRawRecord() *RawRecord {
	return &RawRecord{values: make(map[string]string)}
}

// Set stores value under key. A repeated key keeps its first position.
func (r *RawRecord) Set(key, value string) {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}

	r.values[key] = value
}

func (r *RawRecord) Get(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

func (r *RawRecord) Keys() []string {
	return r.keys
}

func (r *RawRecord) Len() int {
	return len(r.keys)
}
