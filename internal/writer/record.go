package writer

// Record is an ordered mapping from column name to a scalar value.
// Column order is the insertion order of Set calls; writes use the first
// record's order when no explicit column list is given.
type Record struct {
	keys   []string
	values map[string]any
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[string]any)}
}

// Set stores value under key and returns the record for chaining. Setting
// an existing key overwrites its value without moving the column.
func (r *Record) Set(key string, value any) *Record {
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
	return r
}

// Get returns the value stored under key and whether the key is present.
func (r *Record) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Columns returns the record's column names in insertion order.
func (r *Record) Columns() []string {
	cols := make([]string, len(r.keys))
	copy(cols, r.keys)
	return cols
}

// Len returns the number of columns in the record.
func (r *Record) Len() int {
	return len(r.keys)
}
