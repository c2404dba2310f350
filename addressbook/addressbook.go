// Package addressbook stores records keyed by name.
//
// Adding a record under a name that is already present replaces the old
// record in place: iteration keeps the position of the first insertion.
// All methods are safe for concurrent use; the records themselves are not.
package addressbook

import (
	"iter"
	"log/slog"
	"slices"
	"sync"

	jsoniter "github.com/json-iterator/go"

	"github.com/amirrezaask/contacts/errors"
	"github.com/amirrezaask/contacts/record"
	"github.com/amirrezaask/contacts/set"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// The zero value is an empty book that logs to slog.Default; New adds options.
type AddressBook struct {
	mu      sync.RWMutex
	records map[string]*record.Record
	order   []string

	config  Config
	logger  *slog.Logger
	metrics *metrics
}

type Option func(*AddressBook)

func WithLogger(l *slog.Logger) Option {
	return func(b *AddressBook) { b.logger = l }
}

func WithConfig(c Config) Option {
	return func(b *AddressBook) { b.config = c }
}

func New(opts ...Option) *AddressBook {
	b := &AddressBook{
		records: map[string]*record.Record{},
		config:  DefaultConfig(),
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// AddRecord stores r under its name, replacing any record already there.
func (b *AddressBook) AddRecord(r *record.Record) {
	name := r.Name()

	b.mu.Lock()
	if b.records == nil {
		b.records = map[string]*record.Record{}
	}
	_, replaced := b.records[name]
	b.records[name] = r
	if !replaced {
		b.order = append(b.order, name)
	}
	size := len(b.records)
	b.mu.Unlock()

	if replaced {
		b.metrics.observe(opReplace, size)
		b.log().Debug("record replaced", slog.String("name", name))
		return
	}
	b.metrics.observe(opAdd, size)
	b.log().Debug("record added", slog.String("name", name))
}

// Find returns the record stored under name or nil.
func (b *AddressBook) Find(name string) *record.Record {
	b.mu.RLock()
	r := b.records[name]
	b.mu.RUnlock()

	b.metrics.count(opFind)
	return r
}

// Delete removes the record stored under name and reports whether there was one.
func (b *AddressBook) Delete(name string) bool {
	b.mu.Lock()
	if _, ok := b.records[name]; !ok {
		b.mu.Unlock()
		return false
	}
	delete(b.records, name)
	b.order = slices.DeleteFunc(b.order, func(n string) bool { return n == name })
	size := len(b.records)
	b.mu.Unlock()

	b.metrics.observe(opDelete, size)
	b.log().Debug("record deleted", slog.String("name", name))

	return true
}

func (b *AddressBook) log() *slog.Logger {
	if b.logger == nil {
		return slog.Default()
	}
	return b.logger
}

func (b *AddressBook) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.records)
}

func (b *AddressBook) Names() set.Set[string] {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return set.Of(b.order...)
}

// All returns every record in insertion order.
func (b *AddressBook) All() []*record.Record {
	b.mu.RLock()
	defer b.mu.RUnlock()

	out := make([]*record.Record, 0, len(b.order))
	for _, name := range b.order {
		out = append(out, b.records[name])
	}
	return out
}

// Records yields a snapshot of All taken when iteration starts.
func (b *AddressBook) Records() iter.Seq[*record.Record] {
	return func(yield func(*record.Record) bool) {
		for _, r := range b.All() {
			if !yield(r) {
				return
			}
		}
	}
}

// Paginate returns a pager over all records in batches of at most batchSize.
func (b *AddressBook) Paginate(batchSize int) (*Pager, error) {
	if batchSize <= 0 {
		return nil, errors.Wrap(errors.ErrInvalidArgument, "batch size must be positive, have %d", batchSize)
	}
	b.metrics.count(opPaginate)

	return &Pager{book: b, size: batchSize}, nil
}

// Pages paginates with the configured batch size, or the default one when
// the book was not built with New.
func (b *AddressBook) Pages() (*Pager, error) {
	size := b.config.BatchSize
	if size == 0 {
		size = DefaultConfig().BatchSize
	}
	return b.Paginate(size)
}

func (b *AddressBook) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.All())
}

// UnmarshalJSON adds every decoded record with AddRecord. Nothing is added if
// any record is rejected.
func (b *AddressBook) UnmarshalJSON(data []byte) error {
	var raw []jsoniter.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "cannot decode address book")
	}
	records := make([]*record.Record, 0, len(raw))
	for i, msg := range raw {
		r := &record.Record{}
		// Called directly so the validation error chain survives decoding.
		if err := r.UnmarshalJSON(msg); err != nil {
			return errors.Wrap(err, "record #%d", i)
		}
		records = append(records, r)
	}
	for _, r := range records {
		b.AddRecord(r)
	}

	return nil
}
