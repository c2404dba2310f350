package addressbook

import (
	"iter"
	"log/slog"

	"github.com/amirrezaask/contacts/record"
)

// Pager walks the records of a book in batches. The record list is
// snapshotted on the first call to Next; later changes to the book are not
// seen. A drained pager stays drained, call Paginate again for a new one.
type Pager struct {
	book    *AddressBook
	size    int
	started bool
	records []*record.Record
	pos     int
}

// Next returns the next batch, or false when all records were returned.
func (p *Pager) Next() ([]*record.Record, bool) {
	if !p.started {
		p.started = true
		p.records = p.book.All()
		p.book.log().Debug("pagination started", slog.Int("records", len(p.records)), slog.Int("batch_size", p.size))
	}
	if p.pos >= len(p.records) {
		p.records = nil
		return nil, false
	}
	end := min(p.pos+p.size, len(p.records))
	batch := p.records[p.pos:end:end]
	p.pos = end

	return batch, true
}

// Seq yields the remaining batches of p.
func (p *Pager) Seq() iter.Seq[[]*record.Record] {
	return func(yield func([]*record.Record) bool) {
		for {
			batch, ok := p.Next()
			if !ok || !yield(batch) {
				return
			}
		}
	}
}
