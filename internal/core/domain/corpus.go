package domain

import (
	"fmt"
	"strings"
)

// Corpus is the immutable, ordered set of definition records.
// Records keep the order they were loaded in; ranking ties rely on it.
// A Corpus is never mutated after NewCorpus returns, so it is safe for
// concurrent readers.
type Corpus struct {
	records []DefinitionRecord
	index   map[string]int
}

// NewCorpus builds a corpus from records in load order.
// Keys are lowercased and indexed by their normalised form. Two keys that
// normalise to the same lookup key are rejected. An empty record set is valid.
func NewCorpus(records []DefinitionRecord) (*Corpus, error) {
	c := &Corpus{
		records: make([]DefinitionRecord, 0, len(records)),
		index:   make(map[string]int, len(records)),
	}

	for i := range records {
		rec := records[i]
		rec.Key = strings.ToLower(strings.TrimSpace(rec.Key))
		rec.Summary = strings.TrimSpace(rec.Summary)
		if err := rec.Validate(); err != nil {
			return nil, err
		}

		lookup := NormalizeKey(rec.Key)
		if prev, ok := c.index[lookup]; ok {
			return nil, fmt.Errorf("%w: %q duplicates %q", ErrCorpusInvalid, rec.Key, c.records[prev].Key)
		}

		c.index[lookup] = len(c.records)
		c.records = append(c.records, rec)
	}

	return c, nil
}

// Lookup resolves a term to its record. The term is normalised first, so
// "Artigo 23", "art. 23" and "ART. 23" resolve to the same entry.
func (c *Corpus) Lookup(term string) (DefinitionRecord, bool) {
	if c == nil {
		return DefinitionRecord{}, false
	}
	i, ok := c.index[NormalizeKey(term)]
	if !ok {
		return DefinitionRecord{}, false
	}
	return c.records[i], true
}

// Records returns a copy of all records in load order.
func (c *Corpus) Records() []DefinitionRecord {
	if c == nil {
		return nil
	}
	out := make([]DefinitionRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Keys returns the authored keys in load order.
func (c *Corpus) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, len(c.records))
	for i := range c.records {
		keys[i] = c.records[i].Key
	}
	return keys
}

// Len returns the number of records.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// At returns the record at position i in load order.
func (c *Corpus) At(i int) *DefinitionRecord {
	return &c.records[i]
}
