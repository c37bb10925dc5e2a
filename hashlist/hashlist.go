// Package hashlist reverse-maps idstring hashes to the names that
// produced them.
//
// Model files carry only hashes, so human-readable output depends on a
// wordlist of known asset names (community hashlists run to millions of
// lines). Building the index is embarrassingly parallel: the line set is
// split into contiguous shards hashed on separate goroutines, then the
// shard maps are merged in order so a later line wins when two lines
// hash to the same value.
//
// Lookup on a built index is read-only and safe for concurrent use;
// Intern is not, and should be confined to a single goroutine.
package hashlist

import (
	"bufio"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/kythyria/dieselkit/idstring"
)

// Index maps idstring values back to names.
type Index struct {
	names map[idstring.Value]string
}

// New returns an empty index.
func New() *Index {
	return &Index{names: make(map[idstring.Value]string)}
}

// FromFile builds an index from a newline-separated wordlist file.
func FromFile(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return FromReader(f)
}

// FromReader builds an index from newline-separated names. A trailing
// carriage return is stripped from each line, so CRLF wordlists hash
// the same as LF ones. Empty lines are interned too: the engine hashes
// the empty name like any other.
func FromReader(r io.Reader) (*Index, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return FromLines(lines), nil
}

// FromLines builds an index from an in-memory line set. Lines are
// hashed in parallel shards; when two lines collide on a hash, the
// later line wins, matching a sequential insert over the same order.
func FromLines(lines []string) *Index {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(lines) {
		workers = len(lines)
	}
	if workers <= 1 {
		ix := New()
		for _, line := range lines {
			ix.names[idstring.HashString(line)] = line
		}
		return ix
	}

	shards := make([]map[idstring.Value]string, workers)
	per := (len(lines) + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * per
		hi := lo + per
		if hi > len(lines) {
			hi = len(lines)
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			m := make(map[idstring.Value]string, hi-lo)
			for _, line := range lines[lo:hi] {
				m[idstring.HashString(line)] = line
			}
			shards[w] = m
		}(w, lo, hi)
	}
	wg.Wait()

	total := 0
	for _, m := range shards {
		total += len(m)
	}
	ix := &Index{names: make(map[idstring.Value]string, total)}
	// Shards are contiguous slices of the input, so merging them in
	// shard order preserves last-line-wins.
	for _, m := range shards {
		for v, name := range m {
			ix.names[v] = name
		}
	}
	return ix
}

// Intern adds name to the index and returns its hash.
func (ix *Index) Intern(name string) idstring.Value {
	v := idstring.HashString(name)
	ix.names[v] = name
	return v
}

// Lookup returns the known name for v, if any.
func (ix *Index) Lookup(v idstring.Value) (string, bool) {
	name, ok := ix.names[v]
	return name, ok
}

// Format returns the known name for v, falling back to the sixteen-digit
// hex form when the hash is not in the index.
func (ix *Index) Format(v idstring.Value) string {
	if name, ok := ix.names[v]; ok {
		return name
	}
	return v.String()
}

// Len reports the number of distinct hashes in the index.
func (ix *Index) Len() int {
	return len(ix.names)
}
