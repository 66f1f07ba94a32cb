// Package kvlog implements a minimal persistent key/value store backed
// by a single append-only log file.
//
// Writes (assignments and deletions) are appended to the file as text
// records; reads scan the log from the beginning and the last record
// for a key wins. There is no in-memory index and no compaction: the
// store trades read throughput and disk space for a trivially
// crash-tolerant write path (one write call per record, in append mode).
//
// # On-Disk Format
//
// UTF-8 text, one record per line:
//
//	<key>,<value>\n
//
// The key may only contain digits, ASCII letters, space, ':', '/' and
// '.'. The comma is the separator and is therefore forbidden in keys;
// values may contain commas because decoding splits on the first comma
// only. The value text is produced by a [Codec]; a deletion is recorded
// with the codec's reserved tombstone literal (the default JSON codec
// uses "null"):
//
//	foo,"hello"
//	bar,42
//	foo,null
//	baz,{"n":1}
//
// Folding that log yields bar=42 and baz={"n":1}; foo is absent.
//
// # Basic Usage
//
//	store, err := kvlog.Open("data.db", kvlog.JSONCodec[string]{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer store.Close()
//
//	err = store.Set("name", "John Doe")
//	v, ok, err := store.Get("name")
//	m, err := store.LoadMap()
//
// # Thread Safety
//
// A Store is safe for concurrent use. All operations on a store and its
// clones are serialized by one mutex guarding the shared file cursor,
// held for the whole duration of an append or a scan.
package kvlog
