// Package tasks implements the long-running operations behind the CLI and TUI.
//
// Key Implementations:
//   - [Loader] : concurrent fan-out fetch of the four backend sources
//     (profile, words, music history, vocabulary lists) with per-source
//     error isolation — the join never fails as a whole
//   - [BulkExport] : worker-pool export of vocabulary lists to disk with
//     rate limiting and a per-list result manifest
//
// Operations report progress through a [ProgressUpdate] channel; sends are
// non-blocking so a slow or absent consumer never stalls the work.
package tasks
