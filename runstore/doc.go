// Package runstore keeps a small SQLite-backed history of solver runs.
//
// Overview:
//
//   - One table, runs: level digest, method, outcome, solution sizes,
//     search counters, and wall-clock duration per run.
//   - Levels are identified by the SHA-256 of their normalized XSB
//     rendering, so the same level recorded from different source files
//     or formats collapses to one digest.
//   - The driver is modernc.org/sqlite (pure Go, no cgo); the database is
//     a single file created on first open.
//
// When to use:
//
//   - From the CLI, to answer "have I solved this level before, and how
//     well" without keeping log files around.
//   - Not a general persistence layer: writes are synchronous and the
//     schema is deliberately flat.
//
// API reference:
//
//	func Open(path string) (*Store, error)
//	func LevelSHA(b *board.Board) string
//	func (s *Store) Record(ctx context.Context, run Run) error
//	func (s *Store) Recent(ctx context.Context, n int) ([]Run, error)
//	func (s *Store) BestFor(ctx context.Context, levelSHA, method string) (*Run, error)
//	func (s *Store) Close() error
package runstore
