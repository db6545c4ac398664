package samevent

// Scanner iterates over alignment records in input order.  Thread
// compatible.
type Scanner interface {
	// Scan advances to the next record and reports whether there is one.  It
	// returns false at the end of the input or on an I/O error, which Err
	// then reports.  A record with malformed fields is still returned; its
	// problems are reported by Record.Err and Record.Span.
	Scan() bool

	// Record returns the current record.  It must be called only after Scan
	// returns true, and the result is valid only until the next Scan.
	Record() *Record

	// Err returns the I/O error that stopped the scan, or nil.  An io.EOF
	// is translated to nil.
	Err() error

	// Close releases the scanner's resources and returns Err() or any error
	// encountered while closing.  It must be called exactly once.
	Close() error
}
