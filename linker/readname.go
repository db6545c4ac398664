package linker

// BaseReadName returns id with a trailing mate suffix removed: "__1" or "__2"
// if present, otherwise "/1" or "/2".  The suffix is removed only if at least
// one character precedes it.  The result shares storage with id.
func BaseReadName(id string) string {
	if n := len(id); n > 3 && id[n-3] == '_' && id[n-2] == '_' && isMateDigit(id[n-1]) {
		return id[:n-3]
	}
	if n := len(id); n > 2 && id[n-2] == '/' && isMateDigit(id[n-1]) {
		return id[:n-2]
	}
	return id
}

func isMateDigit(c byte) bool {
	return c == '1' || c == '2'
}
