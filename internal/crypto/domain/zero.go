package domain

// Zero overwrites b with zeros so that key material does not linger in memory.
func Zero(b []byte) {
	clear(b)
}
