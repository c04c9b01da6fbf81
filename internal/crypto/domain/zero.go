package domain

// Zero overwrites b with zeros. Used to discard derived keys once an operation ends.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
