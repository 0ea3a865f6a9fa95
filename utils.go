package main

// isDigits reports whether s consists of ASCII decimal digits only.
// An empty string is not a number.
func isDigits(s string) bool {
	if len(s) == 0 {
		return false
	}
	for _, ch := range []byte(s) {
		if ch-'0' > 9 {
			return false
		}
	}

	return true
}

// atoi is the same as strconv.Atoi with two major differences.
// 	- atoi returns bool instead of an error that saves us from unnecessary
// 	allocation in case of error.
//	- atoi accepts digits only, no sign.
// Strings that could overflow int are rejected.
func atoi(s string) (int, bool) {
	sLen := len(s)
	if intSize == 32 && (0 < sLen && sLen < 10) || intSize == 64 && (0 < sLen && sLen < 19) {
		n := 0
		for _, ch := range []byte(s) {
			ch -= '0'
			if ch > 9 {
				return 0, false
			}
			n = n*10 + int(ch)
		}

		return n, true
	}

	return 0, false
}

const intSize = 32 << (^uint(0) >> 63)
