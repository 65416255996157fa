package goldbach

// IsPrime reports whether n is prime. It is defined for every int; values
// below 2 are never prime.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	// i <= n/i is i*i <= n without float truncation or overflow.
	for i := 3; i <= n/i; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}
