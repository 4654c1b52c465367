// path: reports/validate.go
package reports

// ValidIDNumber reports whether s is exactly 13 ASCII digits. This is a pure
// format check: the real scheme's check digit and demographic encoding are
// deliberately not verified (placeholder rule carried over unchanged).
func ValidIDNumber(s string) bool {
	if len(s) != 13 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
