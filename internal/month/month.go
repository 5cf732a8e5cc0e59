// Package month provides an absolute month index for calendar arithmetic.
// Bills are keyed by (month, year); shifting a purchase by N months must
// survive year boundaries, so all month math goes through Index instead of
// ad-hoc (year*12 + month) expressions.
package month

// Index is the number of months since year 0, January.
type Index int

// IndexOf converts a calendar (year, month) pair to an Index. Month is 1-based.
func IndexOf(year, m int) Index {
	return Index(year*12 + (m - 1))
}

// Date converts the index back to a calendar (year, month) pair. Month is 1-based.
func (i Index) Date() (year, m int) {
	return int(i) / 12, int(i)%12 + 1
}

// Add returns the index shifted by n months. n may be negative.
func (i Index) Add(n int) Index {
	return i + Index(n)
}

// Sub returns the signed distance in months from other to i.
func (i Index) Sub(other Index) int {
	return int(i - other)
}
