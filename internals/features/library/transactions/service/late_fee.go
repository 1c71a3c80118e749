// internals/features/library/transactions/service/late_fee.go
package service

import (
	"time"
)

const hoursPerDay = 24

// DaysRented menghitung hari sewa utuh antara issue dan return
// (dibulatkan ke bawah; pengembalian di hari yang sama = 0 hari).
func DaysRented(issueDate, returnDate time.Time) int {
	if returnDate.Before(issueDate) {
		return 0
	}
	return int(returnDate.Sub(issueDate).Hours() / hoursPerDay)
}

// LateFee = hari sewa utuh × tarif per hari.
func LateFee(issueDate, returnDate time.Time, ratePerDay float64) float64 {
	return float64(DaysRented(issueDate, returnDate)) * ratePerDay
}
