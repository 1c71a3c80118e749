// internals/features/library/transactions/service/return_changes.go
package service

import (
	"errors"
	"time"

	dto "perpusku_backend/internals/features/library/transactions/dto"
)

// ErrReturnBeforeIssue: tanggal kembali sebelum tanggal pinjam.
var ErrReturnBeforeIssue = errors.New("return_date tidak boleh lebih awal dari issue_date")

// ReturnChanges menyusun map mutasi untuk patch transaksi. Kalau patch
// memicu pengembalian (status=returned ATAU bawa return_date), return_date
// dan late_fee hasil hitungan ikut ditulis dalam satu map — late_fee
// kiriman caller dioverride. Status hanya ikut kalau dikirim eksplisit.
func ReturnChanges(req *dto.TransactionPatchRequest, issueDate, now time.Time, ratePerDay float64) (map[string]interface{}, error) {
	changes := req.Changes()
	if !req.TriggersReturn() {
		return changes, nil
	}

	returnDate := now
	if req.ReturnDate != nil {
		returnDate = *req.ReturnDate
	}
	if returnDate.Before(issueDate) {
		return nil, ErrReturnBeforeIssue
	}

	changes["return_date"] = returnDate
	changes["late_fee"] = LateFee(issueDate, returnDate, ratePerDay)
	return changes, nil
}
