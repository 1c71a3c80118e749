package constants

// Aturan pagination: limit wajib < 100 (kontrak lama API versi Python).
const (
	DefaultListLimit = 10
	MaxListLimit     = 100 // eksklusif: limit >= 100 ditolak
)

// Denda keterlambatan default per hari (bisa dioverride lewat LATE_FEE_PER_DAY).
const DefaultLateFeePerDay float64 = 10

// Stok default untuk buku hasil import katalog eksternal.
const ImportedBookStock = 5

// Jumlah buku default yang diminta endpoint import.
const DefaultImportCount = 20
