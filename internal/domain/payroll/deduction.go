package payroll

import "github.com/shopspring/decimal"

// Category is a named deduction category. The closed set below replaces the
// fixed per-category columns of the legacy schema; amounts are stored as a
// category -> amount mapping so adding a category is a code change, not a
// schema change.
type Category string

const (
	CategoryMdrBwsBRI   Category = "mdr_bws_bri"
	CategoryBTN         Category = "btn"
	CategoryTWP         Category = "twp"
	CategoryPersit      Category = "persit"
	CategoryIkkaPersit  Category = "ikka_persit"
	CategoryKoperasi    Category = "koperasi"
	CategoryBarak       Category = "barak"
	CategoryKowad       Category = "kowad"
	CategoryTitipan     Category = "titipan"
	CategoryTenes       Category = "tenes"
	CategoryRemaja      Category = "remaja"
	CategoryGalon       Category = "galon"
	CategorySosial      Category = "sosial"
	CategoryPNS         Category = "pns"
	CategoryBelWajibKop Category = "bel_wajib_kop"
)

// Categories is the definition order of the fixed deduction set. Summation and
// serialization iterate this slice, never the map, so output order is stable.
var Categories = []Category{
	CategoryMdrBwsBRI,
	CategoryBTN,
	CategoryTWP,
	CategoryPersit,
	CategoryIkkaPersit,
	CategoryKoperasi,
	CategoryBarak,
	CategoryKowad,
	CategoryTitipan,
	CategoryTenes,
	CategoryRemaja,
	CategoryGalon,
	CategorySosial,
	CategoryPNS,
	CategoryBelWajibKop,
}

// CategoryLabels holds the human-readable form used by the front end.
var CategoryLabels = map[Category]string{
	CategoryMdrBwsBRI:   "MDR/BWS BRI",
	CategoryBTN:         "BTN",
	CategoryTWP:         "TWP",
	CategoryPersit:      "Persit",
	CategoryIkkaPersit:  "IKKA Persit",
	CategoryKoperasi:    "Koperasi",
	CategoryBarak:       "Barak",
	CategoryKowad:       "Kowad",
	CategoryTitipan:     "Titipan",
	CategoryTenes:       "Tenes",
	CategoryRemaja:      "Remaja",
	CategoryGalon:       "Galon",
	CategorySosial:      "Sosial",
	CategoryPNS:         "PNS",
	CategoryBelWajibKop: "Bel Wajib Kop",
}

func IsValidCategory(c Category) bool {
	_, ok := CategoryLabels[c]
	return ok
}

// Deductions maps a fixed category to its amount for one record. A missing
// key means the category does not apply and contributes zero.
type Deductions map[Category]decimal.Decimal

// CustomDeduction is one of up to MaxCustomDeductions free-form slots for
// ad-hoc categories outside the fixed set.
type CustomDeduction struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// MaxCustomDeductions caps the free-form slots per record.
const MaxCustomDeductions = 5

// MaxCustomLabelLen caps a custom slot label.
const MaxCustomLabelLen = 255

type Totals struct {
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal
}

// ComputeTotals derives the total deductions and net salary for one record.
// Pure function; exact decimal arithmetic, absent categories count as zero.
// NetSalary may be negative when deductions exceed the gross amount; whether
// that is accepted is the caller's validation concern.
func ComputeTotals(gross decimal.Decimal, fixed Deductions, custom []CustomDeduction) Totals {
	total := decimal.Zero
	for _, cat := range Categories {
		if amount, ok := fixed[cat]; ok {
			total = total.Add(amount)
		}
	}
	for _, slot := range custom {
		total = total.Add(slot.Amount)
	}

	return Totals{
		TotalDeductions: total,
		NetSalary:       gross.Sub(total),
	}
}
