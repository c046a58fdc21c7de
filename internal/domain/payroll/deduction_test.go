package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeTotals(t *testing.T) {
	gross := d("5000000")
	fixed := Deductions{
		CategoryKoperasi: d("250000"),
		CategoryTWP:      d("100000.50"),
		CategoryPersit:   d("50000"),
	}
	custom := []CustomDeduction{
		{Label: "Cicilan motor", Amount: d("300000")},
		{Label: "Arisan", Amount: d("75000.25")},
	}

	totals := ComputeTotals(gross, fixed, custom)

	assert.True(t, totals.TotalDeductions.Equal(d("775000.75")),
		"total = %s", totals.TotalDeductions)
	assert.True(t, totals.NetSalary.Equal(d("4224999.25")),
		"net = %s", totals.NetSalary)
}

func TestComputeTotalsSingleFixedAndCustom(t *testing.T) {
	totals := ComputeTotals(d("6000000"), Deductions{
		CategoryKoperasi: d("200000"),
	}, []CustomDeduction{
		{Label: "Titipan", Amount: d("100000")},
	})

	assert.True(t, totals.TotalDeductions.Equal(d("300000")))
	assert.True(t, totals.NetSalary.Equal(d("5700000")))
}

func TestComputeTotalsEmptyDeductions(t *testing.T) {
	gross := d("4200000")

	totals := ComputeTotals(gross, nil, nil)

	assert.True(t, totals.TotalDeductions.IsZero())
	assert.True(t, totals.NetSalary.Equal(gross))
}

func TestComputeTotalsExactDecimalArithmetic(t *testing.T) {
	// 0.1 + 0.2 must be exactly 0.3, not a float approximation
	totals := ComputeTotals(d("1"), Deductions{
		CategoryBTN: d("0.1"),
		CategoryTWP: d("0.2"),
	}, nil)

	assert.True(t, totals.TotalDeductions.Equal(d("0.3")))
	assert.True(t, totals.NetSalary.Equal(d("0.7")))
}

func TestComputeTotalsNegativeNet(t *testing.T) {
	totals := ComputeTotals(d("1000000"), Deductions{
		CategoryKoperasi: d("1500000"),
	}, nil)

	assert.True(t, totals.NetSalary.Equal(d("-500000")))
}

func TestComputeTotalsIgnoresUnknownCategories(t *testing.T) {
	totals := ComputeTotals(d("1000000"), Deductions{
		Category("not_a_category"): d("999999"),
		CategoryGalon:              d("25000"),
	}, nil)

	assert.True(t, totals.TotalDeductions.Equal(d("25000")))
}

func TestComputeTotalsIdempotent(t *testing.T) {
	fixed := Deductions{CategorySosial: d("10000"), CategoryBarak: d("20000")}
	custom := []CustomDeduction{{Label: "Titipan warung", Amount: d("5000")}}

	first := ComputeTotals(d("3000000"), fixed, custom)
	second := ComputeTotals(d("3000000"), fixed, custom)

	assert.True(t, first.TotalDeductions.Equal(second.TotalDeductions))
	assert.True(t, first.NetSalary.Equal(second.NetSalary))
}

func TestCategoriesAndLabelsAgree(t *testing.T) {
	assert.Len(t, Categories, 15)
	assert.Len(t, CategoryLabels, len(Categories))
	for _, cat := range Categories {
		assert.True(t, IsValidCategory(cat), "category %s has no label", cat)
	}
	assert.False(t, IsValidCategory(Category("gaji_13")))
}
