package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var won = accounting.Accounting{
	Symbol:    "원",
	Precision: 0,
	Thousand:  ",",
	Format:    "%v%s",
}

// Won renders an integer won amount for display, e.g. 3000 -> "3,000원".
func Won(amount int) string {
	return won.FormatMoneyDecimal(decimal.NewFromInt(int64(amount)))
}
