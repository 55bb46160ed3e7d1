package fliplog

import "github.com/shopspring/decimal"

// centEpsilon is the rounding tolerance used when shares cannot divide evenly.
var centEpsilon = decimal.NewFromFloat(0.01)

// USD is a helper for tests to create dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// pUSD is a helper for tests to create optional dollar money from const
func pUSD(v float64) *Money {
	m := USD(v)
	return &m
}

// NO is a helper for tests to create money with no currency set
func NO(v float64) Money { return M(v, "") }
