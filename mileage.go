package fliplog

// DeductionResult aggregates mileage trips into a total distance and a total
// monetary deduction.
type DeductionResult struct {
	TotalMiles     Quantity
	TotalDeduction Money
	Trips          int
	Skipped        int // malformed trips ignored during aggregation
}

// SummarizeTrips aggregates trips. The deduction is computed per trip with
// that trip's own rate and then summed; trips may carry different rates, so
// it is never total miles times one rate.
//
// A trip with negative miles is skipped and counted, it never aborts the
// whole aggregation.
func SummarizeTrips(trips []MileageTrip) DeductionResult {
	var res DeductionResult
	for _, t := range trips {
		if t.Miles.IsNegative() {
			res.Skipped++
			continue
		}
		res.TotalMiles = res.TotalMiles.Add(t.Miles)
		res.TotalDeduction = res.TotalDeduction.Add(t.Deduction())
		res.Trips++
	}
	return res
}

// YearToDate restricts the trips to today's calendar year before aggregating.
func YearToDate(trips []MileageTrip, today Date) DeductionResult {
	year := Yearly.Range(today)
	var inYear []MileageTrip
	for _, t := range trips {
		if year.Contains(t.Date) {
			inYear = append(inYear, t)
		}
	}
	return SummarizeTrips(inYear)
}
