package finance

import (
	"fmt"
	"math"
)

// This file holds the financial calculators: stateless closed-form formulas
// over explicit numeric parameters. They never read the store. Amounts here
// are projections, not ledger records, so plain float64 is used throughout.

// SavingsPlan is the future value of a fixed periodic deposit.
type SavingsPlan struct {
	FutureValue   float64
	TotalInvested float64
	Interest      float64
}

// Savings computes the future value of depositing amount every period at
// the given per-period rate, with each deposit compounding until the end.
func Savings(amount, rate float64, period int) SavingsPlan {
	var futureValue float64
	for i := 1; i <= period; i++ {
		futureValue += amount * math.Pow(1+rate, float64(period-i+1))
	}
	invested := amount * float64(period)
	return SavingsPlan{
		FutureValue:   futureValue,
		TotalInvested: invested,
		Interest:      futureValue - invested,
	}
}

// LoanPlan is the fixed-payment amortization of a loan.
type LoanPlan struct {
	Payment      float64
	TotalPayment float64
	Interest     float64
}

// Loan computes the fixed periodic payment for a loan of the given
// principal over period installments at the given per-period rate. A zero
// rate degenerates to principal/period; a non-positive period yields the
// zero plan.
func Loan(principal, rate float64, period int) LoanPlan {
	if period <= 0 {
		return LoanPlan{}
	}
	if rate == 0 {
		payment := principal / float64(period)
		return LoanPlan{Payment: payment, TotalPayment: principal}
	}
	growth := math.Pow(1+rate, float64(period))
	payment := principal * rate * growth / (growth - 1)
	total := payment * float64(period)
	return LoanPlan{
		Payment:      payment,
		TotalPayment: total,
		Interest:     total - principal,
	}
}

// Assumptions baked into the retirement projection.
const (
	retirementMonthlyReturn = 0.008 // assumed monthly return
	retirementPayoutMonths  = 300   // 25-year payout horizon
)

// RetirementPlan is the capital and saving effort needed for a desired
// retirement income.
type RetirementPlan struct {
	RequiredCapital   float64
	MonthlySavings    float64
	YearsToRetirement int
}

// Retirement computes the capital required to draw the desired monthly
// income for 25 years at an assumed 0.8% monthly return, and the monthly
// saving needed to build it before the retirement age. A retirement age not
// after the current age is rejected with ErrInvalid.
func Retirement(currentAge, retirementAge int, monthlyDesired float64) (RetirementPlan, error) {
	years := retirementAge - currentAge
	months := years * 12
	if months <= 0 {
		return RetirementPlan{}, fmt.Errorf("retirement age %d must be after current age %d: %w", retirementAge, currentAge, ErrInvalid)
	}

	r := retirementMonthlyReturn
	capital := monthlyDesired * (1 - math.Pow(1+r, -retirementPayoutMonths)) / r
	savings := capital / ((math.Pow(1+r, float64(months)) - 1) / r)

	return RetirementPlan{
		RequiredCapital:   capital,
		MonthlySavings:    savings,
		YearsToRetirement: years,
	}, nil
}

// CompoundPlan is the projection of an initial capital with recurring
// monthly contributions.
type CompoundPlan struct {
	FutureValue      float64
	TotalInvested    float64
	Interest         float64
	ReturnPercentage float64
}

// Compound projects initial capital plus a fixed monthly contribution over
// the given number of years at an annual rate compounded monthly. A zero
// rate degenerates to plain accumulation.
func Compound(initial, monthly, annualRate float64, years int) CompoundPlan {
	monthlyRate := annualRate / 12
	months := years * 12

	futureInitial := initial * math.Pow(1+monthlyRate, float64(months))
	var futureMonthly float64
	if monthlyRate > 0 {
		futureMonthly = monthly * ((math.Pow(1+monthlyRate, float64(months)) - 1) / monthlyRate)
	} else {
		futureMonthly = monthly * float64(months)
	}

	total := futureInitial + futureMonthly
	invested := initial + monthly*float64(months)
	plan := CompoundPlan{
		FutureValue:   total,
		TotalInvested: invested,
		Interest:      total - invested,
	}
	if invested > 0 {
		plan.ReturnPercentage = plan.Interest / invested * 100
	}
	return plan
}

// DiscountQuote is a discount stated both as a percentage and an absolute
// amount.
type DiscountQuote struct {
	Original float64
	Percent  float64
	Amount   float64
	Final    float64
	Savings  float64
}

// Discount completes a discount quote from whichever of the two inputs is
// given: a positive percent wins and the absolute amount is derived from
// it; otherwise a positive amount is used and the percent is derived. With
// neither, the quote stays at the original value.
func Discount(original, percent, amount float64) DiscountQuote {
	q := DiscountQuote{Original: original, Final: original}
	switch {
	case percent > 0:
		q.Percent = percent
		q.Amount = original * percent / 100
	case amount > 0:
		q.Amount = amount
		if original > 0 {
			q.Percent = amount / original * 100
		}
	default:
		return q
	}
	q.Final = original - q.Amount
	q.Savings = q.Amount
	return q
}

// InflationImpact is the erosion of purchasing power over time.
type InflationImpact struct {
	FutureValue         float64 // nominal value needed to match today's value
	TotalInflation      float64
	PresentValue        float64 // today's worth of the nominal value after the period
	PurchasingPowerLoss float64 // percentage
}

// Inflation projects the effect of a per-period inflation rate on a value
// over the given number of periods.
func Inflation(current, rate float64, period int) InflationImpact {
	growth := math.Pow(1+rate, float64(period))
	future := current * growth
	impact := InflationImpact{
		FutureValue:    future,
		TotalInflation: future - current,
	}
	if growth != 0 {
		impact.PresentValue = current / growth
	}
	if current > 0 {
		impact.PurchasingPowerLoss = (current - impact.PresentValue) / current * 100
	}
	return impact
}
