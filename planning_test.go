package finance

import (
	"errors"
	"math"
	"testing"
)

// close enough for float formula checks.
func approx(got, want float64) bool { return math.Abs(got-want) < 1e-9 }

func TestSavings(t *testing.T) {
	// Two deposits of 100 at 10% per period:
	// first compounds twice, second once.
	plan := Savings(100, 0.10, 2)

	want := 100*1.1*1.1 + 100*1.1
	if !approx(plan.FutureValue, want) {
		t.Errorf("FutureValue = %v, want %v", plan.FutureValue, want)
	}
	if plan.TotalInvested != 200 {
		t.Errorf("TotalInvested = %v, want 200", plan.TotalInvested)
	}
	if !approx(plan.Interest, want-200) {
		t.Errorf("Interest = %v, want %v", plan.Interest, want-200)
	}
}

func TestSavingsZeroPeriod(t *testing.T) {
	if plan := Savings(100, 0.10, 0); plan != (SavingsPlan{}) {
		t.Errorf("Savings with zero period = %+v, want zero plan", plan)
	}
}

func TestLoan(t *testing.T) {
	t.Run("zero rate", func(t *testing.T) {
		plan := Loan(1000, 0, 10)
		if plan.Payment != 100 {
			t.Errorf("Payment = %v, want 100", plan.Payment)
		}
		if plan.TotalPayment != 1000 {
			t.Errorf("TotalPayment = %v, want 1000", plan.TotalPayment)
		}
		if plan.Interest != 0 {
			t.Errorf("Interest = %v, want 0", plan.Interest)
		}
	})

	t.Run("with rate", func(t *testing.T) {
		plan := Loan(1000, 0.01, 12)
		// standard annuity formula
		growth := math.Pow(1.01, 12)
		want := 1000 * 0.01 * growth / (growth - 1)
		if !approx(plan.Payment, want) {
			t.Errorf("Payment = %v, want %v", plan.Payment, want)
		}
		if !approx(plan.TotalPayment, want*12) {
			t.Errorf("TotalPayment = %v, want %v", plan.TotalPayment, want*12)
		}
		if plan.Interest <= 0 {
			t.Errorf("Interest = %v, want positive", plan.Interest)
		}
	})

	t.Run("zero period does not divide by zero", func(t *testing.T) {
		if plan := Loan(1000, 0, 0); plan != (LoanPlan{}) {
			t.Errorf("Loan with zero period = %+v, want zero plan", plan)
		}
	})
}

func TestRetirement(t *testing.T) {
	plan, err := Retirement(30, 60, 5000)
	if err != nil {
		t.Fatalf("Retirement() returned unexpected error: %v", err)
	}
	if plan.YearsToRetirement != 30 {
		t.Errorf("YearsToRetirement = %d, want 30", plan.YearsToRetirement)
	}

	r := 0.008
	wantCapital := 5000 * (1 - math.Pow(1+r, -300)) / r
	if !approx(plan.RequiredCapital, wantCapital) {
		t.Errorf("RequiredCapital = %v, want %v", plan.RequiredCapital, wantCapital)
	}
	wantSavings := wantCapital / ((math.Pow(1+r, 360) - 1) / r)
	if !approx(plan.MonthlySavings, wantSavings) {
		t.Errorf("MonthlySavings = %v, want %v", plan.MonthlySavings, wantSavings)
	}
}

func TestRetirementInvalidAges(t *testing.T) {
	for _, ages := range [][2]int{{60, 60}, {60, 30}} {
		if _, err := Retirement(ages[0], ages[1], 5000); !errors.Is(err, ErrInvalid) {
			t.Errorf("Retirement(%d, %d) error = %v, want ErrInvalid", ages[0], ages[1], err)
		}
	}
}

func TestCompound(t *testing.T) {
	t.Run("zero rate accumulates plainly", func(t *testing.T) {
		plan := Compound(1000, 100, 0, 1)
		if plan.FutureValue != 1000+100*12 {
			t.Errorf("FutureValue = %v, want 2200", plan.FutureValue)
		}
		if plan.Interest != 0 || plan.ReturnPercentage != 0 {
			t.Errorf("Interest/ReturnPercentage = %v/%v, want 0/0", plan.Interest, plan.ReturnPercentage)
		}
	})

	t.Run("with rate", func(t *testing.T) {
		plan := Compound(1000, 100, 0.12, 1)
		monthlyRate := 0.01
		wantInitial := 1000 * math.Pow(1+monthlyRate, 12)
		wantMonthly := 100 * ((math.Pow(1+monthlyRate, 12) - 1) / monthlyRate)
		if !approx(plan.FutureValue, wantInitial+wantMonthly) {
			t.Errorf("FutureValue = %v, want %v", plan.FutureValue, wantInitial+wantMonthly)
		}
		if plan.TotalInvested != 2200 {
			t.Errorf("TotalInvested = %v, want 2200", plan.TotalInvested)
		}
		if plan.ReturnPercentage <= 0 {
			t.Errorf("ReturnPercentage = %v, want positive", plan.ReturnPercentage)
		}
	})

	t.Run("nothing invested avoids division by zero", func(t *testing.T) {
		if plan := Compound(0, 0, 0.12, 1); plan.ReturnPercentage != 0 {
			t.Errorf("ReturnPercentage = %v, want 0", plan.ReturnPercentage)
		}
	})
}

func TestDiscount(t *testing.T) {
	t.Run("percent given", func(t *testing.T) {
		q := Discount(200, 25, 0)
		if q.Amount != 50 || q.Final != 150 || q.Savings != 50 {
			t.Errorf("quote = %+v, want amount 50, final 150", q)
		}
	})

	t.Run("absolute given", func(t *testing.T) {
		q := Discount(200, 0, 50)
		if q.Percent != 25 || q.Final != 150 {
			t.Errorf("quote = %+v, want percent 25, final 150", q)
		}
	})

	t.Run("percent wins over absolute", func(t *testing.T) {
		q := Discount(200, 10, 50)
		if q.Percent != 10 || q.Amount != 20 {
			t.Errorf("quote = %+v, want the percent input to win", q)
		}
	})

	t.Run("neither leaves the original", func(t *testing.T) {
		q := Discount(200, 0, 0)
		if q.Final != 200 || q.Amount != 0 {
			t.Errorf("quote = %+v, want untouched original", q)
		}
	})
}

func TestInflation(t *testing.T) {
	impact := Inflation(1000, 0.10, 2)

	if !approx(impact.FutureValue, 1210) {
		t.Errorf("FutureValue = %v, want 1210", impact.FutureValue)
	}
	if !approx(impact.TotalInflation, 210) {
		t.Errorf("TotalInflation = %v, want 210", impact.TotalInflation)
	}
	wantPresent := 1000 / 1.21
	if !approx(impact.PresentValue, wantPresent) {
		t.Errorf("PresentValue = %v, want %v", impact.PresentValue, wantPresent)
	}
	wantLoss := (1000 - wantPresent) / 1000 * 100
	if !approx(impact.PurchasingPowerLoss, wantLoss) {
		t.Errorf("PurchasingPowerLoss = %v, want %v", impact.PurchasingPowerLoss, wantLoss)
	}
}

func TestInflationZeroValue(t *testing.T) {
	if impact := Inflation(0, 0.10, 2); impact.PurchasingPowerLoss != 0 {
		t.Errorf("PurchasingPowerLoss = %v, want 0 without a current value", impact.PurchasingPowerLoss)
	}
}
