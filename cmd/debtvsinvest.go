package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/goalplan/goalplan/internal/calculation"
	"github.com/goalplan/goalplan/internal/domain"
	"github.com/goalplan/goalplan/internal/output"
)

var (
	flagDebtBalance  float64
	flagDebtRate     float64
	flagDebtMinimum  float64
	flagInvestReturn float64
	flagHorizon      int
	flagCapacity     float64
	flagThreshold    float64
)

var debtVsInvestCmd = &cobra.Command{
	Use:   "debtvsinvest",
	Short: "Compare paying a debt down first against investing first",
	RunE:  runDebtVsInvest,
}

func init() {
	debtVsInvestCmd.Flags().Float64Var(&flagDebtBalance, "balance", 0, "Debt balance")
	debtVsInvestCmd.Flags().Float64Var(&flagDebtRate, "rate", 0, "Debt annual interest rate (e.g. 0.18)")
	debtVsInvestCmd.Flags().Float64Var(&flagDebtMinimum, "minimum", 0, "Minimum monthly debt payment")
	debtVsInvestCmd.Flags().Float64Var(&flagInvestReturn, "return", 0.07, "Assumed annual investment return")
	debtVsInvestCmd.Flags().IntVar(&flagHorizon, "horizon", 120, "Horizon in months")
	debtVsInvestCmd.Flags().Float64Var(&flagCapacity, "capacity", 0, "Monthly capacity")
	debtVsInvestCmd.Flags().Float64Var(&flagThreshold, "threshold", 0, "Materiality threshold (0 = default)")
	rootCmd.AddCommand(debtVsInvestCmd)
}

func runDebtVsInvest(_ *cobra.Command, _ []string) error {
	engine := calculation.NewEngine()
	if flagVerbose {
		engine.SetLogger(stderrLogger{})
	}

	rec, err := engine.CompareDebtVsInvest(calculation.DebtInvestInput{
		Debt: domain.DebtPosition{
			Balance:            decimal.NewFromFloat(flagDebtBalance),
			AnnualInterestRate: decimal.NewFromFloat(flagDebtRate),
			MinimumPayment:     decimal.NewFromFloat(flagDebtMinimum),
		},
		Investment: domain.InvestmentAssumption{
			AssumedAnnualReturn: decimal.NewFromFloat(flagInvestReturn),
		},
		HorizonMonths:        flagHorizon,
		MonthlyCapacity:      decimal.NewFromFloat(flagCapacity),
		MaterialityThreshold: decimal.NewFromFloat(flagThreshold),
	})
	if err != nil {
		return fmt.Errorf("debt-vs-invest comparison failed: %w", err)
	}

	if flagJSON {
		return emitJSON(rec)
	}
	return emit(output.ConsoleFormatter{}.FormatDebtVsInvest(rec))
}
