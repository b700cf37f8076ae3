package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"quickbuild_estimate/internal/domain/costing"

	"github.com/shopspring/decimal"
)

// Pricing holds the defaults applied to new estimates.
//
// Supported env vars:
//   - DEFAULT_PROFIT_PERCENTAGE (default: 15)
//   - DEFAULT_CONTINGENCY_PERCENTAGE (default: 10)
//   - PSF_INTERIOR, PSF_EXTERIOR, PSF_UTILITY, PSF_OTHER (default: 20, 15, 25, 20)
//   - DEPOSIT_PERCENTAGE (default: 10)
type Pricing struct {
	Rates             costing.AdjustmentRates
	RateTable         costing.RateTable
	DepositPercentage decimal.Decimal
}

type Retention struct {
	Window time.Duration
}

// Config is the full service configuration read from the environment.
type Config struct {
	Port            int
	Pricing         Pricing
	Retention       Retention
	ProposalsBucket string
	CORSOrigins     []string
}

func Load() (Config, error) {
	pricing, err := LoadPricing()
	if err != nil {
		return Config{}, err
	}
	port, err := strconv.Atoi(getenvDefault("PORT", "8080"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid PORT: %w", err)
	}
	days, err := strconv.Atoi(getenvDefault("RETENTION_DAYS", "90"))
	if err != nil || days <= 0 {
		return Config{}, fmt.Errorf("invalid RETENTION_DAYS %q", os.Getenv("RETENTION_DAYS"))
	}
	return Config{
		Port:            port,
		Pricing:         pricing,
		Retention:       Retention{Window: time.Duration(days) * 24 * time.Hour},
		ProposalsBucket: os.Getenv("PROPOSALS_BUCKET"),
		CORSOrigins:     splitList(getenvDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")),
	}, nil
}

func LoadPricing() (Pricing, error) {
	var p Pricing
	var err error
	if p.Rates.ProfitPercentage, err = decimalEnv("DEFAULT_PROFIT_PERCENTAGE", "15"); err != nil {
		return Pricing{}, err
	}
	if p.Rates.ContingencyPercentage, err = decimalEnv("DEFAULT_CONTINGENCY_PERCENTAGE", "10"); err != nil {
		return Pricing{}, err
	}
	if err := costing.ValidateRates(p.Rates); err != nil {
		return Pricing{}, err
	}

	defaults := map[costing.Category]string{
		costing.CategoryInterior: "20",
		costing.CategoryExterior: "15",
		costing.CategoryUtility:  "25",
		costing.CategoryOther:    "20",
	}
	p.RateTable = costing.RateTable{}
	for _, c := range costing.Categories() {
		rate, err := decimalEnv("PSF_"+strings.ToUpper(string(c)), defaults[c])
		if err != nil {
			return Pricing{}, err
		}
		p.RateTable[c] = rate
	}
	if err := costing.ValidateRateTable(p.RateTable); err != nil {
		return Pricing{}, err
	}

	if p.DepositPercentage, err = decimalEnv("DEPOSIT_PERCENTAGE", "10"); err != nil {
		return Pricing{}, err
	}
	if p.DepositPercentage.IsNegative() || p.DepositPercentage.GreaterThan(decimal.NewFromInt(100)) {
		return Pricing{}, fmt.Errorf("DEPOSIT_PERCENTAGE must be within [0, 100], got %s", p.DepositPercentage)
	}
	return p, nil
}

func decimalEnv(key, def string) (decimal.Decimal, error) {
	raw := getenvDefault(key, def)
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// PaymentGatewayMockEnabled reports whether deposits skip the real provider.
func PaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
