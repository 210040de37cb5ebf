package rules

import (
	"os"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/piechiang/usa-tax-calculator/internal/domain"
	"github.com/piechiang/usa-tax-calculator/internal/money"
)

// fileBracket is the YAML-facing bracket form: whole-dollar amounts, with a
// zero or omitted max meaning open-ended.
type fileBracket struct {
	Min  decimal.Decimal `yaml:"min"`
	Max  decimal.Decimal `yaml:"max"`
	Rate decimal.Decimal `yaml:"rate"`
}

// fileRules is the YAML override document. Only supplied sections replace
// the built-in defaults for the year; everything else is kept.
type fileRules struct {
	Year                   int                        `yaml:"year"`
	StandardDeduction      map[string]decimal.Decimal `yaml:"standard_deduction"`
	AdditionalStdDeduction map[string]decimal.Decimal `yaml:"additional_std_deduction"`
	SALTCap                *decimal.Decimal           `yaml:"salt_cap"`
	OrdinaryBrackets       map[string][]fileBracket   `yaml:"ordinary_brackets"`
	CapitalGainsBrackets   map[string][]fileBracket   `yaml:"capital_gains_brackets"`
}

// LoadFile reads a YAML rules-override file, merges it over the built-in
// defaults for its tax year, and validates the result.
func LoadFile(path string) (*FederalRules, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read rules file %s", path)
	}

	var file fileRules
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "parse rules YAML")
	}
	if file.Year == 0 {
		file.Year = 2025
	}

	base, err := ForYear(file.Year)
	if err != nil {
		return nil, err
	}

	if err := mergeCents(base.StandardDeduction, file.StandardDeduction); err != nil {
		return nil, errors.Wrap(err, "standard_deduction")
	}
	if err := mergeCents(base.AdditionalStdDeduction, file.AdditionalStdDeduction); err != nil {
		return nil, errors.Wrap(err, "additional_std_deduction")
	}
	if file.SALTCap != nil {
		base.SALTCap = money.FromDollars(*file.SALTCap)
	}
	if err := mergeBrackets(base.OrdinaryBrackets, file.OrdinaryBrackets); err != nil {
		return nil, errors.Wrap(err, "ordinary_brackets")
	}
	if err := mergeBrackets(base.CapitalGainsBrackets, file.CapitalGainsBrackets); err != nil {
		return nil, errors.Wrap(err, "capital_gains_brackets")
	}

	if err := base.Validate(); err != nil {
		return nil, errors.Wrap(err, "merged rules invalid")
	}
	return base, nil
}

func mergeCents(dst map[domain.FilingStatus]money.Cents, src map[string]decimal.Decimal) error {
	for key, value := range src {
		status, err := domain.ParseFilingStatus(key)
		if err != nil {
			return err
		}
		dst[status] = money.FromDollars(value)
	}
	return nil
}

func mergeBrackets(dst map[domain.FilingStatus][]Bracket, src map[string][]fileBracket) error {
	for key, fileBrackets := range src {
		status, err := domain.ParseFilingStatus(key)
		if err != nil {
			return err
		}
		brackets := make([]Bracket, len(fileBrackets))
		for i, fb := range fileBrackets {
			max := money.NoCeiling
			if !fb.Max.IsZero() {
				max = money.FromDollars(fb.Max)
			}
			brackets[i] = Bracket{Min: money.FromDollars(fb.Min), Max: max, Rate: fb.Rate}
		}
		dst[status] = brackets
	}
	return nil
}
