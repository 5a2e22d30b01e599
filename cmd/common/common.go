// Package common holds the CLI plumbing shared by all subcommands.
package common

import "github.com/GiGurra/boa/pkg/boa"

// DefaultParamEnricher derives flag names, shorthands and bool defaults
// from the param struct tags, the same way for every subcommand.
func DefaultParamEnricher() boa.ParamEnricher {
	return boa.ParamEnricherCombine(
		boa.ParamEnricherBool,
		boa.ParamEnricherName,
		boa.ParamEnricherShort,
	)
}
