// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package prompts

import "github.com/charmbracelet/huh"

// TranslateFormatSelect returns a select field for choosing the output format.
func TranslateFormatSelect(value *string, formats []string) *huh.Select[string] {
	options := make([]huh.Option[string], len(formats))
	for i, f := range formats {
		options[i] = huh.NewOption(f, f)
	}
	return huh.NewSelect[string]().
		Title("Output format").
		Options(options...).
		Value(value)
}

// RunTranslateForm prompts for whichever of the schema file and output
// format are still empty. It does nothing when both are set.
func RunTranslateForm(input, format *string, formats []string) error {
	var fields []huh.Field
	if *input == "" {
		fields = append(fields, huh.NewInput().
			Title("Schema file").
			Prompt(": ").
			Inline(true).
			Placeholder("e.g., schemas/order.json").
			Value(input).
			Validate(schemaFileValidator))
	}
	if *format == "" {
		fields = append(fields, TranslateFormatSelect(format, formats))
	}
	if len(fields) == 0 {
		return nil
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(Theme()).Run()
}
