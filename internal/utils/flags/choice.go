// Package flags provides pflag values shared by the CLI's persistent flags.
package flags

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

const (
	choicePlaceholderPrefix     = "<"
	choicePlaceholderSuffix     = ">"
	choiceSeparatorLiteral      = "|"
	choiceUsageTemplate         = "`%s` %s"
	choiceInvalidValueTemplate  = "must be one of %s"
	choiceValueTypeNameConstant = "choice"
)

// ChoiceValue is a string flag restricted to a fixed, case-insensitive set of choices.
type ChoiceValue struct {
	current string
	choices []string
}

// AddChoiceFlag registers a choice flag on flagSet. The usage text lists the choices with the
// default capitalized, for example `<debug|info|warn|ERROR>`.
func AddChoiceFlag(flagSet *pflag.FlagSet, name string, defaultChoice string, choices []string, description string) *ChoiceValue {
	value := &ChoiceValue{current: strings.ToLower(strings.TrimSpace(defaultChoice)), choices: normalizeChoices(choices)}
	if flagSet == nil || len(name) == 0 {
		return value
	}
	flagSet.Var(value, name, FormatChoiceUsage(defaultChoice, choices, description))
	return value
}

// String returns the selected choice.
func (value *ChoiceValue) String() string {
	if value == nil {
		return ""
	}
	return value.current
}

// Set accepts one of the configured choices regardless of case.
func (value *ChoiceValue) Set(rawValue string) error {
	normalized := strings.ToLower(strings.TrimSpace(rawValue))
	for _, choice := range value.choices {
		if choice == normalized {
			value.current = normalized
			return nil
		}
	}
	return fmt.Errorf(choiceInvalidValueTemplate, strings.Join(value.choices, choiceSeparatorLiteral))
}

// Type names the value kind in pflag help output.
func (value *ChoiceValue) Type() string {
	return choiceValueTypeNameConstant
}

// FormatChoiceUsage builds a usage string where the default option is capitalized inside a placeholder.
func FormatChoiceUsage(defaultChoice string, choices []string, description string) string {
	normalizedDefault := strings.ToLower(strings.TrimSpace(defaultChoice))
	highlighted := make([]string, 0, len(choices))
	for _, choice := range normalizeChoices(choices) {
		if choice == normalizedDefault {
			choice = strings.ToUpper(choice)
		}
		highlighted = append(highlighted, choice)
	}
	placeholder := choicePlaceholderPrefix + strings.Join(highlighted, choiceSeparatorLiteral) + choicePlaceholderSuffix
	return strings.TrimSpace(fmt.Sprintf(choiceUsageTemplate, placeholder, strings.TrimSpace(description)))
}

func normalizeChoices(choices []string) []string {
	normalized := make([]string, 0, len(choices))
	seen := make(map[string]struct{}, len(choices))
	for _, choice := range choices {
		candidate := strings.ToLower(strings.TrimSpace(choice))
		if len(candidate) == 0 {
			continue
		}
		if _, exists := seen[candidate]; exists {
			continue
		}
		seen[candidate] = struct{}{}
		normalized = append(normalized, candidate)
	}
	return normalized
}
