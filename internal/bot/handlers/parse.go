package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/calorelia/calorelia-bot/internal/services"
)

var errBadInput = errors.New("unparsable input")

// parseEntryInput reads a manual entry line: "<protein> <calories> [name...]
// [x<amount>]". The name may span several words; a trailing x-prefixed
// number is the amount multiplier, e.g. "12 155 greek yogurt x2".
func parseEntryInput(text string) (services.EntryInput, error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return services.EntryInput{}, errBadInput
	}

	protein, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return services.EntryInput{}, errBadInput
	}
	calories, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return services.EntryInput{}, errBadInput
	}

	input := services.EntryInput{Protein: protein, Calories: calories}

	rest := fields[2:]
	if len(rest) > 0 {
		last := rest[len(rest)-1]
		if strings.HasPrefix(last, "x") {
			if amount, err := strconv.ParseFloat(last[1:], 64); err == nil {
				input.Amount = amount
				rest = rest[:len(rest)-1]
			}
		}
	}
	input.Name = strings.Join(rest, " ")

	return input, nil
}

// parseGoalsInput reads a goals line: "<protein> <calories>", either value
// "-" to leave it unset.
func parseGoalsInput(text string) (protein, calories *float64, err error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return nil, nil, errBadInput
	}

	parse := func(s string) (*float64, error) {
		if s == "-" {
			return nil, nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, errBadInput
		}
		return &v, nil
	}

	if protein, err = parse(fields[0]); err != nil {
		return nil, nil, err
	}
	if calories, err = parse(fields[1]); err != nil {
		return nil, nil, err
	}
	return protein, calories, nil
}
