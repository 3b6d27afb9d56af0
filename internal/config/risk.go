package config

import (
	"errors"
	"fmt"
	"strconv"
)

// Risk bounds. Scores produced by the risk model are 1-5; the two
// sentinels either side select "confirm everything" and "confirm nothing".
const (
	MinRisk Risk = 0
	MaxRisk Risk = 6
)

// ErrInvalidRisk is returned for thresholds that are not digit strings
// in [MinRisk, MaxRisk].
var ErrInvalidRisk = errors.New("risk threshold must be a whole number between 0 and 6")

// Risk is the threshold a command's risk score must stay below to run
// without confirmation.
type Risk int

// ParseRisk accepts only ASCII digits, so signs, spaces and the empty string
// are rejected before the range check.
func ParseRisk(raw string) (Risk, error) {
	if raw == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidRisk)
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidRisk, raw)
		}
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidRisk, err)
	}
	if n < int(MinRisk) || n > int(MaxRisk) {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidRisk, n)
	}
	return Risk(n), nil
}

// RequiresConfirmation reports whether a command with the given score must
// be confirmed by the user.
func (r Risk) RequiresConfirmation(score int) bool {
	return score >= int(r)
}

func (r Risk) String() string {
	return strconv.Itoa(int(r))
}

// Risk returns the stored threshold. ok is false when the key is absent.
func (c *Config) Risk() (risk Risk, ok bool, err error) {
	raw, ok := c.Get(KeyCommandRisk)
	if !ok {
		return 0, false, nil
	}
	risk, err = ParseRisk(raw)
	if err != nil {
		return 0, true, fmt.Errorf("%s: %w", KeyCommandRisk, err)
	}
	return risk, true, nil
}
