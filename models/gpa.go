// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidGPA = errors.New("gpa must be a decimal number")

// ParseGPA validates form input as a finite decimal.
// No range check is applied; NaN and infinities are rejected.
func ParseGPA(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ErrInvalidGPA
	}

	gpa, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrInvalidGPA
	}
	if math.IsNaN(gpa) || math.IsInf(gpa, 0) {
		return 0, ErrInvalidGPA
	}

	return gpa, nil
}
