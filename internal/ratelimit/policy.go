// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ratelimit

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var units = map[string]time.Duration{
	"second": time.Second,
	"minute": time.Minute,
	"hour":   time.Hour,
	"day":    24 * time.Hour,
}

// Policy allows Limit hits per Multiplier units.
type Policy struct {
	Limit      int
	Multiplier int
	Unit       string
}

// ParsePolicy parses "N/unit", "N/M unit", "N per unit" or "N per M units"
// where unit is one of second, minute, hour, day (singular or plural).
func ParsePolicy(s string) (Policy, error) {
	raw := strings.ToLower(strings.TrimSpace(s))

	var count, window string
	switch {
	case strings.Contains(raw, "/"):
		count, window, _ = strings.Cut(raw, "/")
	case strings.Contains(raw, " per "):
		count, window, _ = strings.Cut(raw, " per ")
	default:
		return Policy{}, fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}

	limit, err := strconv.Atoi(strings.TrimSpace(count))
	if err != nil || limit < 1 {
		return Policy{}, fmt.Errorf("%w: bad count in %q", ErrInvalidPolicy, s)
	}

	p := Policy{Limit: limit, Multiplier: 1}

	fields := strings.Fields(window)
	switch len(fields) {
	case 1:
		p.Unit = fields[0]
	case 2:
		p.Multiplier, err = strconv.Atoi(fields[0])
		if err != nil || p.Multiplier < 1 {
			return Policy{}, fmt.Errorf("%w: bad multiplier in %q", ErrInvalidPolicy, s)
		}
		p.Unit = fields[1]
	default:
		return Policy{}, fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}

	p.Unit = strings.TrimSuffix(p.Unit, "s")
	if _, ok := units[p.Unit]; !ok {
		return Policy{}, fmt.Errorf("%w: unknown unit in %q", ErrInvalidPolicy, s)
	}

	return p, nil
}

// Period is the length of the sliding window.
func (p Policy) Period() time.Duration {
	return time.Duration(p.Multiplier) * units[p.Unit]
}

// String renders the policy the way it appears in the 429 body,
// e.g. "6 per 1 minute".
func (p Policy) String() string {
	return fmt.Sprintf("%d per %d %s", p.Limit, p.Multiplier, p.Unit)
}
