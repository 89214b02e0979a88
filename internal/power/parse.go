package power

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ErrUnexpectedOutput is wrapped when powercfg output does not have the
// expected shape.
var ErrUnexpectedOutput = errors.New("unexpected powercfg output")

// Scheme identifies an OS power scheme.
type Scheme struct {
	GUID string
	Name string
}

// ParseActiveScheme extracts the scheme from `powercfg /getactivescheme`
// output of the form "<Label>: <GUID>  (<Name>)". The label is localized,
// so only the first colon is significant.
func ParseActiveScheme(output string) (Scheme, error) {
	_, rest, ok := strings.Cut(output, ":")
	if !ok {
		return Scheme{}, fmt.Errorf("%w: no label separator in %q", ErrUnexpectedOutput, strings.TrimSpace(output))
	}

	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return Scheme{}, fmt.Errorf("%w: missing scheme GUID in %q", ErrUnexpectedOutput, strings.TrimSpace(output))
	}
	if _, err := uuid.Parse(fields[0]); err != nil {
		return Scheme{}, fmt.Errorf("%w: invalid scheme GUID %q: %v", ErrUnexpectedOutput, fields[0], err)
	}

	scheme := Scheme{GUID: fields[0]}
	if open := strings.Index(rest, "("); open >= 0 {
		if end := strings.LastIndex(rest, ")"); end > open {
			scheme.Name = strings.TrimSpace(rest[open+1 : end])
		}
	}
	return scheme, nil
}

// ParseThrottleQuery extracts the current AC and DC values from
// `powercfg /query <GUID> SUB_PROCESSOR PROCTHROTTLEMAX` output. The
// current AC and DC indexes are the last two hexadecimal values printed.
func ParseThrottleQuery(output string) (ac, dc int, err error) {
	var values []int
	for _, field := range strings.Fields(output) {
		lower := strings.ToLower(field)
		if !strings.HasPrefix(lower, "0x") {
			continue
		}
		v, perr := strconv.ParseInt(lower[2:], 16, 64)
		if perr != nil {
			continue
		}
		values = append(values, int(v))
	}
	if len(values) < 2 {
		return 0, 0, fmt.Errorf("%w: expected AC and DC setting indexes", ErrUnexpectedOutput)
	}
	return values[len(values)-2], values[len(values)-1], nil
}
