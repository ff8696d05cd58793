// Package common holds small enumerations shared by configuration and
// command line handling.
package common

import (
	"fmt"
	"strings"
)

// Specification of requested output type.
type OutputFmt int

const (
	OutputFmtCss OutputFmt = iota
	OutputFmtJson
	OutputFmtYaml
)

var outputFmtNames = []string{"css", "json", "yaml"}

func (o OutputFmt) String() string {
	if o >= 0 && int(o) < len(outputFmtNames) {
		return outputFmtNames[o]
	}
	return fmt.Sprintf("OutputFmt(%d)", int(o))
}

func (o OutputFmt) Ext() string {
	switch o {
	case OutputFmtCss:
		return ".css"
	case OutputFmtJson:
		return ".json"
	case OutputFmtYaml:
		return ".yaml"
	default:
		// this should never happen
		panic("unsupported format requested")
	}
}

// OutputFmtNames returns list of possible string values of OutputFmt.
func OutputFmtNames() []string {
	return append([]string(nil), outputFmtNames...)
}

// ParseOutputFmt attempts to convert string to OutputFmt.
func ParseOutputFmt(name string) (OutputFmt, error) {
	for i, n := range outputFmtNames {
		if strings.EqualFold(n, name) {
			return OutputFmt(i), nil
		}
	}
	return OutputFmt(0), fmt.Errorf("%s is not a valid OutputFmt, try [%s]", name, strings.Join(outputFmtNames, ", "))
}

func (o OutputFmt) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *OutputFmt) UnmarshalText(text []byte) error {
	v, err := ParseOutputFmt(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}

// Order of duration utilities.
type KeyOrder int

const (
	KeyOrderInsertion KeyOrder = iota
	KeyOrderNatural
)

var keyOrderNames = []string{"insertion", "natural"}

func (k KeyOrder) String() string {
	if k >= 0 && int(k) < len(keyOrderNames) {
		return keyOrderNames[k]
	}
	return fmt.Sprintf("KeyOrder(%d)", int(k))
}

// ParseKeyOrder attempts to convert string to KeyOrder.
func ParseKeyOrder(name string) (KeyOrder, error) {
	for i, n := range keyOrderNames {
		if strings.EqualFold(n, name) {
			return KeyOrder(i), nil
		}
	}
	return KeyOrder(0), fmt.Errorf("%s is not a valid KeyOrder, try [%s]", name, strings.Join(keyOrderNames, ", "))
}

func (k KeyOrder) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *KeyOrder) UnmarshalText(text []byte) error {
	v, err := ParseKeyOrder(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}
