// Package derivation enumerates the hierarchical derivation space probed by
// the account scanner.
package derivation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/PlatONnetwork/wallet-core/internal/model"
)

// Mode names one derivation scheme. The empty string is the canonical
// default scheme of the currency.
type Mode string

const (
	// ModeStandard is the BIP44 account-per-index scheme.
	ModeStandard Mode = ""
	// ModeLegacy is the chain-in-path scheme used by early wallet
	// releases. Kept so old accounts remain discoverable.
	ModeLegacy Mode = "platonLegacy"
)

// maxScanIndex bounds the address-index walk for iterable modes.
const maxScanIndex = 255

// ModesForCurrency lists the derivation modes the scanner probes for a
// currency, canonical mode first.
func ModesForCurrency(_ *model.Currency) []Mode {
	return []Mode{ModeStandard, ModeLegacy}
}

// coinType is the SLIP-44 registered coin type for PlatON.
const coinType = 486

// Scheme returns the path template for a mode, with <account> standing for
// the address index.
func Scheme(mode Mode) string {
	switch mode {
	case ModeLegacy:
		return fmt.Sprintf("m/44'/%d'/0'/<account>", coinType)
	default:
		return fmt.Sprintf("m/44'/%d'/<account>'/0/0", coinType)
	}
}

// Path instantiates the mode's scheme at one address index.
func Path(mode Mode, index int) string {
	return strings.Replace(Scheme(mode), "<account>", strconv.Itoa(index), 1)
}

// Iterable reports whether the mode walks the whole index space. A
// non-iterable mode probes index 0 only.
func Iterable(_ Mode) bool {
	return true
}

// StopIndex returns the exclusive upper bound of the index walk.
func StopIndex(mode Mode) int {
	if !Iterable(mode) {
		return 1
	}
	return maxScanIndex
}

// SupportsIndex reports whether the mode can derive the given index.
func SupportsIndex(_ Mode, index int) bool {
	return index >= 0
}

// MandatoryEmptyAccountSkip returns how many consecutive empty accounts a
// mode tolerates before the scanner stops walking it. The standard mode
// tolerates one so that the creatable-account affordance at a fresh index
// does not end the scan by itself.
func MandatoryEmptyAccountSkip(mode Mode) int {
	switch mode {
	case ModeLegacy:
		return 10
	default:
		return 1
	}
}
