// Package address handles the two textual encodings of PlatON account
// addresses: the native bech32 form (lat1...) and the raw EVM hex form with
// its optional EIP-55 checksum.
package address

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/ethereum/go-ethereum/common"

	"github.com/PlatONnetwork/wallet-core/internal/model"
)

var hexAddressRe = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// IsBech32 reports whether s is a well-formed bech32 address under the
// currency's human-readable prefix.
func IsBech32(currency *model.Currency, s string) bool {
	hrp, data, err := bech32.Decode(s)
	if err != nil {
		return false
	}
	if hrp != currency.AddressHRP {
		return false
	}
	converted, err := bech32.ConvertBits(data, 5, 8, false)
	return err == nil && len(converted) == common.AddressLength
}

// DecodeBech32 converts a bech32 address to its EIP-55 hex form.
func DecodeBech32(currency *model.Currency, s string) (string, error) {
	hrp, data, err := bech32.Decode(s)
	if err != nil {
		return "", fmt.Errorf("decode bech32 address %q: %w", s, err)
	}
	if hrp != currency.AddressHRP {
		return "", fmt.Errorf("address %q has prefix %q, want %q", s, hrp, currency.AddressHRP)
	}
	converted, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", fmt.Errorf("decode bech32 address %q: %w", s, err)
	}
	if len(converted) != common.AddressLength {
		return "", fmt.Errorf("address %q decodes to %d bytes, want %d", s, len(converted), common.AddressLength)
	}
	return common.BytesToAddress(converted).Hex(), nil
}

// EncodeBech32 converts a hex address to the currency's bech32 form.
func EncodeBech32(currency *model.Currency, hexAddr string) (string, error) {
	if !hexAddressRe.MatchString(hexAddr) {
		return "", fmt.Errorf("malformed hex address %q", hexAddr)
	}
	data, err := bech32.ConvertBits(common.HexToAddress(hexAddr).Bytes(), 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("encode bech32 address: %w", err)
	}
	encoded, err := bech32.Encode(currency.AddressHRP, data)
	if err != nil {
		return "", fmt.Errorf("encode bech32 address: %w", err)
	}
	return encoded, nil
}

// ResolveRecipient normalizes a recipient typed in either encoding to the
// hex form used on the wire, reporting whether the bech32 variant was used.
func ResolveRecipient(currency *model.Currency, recipient string) (hex string, usedBech32 bool, err error) {
	if IsBech32(currency, recipient) {
		decoded, err := DecodeBech32(currency, recipient)
		if err != nil {
			return "", false, err
		}
		return decoded, true, nil
	}
	if err := ValidateRecipient(currency, recipient); err != nil {
		return "", false, err
	}
	return common.HexToAddress(recipient).Hex(), false, nil
}

// ValidateRecipient checks that a recipient parses as an address of the
// currency family. Mixed-case hex must carry a valid EIP-55 checksum;
// all-lower and all-upper hex are accepted without one.
func ValidateRecipient(currency *model.Currency, recipient string) error {
	if recipient == "" {
		return model.ErrRecipientRequired
	}
	if IsBech32(currency, recipient) {
		return nil
	}
	if !hexAddressRe.MatchString(recipient) {
		return &model.InvalidAddressError{Address: recipient, CurrencyName: currency.Name}
	}
	body := recipient[2:]
	if body == strings.ToLower(body) || body == strings.ToUpper(body) {
		return nil
	}
	if common.HexToAddress(recipient).Hex() != recipient {
		return &model.InvalidAddressError{Address: recipient, CurrencyName: currency.Name}
	}
	return nil
}
