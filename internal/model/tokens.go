package model

import "strings"

// TokenTable is an in-memory read-only token registry.
type TokenTable struct {
	byContract map[string]*TokenCurrency
	tokens     []*TokenCurrency
}

// NewTokenTable indexes the given token definitions by contract address.
func NewTokenTable(tokens []*TokenCurrency) *TokenTable {
	byContract := make(map[string]*TokenCurrency, len(tokens))
	for _, t := range tokens {
		byContract[strings.ToLower(t.ContractAddress)] = t
	}
	return &TokenTable{byContract: byContract, tokens: tokens}
}

// TokenByContract looks a token up by its contract address,
// case-insensitively.
func (t *TokenTable) TokenByContract(contract string) (*TokenCurrency, bool) {
	token, ok := t.byContract[strings.ToLower(contract)]
	return token, ok
}

// ListTokens returns the tokens registered for a currency. Delisted tokens
// are included only when withDelisted is set; the sync hash counts them so
// that a de-listing forces a full resync.
func (t *TokenTable) ListTokens(currencyID string, withDelisted bool) []*TokenCurrency {
	out := make([]*TokenCurrency, 0, len(t.tokens))
	for _, token := range t.tokens {
		if token.CurrencyID != currencyID {
			continue
		}
		if token.Delisted && !withDelisted {
			continue
		}
		out = append(out, token)
	}
	return out
}

// PlatonTokens returns the built-in ARC20 token definitions for PlatON.
func PlatonTokens() []*TokenCurrency {
	return []*TokenCurrency{
		{
			ID:              "platon/arc20/usdt",
			Name:            "Tether USD",
			Ticker:          "USDT",
			CurrencyID:      "platon",
			ContractAddress: "0xdac17f958d2ee523a2206206994597c13d831ec7",
			Magnitude:       6,
		},
		{
			ID:              "platon/arc20/usdc",
			Name:            "USD Coin",
			Ticker:          "USDC",
			CurrencyID:      "platon",
			ContractAddress: "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48",
			Magnitude:       6,
		},
		{
			ID:              "platon/arc20/kswap",
			Name:            "KSwap Token",
			Ticker:          "KSW",
			CurrencyID:      "platon",
			ContractAddress: "0x3c2e932ca50b385f2fa08a1dcd962e14ffc49eb9",
			Magnitude:       18,
		},
	}
}
