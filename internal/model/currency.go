// Package model holds the wallet-core domain types exchanged between the
// sync engine, the account scanner, the transaction services and their
// collaborators. All snapshot types (Account, SubAccount, Operation) are
// treated as immutable values once returned by a service.
package model

// Unit describes one denomination of a currency.
type Unit struct {
	Name      string
	Code      string
	Magnitude int
}

// Currency describes one supported chain.
type Currency struct {
	ID         string
	Name       string
	Ticker     string
	ChainID    uint64
	AddressHRP string
	Units      []Unit
}

// MainUnit returns the currency's principal unit.
func (c *Currency) MainUnit() Unit {
	return c.Units[0]
}

// TokenCurrency describes one fungible token contract on a parent chain.
type TokenCurrency struct {
	ID              string
	Name            string
	Ticker          string
	CurrencyID      string
	ContractAddress string
	Magnitude       int
	Delisted        bool
}

// Platon returns the PlatON mainnet currency definition.
func Platon() *Currency {
	return &Currency{
		ID:         "platon",
		Name:       "PlatON",
		Ticker:     "LAT",
		ChainID:    210425,
		AddressHRP: "lat",
		Units: []Unit{
			{Name: "LAT", Code: "LAT", Magnitude: 18},
			{Name: "GVON", Code: "GVON", Magnitude: 9},
			{Name: "VON", Code: "VON", Magnitude: 0},
		},
	}
}
