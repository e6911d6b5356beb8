package partsledger

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	// prices are persisted as json numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// Keys of the persisted state.
const (
	PurchasesKey      = "purchases"
	SalesKey          = "sales"
	DeletePasswordKey = "deletePassword"
)

// EncodePurchases returns the persisted form of the purchases ledger, a json array.
func EncodePurchases(ps Purchases) ([]byte, error) { return encodeList(ps) }

// DecodePurchases reads the persisted form of the purchases ledger.
// An empty or null document is an empty ledger.
func DecodePurchases(data []byte) (Purchases, error) { return decodeList[Purchase](PurchasesKey, data) }

// EncodeSales returns the persisted form of the sales ledger, a json array.
func EncodeSales(ss Sales) ([]byte, error) { return encodeList(ss) }

// DecodeSales reads the persisted form of the sales ledger.
// An empty or null document is an empty ledger.
func DecodeSales(data []byte) (Sales, error) { return decodeList[Sale](SalesKey, data) }

func encodeList[T any](list []T) ([]byte, error) {
	if list == nil {
		list = []T{} // never persist null
	}
	return json.Marshal(list)
}

func decodeList[T any](key string, data []byte) ([]T, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}
	var list []T
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("could not decode %q: %w", key, err)
	}
	return list, nil
}
