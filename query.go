package partsledger

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Document returns the ledger as a generic json document with four
// properties: "purchases", "sales", "stock" and "summary".
func (l Ledger) Document(currency string, threshold int64) (map[string]any, error) {
	doc := struct {
		Purchases Purchases   `json:"purchases"`
		Sales     Sales       `json:"sales"`
		Stock     []StockItem `json:"stock"`
		Summary   Summary     `json:"summary"`
	}{
		Purchases: l.Purchases,
		Sales:     l.Sales,
		Stock:     l.Stock(),
		Summary:   l.Summary(currency, threshold),
	}
	if doc.Purchases == nil {
		doc.Purchases = Purchases{}
	}
	if doc.Sales == nil {
		doc.Sales = Sales{}
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	var jobj map[string]any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, err
	}
	return jobj, nil
}

// Query evaluates a JSONPath expression over the ledger Document, e.g.
// `$.stock[?(@.quantity < 5)].itemName`.
func (l Ledger) Query(path, currency string, threshold int64) (any, error) {
	jobj, err := l.Document(currency, threshold)
	if err != nil {
		return nil, fmt.Errorf("could not build the ledger document: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	return jval, nil
}
