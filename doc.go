// Package partsledger keeps the books of a small parts business: what was
// bought, what was sold, and what is left on the shelf.
//
// The core functionalities include:
//   - Ledgers: Purchases and Sales are immutable collections. Every mutation
//     returns a new collection, so a reader holding a Ledger snapshot never
//     observes a partial update.
//   - Stock derivation: DeriveStock reduces both ledgers into the stock view
//     (quantity on hand and weighted-average purchase price per part). It is
//     pure and recomputed on every observation.
//   - Summary: the dashboard metrics (items in stock, stock value, sales
//     value and profit) are folds over the stock view and the sales ledger.
//   - Book: owns the ledgers, persists them in a kv.Store under the keys
//     "purchases" and "sales", and reloads them when the store changes.
//   - Delete gate: purchases are deleted only after a password confirmation
//     that is set on first use and verified afterwards.
//
// This package serves as the foundational logic for the `pl` command-line
// tool and its HTTP API.
package partsledger
