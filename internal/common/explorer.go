package common

import "fmt"

// ExplorerAccountURL builds a block-explorer link for an account on the
// given network. The network id selects the explorer subdomain.
func ExplorerAccountURL(networkID, accountID string) string {
	return fmt.Sprintf("https://explorer.%s.near.org/accounts/%s", networkID, accountID)
}

// ExplorerTransactionURL builds a block-explorer link for a transaction on
// the given network.
func ExplorerTransactionURL(networkID, txID string) string {
	return fmt.Sprintf("https://explorer.%s.near.org/transactions/%s", networkID, txID)
}
