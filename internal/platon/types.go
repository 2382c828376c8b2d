// Package platon provides the concrete PlatON collaborators of the wallet
// core: a JSON-RPC node client and a scan-indexer history client.
package platon

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Metrics observes outbound requests of both clients.
type Metrics interface {
	ObserveRequest(err error, method string, started time.Time)
}

// rawTransaction is one history entry as served by the scan indexer.
// Native amounts are decimal LAT strings; token amounts are decimal base
// unit strings.
type rawTransaction struct {
	TxHash          string             `json:"txHash"`
	From            string             `json:"from"`
	To              string             `json:"to"`
	Value           string             `json:"value"`
	ActualTxCost    string             `json:"actualTxCost"`
	Nonce           uint64             `json:"nonce"`
	TxReceiptStatus int                `json:"txReceiptStatus"`
	BlockNumber     *uint64            `json:"blockNumber"`
	BlockHash       string             `json:"blockHash"`
	Timestamp       int64              `json:"timestamp"`
	TokenTransfers  []rawTokenTransfer `json:"tokenTransferList"`
}

type rawTokenTransfer struct {
	Contract string `json:"contract"`
	From     string `json:"from"`
	To       string `json:"to"`
	Value    string `json:"value"`
}

type transactionListRequest struct {
	PageNo    int    `json:"pageNo"`
	PageSize  int    `json:"pageSize"`
	Address   string `json:"address"`
	BlockHash string `json:"blockHash,omitempty"`
}

type transactionListResponse struct {
	Code       int              `json:"code"`
	Message    string           `json:"errMsg"`
	Data       []rawTransaction `json:"data"`
	TotalCount int              `json:"totalCount"`
}
