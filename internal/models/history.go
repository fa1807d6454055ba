package models

// AmountStats aggregates transaction amounts for one card identifier
// inside a trailing window.
type AmountStats struct {
	Total int64  `json:"total"`
	Min   *int64 `json:"min"`
	Max   *int64 `json:"max"`
}

// TxSample is the slim history projection used for pattern detection.
type TxSample struct {
	Amount  int64  `json:"amount"`
	Status  string `json:"status"`
	Created int64  `json:"created"`
}
