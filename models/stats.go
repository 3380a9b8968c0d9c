package models

type AdminStats struct {
	TotalBuyers   int64   `json:"totalBuyers"`
	TotalWorkers  int64   `json:"totalWorkers"`
	TotalCoin     float64 `json:"totalCoin"`
	TotalPayments float64 `json:"totalPayments"`
}

type BuyerStats struct {
	TotalTask     int64   `json:"totalTask"`
	PendingTask   int64   `json:"pendingTask"`
	TotalPayments float64 `json:"totalPayments"`
}

type WorkerStats struct {
	TotalSubmission   int64   `json:"totalSubmission"`
	PendingSubmission int64   `json:"pendingSubmission"`
	TotalEarning      float64 `json:"totalEarning"`
}
