package handlers

import (
	"context"
	"time"

	"app/database"
)

// Version reported by the health endpoint.
const Version = "1.0.0"

// SalesReader is the slice of the sales store the handlers depend on.
type SalesReader interface {
	FetchSalesPeriod(ctx context.Context, start, end time.Time) ([]database.SalesRecord, bool, error)
	ListRecentClients(ctx context.Context) ([]string, error)
}

var (
	store   SalesReader
	company string
)

// Init wires the sales store and the company identity into the handler
// package. Must be called once before the routes are served.
func Init(s SalesReader, empresa string) {
	store = s
	company = empresa
}
