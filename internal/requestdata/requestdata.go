package requestdata

import (
	"context"
)

var requestDataKey = struct{}{}

// RequestData is the per-request authentication context. It carries the
// verified identity and role resolved from the access token, so handlers and
// services never read ambient session state.
type RequestData struct {
	RequestID   string
	TokenString string
	EmployeeID  uint
	IsAdmin     bool
}

func WithRequestData(ctx context.Context, rd *RequestData) context.Context {
	return context.WithValue(ctx, requestDataKey, rd)
}

func GetRequestData(ctx context.Context) *RequestData {
	if rd, ok := ctx.Value(requestDataKey).(*RequestData); ok {
		return rd
	}
	return nil
}
