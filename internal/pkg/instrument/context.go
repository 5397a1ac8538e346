package instrument

import "context"

type correlationIDKey struct{}

// SetCorrelationID stores a request correlation ID in the context.
func SetCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, cid)
}

// GetCorrelationID returns the correlation ID stored in the context, if any.
func GetCorrelationID(ctx context.Context) string {
	cid, ok := ctx.Value(correlationIDKey{}).(string)
	if !ok {
		return ""
	}

	return cid
}
