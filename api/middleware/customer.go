package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/pedeaqui/pedeaqui-backend/pkg/logger"
)

const customerIDHeader = "X-Customer-Id"

type customerIDKey struct{}

// CustomerContext extracts the authenticated customer identity set by the
// edge. Authentication itself happens upstream; this layer only trusts the
// header it receives.
func CustomerContext(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get(customerIDHeader)
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}
			customerID, err := uuid.Parse(raw)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), customerIDKey{}, customerID)
			if logg != nil {
				ctx = logg.WithCustomerID(ctx, customerID.String())
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CustomerIDFromContext returns the customer identity, if any.
func CustomerIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	customerID, ok := ctx.Value(customerIDKey{}).(uuid.UUID)
	return customerID, ok
}
