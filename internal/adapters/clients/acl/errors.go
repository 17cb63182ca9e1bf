package acl

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/jsamuelsen/quotes-service/internal/adapters/clients"
	"github.com/jsamuelsen/quotes-service/internal/domain"
)

// translateError turns a client failure into a domain error so nothing above
// the adapter depends on the clients package.
func translateError(service string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	if errors.Is(err, clients.ErrCircuitOpen) {
		return domain.NewUnavailableError(service, "circuit breaker open")
	}

	var statusErr *clients.StatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.Code == http.StatusNotFound:
			return domain.NewNotFoundError("remote quote", "")
		case statusErr.Code == http.StatusTooManyRequests:
			return domain.NewUnavailableError(service, "rate limited")
		case statusErr.Code >= http.StatusInternalServerError:
			return domain.NewUnavailableError(service, fmt.Sprintf("HTTP %d", statusErr.Code))
		default:
			return domain.NewUnavailableError(service, fmt.Sprintf("unexpected HTTP %d", statusErr.Code))
		}
	}

	return domain.NewUnavailableError(service, err.Error())
}
