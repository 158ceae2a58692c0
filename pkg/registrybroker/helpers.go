package registrybroker

import (
	"errors"
)

// StatusCode reports the HTTP status carried by a RegistryBrokerError
// anywhere in err's chain.
func StatusCode(err error) (int, bool) {
	var brokerErr *RegistryBrokerError
	if !errors.As(err, &brokerErr) || brokerErr == nil {
		return 0, false
	}
	return brokerErr.Status, true
}
