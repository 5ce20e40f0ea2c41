package fulfillment

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strconv"

	"github.com/admin/ecommerce/checkout-api/internal/ports/service"
)

const (
	passwordMin  = 10000000
	passwordSpan = 90000000
)

// NumericGenerator issues the 8-digit access passwords handed to customers,
// uniformly drawn from [10000000, 99999999]. Backed by crypto/rand.
type NumericGenerator struct{}

func NewNumericGenerator() service.ICredentialGenerator {
	return NumericGenerator{}
}

func (NumericGenerator) NewPassword() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(passwordSpan))
	if err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}
	return strconv.FormatInt(n.Int64()+passwordMin, 10), nil
}
