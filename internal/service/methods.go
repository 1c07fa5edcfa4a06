package service

import (
	"regexp"

	"wallet-verification-gateway/internal/core/domain"
	"wallet-verification-gateway/internal/core/ports"
)

// HandlerSet maps each verification method to its handler. The
// orchestrator dispatches on the stored method tag, so adding a method
// stays additive.
type HandlerSet map[domain.Method]ports.MethodHandler

// NewHandlerSet builds the registry from the given handlers.
func NewHandlerSet(handlers ...ports.MethodHandler) HandlerSet {
	set := make(HandlerSet, len(handlers))
	for _, h := range handlers {
		set[h.Method()] = h
	}
	return set
}

// evmSignature is the 65-byte r||s||v signature used by ERC20/BEP20
// personal_sign, hex-encoded with 0x prefix.
var evmSignature = regexp.MustCompile(`^0x[0-9a-fA-F]{130}$`)

// tronSignature is the equivalent TRON signature, with or without prefix.
var tronSignature = regexp.MustCompile(`^(0x)?[0-9a-fA-F]{130}$`)

// validSignatureFormat checks the shape of a signature for a network
// before any cryptographic work is attempted.
func validSignatureFormat(network domain.Network, signature string) bool {
	switch network {
	case domain.NetworkERC20, domain.NetworkBEP20:
		return evmSignature.MatchString(signature)
	case domain.NetworkTRC20:
		return tronSignature.MatchString(signature)
	default:
		return false
	}
}

// evmAddress is a 20-byte hex address with 0x prefix.
var evmAddress = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// tronAddress is a base58 address starting with T.
var tronAddress = regexp.MustCompile(`^T[1-9A-HJ-NP-Za-km-z]{33}$`)

// ValidWalletAddress checks the address shape for a network.
func ValidWalletAddress(network domain.Network, address string) bool {
	switch network {
	case domain.NetworkERC20, domain.NetworkBEP20:
		return evmAddress.MatchString(address)
	case domain.NetworkTRC20:
		return tronAddress.MatchString(address)
	default:
		return false
	}
}
