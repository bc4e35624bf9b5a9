package domain

import "errors"

var (
	// ErrMissingContractAddress is returned when a record has no contract address
	ErrMissingContractAddress = errors.New("missing contract address")

	// ErrMissingTokenID is returned when a record has no token id
	ErrMissingTokenID = errors.New("missing token id")

	// ErrUnsupportedSource is returned for a data source without a decoder
	ErrUnsupportedSource = errors.New("unsupported data source")

	// ErrUnsupportedBlockchain is returned for a blockchain without an adapter
	ErrUnsupportedBlockchain = errors.New("unsupported blockchain")

	// ErrInvalidStatusTransition is returned when an import status change is not allowed
	ErrInvalidStatusTransition = errors.New("invalid import status transition")

	// ErrIndexNotFound is returned when an artwork index row does not exist
	ErrIndexNotFound = errors.New("artwork index not found")

	// ErrTokenNotFound is returned when an upstream source has no such token
	ErrTokenNotFound = errors.New("token not found")

	// ErrImportLeaseExpired is recorded on rows left in flight past the lease timeout
	ErrImportLeaseExpired = errors.New("import lease expired")
)
