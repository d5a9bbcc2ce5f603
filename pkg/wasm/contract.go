package wasm

import (
	"context"
	"fmt"
	"strings"

	"github.com/atlo-labs/fuzion-sdk-go/pkg/shared"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/wallet"
)

// Contract binds a contract address to a transport and a signer. The
// per-contract clients embed it.
type Contract struct {
	address string
	name    shared.ContractName
	caller  Caller
	signer  Signer
}

// NewContract creates a new Contract. signer may be nil for query-only use.
func NewContract(address string, name shared.ContractName, caller Caller, signer Signer) (*Contract, error) {
	normalizedAddress := strings.TrimSpace(address)
	if normalizedAddress == "" {
		return nil, fmt.Errorf("contract address is required")
	}
	if caller == nil {
		return nil, fmt.Errorf("contract caller is required")
	}
	return &Contract{
		address: normalizedAddress,
		name:    name,
		caller:  caller,
		signer:  signer,
	}, nil
}

func (c *Contract) Address() string {
	return c.address
}

func (c *Contract) Name() shared.ContractName {
	return c.name
}

func (c *Contract) Caller() Caller {
	return c.caller
}

func (c *Contract) Signer() Signer {
	return c.signer
}

// Query runs a smart query against the bound contract.
func (c *Contract) Query(ctx context.Context, msg any, out any) error {
	return c.caller.QuerySmart(ctx, c.address, msg, out)
}

// Execute runs msg against the bound contract with the bound signer.
func (c *Contract) Execute(ctx context.Context, msg any, options ExecuteOptions) (*ExecuteResult, error) {
	if c.signer == nil {
		return nil, fmt.Errorf("a signer is required to execute against %s", c.address)
	}
	return c.caller.Execute(ctx, c.signer, c.address, msg, options)
}

// Account returns the signer's account at index.
func (c *Contract) Account(index int) (wallet.Account, error) {
	if c.signer == nil {
		return wallet.Account{}, fmt.Errorf("no signer configured")
	}
	return c.signer.Account(index)
}

// QueryError maps err against this contract's error codes.
func (c *Contract) QueryError(err error, message string) *ContractQueryError {
	return NewContractQueryError(err, message, c.name)
}
