package wasm

import (
	"context"

	cmtbytes "github.com/cometbft/cometbft/libs/bytes"
	coretypes "github.com/cometbft/cometbft/rpc/core/types"
	cmttypes "github.com/cometbft/cometbft/types"

	"github.com/atlo-labs/fuzion-sdk-go/pkg/wallet"
)

// RPCClient is the subset of the CometBFT RPC client the SDK needs.
// *rpchttp.HTTP satisfies it.
type RPCClient interface {
	ABCIQuery(ctx context.Context, path string, data cmtbytes.HexBytes) (*coretypes.ResultABCIQuery, error)
	BroadcastTxSync(ctx context.Context, tx cmttypes.Tx) (*coretypes.ResultBroadcastTx, error)
	Tx(ctx context.Context, hash []byte, prove bool) (*coretypes.ResultTx, error)
	Status(ctx context.Context) (*coretypes.ResultStatus, error)
}

// Signer authorises transactions. *wallet.Wallet satisfies it.
type Signer interface {
	Account(index int) (wallet.Account, error)
	Sign(index int, signBytes []byte) ([]byte, error)
}

// Querier runs smart queries against a contract.
type Querier interface {
	QuerySmart(ctx context.Context, contract string, msg any, out any) error
}

// Executor runs execute messages against a contract.
type Executor interface {
	Execute(ctx context.Context, signer Signer, contract string, msg any, options ExecuteOptions) (*ExecuteResult, error)
}

// Caller is what a contract client needs from the transport.
type Caller interface {
	Querier
	Executor
}

const (
	smartQueryPath  = "/cosmwasm.wasm.v1.Query/SmartContractState"
	accountInfoPath = "/cosmos.auth.v1beta1.Query/AccountInfo"
	simulatePath    = "/cosmos.tx.v1beta1.Service/Simulate"
)
