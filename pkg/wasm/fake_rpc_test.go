package wasm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	abci "github.com/cometbft/cometbft/abci/types"
	cmtbytes "github.com/cometbft/cometbft/libs/bytes"
	"github.com/cometbft/cometbft/p2p"
	coretypes "github.com/cometbft/cometbft/rpc/core/types"
	cmttypes "github.com/cometbft/cometbft/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	txtypes "github.com/cosmos/cosmos-sdk/types/tx"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

type fakeRPC struct {
	mu sync.Mutex

	network       string
	contractData  map[string]string
	lastQuery     map[string]json.RawMessage
	queryCode     uint32
	queryLog      string
	accountNumber uint64
	sequence      uint64
	gasUsed       uint64
	checkCode     uint32
	deliverCode   uint32
	events        []abci.Event
	pendingPolls  int
	neverInclude  bool

	paths       []string
	broadcasts  [][]byte
	statusCalls int
	txPolls     int
}

func newFakeRPC() *fakeRPC {
	return &fakeRPC{
		network:       "kaiyo-1",
		contractData:  map[string]string{},
		lastQuery:     map[string]json.RawMessage{},
		accountNumber: 42,
		sequence:      7,
		gasUsed:       100000,
	}
}

func (f *fakeRPC) ABCIQuery(_ context.Context, path string, data cmtbytes.HexBytes) (*coretypes.ResultABCIQuery, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paths = append(f.paths, path)

	var value []byte
	switch path {
	case smartQueryPath:
		if f.queryCode != 0 {
			return &coretypes.ResultABCIQuery{Response: abci.ResponseQuery{Code: f.queryCode, Log: f.queryLog}}, nil
		}
		var request wasmtypes.QuerySmartContractStateRequest
		if err := request.Unmarshal(data); err != nil {
			return nil, err
		}
		f.lastQuery[request.Address] = json.RawMessage(request.QueryData)
		payload, ok := f.contractData[request.Address]
		if !ok {
			return &coretypes.ResultABCIQuery{Response: abci.ResponseQuery{Code: 5, Log: "contract not found"}}, nil
		}
		response := wasmtypes.QuerySmartContractStateResponse{Data: []byte(payload)}
		encoded, err := response.Marshal()
		if err != nil {
			return nil, err
		}
		value = encoded
	case accountInfoPath:
		var request authtypes.QueryAccountInfoRequest
		if err := request.Unmarshal(data); err != nil {
			return nil, err
		}
		response := authtypes.QueryAccountInfoResponse{Info: &authtypes.BaseAccount{
			Address:       request.Address,
			AccountNumber: f.accountNumber,
			Sequence:      f.sequence,
		}}
		encoded, err := response.Marshal()
		if err != nil {
			return nil, err
		}
		value = encoded
	case simulatePath:
		var request txtypes.SimulateRequest
		if err := request.Unmarshal(data); err != nil {
			return nil, err
		}
		response := txtypes.SimulateResponse{GasInfo: &sdk.GasInfo{GasUsed: f.gasUsed, GasWanted: f.gasUsed}}
		encoded, err := response.Marshal()
		if err != nil {
			return nil, err
		}
		value = encoded
	default:
		return nil, fmt.Errorf("unexpected path %s", path)
	}

	return &coretypes.ResultABCIQuery{Response: abci.ResponseQuery{Value: value}}, nil
}

func (f *fakeRPC) BroadcastTxSync(_ context.Context, tx cmttypes.Tx) (*coretypes.ResultBroadcastTx, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.broadcasts = append(f.broadcasts, tx)
	return &coretypes.ResultBroadcastTx{Code: f.checkCode, Log: "check failed", Codespace: "sdk", Hash: tx.Hash()}, nil
}

func (f *fakeRPC) Tx(_ context.Context, hash []byte, _ bool) (*coretypes.ResultTx, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.txPolls++
	if f.neverInclude || f.pendingPolls > 0 {
		f.pendingPolls--
		return nil, errors.New("tx not found")
	}
	return &coretypes.ResultTx{
		Hash:   hash,
		Height: 1234,
		TxResult: abci.ExecTxResult{
			Code:      f.deliverCode,
			Codespace: "wasm",
			Log:       "deliver log",
			GasWanted: 140000,
			GasUsed:   98000,
			Events:    f.events,
		},
	}, nil
}

func (f *fakeRPC) Status(context.Context) (*coretypes.ResultStatus, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.statusCalls++
	return &coretypes.ResultStatus{NodeInfo: p2p.DefaultNodeInfo{Network: f.network}}, nil
}

func (f *fakeRPC) countPath(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, seen := range f.paths {
		if seen == path {
			count++
		}
	}
	return count
}
