package governance

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	govv1 "github.com/cosmos/cosmos-sdk/x/gov/types/v1"

	"github.com/atlo-labs/fuzion-sdk-go/pkg/shared"
	"github.com/atlo-labs/fuzion-sdk-go/pkg/wasm"
)

// Broadcaster signs and broadcasts messages. *wasm.Client satisfies it.
type Broadcaster interface {
	SignAndBroadcast(ctx context.Context, signer wasm.Signer, msgs []sdk.Msg, options wasm.ExecuteOptions) (*wasm.ExecuteResult, error)
}

// Proposal carries the fields every proposal needs.
type Proposal struct {
	Title          string
	Summary        string
	Metadata       string
	InitialDeposit sdk.Coins
	Expedited      bool
}

// Instantiate proposes instantiating CodeID. Msg is JSON-encoded unless it
// is already a []byte or json.RawMessage.
type Instantiate struct {
	Proposal
	Admin  string
	CodeID uint64
	Label  string
	Msg    any
	Funds  sdk.Coins
}

// AccessConfigUpdate sets who may instantiate CodeID.
type AccessConfigUpdate struct {
	CodeID     uint64
	Permission wasmtypes.AccessType
	Addresses  []string
}

type UpdateInstantiateConfig struct {
	Proposal
	Updates []AccessConfigUpdate
}

type Proposer struct {
	broadcaster Broadcaster
	signer      wasm.Signer
}

func NewProposer(broadcaster Broadcaster, signer wasm.Signer) (*Proposer, error) {
	if broadcaster == nil {
		return nil, fmt.Errorf("broadcaster is required")
	}
	if signer == nil {
		return nil, fmt.Errorf("signer is required")
	}
	return &Proposer{broadcaster: broadcaster, signer: signer}, nil
}

// InstantiateProposal submits an Instantiate proposal from the signer's
// account at options.AccountIndex.
func (p *Proposer) InstantiateProposal(ctx context.Context, proposal Instantiate, options wasm.ExecuteOptions) (*wasm.ExecuteResult, error) {
	proposer, err := p.signer.Account(options.AccountIndex)
	if err != nil {
		return nil, err
	}
	msg, err := BuildInstantiateProposal(proposer.Address, proposal)
	if err != nil {
		return nil, err
	}
	return p.submit(ctx, msg, options)
}

// UpdateInstantiateConfigProposal submits an UpdateInstantiateConfig
// proposal from the signer's account at options.AccountIndex.
func (p *Proposer) UpdateInstantiateConfigProposal(ctx context.Context, proposal UpdateInstantiateConfig, options wasm.ExecuteOptions) (*wasm.ExecuteResult, error) {
	proposer, err := p.signer.Account(options.AccountIndex)
	if err != nil {
		return nil, err
	}
	msg, err := BuildUpdateInstantiateConfigProposal(proposer.Address, proposal)
	if err != nil {
		return nil, err
	}
	return p.submit(ctx, msg, options)
}

func (p *Proposer) submit(ctx context.Context, msg *govv1.MsgSubmitProposal, options wasm.ExecuteOptions) (*wasm.ExecuteResult, error) {
	logger := shared.Logger()
	logger.Debug().
		Str("proposer", msg.Proposer).
		Str("title", msg.Title).
		Int("messages", len(msg.Messages)).
		Msg("submitting proposal")
	return p.broadcaster.SignAndBroadcast(ctx, p.signer, []sdk.Msg{msg}, options)
}

// BuildInstantiateProposal wraps a MsgInstantiateContract sent by the gov
// module in a MsgSubmitProposal from proposer.
func BuildInstantiateProposal(proposer string, proposal Instantiate) (*govv1.MsgSubmitProposal, error) {
	if proposal.CodeID == 0 {
		return nil, fmt.Errorf("code id is required")
	}
	if strings.TrimSpace(proposal.Label) == "" {
		return nil, fmt.Errorf("label is required")
	}
	authority, err := GovAuthority(proposer)
	if err != nil {
		return nil, err
	}
	payload, err := encodeMsg(proposal.Msg)
	if err != nil {
		return nil, err
	}

	instantiate := &wasmtypes.MsgInstantiateContract{
		Sender: authority,
		Admin:  strings.TrimSpace(proposal.Admin),
		CodeID: proposal.CodeID,
		Label:  proposal.Label,
		Msg:    payload,
		Funds:  proposal.Funds.Sort(),
	}
	return newSubmitProposal(proposer, proposal.Proposal, []sdk.Msg{instantiate})
}

// BuildUpdateInstantiateConfigProposal wraps one MsgUpdateInstantiateConfig
// per update in a MsgSubmitProposal from proposer.
func BuildUpdateInstantiateConfigProposal(proposer string, proposal UpdateInstantiateConfig) (*govv1.MsgSubmitProposal, error) {
	if len(proposal.Updates) == 0 {
		return nil, fmt.Errorf("at least one access config update is required")
	}
	authority, err := GovAuthority(proposer)
	if err != nil {
		return nil, err
	}

	messages := make([]sdk.Msg, 0, len(proposal.Updates))
	for _, update := range proposal.Updates {
		if update.CodeID == 0 {
			return nil, fmt.Errorf("code id is required for every access config update")
		}
		messages = append(messages, &wasmtypes.MsgUpdateInstantiateConfig{
			Sender: authority,
			CodeID: update.CodeID,
			NewInstantiatePermission: &wasmtypes.AccessConfig{
				Permission: update.Permission,
				Addresses:  update.Addresses,
			},
		})
	}
	return newSubmitProposal(proposer, proposal.Proposal, messages)
}

// GovAuthority returns the gov module account address using the bech32
// prefix of address.
func GovAuthority(address string) (string, error) {
	prefix, _, err := bech32.DecodeAndConvert(address)
	if err != nil {
		return "", fmt.Errorf("invalid proposer address %q: %w", address, err)
	}
	return bech32.ConvertAndEncode(prefix, authtypes.NewModuleAddress(govtypes.ModuleName))
}

func newSubmitProposal(proposer string, proposal Proposal, messages []sdk.Msg) (*govv1.MsgSubmitProposal, error) {
	if strings.TrimSpace(proposal.Title) == "" {
		return nil, fmt.Errorf("proposal title is required")
	}
	msg, err := govv1.NewMsgSubmitProposal(
		messages,
		proposal.InitialDeposit.Sort(),
		proposer,
		proposal.Metadata,
		proposal.Title,
		proposal.Summary,
		proposal.Expedited,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build proposal: %w", err)
	}
	return msg, nil
}

func encodeMsg(msg any) ([]byte, error) {
	switch typed := msg.(type) {
	case nil:
		return []byte("{}"), nil
	case []byte:
		return typed, nil
	case json.RawMessage:
		return typed, nil
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode instantiate message: %w", err)
	}
	return payload, nil
}
