package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	wasmtypes "github.com/CosmWasm/wasmd/x/wasm/types"
	abci "github.com/cometbft/cometbft/abci/types"
	cmtbytes "github.com/cometbft/cometbft/libs/bytes"
	coretypes "github.com/cometbft/cometbft/rpc/core/types"
	cmttypes "github.com/cometbft/cometbft/types"

	"github.com/atlo-labs/fuzion-sdk-go/pkg/shared"
)

const (
	otcAddress   = "kujira1otc"
	utilsAddress = "kujira1utils"
)

// queryRPC answers smart queries by contract address and query name and
// records the raw query JSON it was sent.
type queryRPC struct {
	mu        sync.Mutex
	responses map[string]map[string]string
	queries   []string
}

func (r *queryRPC) ABCIQuery(_ context.Context, path string, data cmtbytes.HexBytes) (*coretypes.ResultABCIQuery, error) {
	if path != "/cosmwasm.wasm.v1.Query/SmartContractState" {
		return nil, fmt.Errorf("unexpected path %s", path)
	}
	var request wasmtypes.QuerySmartContractStateRequest
	if err := request.Unmarshal(data); err != nil {
		return nil, err
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(request.QueryData, &envelope); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(r.queries, string(request.QueryData))
	for key := range envelope {
		payload, ok := r.responses[request.Address][key]
		if !ok {
			return &coretypes.ResultABCIQuery{Response: abci.ResponseQuery{Code: 18, Log: "not found"}}, nil
		}
		response := wasmtypes.QuerySmartContractStateResponse{Data: []byte(payload)}
		encoded, err := response.Marshal()
		if err != nil {
			return nil, err
		}
		return &coretypes.ResultABCIQuery{Response: abci.ResponseQuery{Value: encoded}}, nil
	}
	return nil, errors.New("empty query")
}

func (r *queryRPC) BroadcastTxSync(context.Context, cmttypes.Tx) (*coretypes.ResultBroadcastTx, error) {
	return nil, errors.New("read only")
}

func (r *queryRPC) Tx(context.Context, []byte, bool) (*coretypes.ResultTx, error) {
	return nil, errors.New("read only")
}

func (r *queryRPC) Status(context.Context) (*coretypes.ResultStatus, error) {
	return nil, errors.New("read only")
}

func (r *queryRPC) sent() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.queries...)
}

const curatedAssets = `{"data":[` +
	`{"denom":"ukuji","chain_and_asset":[{"chain_name":"kujira","asset":{"base":"ukuji","display":"kuji","symbol":"KUJI","name":"Kujira",` +
	`"denom_units":[{"denom":"ukuji","exponent":0},{"denom":"kuji","exponent":6}],"logo_URIs":{}}}]},` +
	`{"denom":"uusk","chain_and_asset":[{"chain_name":"kujira","asset":{"base":"uusk","display":"usk","symbol":"USK","name":"USK",` +
	`"denom_units":[{"denom":"uusk","exponent":0},{"denom":"usk","exponent":6}],"logo_URIs":{}}}]}` +
	`],"pagination":{"next_key":null,"total":2}}`

func newQueryRPC(lcdURL string) *queryRPC {
	config := fmt.Sprintf(`{"chain_config":{"chain_name":"kujira","chain_id":"kaiyo-1","network_type":"mainnet","chain_rpc_url":"https://rpc.kujira","chain_lcd_url":%q,`+
		`"chain_contracts":[{"contract_name":"OTC_FUNGIBLE_TOKEN","contract_address":%q},{"contract_name":"UTILITIES","contract_address":%q}]}}`,
		lcdURL, otcAddress, utilsAddress)
	escrow := `{"id":7,"creator":"kujira1creator","created_at":1,"arbiter":"","recipient":"","title":"kuji for usk","description":"",` +
		`"end_height":0,"end_time":0,"creator_balance":[{"denom":"ukuji","amount":"5000000"}],"asking_price":{"denom":"uusk","amount":"2500000"},` +
		`"recipient_balance":[],"status":"Active"}`

	return &queryRPC{responses: map[string]map[string]string{
		shared.DefaultUtilsContractAddress: {
			"list_fuzion_chain_config": `{"data":[` + config + `],"pagination":{"next_key":null,"total":1}}`,
		},
		utilsAddress: {
			"chain":                       `{"chain_name":"kujira","chain_id":"kaiyo-1","pretty_name":"Kujira"}`,
			"list_asset_by_curated_denom": curatedAssets,
		},
		otcAddress: {
			"escrow":                           escrow,
			"market_escrow_active_list":        `{"data":[` + escrow + `],"pagination":{"next_key":7,"total":3}}`,
			"market_escrow_active_pairs_list":  `{"data":[` + escrow + `],"pagination":{"next_key":null,"total":1}}`,
			"market_escrow_active_pairs_count": `{"pairs":[{"denom1":"ukuji","denom2":"uusk","count":1}]}`,
			"pairs_count":                      `{"pairs":[{"denom1":"ukuji","denom2":"uusk","count":4}]}`,
		},
	}}
}

func run(t *testing.T, env Environment, args ...string) (string, error) {
	t.Helper()
	t.Setenv("FUZION_NETWORK", "")
	t.Setenv("FUZION_UTILS_CONTRACT", "")
	t.Setenv("FUZION_RPC_ENDPOINT", "")

	root := NewRootCommand(env)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestConfigListFromContract(t *testing.T) {
	rpc := newQueryRPC("https://lcd.kujira")
	out, err := run(t, Environment{RPCClient: rpc}, "config", "list")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"chain_lcd_url": "https://lcd.kujira"`) {
		t.Fatalf("unexpected output %s", out)
	}
	if sent := rpc.sent(); len(sent) != 1 || sent[0] != `{"list_fuzion_chain_config":{}}` {
		t.Fatalf("unexpected queries %v", sent)
	}
}

func TestConfigListFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chains.yaml")
	content := "- chain_name: kujira\n  network_type: testnet\n  chain_rpc_url: https://rpc.testnet\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := run(t, Environment{RPCClient: newQueryRPC("")}, "config", "list", "--config-file", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var configs []map[string]any
	if err := json.Unmarshal([]byte(out), &configs); err != nil {
		t.Fatalf("unexpected output %s: %v", out, err)
	}
	if len(configs) != 1 || configs[0]["network_type"] != "testnet" {
		t.Fatalf("unexpected configs %v", configs)
	}
}

func TestChainAndAssets(t *testing.T) {
	rpc := newQueryRPC("https://lcd.kujira")
	out, err := run(t, Environment{RPCClient: rpc}, "chain", "kujira")
	if err != nil || !strings.Contains(out, `"pretty_name": "Kujira"`) {
		t.Fatalf("unexpected chain output %s (%v)", out, err)
	}

	out, err = run(t, Environment{RPCClient: rpc}, "assets", "trusted")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Index(out, `"symbol": "KUJI"`) > strings.Index(out, `"symbol": "USK"`) {
		t.Fatalf("expected assets sorted by symbol: %s", out)
	}
}

func TestBalances(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/cosmos/bank/v1beta1/balances/kujira1wallet" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"balances":[{"denom":"uusk","amount":"1500000"}],"pagination":{"next_key":null,"total":"1"}}`))
	}))
	defer server.Close()

	out, err := run(t, Environment{RPCClient: newQueryRPC(server.URL), HTTPClient: server.Client()}, "balances", "kujira1wallet")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"symbol": "USK"`) || !strings.Contains(out, `"symbolAmount": "1.500000000000000000"`) {
		t.Fatalf("unexpected balances %s", out)
	}
}

func TestEscrowGet(t *testing.T) {
	out, err := run(t, Environment{RPCClient: newQueryRPC("")}, "escrow", "get", "7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"title": "kuji for usk"`) || !strings.Contains(out, `"symbol": "USK"`) {
		t.Fatalf("unexpected escrow %s", out)
	}

	if _, err := run(t, Environment{RPCClient: newQueryRPC("")}, "escrow", "get", "seven"); err == nil {
		t.Fatal("expected error for invalid id")
	}
	if _, err := run(t, Environment{RPCClient: newQueryRPC("")}, "escrow", "get", "8", "--include-expired"); err == nil {
		t.Fatal("expected error for unknown flag")
	}
}

func TestEscrowList(t *testing.T) {
	rpc := newQueryRPC("")
	out, err := run(t, Environment{RPCClient: rpc}, "escrow", "list", "--limit", "5", "--start-after", "3", "--asc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"next_key": 7`) {
		t.Fatalf("unexpected page %s", out)
	}
	wanted := `{"market_escrow_active_list":{"start_after":3,"limit":5,"sort_asc":true}}`
	if sent := rpc.sent(); sent[len(sent)-1] != wanted {
		t.Fatalf("expected %s, got %v", wanted, sent)
	}

	rpc = newQueryRPC("")
	out, err = run(t, Environment{RPCClient: rpc}, "escrow", "list", "--pair", "ukuji,uusk", "--rich")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, `"askingPrice"`) || !strings.Contains(out, `"symbol": "KUJI"`) {
		t.Fatalf("expected enriched escrows %s", out)
	}

	if _, err := run(t, Environment{RPCClient: newQueryRPC("")}, "escrow", "list", "--pair", "ukuji"); err == nil {
		t.Fatal("expected error for malformed pair")
	}
	if _, err := run(t, Environment{RPCClient: newQueryRPC("")}, "escrow", "list", "--creator", "a", "--recipient", "b"); err == nil {
		t.Fatal("expected error for exclusive flags")
	}
}

func TestPairs(t *testing.T) {
	out, err := run(t, Environment{RPCClient: newQueryRPC("")}, "pairs")
	if err != nil || !strings.Contains(out, `"count": 1`) {
		t.Fatalf("unexpected pairs %s (%v)", out, err)
	}
	out, err = run(t, Environment{RPCClient: newQueryRPC("")}, "pairs", "--include-expired")
	if err != nil || !strings.Contains(out, `"count": 4`) {
		t.Fatalf("unexpected pairs %s (%v)", out, err)
	}
}

func TestNetworkSelection(t *testing.T) {
	if _, err := run(t, Environment{RPCClient: newQueryRPC("")}, "pairs", "--network", "moonnet"); err == nil {
		t.Fatal("expected error for unknown network")
	}
	if _, err := run(t, Environment{RPCClient: newQueryRPC("")}, "pairs", "--network", "testnet"); err == nil {
		t.Fatal("expected error when the network has no config")
	}
}
