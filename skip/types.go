package skip

import "encoding/json"

// AssetRecord is one asset in the route service's catalog.
type AssetRecord struct {
	Denom             string `json:"denom"`
	ChainID           string `json:"chain_id"`
	OriginDenom       string `json:"origin_denom"`
	OriginChainID     string `json:"origin_chain_id"`
	IsEVM             bool   `json:"is_evm"`
	IsSVM             bool   `json:"is_svm"`
	TokenContract     string `json:"token_contract,omitempty"`
	Symbol            string `json:"symbol,omitempty"`
	RecommendedSymbol string `json:"recommended_symbol,omitempty"`
	Name              string `json:"name,omitempty"`
	Decimals          *int32 `json:"decimals,omitempty"`
}

// DisplaySymbol returns the best available display name for the asset.
func (a AssetRecord) DisplaySymbol() string {
	switch {
	case a.RecommendedSymbol != "":
		return a.RecommendedSymbol
	case a.Symbol != "":
		return a.Symbol
	case a.Name != "":
		return a.Name
	default:
		return a.Denom
	}
}

// ChainRecord is one chain in the route service's catalog.
type ChainRecord struct {
	ChainName    string `json:"chain_name"`
	ChainID      string `json:"chain_id"`
	ChainType    string `json:"chain_type"`
	Bech32Prefix string `json:"bech32_prefix,omitempty"`
}

// AxelarTransferOperation is the fee-bearing Axelar bridge hop of a route.
type AxelarTransferOperation struct {
	FeeAmount string      `json:"fee_amount"`
	FeeAsset  AssetRecord `json:"fee_asset"`
}

// Operation is one hop of a route. Only the axelar_transfer variant carries
// data this library interprets; every operation round-trips opaquely into the
// message request so that unrecognized variants survive unchanged.
type Operation struct {
	AxelarTransfer *AxelarTransferOperation `json:"axelar_transfer,omitempty"`

	raw json.RawMessage
}

// UnmarshalJSON decodes the known tags and retains the raw document for
// loss-less round-tripping.
func (o *Operation) UnmarshalJSON(data []byte) error {
	type operation Operation
	var decoded operation
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	*o = Operation(decoded)
	o.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON emits the retained raw document when present so that variants
// this library does not model are passed through to the route service intact.
func (o Operation) MarshalJSON() ([]byte, error) {
	if len(o.raw) > 0 {
		return o.raw, nil
	}

	type operation Operation
	return json.Marshal(operation(o))
}

// Route is a resolved transfer path across one or more intermediate chains.
//
// Fields:
// - ChainIDs: ordered hop chain ids, first = source chain, last = destination
//   chain.
// - Operations: the ordered abstract operations executing the transfer.
type Route struct {
	SourceAssetDenom   string      `json:"source_asset_denom"`
	SourceAssetChainID string      `json:"source_asset_chain_id"`
	DestAssetDenom     string      `json:"dest_asset_denom"`
	DestAssetChainID   string      `json:"dest_asset_chain_id"`
	AmountIn           string      `json:"amount_in"`
	AmountOut          string      `json:"amount_out"`
	Operations         []Operation `json:"operations"`
	ChainIDs           []string    `json:"chain_ids"`
}

// ERC20Approval is a token allowance required before an EVM route step.
type ERC20Approval struct {
	TokenContract string `json:"token_contract"`
	Spender       string `json:"spender"`
	Amount        string `json:"amount"`
}

// EvmTx is an executable EVM call produced by the route service.
type EvmTx struct {
	ChainID                string          `json:"chain_id"`
	To                     string          `json:"to"`
	Data                   string          `json:"data"`
	Value                  string          `json:"value"`
	RequiredERC20Approvals []ERC20Approval `json:"required_erc20_approvals"`
}

// MultiChainMsg is an executable Cosmos SDK message produced by the route
// service. Msg is the raw JSON message body.
type MultiChainMsg struct {
	ChainID    string   `json:"chain_id"`
	Path       []string `json:"path,omitempty"`
	Msg        string   `json:"msg"`
	MsgTypeURL string   `json:"msg_type_url,omitempty"`
}

// Msg is one executable step of a route: exactly one of the variant fields is
// set.
type Msg struct {
	EvmTx         *EvmTx         `json:"evm_tx,omitempty"`
	MultiChainMsg *MultiChainMsg `json:"multi_chain_msg,omitempty"`
}

// RouteRequest asks the route service for a transfer path.
type RouteRequest struct {
	SourceAssetDenom   string `json:"source_asset_denom"`
	SourceAssetChainID string `json:"source_asset_chain_id"`
	DestAssetDenom     string `json:"dest_asset_denom"`
	DestAssetChainID   string `json:"dest_asset_chain_id"`
	AmountIn           string `json:"amount_in"`
}

// MsgsRequest asks the route service for the executable message sequence of a
// previously resolved route. AddressList carries one custody address per hop
// chain, in hop order.
type MsgsRequest struct {
	AddressList        []string    `json:"address_list"`
	SourceAssetDenom   string      `json:"source_asset_denom"`
	SourceAssetChainID string      `json:"source_asset_chain_id"`
	DestAssetDenom     string      `json:"dest_asset_denom"`
	DestAssetChainID   string      `json:"dest_asset_chain_id"`
	AmountIn           string      `json:"amount_in"`
	AmountOut          string      `json:"amount_out"`
	Operations         []Operation `json:"operations"`
}

// MsgsResponse carries the executable message sequence of a route.
type MsgsResponse struct {
	Msgs []Msg `json:"msgs"`
}

// ChainAssets is the asset catalog of one chain.
type ChainAssets struct {
	Assets []AssetRecord `json:"assets"`
}

type assetsResponse struct {
	ChainToAssetsMap map[string]ChainAssets `json:"chain_to_assets_map"`
}

type chainsResponse struct {
	Chains []ChainRecord `json:"chains"`
}

type errorResponse struct {
	Message string `json:"message"`
}
