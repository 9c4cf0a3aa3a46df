package transfer

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

// transferGasLimit is the fixed gas cost of a plain value transfer
const transferGasLimit = uint64(21000)

// EthereumConfig holds configuration for the Ethereum payout transferer
type EthereumConfig struct {
	RPCURL     string
	PrivateKey string // hex-encoded, with or without 0x prefix
	ChainID    int64
}

type ethTransferer struct {
	client  *ethclient.Client
	key     *ecdsa.PrivateKey
	from    common.Address
	chainID *big.Int
}

// NewEthereum creates a Transferer that submits signed value transfers from the
// ledger's payout account via an Ethereum RPC endpoint
func NewEthereum(cfg EthereumConfig) (Transferer, error) {
	client, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial ethereum rpc: %w", err)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKey, "0x"))
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to parse payout private key: %w", err)
	}

	return &ethTransferer{
		client:  client,
		key:     key,
		from:    crypto.PubkeyToAddress(key.PublicKey),
		chainID: big.NewInt(cfg.ChainID),
	}, nil
}

// Transfer sends amount to the given address and returns the transaction hash
func (t *ethTransferer) Transfer(ctx context.Context, to common.Address, amount *big.Int) (common.Hash, error) {
	nonce, err := t.client.PendingNonceAt(ctx, t.from)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to get pending nonce: %w", err)
	}

	gasPrice, err := t.client.SuggestGasPrice(ctx)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to suggest gas price: %w", err)
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    amount,
		Gas:      transferGasLimit,
		GasPrice: gasPrice,
	})

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(t.chainID), t.key)
	if err != nil {
		return common.Hash{}, fmt.Errorf("failed to sign transfer: %w", err)
	}

	if err := t.client.SendTransaction(ctx, signed); err != nil {
		return common.Hash{}, fmt.Errorf("failed to send transfer: %w", err)
	}

	return signed.Hash(), nil
}

// Close releases the RPC connection
func (t *ethTransferer) Close() {
	t.client.Close()
}
