package nft

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"github.com/tikket/tikket-server/pkg/config"
	"github.com/tikket/tikket-server/pkg/nft/contracts"
)

// faucetAttempts is how many times the minter requests test funds. Failures
// are tolerated; an already-funded key can mint without any airdrop.
const faucetAttempts = 3

// ChainClient wraps the EVM test-network RPC connection and the pass contract.
type ChainClient struct {
	config       *config.ChainConfig
	client       *ethclient.Client
	passAddress  common.Address
	pass         *contracts.EventPass
	faucetClient *http.Client
	logger       *zap.Logger
}

// NewChainClient connects to the configured RPC endpoint and binds the pass contract.
func NewChainClient(cfg *config.ChainConfig, logger *zap.Logger) (*ChainClient, error) {
	client, err := ethclient.Dial(cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to chain RPC: %w", err)
	}

	passAddress := common.HexToAddress(cfg.PassContract)
	pass, err := contracts.NewEventPass(passAddress, client)
	if err != nil {
		return nil, fmt.Errorf("failed to load pass contract: %w", err)
	}

	logger.Info("Connected to chain",
		zap.Int64("chain_id", cfg.ChainID),
		zap.String("rpc_url", cfg.RPCURL),
		zap.String("pass_contract", passAddress.Hex()))

	return &ChainClient{
		config:       cfg,
		client:       client,
		passAddress:  passAddress,
		pass:         pass,
		faucetClient: &http.Client{Timeout: 15 * time.Second},
		logger:       logger,
	}, nil
}

// Close closes the RPC connection.
func (c *ChainClient) Close() {
	if c.client != nil {
		c.client.Close()
	}
}

// NativeBalance returns the native-coin balance of an address in wei.
func (c *ChainClient) NativeBalance(ctx context.Context, address string) (*big.Int, error) {
	balance, err := c.client.BalanceAt(ctx, common.HexToAddress(address), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to read balance: %w", err)
	}
	return balance, nil
}

// FundFromFaucet requests test funds for the minter address. Each attempt that
// fails is logged and skipped; minting proceeds regardless.
func (c *ChainClient) FundFromFaucet(ctx context.Context, address string) {
	if c.config.FaucetURL == "" {
		return
	}

	payload, _ := json.Marshal(map[string]string{"address": address})
	for i := 0; i < faucetAttempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.FaucetURL, bytes.NewReader(payload))
		if err != nil {
			c.logger.Warn("faucet request build failed", zap.Error(err))
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.faucetClient.Do(req)
		if err != nil {
			c.logger.Warn("faucet request failed",
				zap.Int("attempt", i+1),
				zap.Error(err))
			continue
		}
		resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			c.logger.Warn("faucet returned error status",
				zap.Int("attempt", i+1),
				zap.Int("status", resp.StatusCode))
		}
	}
}

// transactor builds signed transaction options for the given key.
func (c *ChainClient) transactor(ctx context.Context, key *ecdsa.PrivateKey) (*bind.TransactOpts, error) {
	chainID := big.NewInt(c.config.ChainID)

	auth, err := bind.NewKeyedTransactorWithChainID(key, chainID)
	if err != nil {
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}

	address := crypto.PubkeyToAddress(key.PublicKey)
	nonce, err := c.client.PendingNonceAt(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to get nonce: %w", err)
	}

	auth.Nonce = big.NewInt(int64(nonce))
	auth.GasLimit = c.config.GasLimit
	auth.Context = ctx

	return auth, nil
}

// SubmitMint submits the mint transaction, waits for the receipt, and returns
// the transaction hash and the minted token id.
func (c *ChainClient) SubmitMint(ctx context.Context, key *ecdsa.PrivateKey, to common.Address, tokenURI string) (string, string, error) {
	auth, err := c.transactor(ctx, key)
	if err != nil {
		return "", "", err
	}

	tx, err := c.pass.MintPass(auth, to, tokenURI)
	if err != nil {
		return "", "", fmt.Errorf("failed to submit mint transaction: %w", err)
	}

	c.logger.Info("Mint transaction submitted",
		zap.String("tx_hash", tx.Hash().Hex()),
		zap.String("to", to.Hex()))

	receipt, err := bind.WaitMined(ctx, c.client, tx)
	if err != nil {
		return "", "", fmt.Errorf("failed waiting for mint receipt: %w", err)
	}
	if receipt.Status != 1 {
		return "", "", fmt.Errorf("mint transaction reverted: %s", tx.Hash().Hex())
	}

	for _, lg := range receipt.Logs {
		if lg.Address != c.passAddress {
			continue
		}
		transfer, parseErr := c.pass.ParseTransfer(*lg)
		if parseErr != nil {
			continue
		}
		return tx.Hash().Hex(), transfer.TokenId.String(), nil
	}

	return "", "", fmt.Errorf("mint receipt missing Transfer log: %s", tx.Hash().Hex())
}
