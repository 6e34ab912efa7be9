// Package nft drives the pass-minting collaborator: per-event key derivation,
// faucet funding, metadata/image uploads, and the mint transaction itself.
package nft

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/tikket/tikket-server/internal/metrics"
	"github.com/tikket/tikket-server/pkg/config"
	"github.com/tikket/tikket-server/pkg/keys"
)

// MintResult is what a successful mint returns to the registration workflow.
type MintResult struct {
	Mint         string `json:"mint"`
	TokenID      string `json:"token_id"`
	Metadata     string `json:"metadata"`
	ExplorerLink string `json:"explorer_link"`
}

// chainBackend is the slice of ChainClient the minter needs.
type chainBackend interface {
	FundFromFaucet(ctx context.Context, address string)
	SubmitMint(ctx context.Context, key *ecdsa.PrivateKey, to common.Address, tokenURI string) (string, string, error)
}

// uploadBackend is the slice of Uploader the minter needs.
type uploadBackend interface {
	Upload(ctx context.Context, name, contentType string, data []byte) (string, error)
}

// PassMinter mints an event pass on the EVM test network.
type PassMinter struct {
	chain           chainBackend
	uploader        uploadBackend
	masterSeed      []byte
	imagePath       string
	defaultImageURI string
	explorerBase    string
	mintTimeout     time.Duration
	logger          *zap.Logger

	readFile func(string) ([]byte, error)
}

// NewPassMinter creates the minter. masterSeed drives deterministic per-event
// key derivation so a retried mint reuses the already-funded key.
func NewPassMinter(
	chain *ChainClient,
	uploader *Uploader,
	masterSeed []byte,
	chainCfg *config.ChainConfig,
	storageCfg *config.StorageConfig,
	logger *zap.Logger,
) *PassMinter {
	mintTimeout := chainCfg.MintTimeout
	if mintTimeout <= 0 {
		mintTimeout = 90 * time.Second
	}
	return &PassMinter{
		chain:           chain,
		uploader:        uploader,
		masterSeed:      masterSeed,
		imagePath:       storageCfg.ImagePath,
		defaultImageURI: storageCfg.DefaultImageURI,
		explorerBase:    chainCfg.ExplorerBaseURL,
		mintTimeout:     mintTimeout,
		logger:          logger,
		readFile:        os.ReadFile,
	}
}

// MintPass runs the full mint sequence for an event. Metadata upload failure
// fails the mint; image upload failure falls back to the default image URI.
func (m *PassMinter) MintPass(ctx context.Context, meta *EventMetadata) (result *MintResult, err error) {
	start := time.Now()
	defer func() {
		metrics.MintDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			metrics.MintsTotal.WithLabelValues("failure").Inc()
		} else {
			metrics.MintsTotal.WithLabelValues("success").Inc()
		}
	}()

	ctx, cancel := context.WithTimeout(ctx, m.mintTimeout)
	defer cancel()

	if meta.Location == "" {
		meta.Location = "TBA"
	}

	kp, err := keys.DeriveMinterKeyPair(meta.EventID, m.masterSeed)
	if err != nil {
		return nil, fmt.Errorf("failed to derive minter key: %w", err)
	}
	key, err := kp.ECDSA()
	if err != nil {
		return nil, fmt.Errorf("failed to load minter key: %w", err)
	}
	address, err := kp.Address()
	if err != nil {
		return nil, fmt.Errorf("failed to derive minter address: %w", err)
	}

	m.chain.FundFromFaucet(ctx, address)

	passMeta := buildPassMetadata(meta)
	passMeta.Image = m.uploadImage(ctx)

	metaBytes, err := passMeta.Marshal()
	if err != nil {
		return nil, err
	}

	metadataURI, err := m.uploader.Upload(ctx, "metadata.json", "application/json", metaBytes)
	if err != nil {
		return nil, fmt.Errorf("metadata upload failed: %w", err)
	}
	m.logger.Info("pass metadata uploaded",
		zap.String("event_id", meta.EventID),
		zap.String("metadata_uri", metadataURI))

	txHash, tokenID, err := m.chain.SubmitMint(ctx, key, common.HexToAddress(address), metadataURI)
	if err != nil {
		return nil, fmt.Errorf("mint failed: %w", err)
	}

	return &MintResult{
		Mint:         txHash,
		TokenID:      tokenID,
		Metadata:     metadataURI,
		ExplorerLink: fmt.Sprintf("%s/tx/%s", m.explorerBase, txHash),
	}, nil
}

// uploadImage uploads the pass image, silently falling back to the configured
// default URI when the image is missing or every endpoint fails.
func (m *PassMinter) uploadImage(ctx context.Context) string {
	if m.imagePath == "" {
		return m.defaultImageURI
	}

	data, err := m.readFile(m.imagePath)
	if err != nil {
		m.logger.Warn("pass image not readable, using default image",
			zap.String("path", m.imagePath),
			zap.Error(err))
		return m.defaultImageURI
	}

	uri, err := m.uploader.Upload(ctx, "pass.png", "image/png", data)
	if err != nil {
		m.logger.Warn("pass image upload failed, using default image", zap.Error(err))
		return m.defaultImageURI
	}
	return uri
}
