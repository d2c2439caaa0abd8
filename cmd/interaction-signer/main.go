package main

import (
	"bytes"
	"context"
	"crypto/ed25519"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/DIMO-Network/interactions-api/internal/controllers/interaction"
	"github.com/DIMO-Network/interactions-api/internal/signature"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	generate := flag.Bool("generate", false, "generate a key pair and exit")
	targetURL := flag.String("url", "http://localhost:8080/api/interactions", "interaction endpoint")
	privateKeyHex := flag.String("key", os.Getenv("APPLICATION_PRIVATE_KEY"), "hex encoded Ed25519 private key or seed")
	body := flag.String("body", `{"type":1}`, "raw JSON body to sign and send")
	timestamp := flag.String("timestamp", "", "timestamp to sign with, defaults to now")
	flag.Parse()

	if *generate {
		pub, priv, err := ed25519.GenerateKey(nil)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to generate key pair")
		}
		fmt.Printf("APPLICATION_PUBLIC_KEY=%s\n", hex.EncodeToString(pub))
		fmt.Printf("APPLICATION_PRIVATE_KEY=%s\n", hex.EncodeToString(priv.Seed()))
		return
	}

	priv, err := parsePrivateKey(*privateKeyHex)
	if err != nil {
		logger.Fatal().Err(err).Msg("Invalid private key")
	}
	if *timestamp == "" {
		*timestamp = strconv.FormatInt(time.Now().Unix(), 10)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	status, respBody, err := send(ctx, *targetURL, priv, *timestamp, []byte(*body))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to send interaction")
	}
	logger.Info().Int("status", status).Str("url", *targetURL).Msg("Interaction sent")
	fmt.Println(respBody)
}

func parsePrivateKey(keyHex string) (ed25519.PrivateKey, error) {
	if keyHex == "" {
		return nil, errors.New("no private key given, use -key or APPLICATION_PRIVATE_KEY")
	}
	raw, err := signature.DecodeHex(keyHex)
	if err != nil {
		return nil, err
	}
	switch len(raw) {
	case ed25519.SeedSize:
		return ed25519.NewKeyFromSeed(raw), nil
	case ed25519.PrivateKeySize:
		return ed25519.PrivateKey(raw), nil
	default:
		return nil, fmt.Errorf("private key must be %d or %d bytes, got %d", ed25519.SeedSize, ed25519.PrivateKeySize, len(raw))
	}
}

func send(ctx context.Context, targetURL string, priv ed25519.PrivateKey, timestamp string, body []byte) (int, string, error) {
	sig := ed25519.Sign(priv, signature.Message(timestamp, body))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, targetURL, bytes.NewReader(body))
	if err != nil {
		return 0, "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(interaction.SignatureHeader, hex.EncodeToString(sig))
	req.Header.Set(interaction.TimestampHeader, timestamp)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("failed to call %s: %w", targetURL, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", fmt.Errorf("failed to read response: %w", err)
	}
	return resp.StatusCode, string(respBody), nil
}
