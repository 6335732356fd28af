package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"log"
	"net"
	"os"

	"creature-forge/internal/catalog"
	"creature-forge/internal/config"
	"creature-forge/internal/rarity"
	"creature-forge/internal/server"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}
	if err := config.ValidateCollectionSize(cfg.CollectionSize); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// Generate host key if it doesn't exist
	if err := ensureHostKey(cfg.HostKey); err != nil {
		log.Fatalf("Host key error: %v", err)
	}

	table, err := config.LoadWeights(cfg.WeightsFile, rarity.DefaultTable())
	if err != nil {
		log.Fatalf("Weights error: %v", err)
	}

	lib := server.NewLibrary(catalog.Default(), table)

	if cfg.WeightsFile != "" {
		weights, err := config.NewWeightsWatcher(cfg.WeightsFile, rarity.DefaultTable(), cfg.ReloadDebounce, func(t rarity.Table) {
			lib.SetTable(t)
			log.Printf("Weights reloaded from %s", cfg.WeightsFile)
		})
		if err != nil {
			log.Fatalf("Weights watcher error: %v", err)
		}
		weights.Start(context.Background())
		defer weights.Close()
	}

	// Uploaded layers are optional; without the directory the built-in art is used.
	if info, err := os.Stat(cfg.LayersDir); err != nil || !info.IsDir() {
		log.Printf("Warning: layers directory %s not found, using built-in layers only", cfg.LayersDir)
	} else {
		uploads, err := catalog.LoadUploads(cfg.LayersDir)
		if err != nil {
			log.Fatalf("Failed to load layers from %s: %v", cfg.LayersDir, err)
		}
		lib.ReplaceUploads(uploads)

		watcher, err := catalog.NewWatcher(cfg.LayersDir, cfg.ReloadDebounce, func(uploads map[catalog.Category][]catalog.Asset) {
			lib.ReplaceUploads(uploads)
			log.Printf("Layers reloaded from %s", cfg.LayersDir)
		})
		if err != nil {
			log.Fatalf("Watcher error: %v", err)
		}
		watcher.Start(context.Background())
		defer watcher.Close()
	}

	_, port, _ := net.SplitHostPort(cfg.Addr) // checked by config.Load

	sshServer := server.NewSSHServer(cfg, lib)
	log.Printf("Starting Creature Forge, connect with: ssh -t -p %s localhost", port)
	if err := sshServer.Start(); err != nil {
		log.Fatalf("SSH server error: %v", err)
	}
}

func ensureHostKey(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil // key already exists
	}

	log.Println("Generating new host key...")
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return err
	}

	keyBytes, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return err
	}

	pemBlock := &pem.Block{
		Type:  "PRIVATE KEY",
		Bytes: keyBytes,
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()

	return pem.Encode(f, pemBlock)
}
