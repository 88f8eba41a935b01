// Package main is the entry point for the Zeevonk server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/zeevonk-project/zeevonk-go/internal/config"
	"github.com/zeevonk-project/zeevonk-go/internal/dmx"
	"github.com/zeevonk-project/zeevonk-go/internal/gdtf"
	"github.com/zeevonk-project/zeevonk-go/internal/logging"
	"github.com/zeevonk-project/zeevonk-go/internal/patchbuilder"
	"github.com/zeevonk-project/zeevonk-go/internal/server"
	"github.com/zeevonk-project/zeevonk-go/internal/showfile"
	"github.com/zeevonk-project/zeevonk-go/internal/zerr"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("no .env file found, using environment variables")
	}

	cfg := config.Load()
	logging.Init(cfg.Env)
	printBanner(cfg)

	sf, err := showfile.LoadFromFolder(cfg.ShowfilePath)
	if err != nil {
		logging.Errorf("failed to load showfile: %v", err)
		os.Exit(1)
	}

	fixtureTypes, err := loadFixtureTypes(sf.GdtfFilePaths)
	if err != nil {
		logging.Errorf("failed to load GDTF fixture types: %v", err)
		os.Exit(1)
	}

	patch, err := patchbuilder.BuildFromShowfile(sf, fixtureTypes)
	if err != nil {
		logging.Errorf("failed to build patch: %v", err)
		os.Exit(1)
	}

	outputs, err := sacnOutputsFromShowfile(sf)
	if err != nil {
		logging.Errorf("failed to configure sACN outputs: %v", err)
		os.Exit(1)
	}

	srv, err := server.New(patch, outputs)
	if err != nil {
		logging.Errorf("failed to create server: %v", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(ctx, sf.Config.Address)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-quit:
		logging.Infof("shutting down server...")
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil {
			logging.Errorf("server error: %v", err)
			os.Exit(1)
		}
	}

	logging.Infof("server stopped")
}

// loadFixtureTypes decodes the GDTF archives a showfile references into
// the descriptor types internal/gdtf defines. Decoding a .gdtf archive
// (a zipped XML description) is explicitly out of scope: the spec
// treats the GDTF-decoding library itself as an external collaborator
// whose output shape is specified but whose implementation is not.
// This is the seam a real GDTF library is wired in at; none ships in
// this tree.
func loadFixtureTypes(gdtfFilePaths []string) (map[string]*gdtf.FixtureType, error) {
	if len(gdtfFilePaths) == 0 {
		return map[string]*gdtf.FixtureType{}, nil
	}
	return nil, zerr.New(zerr.KindShowfileBuild,
		"GDTF archive decoding is not implemented in this tree; wire in a GDTF-decoding library here")
}

// sacnOutputsFromShowfile translates the showfile's protocol config
// into the server package's SacnOutput values.
func sacnOutputsFromShowfile(sf *showfile.Showfile) ([]server.SacnOutput, error) {
	outputs := make([]server.SacnOutput, 0, len(sf.Protocols.Sacn.Outputs))
	for _, out := range sf.Protocols.Sacn.Outputs {
		localUniverse, err := dmx.NewUniverseID(out.LocalUniverse)
		if err != nil {
			return nil, zerr.Wrap(zerr.KindShowfileBuild, "sACN output "+out.Label, err)
		}
		outputs = append(outputs, server.SacnOutput{
			Label:               out.Label,
			LocalUniverse:       localUniverse,
			DestinationUniverse: out.DestinationUniverse,
			Multicast:           out.Mode.Multicast,
			DestinationIP:       out.Mode.DestinationIP,
			Priority:            out.Priority,
			PreviewData:         out.PreviewData,
		})
	}
	return outputs, nil
}

// printBanner prints the startup banner.
func printBanner(cfg *config.Config) {
	fmt.Println("============================================")
	fmt.Println("  Zeevonk Server")
	fmt.Printf("  Version: %s\n", Version)
	fmt.Printf("  Build:   %s\n", BuildTime)
	fmt.Printf("  Commit:  %s\n", GitCommit)
	fmt.Println("============================================")
	fmt.Printf("  Environment: %s\n", cfg.Env)
	fmt.Printf("  Addr:        %s\n", cfg.Addr)
	fmt.Printf("  Showfile:    %s\n", cfg.ShowfilePath)
	fmt.Println("============================================")
}
