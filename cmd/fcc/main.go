/*
Copyright 2026 File-Compressor Authors
Licensed under the Apache License, Version 2.0 (the "License")
you may not use this file except in compliance with the License.
you may obtain a copy of the License at

                http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Command fcc is a thin CLI wrapper exposing compress/decompress
// subcommands. It only ever calls fcc.Compress/fcc.Decompress/
// fcc.CompressPaq — all the actual engine work lives in the fcc package.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	fcc "github.com/rata5/File-Compressor"
	"github.com/rata5/File-Compressor/internal/logging"
)

var profileName string
var verbose bool

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fcc",
		Short:         "A lossless byte-stream compressor/decompressor",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "report progress events")
	root.AddCommand(newCompressCmd(), newDecompressCmd())
	return root
}

func newCompressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compress <in> <out>",
		Short: "Compress a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			listeners, sync, err := buildListeners()

			if err != nil {
				return err
			}

			defer sync()

			if profileName == "paq" {
				return fcc.CompressPaq(args[0], args[1], listeners...)
			}

			profile, err := parseProfile(profileName)

			if err != nil {
				return err
			}

			return fcc.Compress(args[0], args[1], profile, listeners...)
		},
	}

	cmd.Flags().StringVar(&profileName, "profile", "ctxmix", "compression profile: order0, ctxmix, bwt, paq")
	return cmd
}

func newDecompressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decompress <in> <out>",
		Short: "Decompress a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			listeners, sync, err := buildListeners()

			if err != nil {
				return err
			}

			defer sync()

			return fcc.Decompress(args[0], args[1], listeners...)
		},
	}
}

func parseProfile(name string) (fcc.Profile, error) {
	switch name {
	case "order0":
		return fcc.ProfileOrder0, nil
	case "ctxmix":
		return fcc.ProfileCtxmix, nil
	case "bwt":
		return fcc.ProfileBWT, nil
	default:
		return 0, fmt.Errorf("unknown profile %q (want order0, ctxmix, or bwt)", name)
	}
}

func buildListeners() ([]fcc.Listener, func(), error) {
	if !verbose {
		return nil, func() {}, nil
	}

	zl, err := logging.NewZapListener()

	if err != nil {
		return nil, nil, errors.New("failed to initialize logging: " + err.Error())
	}

	return []fcc.Listener{zl}, func() { zl.Sync() }, nil
}
