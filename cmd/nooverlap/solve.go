// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nooverlap/selection"
	"github.com/katalvlaran/nooverlap/server"
)

func newSolveCmd(a *app) *cobra.Command {
	var flat []float64

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve one query and print the JSON response",
		Long: `Reads a request document ({"intervals":[...]} or {"flat":[...]}) from
file, or stdin when no file is given, and prints
{"mask":[...],"selected":[...],"total_weight":N}.
With --flat the triples are taken from the command line instead.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var req server.SelectRequest
			if cmd.Flags().Changed("flat") {
				if len(args) > 0 {
					return errors.New("solve: --flat and a file are mutually exclusive")
				}
				req.Flat = flat
			} else if err := readRequest(cmd, args, &req); err != nil {
				return err
			}

			sel := selection.New(
				selection.WithStrategy(a.cfg.Strategy()),
				selection.WithLogger(a.logger),
			)
			resp, err := server.NewService(sel, a.cfg.Engine.MaxIntervals).Solve(req)
			if err != nil {
				return fmt.Errorf("solve: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			return enc.Encode(resp)
		},
	}
	cmd.Flags().Float64SliceVar(&flat, "flat", nil, "comma-separated lower,upper,weight triples")

	return cmd
}

// readRequest decodes a request from args[0] or stdin.
func readRequest(cmd *cobra.Command, args []string, req *server.SelectRequest) error {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("solve: %w", err)
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(req); err != nil {
		return fmt.Errorf("solve: decode request: %w", err)
	}

	return nil
}
