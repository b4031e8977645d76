package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	dnderr "github.com/KirkDiggler/rpg-content-admin/internal/errors"
)

// printResult writes v as indented JSON under --json, otherwise calls text
func printResult(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	if flagJSON {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return dnderr.WrapWithCode(err, dnderr.CodeInternal, "marshal output")
		}
		fmt.Fprintln(w, string(data))
		return nil
	}
	text(w)
	return nil
}

// readJSONFile decodes path into out. "-" reads stdin.
func readJSONFile(cmd *cobra.Command, path string, out any) error {
	if path == "" {
		return dnderr.InvalidArgument("--file is required")
	}

	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return dnderr.InvalidArgumentf("read %s: %v", path, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return dnderr.InvalidArgumentf("parse %s: %v", path, err)
	}
	return nil
}
