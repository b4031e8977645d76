package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-content-admin/internal/domain/versioning"
)

var slugCmd = &cobra.Command{
	Use:   "slug <name...>",
	Short: "Print the key a name resolves to",
	Example: `  authoring slug "Shadow Blade"
  shadow_blade`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSlug,
}

func runSlug(cmd *cobra.Command, args []string) error {
	name := strings.Join(args, " ")
	key := versioning.Slugify(name)

	return printResult(cmd, map[string]string{"name": name, "key": key}, func(w io.Writer) {
		fmt.Fprintln(w, key)
	})
}
