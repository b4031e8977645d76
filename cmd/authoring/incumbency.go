package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-content-admin/internal/domain/incumbency"
	incumbencyservice "github.com/KirkDiggler/rpg-content-admin/internal/services/incumbency"
)

var (
	flagIncumbencyFile string
	flagVersion        int
)

var incumbencyCmd = &cobra.Command{
	Use:   "incumbency",
	Short: "Create, edit and version incumbencies",
}

var incumbencyVersionsCmd = &cobra.Command{
	Use:   "versions <key>",
	Short: "List stored versions of a key",
	Args:  cobra.ExactArgs(1),
	RunE:  runIncumbencyVersions,
}

var incumbencyCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Save a new incumbency from a JSON file",
	Long: `Create saves the record in --file. The key defaults to the slug of the name.
If the key already has a row at the same version that row is updated instead.`,
	Args: cobra.NoArgs,
	RunE: runIncumbencyCreate,
}

var incumbencyEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Replace a stored incumbency with a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runIncumbencyEdit,
}

var incumbencyDuplicateCmd = &cobra.Command{
	Use:   "duplicate <id>",
	Short: "Copy a stored incumbency to a new version",
	Long: `Duplicate copies the record to the next version. Passing --version picks another
version; passing the original version or leaving the proposed one updates the original in place.`,
	Args: cobra.ExactArgs(1),
	RunE: runIncumbencyDuplicate,
}

func init() {
	incumbencyCreateCmd.Flags().StringVar(&flagIncumbencyFile, "file", "", "incumbency JSON file, - for stdin")
	incumbencyEditCmd.Flags().StringVar(&flagIncumbencyFile, "file", "", "incumbency JSON file, - for stdin")
	incumbencyDuplicateCmd.Flags().IntVar(&flagVersion, "version", 0, "version to save the copy as")

	incumbencyCmd.AddCommand(incumbencyVersionsCmd, incumbencyCreateCmd, incumbencyEditCmd, incumbencyDuplicateCmd)
}

func runIncumbencyVersions(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	versions, err := a.provider.IncumbencyService.ListVersions(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	return printResult(cmd, versions, func(w io.Writer) {
		if len(versions) == 0 {
			fmt.Fprintf(w, "no versions stored for %s\n", args[0])
			return
		}
		for _, v := range versions {
			fmt.Fprintf(w, "v%d\t%s\t%s\n", v.Version, v.ID, v.Name)
		}
	})
}

func runIncumbencyCreate(cmd *cobra.Command, args []string) error {
	var form incumbency.Incumbency
	if err := readJSONFile(cmd, flagIncumbencyFile, &form); err != nil {
		return err
	}

	a, err := loadApp()
	if err != nil {
		return err
	}

	if form.Version == 0 {
		form.Version = 1
	}

	svc := a.provider.IncumbencyService
	es, err := svc.StartCreate(cmd.Context(), flagOwner)
	if err != nil {
		return err
	}
	return replaceAndSave(cmd, svc, es.ID, &form)
}

func runIncumbencyEdit(cmd *cobra.Command, args []string) error {
	var form incumbency.Incumbency
	if err := readJSONFile(cmd, flagIncumbencyFile, &form); err != nil {
		return err
	}

	a, err := loadApp()
	if err != nil {
		return err
	}

	svc := a.provider.IncumbencyService
	es, err := svc.StartEdit(cmd.Context(), flagOwner, args[0])
	if err != nil {
		return err
	}
	// fields left out of the file keep the loaded record's identity
	form.ID = es.Form.ID
	if form.Version == 0 {
		form.Version = es.Form.Version
	}
	if form.Key == "" {
		form.Key = es.Form.ResolvedKey()
	}
	return replaceAndSave(cmd, svc, es.ID, &form)
}

func runIncumbencyDuplicate(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	svc := a.provider.IncumbencyService
	es, err := svc.StartDuplicate(cmd.Context(), flagOwner, args[0])
	if err != nil {
		return err
	}

	if flagVersion > 0 {
		if _, err := svc.UpdateForm(cmd.Context(), es.ID, func(form *incumbency.Incumbency) error {
			form.Version = flagVersion
			return nil
		}); err != nil {
			return err
		}
	}

	return save(cmd, svc, es.ID)
}

func replaceAndSave(cmd *cobra.Command, svc incumbencyservice.Service, sessionID string, next *incumbency.Incumbency) error {
	if next.Abilities == nil {
		next.Abilities = []incumbency.Ability{}
	}

	if _, err := svc.UpdateForm(cmd.Context(), sessionID, func(form *incumbency.Incumbency) error {
		*form = *next.Clone()
		return nil
	}); err != nil {
		return err
	}

	return save(cmd, svc, sessionID)
}

func save(cmd *cobra.Command, svc incumbencyservice.Service, sessionID string) error {
	result, err := svc.Save(cmd.Context(), sessionID)
	if err != nil {
		return err
	}

	d := result.Decision
	return printResult(cmd, result, func(w io.Writer) {
		fmt.Fprintf(w, "%s %s v%d (%s)\n", d.Verb, d.Key, d.Version, result.Record.ID)
		if d.Collapsed() {
			fmt.Fprintln(w, "version unchanged, updated the original instead of adding a version")
		}
	})
}
