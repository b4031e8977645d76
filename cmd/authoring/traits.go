package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-content-admin/internal/domain/dependency"
	"github.com/KirkDiggler/rpg-content-admin/internal/domain/trait"
	dnderr "github.com/KirkDiggler/rpg-content-admin/internal/errors"
	traitservice "github.com/KirkDiggler/rpg-content-admin/internal/services/trait"
)

var (
	flagTraitID         string
	flagTraitFile       string
	flagStrictDice      bool
	flagRejectConflicts bool
	flagDraftID         string
	flagModifierTarget  string
)

var traitsCmd = &cobra.Command{
	Use:   "traits",
	Short: "Inspect and save species traits",
}

var traitPrereqsCmd = &cobra.Command{
	Use:   "prereqs <species-slug>",
	Short: "List options a trait may require",
	Args:  cobra.ExactArgs(1),
	RunE:  runTraitPrereqs,
}

var traitCheckCmd = &cobra.Command{
	Use:   "check <species-slug>",
	Short: "Report prerequisites that no longer resolve",
	Args:  cobra.ExactArgs(1),
	RunE:  runTraitCheck,
}

var traitSaveCmd = &cobra.Command{
	Use:   "save <species-slug>",
	Short: "Validate and store a trait from a JSON file",
	Long: `Save reads a trait from --file, validates it, and creates it when it has no id
or updates it otherwise. Specific traits are attached to the species.

With --draft the form is stored as a draft instead of being sent to the API.`,
	Args: cobra.ExactArgs(1),
	RunE: runTraitSave,
}

var traitDeleteCmd = &cobra.Command{
	Use:   "delete <trait-id>",
	Short: "Delete a stored trait",
	Args:  cobra.ExactArgs(1),
	RunE:  runTraitDelete,
}

var modifiersCmd = &cobra.Command{
	Use:   "modifiers",
	Short: "Inspect the modifier taxonomy",
}

var modifiersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List modifier types and their subtypes",
	Args:  cobra.NoArgs,
	RunE:  runModifiersList,
}

func init() {
	traitPrereqsCmd.Flags().StringVar(&flagTraitID, "trait", "", "id of the trait being edited")

	traitSaveCmd.Flags().StringVar(&flagTraitFile, "file", "", "trait JSON file, - for stdin")
	traitSaveCmd.Flags().BoolVar(&flagStrictDice, "strict", false, "require dice_count and die_type together")
	traitSaveCmd.Flags().BoolVar(&flagRejectConflicts, "reject-conflicts", false, "refuse to save with unresolved prerequisites")
	traitSaveCmd.Flags().StringVar(&flagDraftID, "draft", "", "store as draft; use new for a fresh draft")

	modifiersListCmd.Flags().StringVar(&flagModifierTarget, "target", "", "only types that apply to this target")

	traitsCmd.AddCommand(traitPrereqsCmd, traitCheckCmd, traitSaveCmd, traitDeleteCmd)
	modifiersCmd.AddCommand(modifiersListCmd)
}

func runTraitPrereqs(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	svc := a.provider.TraitService
	lib, err := svc.LoadLibrary(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	choices := svc.PrerequisiteChoices(lib, flagTraitID)
	return printResult(cmd, choices, func(w io.Writer) {
		for _, c := range choices {
			fmt.Fprintf(w, "%s\t%s\n", c.Value.ID, c.Label)
		}
	})
}

type traitConflicts struct {
	TraitID   string                `json:"trait_id"`
	TraitName string                `json:"trait_name"`
	Conflicts []dependency.Conflict `json:"conflicts"`
}

func runTraitCheck(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	svc := a.provider.TraitService
	lib, err := svc.LoadLibrary(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	report := []traitConflicts{}
	total := 0
	for i := range lib.Traits {
		conflicts := svc.CheckPrerequisites(lib, &lib.Traits[i])
		if len(conflicts) == 0 {
			continue
		}
		total += len(conflicts)
		report = append(report, traitConflicts{
			TraitID:   lib.Traits[i].ID,
			TraitName: lib.Traits[i].Name,
			Conflicts: conflicts,
		})
	}

	if err := printResult(cmd, report, func(w io.Writer) {
		for _, r := range report {
			for _, c := range r.Conflicts {
				fmt.Fprintf(w, "%s: %s\n", r.TraitName, c)
			}
		}
		if total == 0 {
			fmt.Fprintf(w, "%d traits checked, no conflicts\n", len(lib.Traits))
		}
	}); err != nil {
		return err
	}

	if total > 0 {
		return dnderr.DependencyConflictf("%d prerequisite conflicts in %s", total, args[0])
	}
	return nil
}

func runTraitSave(cmd *cobra.Command, args []string) error {
	var form trait.Trait
	if err := readJSONFile(cmd, flagTraitFile, &form); err != nil {
		return err
	}

	a, err := loadApp()
	if err != nil {
		return err
	}
	svc := a.provider.TraitService

	if flagDraftID != "" {
		draftID := flagDraftID
		if draftID == "new" {
			draftID = ""
		}
		draft, err := svc.SaveDraft(cmd.Context(), flagOwner, draftID, &form)
		if err != nil {
			return err
		}
		return printResult(cmd, draft, func(w io.Writer) {
			fmt.Fprintf(w, "draft %s saved\n", draft.ID)
		})
	}

	lib, err := svc.LoadLibrary(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	conflicts := svc.CheckPrerequisites(lib, &form)
	saved, err := svc.SaveTrait(cmd.Context(), &traitservice.SaveTraitInput{
		Trait:           &form,
		Library:         lib,
		StrictDice:      flagStrictDice,
		RejectConflicts: flagRejectConflicts,
	})
	if err != nil {
		return err
	}

	return printResult(cmd, saved, func(w io.Writer) {
		fmt.Fprintf(w, "saved %s (%s)\n", saved.Name, saved.ID)
		for _, c := range conflicts {
			fmt.Fprintf(w, "warning: %s\n", c)
		}
	})
}

func runTraitDelete(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	if err := a.provider.TraitService.DeleteTrait(cmd.Context(), args[0]); err != nil {
		return err
	}

	return printResult(cmd, map[string]string{"deleted": args[0]}, func(w io.Writer) {
		fmt.Fprintf(w, "deleted %s\n", args[0])
	})
}

func runModifiersList(cmd *cobra.Command, args []string) error {
	a, err := loadApp()
	if err != nil {
		return err
	}

	tax, err := a.provider.TraitService.ModifierTaxonomy(cmd.Context())
	if err != nil {
		return err
	}

	types := tax.Types()
	if flagModifierTarget != "" {
		types = tax.ForTarget(flagModifierTarget)
	}

	return printResult(cmd, types, func(w io.Writer) {
		for _, mt := range types {
			fmt.Fprintf(w, "%s\t%s\n", mt.Slug, mt.Name)
			for _, sub := range mt.Subtypes {
				fmt.Fprintf(w, "  %s\t%s\n", sub.Slug, sub.Name)
			}
		}
	})
}
