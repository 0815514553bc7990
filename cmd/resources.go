package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/certplan/internal/certification"
	"github.com/abhisek/certplan/internal/resources"
	"github.com/spf13/cobra"
)

var resourcesCmd = &cobra.Command{
	Use:   "resources <cert-id>",
	Short: "Recommend study resources for a certification",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd, false)
		if err != nil {
			return err
		}
		defer rt.Close()

		cert, err := rt.catalog.Get(args[0])
		if err != nil {
			return err
		}

		kindFlags, _ := cmd.Flags().GetStringSlice("kind")
		maxCost, _ := cmd.Flags().GetFloat64("max-cost")
		free, _ := cmd.Flags().GetBool("free")
		limit, _ := cmd.Flags().GetInt("limit")

		prefs := resources.DefaultPreferences()
		if prefs.Kinds, err = parseKinds(kindFlags); err != nil {
			return err
		}
		if cmd.Flags().Changed("max-cost") {
			if maxCost < 0 {
				return fmt.Errorf("--max-cost must not be negative, got %g", maxCost)
			}
			prefs.MaxCostUSD = maxCost
		}
		prefs.FreeOnly = free

		recs := resources.DefaultLibrary().Recommend(cert, prefs, limit)
		printRecommendations(cmd.OutOrStdout(), cert, recs)
		return nil
	},
}

func init() {
	resourcesCmd.Flags().StringSlice("kind", nil, "Preferred kinds: course, practice-exam, docs, labs, book, video")
	resourcesCmd.Flags().Float64("max-cost", 0, "Maximum price in USD (0 for free resources only)")
	resourcesCmd.Flags().Bool("free", false, "Only free resources")
	resourcesCmd.Flags().Int("limit", 5, "Maximum number of recommendations (0 for all)")
}

func printRecommendations(w io.Writer, cert certification.Certification, recs []resources.Recommendation) {
	fmt.Fprintf(w, "Resources for %s\n\n", cert.Name)
	if len(recs) == 0 {
		fmt.Fprintln(w, "No resources match your preferences.")
		return
	}

	fmt.Fprintf(w, "%-48s  %-14s  %7s  %6s  %5s\n", "Title", "Kind", "Cost", "Rating", "Score")
	fmt.Fprintln(w, strings.Repeat("─", 88))
	for _, r := range recs {
		cost := "Free"
		if !r.Resource.Free() {
			cost = fmt.Sprintf("$%.2f", r.Resource.CostUSD)
		}
		fmt.Fprintf(w, "%-48s  %-14s  %7s  %6.1f  %5.1f\n",
			truncate(r.Resource.Title, 48), r.Resource.Kind.Label(), cost, r.Resource.Rating, r.Score)
		if r.Resource.URL != "" {
			fmt.Fprintf(w, "  %s\n", r.Resource.URL)
		}
	}
}
