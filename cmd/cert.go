package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/certplan/internal/certification"
	"github.com/abhisek/certplan/internal/studyplan"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

var certCmd = &cobra.Command{
	Use:   "cert",
	Short: "Browse the certification catalog",
}

var certListCmd = &cobra.Command{
	Use:   "list",
	Short: "List certifications (optionally filtered by provider or role)",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd, false)
		if err != nil {
			return err
		}
		defer rt.Close()

		providerFlag, _ := cmd.Flags().GetString("provider")
		roleFlag, _ := cmd.Flags().GetString("role")

		certs := rt.catalog.All()
		if providerFlag != "" {
			p, err := parseProvider(providerFlag)
			if err != nil {
				return err
			}
			certs = lo.Filter(certs, func(c certification.Certification, _ int) bool { return c.Provider == p })
		}
		if roleFlag != "" {
			r, err := parseRole(roleFlag)
			if err != nil {
				return err
			}
			certs = lo.Filter(certs, func(c certification.Certification, _ int) bool { return c.HasRole(r) })
		}
		if len(certs) == 0 {
			return fmt.Errorf("no certifications match the given filters")
		}

		printCertTable(cmd.OutOrStdout(), certs)
		return nil
	},
}

var certShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a certification's exam topics and prerequisites",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd, false)
		if err != nil {
			return err
		}
		defer rt.Close()

		return printCertDetail(cmd.OutOrStdout(), rt.catalog, args[0])
	},
}

func init() {
	certListCmd.Flags().String("provider", "", "Filter by provider (aws, azure, gcp, vendor-neutral)")
	certListCmd.Flags().String("role", "", "Filter by career role (e.g. cloud-architect)")

	certCmd.AddCommand(certListCmd)
	certCmd.AddCommand(certShowCmd)
}

func printCertTable(w io.Writer, certs []certification.Certification) {
	fmt.Fprintf(w, "%-22s  %-46s  %-16s  %-12s  %s\n",
		"ID", "Name", "Provider", "Level", "Prerequisites")
	fmt.Fprintln(w, strings.Repeat("─", 118))

	for _, c := range certs {
		prereqs := strings.Join(c.Prerequisites, ", ")
		if prereqs == "" {
			prereqs = "-"
		}
		fmt.Fprintf(w, "%-22s  %-46s  %-16s  %-12s  %s\n",
			c.ID, truncate(c.Name, 46),
			certification.ProviderDisplayName(c.Provider), c.Level.Label(), prereqs)
	}

	fmt.Fprintf(w, "\n%d certifications\n", len(certs))
}

func printCertDetail(w io.Writer, catalog *certification.Catalog, id string) error {
	cert, err := catalog.Get(id)
	if err != nil {
		return err
	}
	chain, err := catalog.PrerequisiteChain(id)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s (%s)\n", cert.Name, cert.ID)
	fmt.Fprintf(w, "%s · %s · difficulty %d/5\n",
		certification.ProviderDisplayName(cert.Provider), cert.Level.Label(), cert.Difficulty)
	if cert.ExamCostUSD > 0 || cert.ExamMinutes > 0 {
		fmt.Fprintf(w, "Exam: $%d, %d minutes", cert.ExamCostUSD, cert.ExamMinutes)
		if cert.ValidityYears > 0 {
			fmt.Fprintf(w, ", valid %d years", cert.ValidityYears)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "%-48s  %6s  %6s\n", "Exam topic", "Weight", "Hours")
	fmt.Fprintln(w, strings.Repeat("─", 64))
	var total float64
	for _, t := range cert.ExamTopics {
		hours := studyplan.EstimateHours(t.Weight, cert.Difficulty)
		total += hours
		fmt.Fprintf(w, "%-48s  %5.0f%%  %6.1f\n", truncate(t.Name, 48), t.Weight, hours)
	}
	fmt.Fprintf(w, "%-48s  %6s  %6.1f\n", "Total", "", total)

	if len(chain) > 0 {
		names := make([]string, len(chain))
		for i, c := range chain {
			names[i] = c.ID
		}
		fmt.Fprintf(w, "\nPrerequisites: %s\n", strings.Join(names, " → "))
	}
	if deps := catalog.Dependents(id); len(deps) > 0 {
		fmt.Fprintf(w, "Unlocks: %s\n", strings.Join(deps, ", "))
	}
	return nil
}
