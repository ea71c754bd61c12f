package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/hotwatch/internal/core/domain"
)

var severitiesMin string

var doctypesCmd = &cobra.Command{
	Use:   "doctypes [type]",
	Short: "List documentation categories",
	Long: `List documentation categories. With an argument, check that it names a
known category and print its canonical form.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDoctypes,
}

var severitiesCmd = &cobra.Command{
	Use:   "severities",
	Short: "List error severity levels",
	Long:  `List error severity levels, least severe first.`,
	Args:  cobra.NoArgs,
	RunE:  runSeverities,
}

func init() {
	severitiesCmd.Flags().StringVar(&severitiesMin, "min", "", "only list severities at least this severe")
	rootCmd.AddCommand(doctypesCmd)
	rootCmd.AddCommand(severitiesCmd)
}

func runDoctypes(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		t, err := domain.ParseDocumentationType(args[0])
		if err != nil {
			return err
		}
		cmd.Println(t.String())
		return nil
	}

	for _, t := range domain.DocumentationTypes() {
		cmd.Println(t.String())
	}
	return nil
}

func runSeverities(cmd *cobra.Command, _ []string) error {
	floor := domain.SeverityInfo
	if severitiesMin != "" {
		parsed, err := domain.ParseErrorSeverity(severitiesMin)
		if err != nil {
			return err
		}
		floor = parsed
	}

	for _, s := range domain.ErrorSeverities() {
		if !s.IsAtLeastAsSevereAs(floor) {
			continue
		}
		cmd.Printf("%d  %-8s  %s\n", s.Level(), s.String(), s.Description())
	}
	return nil
}
