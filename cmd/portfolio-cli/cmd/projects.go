package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/divyank00/portfolio/internal/domain"
	"github.com/divyank00/portfolio/web/src/templates/components"
	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List the featured projects found in the content directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		defer a.Close()

		projects := components.VisibleProjects(a.Content.Snapshot().Projects)
		if len(projects) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No featured projects found.")
			return nil
		}
		printProjects(cmd, projects)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(projectsCmd)
}

func printProjects(cmd *cobra.Command, projects []*domain.Project) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "DATE\tTITLE\tTECH\tLINK")
	fmt.Fprintln(w, "----\t-----\t----\t----")
	for _, p := range projects {
		date := "-"
		if !p.Date.IsZero() {
			date = p.Date.Format("2006-01-02")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", date, p.Title, strings.Join(p.Tech, ", "), p.CoverLink())
	}
	w.Flush()
}
