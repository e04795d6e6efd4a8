package cli

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"care-companion/internal/assessment"
)

// NewAssessCommand builds the interactive terminal assessment.
func NewAssessCommand(engine *assessment.Engine) *cobra.Command {
	var (
		audience string
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Take the mental wellness self-assessment in the terminal",
		Long: `Walks through the wellness questions one at a time. Answer each question
with the number of the option that fits best. Results and recommended
resources are printed at the end.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := engine.StartSession(assessment.Audience(audience))
			if err := runQuestions(sess, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				return err
			}

			res, err := sess.Result()
			if err != nil {
				return err
			}
			recs, err := sess.Recommendations()
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					Result    assessment.Result     `json:"result"`
					Resources []assessment.Resource `json:"resources"`
				}{res, recs})
			}
			printResult(cmd.OutOrStdout(), res, recs)
			return nil
		},
	}

	cmd.Flags().StringVarP(&audience, "audience", "a", string(assessment.AudienceSenior), "audience tag (all, senior)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	return cmd
}

func runQuestions(sess *assessment.Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for sess.State() == assessment.StateCollecting {
		item, err := sess.CurrentQuestion()
		if err != nil {
			return err
		}
		answered, total := sess.Progress()

		fmt.Fprintf(out, "\nQuestion %d of %d\n%s\n", answered+1, total, item.Question)
		for i, opt := range item.Options {
			fmt.Fprintf(out, "  %d) %s\n", i+1, opt.Text)
		}

		for {
			fmt.Fprint(out, "> ")
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return err
				}
				return errors.New("input ended before the assessment was complete")
			}
			choice, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
			if err != nil || choice < 1 || choice > len(item.Options) {
				fmt.Fprintf(out, "Please enter a number between 1 and %d.\n", len(item.Options))
				continue
			}
			if _, err := sess.Answer(item.Options[choice-1].Value); err != nil {
				return err
			}
			break
		}
	}
	return nil
}

func severityColor(s assessment.Severity) *color.Color {
	switch s {
	case assessment.SeverityHigh:
		return color.New(color.FgRed, color.Bold)
	case assessment.SeverityModerate:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgGreen)
	}
}

func printResult(out io.Writer, res assessment.Result, recs []assessment.Resource) {
	bold := color.New(color.Bold)

	fmt.Fprintln(out)
	bold.Fprintf(out, "Wellness score: %d%% (%s)\n", res.OverallScore, res.Band)

	if res.CrisisFlagged {
		color.New(color.FgRed, color.Bold).Fprintln(out,
			"If you are having thoughts of harming yourself, please call or text 988 now, or contact emergency services.")
	}

	fmt.Fprintln(out)
	for _, cr := range res.CategoryResults {
		fmt.Fprintf(out, "%-20s %3.0f%%  ", cr.CategoryLabel, cr.SeverityPercentage)
		severityColor(cr.Severity).Fprintln(out, cr.Severity)
		fmt.Fprintf(out, "  %s\n", cr.Interpretation)
	}

	fmt.Fprintln(out)
	bold.Fprintln(out, "Recommended resources:")
	for _, r := range recs {
		fmt.Fprintf(out, "  - %s [%s]\n    %s\n", r.Title, r.Category, r.Link)
	}
}
