package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/huangsam/teamdisc/core"
	"github.com/huangsam/teamdisc/internal/contract"
	"github.com/huangsam/teamdisc/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// scoreCmd scores one questionnaire and optionally stores the result.
var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a DISC and Driving Forces questionnaire",
	Long: `Score one completed questionnaire and print the resulting profile.

Answers come from flags or from a JSON submission:
- --answers takes comma-separated most:least pairs, e.g. D:I,S:C
- --forces takes comma-separated pole codes, e.g. KI,UR,SO
- --input reads a JSON submission from a file, or stdin with "-"

The global --department and --team flags name the respondent's department
and team code. Without --save, nothing is written to the profile store.

Examples:
  # Score two DISC items
  teamdisc score --name Ada --department Engineering --answers D:I,C:S

  # Score and store a JSON submission
  teamdisc score --input submission.json --save`,
	PreRunE: sharedSetupWrapper,
	Run: func(cmd *cobra.Command, _ []string) {
		sub, err := submissionFromFlags(cmd.InOrStdin())
		if err != nil {
			contract.LogFatal("Invalid submission", err)
		}

		if !viper.GetBool("save") {
			p, err := scoreOnly(sub, time.Now().UTC())
			if err != nil {
				contract.LogFatal("Failed to score submission", err)
			}
			if err := writer.WriteProfile(p, cfg); err != nil {
				contract.LogFatal("Failed to write profile", err)
			}
			return
		}

		svc, repo, err := openService(rootCtx)
		if err != nil {
			contract.LogFatal("Failed to open profile store", err)
		}
		defer closeRepo(repo)

		p, err := svc.Submit(rootCtx, sub)
		if err != nil {
			contract.LogFatal("Failed to save profile", err)
		}
		if err := writer.WriteProfile(p, cfg); err != nil {
			contract.LogFatal("Failed to write profile", err)
		}
	},
}

// scoreOnly validates and scores a submission without storing it.
func scoreOnly(sub schema.AssessmentSubmission, now time.Time) (schema.Profile, error) {
	if err := core.ValidateDiscAnswers(sub.DiscAnswers); err != nil {
		return schema.Profile{}, err
	}
	if err := core.ValidatePoleChoices(sub.ForceChoices); err != nil {
		return schema.Profile{}, err
	}

	var forces *schema.DrivingForceResult
	if len(sub.ForceChoices) > 0 {
		result := core.ScoreDrivingForces(sub.ForceChoices)
		forces = &result
	}
	return schema.NewProfile(sub.Identity, core.ScoreDisc(sub.DiscAnswers), forces, now), nil
}

// submissionFromFlags assembles a submission from --input or the answer flags.
// Identity flags override the fields of an input file when set.
func submissionFromFlags(stdin io.Reader) (schema.AssessmentSubmission, error) {
	var sub schema.AssessmentSubmission
	if path := viper.GetString("input"); path != "" {
		var err error
		if sub, err = readSubmission(path, stdin); err != nil {
			return sub, err
		}
	}

	if raw := viper.GetString("answers"); raw != "" {
		answers, err := parseDiscAnswers(raw)
		if err != nil {
			return sub, err
		}
		sub.DiscAnswers = answers
	}
	if raw := viper.GetString("forces"); raw != "" {
		choices, err := parsePoleChoices(raw)
		if err != nil {
			return sub, err
		}
		sub.ForceChoices = choices
	}

	for key, target := range map[string]*string{
		"name":       &sub.Name,
		"email":      &sub.Email,
		"department": &sub.Department,
		"team":       &sub.TeamCode,
	} {
		if v := viper.GetString(key); v != "" {
			*target = v
		}
	}

	if len(sub.DiscAnswers) == 0 {
		return sub, fmt.Errorf("%w: provide --answers or --input", contract.ErrInvalidAssessment)
	}
	return sub, nil
}

// readSubmission decodes a JSON submission from path, or from stdin when path is "-".
func readSubmission(path string, stdin io.Reader) (schema.AssessmentSubmission, error) {
	var sub schema.AssessmentSubmission
	r := stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return sub, fmt.Errorf("failed to open submission: %w", err)
		}
		defer func() { _ = f.Close() }()
		r = f
	}
	if err := json.NewDecoder(r).Decode(&sub); err != nil {
		return sub, fmt.Errorf("failed to decode submission: %w", err)
	}
	return sub, nil
}

// parseDiscAnswers parses comma-separated most:least pairs such as "D:I,S:C".
func parseDiscAnswers(raw string) ([]schema.DiscAnswer, error) {
	var answers []schema.DiscAnswer
	for item := range strings.SplitSeq(raw, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		most, least, ok := strings.Cut(item, ":")
		if !ok {
			return nil, fmt.Errorf("invalid answer %q (expected most:least)", item)
		}
		m, err := schema.ParseTrait(most)
		if err != nil {
			return nil, err
		}
		l, err := schema.ParseTrait(least)
		if err != nil {
			return nil, err
		}
		answers = append(answers, schema.DiscAnswer{Most: m, Least: l})
	}
	return answers, nil
}

// parsePoleChoices parses comma-separated pole codes such as "KI,UR".
func parsePoleChoices(raw string) ([]schema.Pole, error) {
	var choices []schema.Pole
	for code := range strings.SplitSeq(raw, ",") {
		if strings.TrimSpace(code) == "" {
			continue
		}
		p, err := schema.ParsePole(code)
		if err != nil {
			return nil, err
		}
		choices = append(choices, p)
	}
	return choices, nil
}
