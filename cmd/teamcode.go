package cmd

import (
	"fmt"

	"github.com/huangsam/teamdisc/core"
	"github.com/huangsam/teamdisc/internal/contract"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// teamcodeCmd prints freshly generated team codes.
var teamcodeCmd = &cobra.Command{
	Use:   "teamcode",
	Short: "Generate team codes to hand out with the assessment",
	Long: `Generate random team codes. Respondents enter a code with their submission
so that analytics can be filtered with --team.

Codes use an alphabet without easily confused characters (no 0, O, 1, I).

Examples:
  teamdisc teamcode --count 5`,
	Run: func(_ *cobra.Command, _ []string) {
		codes, err := core.GenerateTeamCodes(viper.GetInt("count"))
		if err != nil {
			contract.LogFatal("Failed to generate team codes", err)
		}
		for _, code := range codes {
			fmt.Println(code)
		}
	},
}
