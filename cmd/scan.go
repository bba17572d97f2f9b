package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Print installed skills as JSON",
	Long: `Scan the skills directory and print every skill as a JSON array.

Each entry has id, name, description and path. A missing skills
directory prints an empty array.`,
	Args: cobra.NoArgs,
	Run:  runScan,
}

func runScan(cmd *cobra.Command, args []string) {
	skills := scanSkills(mustPaths())

	out, err := json.MarshalIndent(skills, "", "  ")
	if err != nil {
		exitWithError(err.Error())
	}
	fmt.Println(string(out))
}
