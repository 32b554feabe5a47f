package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"telehealth-assistant/internal/assessment"
	"telehealth-assistant/internal/clinical"
	"telehealth-assistant/internal/knowledge"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the offline engine on a YAML or JSON request",
		Long: "Reads a request with symptoms and optional patient context and prints the\n" +
			"assessment as JSON. No network access or database is used.",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("input")
			var in io.Reader = cmd.InOrStdin()
			if path != "" && path != "-" {
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			raw, err := io.ReadAll(in)
			if err != nil {
				return err
			}
			return runAnalyze(raw, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringP("input", "i", "", "Request file (.yaml or .json); stdin when empty")
	return cmd
}

type analyzeOutput struct {
	*clinical.Assessment
	Disclaimer string `json:"disclaimer"`
}

// runAnalyze decodes a request and writes the engine's assessment. YAML is
// a superset of JSON, so one decoder serves both formats.
func runAnalyze(raw []byte, out io.Writer) error {
	var req assessment.Request
	if err := yaml.Unmarshal(raw, &req); err != nil {
		return fmt.Errorf("parse request: %w", err)
	}
	if len(req.Symptoms) == 0 {
		return errors.New("request has no symptoms")
	}

	kb, err := knowledge.Default()
	if err != nil {
		return err
	}
	engine, err := clinical.NewEngine(kb, clinical.DefaultConfig())
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(analyzeOutput{
		Assessment: engine.Analyze(req.Symptoms, req.Context),
		Disclaimer: assessment.Disclaimer,
	})
}
