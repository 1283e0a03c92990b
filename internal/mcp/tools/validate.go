package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/sync/errgroup"
)

// ValidateSamplesInput is the input for typebridge_validate_samples.
type ValidateSamplesInput struct {
	Type    string   `json:"type" jsonschema:"required,Type annotation describing the expected shape"`
	Samples []string `json:"samples" jsonschema:"required,JSON documents to validate against the annotation"`
}

// ValidateSamplesOutput is the output for typebridge_validate_samples.
type ValidateSamplesOutput struct {
	Summary ValidationSummary  `json:"summary"`
	Results []SampleValidation `json:"results"`
}

// ValidationSummary summarizes the validation results.
type ValidationSummary struct {
	TotalSamples int  `json:"total_samples"`
	ValidCount   int  `json:"valid_count"`
	FailedCount  int  `json:"failed_count"`
	AllValid     bool `json:"all_valid"`
}

// SampleValidation contains the validation result for a single sample.
type SampleValidation struct {
	Index  int      `json:"index"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// ToolValidateSamples validates JSON samples against a type annotation.
// The compiled validator is cached by annotation text, and samples are
// validated concurrently since the compiled schema is read-only.
func ToolValidateSamples(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ValidateSamplesInput) (*sdkmcp.CallToolResult, ValidateSamplesOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ValidateSamplesInput) (*sdkmcp.CallToolResult, ValidateSamplesOutput, error) {
		if input.Type == "" {
			return nil, ValidateSamplesOutput{}, ErrInvalidInput("type is required")
		}
		if len(input.Samples) == 0 {
			return nil, ValidateSamplesOutput{}, ErrInvalidInput("at least one sample is required")
		}

		samples := input.Samples
		if len(samples) > d.Config.MaxSamples {
			samples = samples[:d.Config.MaxSamples]
		}

		validator, err := d.CompileValidator(input.Type)
		if err != nil {
			return nil, ValidateSamplesOutput{}, ErrSchema("compiling annotation", err)
		}

		results := make([]SampleValidation, len(samples))
		g, _ := errgroup.WithContext(ctx)
		for i, sample := range samples {
			g.Go(func() error {
				r := validator.Validate([]byte(sample))
				results[i] = SampleValidation{
					Index:  i,
					Valid:  r.Valid,
					Errors: r.Errors,
				}
				return nil
			})
		}
		// Workers only write their own slot and never fail.
		_ = g.Wait()

		summary := ValidationSummary{TotalSamples: len(samples)}
		for _, r := range results {
			if r.Valid {
				summary.ValidCount++
			} else {
				summary.FailedCount++
			}
		}
		summary.AllValid = summary.FailedCount == 0

		return nil, ValidateSamplesOutput{
			Summary: summary,
			Results: results,
		}, nil
	}
}
