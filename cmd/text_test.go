package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/jdlms/aws-costs/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	summary types.CostSummary
	err     error
}

func (s stubSource) GetCurrentMonth(context.Context) (types.CostSummary, error) {
	return s.summary, s.err
}

func TestPrintCurrentMonth(t *testing.T) {
	src := stubSource{summary: types.CostSummary{
		Period:    "March 2025",
		TotalCost: 300,
		Currency:  "USD",
		Breakdown: []types.ServiceCost{
			{Service: "Amazon Elastic Compute Cloud - Compute", Cost: 200, Percentage: 200.0 / 3},
			{Service: "Amazon Simple Storage Service", Cost: 100, Percentage: 100.0 / 3},
		},
	}}
	var out, errOut bytes.Buffer

	require.NoError(t, printCurrentMonth(context.Background(), src, &out, &errOut))

	text := out.String()
	assert.Contains(t, text, "AWS Costs for March 2025")
	assert.Contains(t, text, "Total: $300.00 USD")
	assert.Contains(t, text, "Elastic Compute Cloud - Compute")
	assert.NotContains(t, text, "Amazon ")
	assert.Contains(t, text, "66.7%")
	assert.Contains(t, text, "$100.00")
	assert.Empty(t, errOut.String())
}

func TestPrintCurrentMonth_RanksRawCosts(t *testing.T) {
	src := stubSource{summary: types.CostSummary{
		Period:    "March 2025",
		TotalCost: 300,
		Currency:  "USD",
		Breakdown: []types.ServiceCost{
			{Service: "Amazon S3", Cost: 100},
			{Service: "Amazon EC2", Cost: 200},
		},
	}}
	var out, errOut bytes.Buffer

	require.NoError(t, printCurrentMonth(context.Background(), src, &out, &errOut))

	text := out.String()
	assert.Contains(t, text, "66.7%")
	assert.Contains(t, text, "33.3%")
	assert.Less(t, strings.Index(text, "EC2"), strings.Index(text, "S3"))
}

func TestPrintCurrentMonth_NoServices(t *testing.T) {
	var out, errOut bytes.Buffer
	src := stubSource{summary: types.CostSummary{Period: "March 2025", Currency: "USD"}}

	require.NoError(t, printCurrentMonth(context.Background(), src, &out, &errOut))
	assert.Contains(t, out.String(), "No data available")
}

func TestPrintCurrentMonth_Failure(t *testing.T) {
	var out, errOut bytes.Buffer
	src := stubSource{err: assert.AnError}

	err := printCurrentMonth(context.Background(), src, &out, &errOut)

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "Make sure you have:")
	assert.Contains(t, errOut.String(), "ce:GetCostAndUsage permission")
}
