package aws

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	awstypes "github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/cockroachdb/errors"
	"github.com/jdlms/aws-costs/internal/aggregate"
	"github.com/jdlms/aws-costs/internal/types"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	costMetric      = "UnblendedCost"
	defaultCurrency = "USD"
	// trendConcurrency caps in-flight requests while loading the trend
	trendConcurrency = 3
)

// costFloor drops services whose spend rounds to nothing
var costFloor = decimal.RequireFromString("0.001")

// GetCurrentMonth returns the month-to-date costs by service
func (c *Client) GetCurrentMonth(ctx context.Context) (types.CostSummary, error) {
	return c.summaryFor(ctx, currentMonthPeriod(c.now()))
}

// GetPreviousMonth returns last month's costs by service
func (c *Client) GetPreviousMonth(ctx context.Context) (types.CostSummary, error) {
	return c.summaryFor(ctx, previousMonthPeriod(c.now()))
}

// GetTrend returns the last months of costs, oldest first. Months that fail
// to load are logged and left out, so the result may be shorter than asked.
func (c *Client) GetTrend(ctx context.Context, months int) ([]types.CostSummary, error) {
	if months < 1 {
		return nil, errors.Newf("trend needs at least one month, got %d", months)
	}

	now := c.now()
	// slot i holds the month i months back
	slots := make([]*types.CostSummary, months)

	var g errgroup.Group
	g.SetLimit(trendConcurrency)
	for i := 0; i < months; i++ {
		p := monthPeriod(now, i)
		g.Go(func() error {
			summary, err := c.summaryFor(ctx, p)
			if err != nil {
				c.log.Warnw("skipping trend month", "period", p.Label, "error", err)
				return nil
			}
			slots[i] = &summary
			return nil
		})
	}
	_ = g.Wait()

	trend := make([]types.CostSummary, 0, months)
	for i := months - 1; i >= 0; i-- {
		if slots[i] != nil {
			trend = append(trend, *slots[i])
		}
	}
	return trend, nil
}

// summaryFor fetches one period, reusing an earlier result for the same window
func (c *Client) summaryFor(ctx context.Context, p period) (types.CostSummary, error) {
	if cached, ok := c.cache.Get(p.key()); ok {
		c.log.Debugw("cost summary cache hit", "period", p.Label)
		return cached, nil
	}

	groups, err := c.fetchGroups(ctx, p)
	if err != nil {
		return types.CostSummary{}, err
	}

	summary := summarize(p.Label, groups)
	c.cache.Set(p.key(), summary)
	c.log.Debugw("fetched cost summary",
		"period", p.Label,
		"total", summary.TotalCost,
		"services", len(summary.Breakdown),
	)
	return summary, nil
}

// fetchGroups pages through GetCostAndUsage for a period grouped by service
func (c *Client) fetchGroups(ctx context.Context, p period) ([]awstypes.Group, error) {
	interval := p.interval()
	input := &costexplorer.GetCostAndUsageInput{
		TimePeriod:  &interval,
		Granularity: awstypes.GranularityMonthly,
		Metrics:     []string{costMetric},
		GroupBy: []awstypes.GroupDefinition{{
			Type: awstypes.GroupDefinitionTypeDimension,
			Key:  aws.String("SERVICE"),
		}},
	}

	var groups []awstypes.Group
	for {
		reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
		out, err := c.api.GetCostAndUsage(reqCtx, input)
		cancel()
		if err != nil {
			if errors.Is(err, context.DeadlineExceeded) {
				return nil, errors.Wrapf(err, "cost request for %s timed out after %s", p.Label, requestTimeout)
			}
			return nil, errors.Wrapf(err, "get cost and usage for %s", p.Label)
		}

		for _, result := range out.ResultsByTime {
			groups = append(groups, result.Groups...)
		}

		if out.NextPageToken == nil || *out.NextPageToken == "" {
			return groups, nil
		}
		input.NextPageToken = out.NextPageToken
	}
}

// summarize turns raw groups into a summary sorted by descending cost with
// percentages filled in
func summarize(label string, groups []awstypes.Group) types.CostSummary {
	total := decimal.Zero
	currency := defaultCurrency
	var breakdown []types.ServiceCost

	for _, group := range groups {
		metric, ok := group.Metrics[costMetric]
		if !ok || metric.Amount == nil {
			continue
		}
		amount, err := decimal.NewFromString(*metric.Amount)
		if err != nil || !amount.GreaterThan(costFloor) {
			continue
		}

		name := "Unknown"
		if len(group.Keys) > 0 {
			name = group.Keys[0]
		}
		if metric.Unit != nil && *metric.Unit != "" {
			currency = *metric.Unit
		}

		total = total.Add(amount)
		breakdown = append(breakdown, types.ServiceCost{
			Service: name,
			Cost:    amount.InexactFloat64(),
		})
	}

	summary := types.CostSummary{
		Period:    label,
		TotalCost: total.InexactFloat64(),
		Currency:  currency,
		Breakdown: breakdown,
	}
	summary.Breakdown = aggregate.ComputePercentages(summary)
	return summary
}
