package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/claude/liftkit/internal/plates"
	"github.com/claude/liftkit/internal/strength"
	"github.com/claude/liftkit/internal/units"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Tool definitions ---

var toolLoadBarbell = mcp.NewTool("load_barbell",
	mcp.WithDescription("Compute the plates to load on each side of the bar for a target total weight, using the user's plate inventory. Returns the per-side plate counts and the achieved total; when the target cannot be hit exactly the result is flagged approximate."),
	mcp.WithNumber("target", mcp.Required(), mcp.Description("Target total weight including the bar")),
	mcp.WithNumber("bar", mcp.Description("Bar weight override. Defaults to the inventory's active bar.")),
)

var toolBarTotalWeight = mcp.NewTool("bar_total_weight",
	mcp.WithDescription("Compute the total weight of a loaded bar from the plates on one side. Plates are mirrored on both sides."),
	mcp.WithString("plates", mcp.Required(), mcp.Description(`JSON array of {"weight":number,"count":number} for one side, e.g. [{"weight":20,"count":2},{"weight":2.5,"count":1}]`)),
	mcp.WithNumber("bar", mcp.Description("Bar weight. Defaults to the inventory's active bar.")),
)

var toolEstimateOneRM = mcp.NewTool("estimate_one_rm",
	mcp.WithDescription("Estimate a one-rep max from a working set (Epley formula, adjusted by RPE). Also returns the standard training percentage table."),
	mcp.WithNumber("weight", mcp.Required(), mcp.Description("Weight lifted")),
	mcp.WithNumber("reps", mcp.Required(), mcp.Description("Reps performed")),
	mcp.WithNumber("rpe", mcp.Required(), mcp.Description("Rating of perceived exertion, 1-10")),
)

var toolRPETargetWeight = mcp.NewTool("rpe_target_weight",
	mcp.WithDescription("Compute the working weight for a target rep count and RPE given a known one-rep max, via the RPE percentage chart."),
	mcp.WithNumber("one_rm", mcp.Required(), mcp.Description("Known one-rep max")),
	mcp.WithNumber("reps", mcp.Required(), mcp.Description("Target reps, 1-10")),
	mcp.WithNumber("rpe", mcp.Required(), mcp.Description("Target RPE, 6.5-10 in half steps")),
)

var toolConvertWeight = mcp.NewTool("convert_weight",
	mcp.WithDescription("Convert a weight between kilograms and pounds."),
	mcp.WithNumber("value", mcp.Required(), mcp.Description("Weight value to convert")),
	mcp.WithString("from", mcp.Required(), mcp.Description("Source unit"), mcp.Enum("kg", "lbs")),
	mcp.WithString("to", mcp.Required(), mcp.Description("Destination unit"), mcp.Enum("kg", "lbs")),
)

// --- Tool handlers ---

func (h *handlers) loadBarbell(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	target, err := req.RequireFloat("target")
	if err != nil {
		return mcp.NewToolResultError("target parameter is required"), nil
	}
	bar := req.GetFloat("bar", 0)
	if bar <= 0 {
		bar = h.inv.BarWeight()
	}

	out, err := plates.ResolveForward(target, bar, h.inv.Denominations())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(out)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) barTotalWeight(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	platesJSON, err := req.RequireString("plates")
	if err != nil {
		return mcp.NewToolResultError("plates parameter is required"), nil
	}
	var counts []plates.PlateCount
	if err := json.Unmarshal([]byte(platesJSON), &counts); err != nil {
		return mcp.NewToolResultError("invalid plates JSON: " + err.Error()), nil
	}
	bar := req.GetFloat("bar", 0)
	if bar <= 0 {
		bar = h.inv.BarWeight()
	}

	load := plates.ReverseLoad{}
	for _, p := range counts {
		if p.Weight <= 0 || p.Count <= 0 {
			return mcp.NewToolResultError(fmt.Sprintf("invalid plate entry %+v: weight and count must be positive", p)), nil
		}
		load[p.Weight] += p.Count
	}

	result, err := mcp.NewToolResultJSON(map[string]float64{
		"total": plates.ResolveReverse(load, bar),
		"bar":   bar,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) estimateOneRM(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	weight, err := req.RequireFloat("weight")
	if err != nil {
		return mcp.NewToolResultError("weight parameter is required"), nil
	}
	reps, err := req.RequireInt("reps")
	if err != nil {
		return mcp.NewToolResultError("reps parameter is required"), nil
	}
	rpe, err := req.RequireFloat("rpe")
	if err != nil {
		return mcp.NewToolResultError("rpe parameter is required"), nil
	}

	oneRM, err := strength.OneRepMax(weight, reps, rpe)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"one_rm":      oneRM,
		"percentages": strength.PercentTable(oneRM),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) rpeTargetWeight(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	oneRM, err := req.RequireFloat("one_rm")
	if err != nil {
		return mcp.NewToolResultError("one_rm parameter is required"), nil
	}
	reps, err := req.RequireInt("reps")
	if err != nil {
		return mcp.NewToolResultError("reps parameter is required"), nil
	}
	rpe, err := req.RequireFloat("rpe")
	if err != nil {
		return mcp.NewToolResultError("rpe parameter is required"), nil
	}

	weight, err := strength.TargetWeight(oneRM, reps, rpe)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]float64{"weight": weight})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) convertWeight(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	value, err := req.RequireFloat("value")
	if err != nil {
		return mcp.NewToolResultError("value parameter is required"), nil
	}
	fromStr, err := req.RequireString("from")
	if err != nil {
		return mcp.NewToolResultError("from parameter is required"), nil
	}
	toStr, err := req.RequireString("to")
	if err != nil {
		return mcp.NewToolResultError("to parameter is required"), nil
	}

	from, err := units.Parse(fromStr)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	to, err := units.Parse(toStr)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"value": units.Convert(value, from, to),
		"unit":  to.Suffix(),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
