// Package mcp exposes the plate calculator and strength calculators as MCP
// tools, so an assistant on the same machine can answer "what do I put on
// the bar" against the user's real inventory.
package mcp

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/claude/liftkit/internal/plates"
	"github.com/claude/liftkit/internal/settings"
	"github.com/claude/liftkit/internal/strength"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(inv *plates.Inventory, mgr *settings.Manager, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("LiftKit", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("LiftKit barbell utilities. Compute plate loadouts against the user's plate inventory, estimate one-rep maxes, derive RPE working weights, and convert between kg and lbs."),
	)

	h := &handlers{inv: inv, settings: mgr, log: log}

	s.AddTools(
		server.ServerTool{Tool: toolLoadBarbell, Handler: h.loadBarbell},
		server.ServerTool{Tool: toolBarTotalWeight, Handler: h.barTotalWeight},
		server.ServerTool{Tool: toolEstimateOneRM, Handler: h.estimateOneRM},
		server.ServerTool{Tool: toolRPETargetWeight, Handler: h.rpeTargetWeight},
		server.ServerTool{Tool: toolConvertWeight, Handler: h.convertWeight},
	)

	s.AddResources(
		server.ServerResource{Resource: resInventory, Handler: h.inventory},
		server.ServerResource{Resource: resExercises, Handler: h.exercises},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	inv      *plates.Inventory
	settings *settings.Manager
	log      *slog.Logger
}

// --- Resource definitions ---

var resInventory = mcp.NewResource(
	"liftkit://inventory",
	"Plate Inventory",
	mcp.WithResourceDescription("The user's plate denominations with available counts, the active bar weight, and custom bars, plus the active display unit"),
	mcp.WithMIMEType("application/json"),
)

var resExercises = mcp.NewResource(
	"liftkit://exercises",
	"Exercise Catalog",
	mcp.WithResourceDescription("Built-in exercise names offered by the calculators"),
	mcp.WithMIMEType("application/json"),
)

func (h *handlers) inventory(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	snapshot := map[string]any{
		"inventory": h.inv.Snapshot(),
		"unit":      h.settings.Get().Unit(),
	}
	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) exercises(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.Marshal(strength.Exercises)
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
