package agent

import (
	"context"
	"fmt"

	"github.com/fliplog/fliplog"
	"github.com/fliplog/fliplog/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// newFacilitator wires the experts behind a conversation facilitator.
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclarations(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You facilitate the conversation and solve the user's request.

			The user runs a small resale operation: they buy lots, split them
			into items, sell the items, and track expenses and mileage. They
			are here to understand how their business is doing.

			Learn about the experts' skills from the Tools and ask them
			questions. They are at your service and keep the context of your
			previous questions. Devise the questions to ask and come up with
			the best response to the user's request.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewBookkeeper creates the expert that reads the user's ledger.
// The loader is called on every function call so the expert always
// sees the latest appended records.
func NewBookkeeper(load func() (*fliplog.Ledger, error)) *Expert {
	lib := []Function{
		lotOverview(load),
		periodSummary(load),
		staleInventory(load),
	}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. It reads the user's resale ledger
		and computes figures about lots, sales, expenses, mileage and profit.
		Ask it anything about the user's inventory or numbers.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclarations(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the bookkeeper of the user's resale ledger.
				Use the available tools to read the actual figures, never guess:
				  - lot overview with per-lot profit and ROI
				  - period summaries of revenue, spend, expenses and mileage
				  - stale inventory that sits unsold
				Other experts may relay user questions in approximate language,
				figure out what they meant.
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

func errResponse(id, name, msg string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": msg,
		},
	}
}

func okResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

func lotOverview(load func() (*fliplog.Ledger, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "LotOverview",
			Description: `LotOverview lists every lot with its item counts,
			revenue, total cost, net profit and ROI.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table with one row per lot.",
			},
		},
		Do: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			ledger, err := load()
			if err != nil {
				return errResponse(id, "LotOverview", err.Error())
			}
			var reports []*fliplog.LotReport
			for _, lot := range ledger.Lots() {
				reports = append(reports, fliplog.NewLotReport(&lot, ledger.ItemsOf(lot.ID), ledger.ExpensesOf(lot.ID)))
			}
			return okResponse(id, "LotOverview", renderer.LotsMarkdown(reports))
		},
	}
}

func periodSummary(load func() (*fliplog.Ledger, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "PeriodSummary",
			Description: `PeriodSummary aggregates a time range: revenue, lot
			spend, expenses, mileage deduction and net profit.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"period": {
						Type: genai.TypeString,
						Description: `The range preset: this_month, this_quarter,
						last_quarter, this_year, last_year, q1, q2, q3, q4 or all.
						Default is all.`,
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown summary of the period.",
			},
		},
		Do: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			name := "all"
			if p, ok := args["period"].(string); ok && p != "" {
				name = p
			}
			preset, err := fliplog.ParsePreset(name)
			if err != nil {
				return errResponse(id, "PeriodSummary", err.Error())
			}
			ledger, err := load()
			if err != nil {
				return errResponse(id, "PeriodSummary", err.Error())
			}
			r := fliplog.NewPeriodReport(ledger.Lots(), ledger.Items(), ledger.Expenses(), ledger.Trips(),
				preset.Range(fliplog.Today()))
			return okResponse(id, "PeriodSummary", renderer.SummaryMarkdown(r))
		},
	}
}

func staleInventory(load func() (*fliplog.Ledger, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "StaleInventory",
			Description: `StaleInventory lists items listed for longer than a
			threshold without selling.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"days": {
						Type:        genai.TypeNumber,
						Description: "The staleness threshold in days. Default is 30.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown table of stale items, oldest first.",
			},
		},
		Do: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			days := fliplog.DefaultStaleThresholdDays
			if d, ok := args["days"].(float64); ok {
				if d <= 0 {
					return errResponse(id, "StaleInventory", fmt.Sprintf("invalid threshold %v days", d))
				}
				days = int(d)
			}
			ledger, err := load()
			if err != nil {
				return errResponse(id, "StaleInventory", err.Error())
			}
			today := fliplog.Today()
			stale := fliplog.StaleItems(ledger.Items(), today, days)
			return okResponse(id, "StaleInventory", renderer.StaleMarkdown(stale, today, days))
		},
	}
}
