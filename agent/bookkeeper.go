package agent

import (
	"context"
	"fmt"

	"github.com/etnz/tripsplit"
	"github.com/etnz/tripsplit/docs"
	"github.com/etnz/tripsplit/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is sharing expenses with friends on a trip. He primarily wants to know who paid
			what, who owes whom, and how to settle up. The user will assume that you know his trip,
			check with the Bookkeeper first to understand who the travelers are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewBookkeeper creates the expert in charge of the user's trip: it can read
// the ledger, compute balances and propose a settlement plan. The load
// function is called on every question so the expert always sees the current
// file.
func NewBookkeeper(load func() (*tripsplit.Trip, error), currencies tripsplit.CurrencySet) *Expert {
	lib := []Function{
		balancesFunc(load, currencies),
		settleFunc(load, currencies),
		logFunc(load),
	}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the user's trip ledger.
		He can list the travelers and their expenses, compute each traveler's balance, and
		propose the reimbursements that settle the trip.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are the bookkeeper of the user's shared trip.
				You know how to use the Tools to extract relevant information about the trip:
				  - the log of travelers, expenses and reimbursements
				  - the balance of each traveler in each currency
				  - the settlement plan that squares everyone

				You are part of a team of experts; they might ask you questions about the trip with
				approximative language, pardon them and figure out what they meant.

				` + must(docs.GetTopic("balances")),
			}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
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

func balancesFunc(load func() (*tripsplit.Trip, error), currencies tripsplit.CurrencySet) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Balances",
			Description: `Balances reports, per currency, what each traveler paid, their fair share,
			and their net balance. A positive balance means the group owes the traveler.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted balance report, one table per currency.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			trip, err := load()
			if err != nil {
				return errResponse(id, "Balances", fmt.Errorf("could not load trip: %w", err))
			}
			sheet := tripsplit.Aggregate(trip, currencies)
			return okResponse(id, "Balances", renderer.RenderBalances(renderer.NewBalanceReport(trip, sheet, currencies)))
		},
	}
}

func settleFunc(load func() (*tripsplit.Trip, error), currencies tripsplit.CurrencySet) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Settle",
			Description: `Settle computes the short list of reimbursements that squares every
			traveler, one list per currency.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted settlement plan.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			trip, err := load()
			if err != nil {
				return errResponse(id, "Settle", fmt.Errorf("could not load trip: %w", err))
			}
			sheet := tripsplit.Aggregate(trip, currencies)
			plan := tripsplit.PlanSettlement(sheet, currencies)
			return okResponse(id, "Settle", renderer.RenderSettlement(renderer.NewSettlementReport(trip, plan)))
		},
	}
}

func logFunc(load func() (*tripsplit.Trip, error)) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Log",
			Description: `Log lists every transaction of the trip in chronological order:
			traveler declarations, expenses and reimbursements. Optionally restricted to one traveler.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"traveler": {
						Type:        genai.TypeString,
						Description: "Restrict the log to transactions involving this traveler id.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of transactions.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			trip, err := load()
			if err != nil {
				return errResponse(id, "Log", fmt.Errorf("could not load trip: %w", err))
			}
			var filters []func(tripsplit.Transaction) bool
			if traveler, ok := args["traveler"].(string); ok && traveler != "" {
				filters = append(filters, tripsplit.ByTraveler(tripsplit.ParticipantID(traveler)))
			}
			md, err := renderer.LogMarkdown(trip, filters...)
			if err != nil {
				return errResponse(id, "Log", err)
			}
			return okResponse(id, "Log", md)
		},
	}
}
