package agent

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/skaur/folio"
	"github.com/skaur/folio/render"
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

			Learn about the expert skills you can reach through the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to get information about the stock portfolios he tracks.
			Devise a plan of questions to ask each expert and come up with the best response to the user's request.

			The user will assume that you know about his portfolios and tickers, check them first.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher returns an expert that grounds market questions in search.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert market researcher,
		well aware of financial products and institutions and of
		the latest news about companies.
		Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in stock markets, you can search and find anything related to
			companies, markets and funds. You leverage Google Search to ground your assertions.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewAnalyst returns the expert in charge of the user's saved portfolios.
// Its tools read the given store and price holdings through quotes.
func NewAnalyst(store *folio.FileStore, quotes folio.QuoteService) *Expert {
	lib := analystTools(store, quotes)
	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He is in charge of reading the user's saved portfolios.
		He can list them, inspect their holdings, value them on any date and sample their
		historical performance.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's stock portfolios.
				You know how to use the Tools to extract relevant information about them.
				You are part of a team of experts, yours is everything stored in the user's portfolios.
				They might ask you questions in approximative language, figure out what they meant.

				Use the available tools to get
				  - the list of saved portfolios
				  - the holdings of a portfolio
				  - the value and value distribution on a date
				  - the sampled historical performance
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

func analystTools(store *folio.FileStore, quotes folio.QuoteService) []Function {
	return []Function{
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "ListPortfolios",
				Description: "ListPortfolios returns the names of all the user's saved portfolios.",
				Parameters:  &genai.Schema{Type: genai.TypeObject},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "One portfolio name per line.",
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				names, err := store.ListNames()
				if err != nil {
					return errResponse(id, "ListPortfolios", err)
				}
				return okResponse(id, "ListPortfolios", strings.Join(names, "\n"))
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name: "Holdings",
				Description: `Holdings returns the per-ticker share counts of a portfolio on a date,
				as a markdown table.`,
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"portfolio": {Type: genai.TypeString, Description: "The name of a saved portfolio."},
						"date":      {Type: genai.TypeString, Description: "The date, YYYY-MM-DD. Today is the default."},
					},
					Required: []string{"portfolio"},
				},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown table of tickers and share counts.",
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				p, on, err := loadArgs(store, args)
				if err != nil {
					return errResponse(id, "Holdings", err)
				}
				return okResponse(id, "Holdings", render.HoldingsMarkdown(p, on))
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name: "Valuation",
				Description: `Valuation returns the total value of a portfolio on a date and its
				per-ticker breakdown with percentage shares, as a markdown table.`,
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"portfolio": {Type: genai.TypeString, Description: "The name of a saved portfolio."},
						"date":      {Type: genai.TypeString, Description: "The date, YYYY-MM-DD. Today is the default."},
					},
					Required: []string{"portfolio"},
				},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown table of tickers, values and percentage shares, with the total.",
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				p, on, err := loadArgs(store, args)
				if err != nil {
					return errResponse(id, "Valuation", err)
				}
				dist, err := folio.Distribution(p, on, quotes)
				if err != nil {
					return errResponse(id, "Valuation", err)
				}
				total, err := folio.Value(p, on, quotes)
				if err != nil {
					return errResponse(id, "Valuation", err)
				}
				return okResponse(id, "Valuation", render.DistributionMarkdown(p.Name(), on, dist, total))
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name: "Performance",
				Description: `Performance samples the value of a portfolio's current holdings over a
				historical window ending today, as a markdown table.`,
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"portfolio": {Type: genai.TypeString, Description: "The name of a saved portfolio."},
						"days":      {Type: genai.TypeInteger, Description: "The span in days: 365, 180, 90, 30, 14 or 5."},
					},
					Required: []string{"portfolio", "days"},
				},
				Response: &genai.Schema{
					Type:        genai.TypeString,
					Description: "A markdown table of sample dates and values, newest first.",
				},
			},
			Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
				p, _, err := loadArgs(store, args)
				if err != nil {
					return errResponse(id, "Performance", err)
				}
				days, ok := args["days"].(float64)
				if !ok {
					return errResponse(id, "Performance", fmt.Errorf("argument 'days' is not a number but %T", args["days"]))
				}
				series, err := folio.Performance(p, int(days), folio.Today(), quotes)
				if err != nil {
					return errResponse(id, "Performance", err)
				}
				return okResponse(id, "Performance", render.PerformanceMarkdown(p.Name(), int(days), series))
			},
		},
	}
}

// loadArgs resolves the portfolio and date arguments common to the tools.
func loadArgs(store *folio.FileStore, args map[string]any) (*folio.Portfolio, folio.Date, error) {
	name, ok := args["portfolio"].(string)
	if !ok {
		return nil, folio.Date{}, fmt.Errorf("argument 'portfolio' is not a string but %T", args["portfolio"])
	}
	p, err := store.Load(name)
	if err != nil {
		return nil, folio.Date{}, err
	}
	on, err := parseDate(args)
	if err != nil {
		return nil, folio.Date{}, err
	}
	return p, on, nil
}

func parseDate(args map[string]any) (folio.Date, error) {
	idate, hasDate := args["date"]
	if !hasDate {
		return folio.Today(), nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return folio.Today(), fmt.Errorf("argument 'date' is not a string as expected but %T", idate)
	}
	on, err := folio.ParseDate(sdate)
	if err != nil {
		return folio.Today(), fmt.Errorf("argument 'date' must be a valid YYYY-MM-DD date, got %q", sdate)
	}
	return on, nil
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"error": err.Error()},
	}
}

func okResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:       id,
		Name:     name,
		Response: map[string]any{"output": output},
	}
}
