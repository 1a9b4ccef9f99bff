package pubchem

import (
	"context"
	"elementdata/lib/periodic"
	"elementdata/lib/telemetry"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/pubchem")

// DefaultURL is the periodic-table endpoint of PubChem's PUG REST api.
// response_type=display selects the tabular response parsed below.
const DefaultURL = "https://pubchem.ncbi.nlm.nih.gov/rest/pug/periodictable/JSON?response_type=display"

// Cell offsets within a display-table row. PubChem's display response
// orders cells as: atomic number, symbol, name, atomic mass, CPK hex
// color, electron configuration, electronegativity, van der Waals
// radius, and so on. Only the three below are read.
const (
	cellSymbol     = 1
	cellHexColor   = 4
	cellVanDerWaal = 7
)

type Client struct {
	url  string
	http *resty.Client
}

type ClientOptions struct {
	// Url overrides DefaultURL, mainly to point at a fixture server.
	Url string
}

func NewClient(opts ClientOptions) *Client {
	url := opts.Url
	if url == "" {
		url = DefaultURL
	}

	client := resty.New()
	client.SetTimeout(time.Second * 30)
	telemetry.InstrumentResty(client, "scrapers/pubchem/http")

	return &Client{
		url:  url,
		http: client,
	}
}

// display-table response shape, see DefaultURL
type tableResponse struct {
	Table struct {
		Row []struct {
			Cell []string `json:"Cell"`
		} `json:"Row"`
	} `json:"Table"`
}

// FetchTable downloads the periodic table and returns one record per
// element, keyed by symbol in row order, with color and van der Waals
// radius populated.
func (c *Client) FetchTable(ctx context.Context) (*periodic.Table, error) {
	ctx, span := tracer.Start(ctx, "client:FetchTable")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		Get(c.url)
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch periodic table")
		return nil, fmt.Errorf("fetch periodic table: %w", err)
	}
	if res.IsError() {
		span.SetStatus(codes.Error, "periodic table request rejected")
		return nil, fmt.Errorf("fetch periodic table: status %s", res.Status())
	}

	var body tableResponse
	err = json.Unmarshal(res.Body(), &body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to decode periodic table")
		return nil, fmt.Errorf("decode periodic table: %w", err)
	}
	if len(body.Table.Row) == 0 {
		span.SetStatus(codes.Error, "periodic table rows missing")
		return nil, fmt.Errorf("decode periodic table: no rows under Table.Row")
	}

	table := periodic.NewTable()
	for i, row := range body.Table.Row {
		if len(row.Cell) <= cellVanDerWaal {
			return nil, fmt.Errorf(
				"periodic table row %d: got %d cells, need at least %d",
				i, len(row.Cell), cellVanDerWaal+1,
			)
		}

		symbol := row.Cell[cellSymbol]
		color, err := parseHexColor(row.Cell[cellHexColor])
		if err != nil {
			return nil, fmt.Errorf("element %q: %w", symbol, err)
		}
		radius, err := parseRadius(row.Cell[cellVanDerWaal])
		if err != nil {
			return nil, fmt.Errorf("element %q: %w", symbol, err)
		}

		table.Put(symbol, &periodic.Element{
			Color:      color,
			VanDerWaal: radius,
		})
	}

	return table, nil
}

// parseHexColor decodes a 6-hex-digit rrggbb string. Any other length
// means the element has no tabulated color and yields the sentinel.
func parseHexColor(hex string) (periodic.Color, error) {
	if len(hex) != 6 {
		return periodic.UnknownColor, nil
	}

	color := periodic.Color{}
	for i := 0; i < 3; i++ {
		component, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return periodic.UnknownColor, fmt.Errorf("hex color %q: %w", hex, err)
		}
		color[i] = int(component)
	}
	return color, nil
}

// parseRadius reads a picometer radius cell, empty meaning untabulated.
func parseRadius(s string) (int, error) {
	if s == "" {
		return periodic.Unknown, nil
	}
	radius, err := strconv.Atoi(s)
	if err != nil {
		return periodic.Unknown, fmt.Errorf("van der waals radius %q: %w", s, err)
	}
	return radius, nil
}
