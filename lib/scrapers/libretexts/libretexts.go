package libretexts

import (
	"bytes"
	"context"
	"elementdata/lib/htmlutil"
	"elementdata/lib/periodic"
	"elementdata/lib/telemetry"
	"fmt"
	"strconv"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	"github.com/antzucaro/matchr"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("scrapers/libretexts")

// DefaultURL is the LibreTexts reference table of covalent radii.
const DefaultURL = "https://chem.libretexts.org/Ancillary_Materials/Reference/Reference_Tables/Atomic_and_Molecular_Properties/A3%3A_Covalent_Radii"

// tableSelector locates the radii table body inside the article markup.
// If LibreTexts restructures the page this stops matching and the run
// aborts with a structural error instead of reading wrong columns.
const tableSelector = "#elm-main-content > section > table > tbody"

// Cell offsets within a radii-table row: atomic number, symbol, element
// name, then single/double/triple bond radii.
const (
	cellSymbol     = 1
	cellSingleBond = 3
	cellDoubleBond = 4
	cellTripleBond = 5
)

// placeholder is what the table prints in place of an untabulated radius.
const placeholder = "-"

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
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	// the page rejects clients that don't look like a browser
	client.SetHeaders(map[string]string{
		"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:106.0) Gecko/20100101 Firefox/106.0",
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8",
		"Accept-Language": "en-US,en;q=0.5",
	})

	telemetry.InstrumentResty(client, "scrapers/libretexts/http")

	return &Client{
		url:  url,
		http: client,
	}
}

// MergeCovalentRadii fetches the covalent-radii table and sets the
// covalent field on the matching records of `table`. The table must
// already hold every element the page lists, i.e. the periodic-table
// load has to happen first; a symbol without a record is a fatal
// lookup error. A symbol listed twice keeps its last row.
func (c *Client) MergeCovalentRadii(ctx context.Context, table *periodic.Table) error {
	ctx, span := tracer.Start(ctx, "client:MergeCovalentRadii")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		Get(c.url)
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch covalent radii page")
		return fmt.Errorf("fetch covalent radii: %w", err)
	}
	if res.IsError() {
		span.SetStatus(codes.Error, "covalent radii request rejected")
		return fmt.Errorf("fetch covalent radii: status %s", res.Status())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse covalent radii page")
		return fmt.Errorf("parse covalent radii page: %w", err)
	}

	body := doc.Find(tableSelector)
	if len(body.Nodes) == 0 {
		span.SetStatus(codes.Error, "radii table missing")
		return fmt.Errorf("covalent radii table not found at %q, did the page markup change?", tableSelector)
	}

	rows := body.ChildrenFiltered("tr")
	merged := 0
	for i := range rows.Nodes {
		row := rows.Eq(i)

		cells := []string{}
		row.ChildrenFiltered("td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, htmlutil.CellText(cell))
		})
		if len(cells) <= cellTripleBond {
			return fmt.Errorf(
				"covalent radii row %d: got %d cells, need at least %d",
				i, len(cells), cellTripleBond+1,
			)
		}

		symbol := periodic.CanonicalSymbol(cells[cellSymbol])
		element, ok := table.Get(symbol)
		if !ok {
			return fmt.Errorf(
				"covalent radii row %d: element %q is not in the periodic table data (closest match %q)",
				i, symbol, closestSymbol(symbol, table.Symbols()),
			)
		}

		radii := &periodic.CovalentRadii{}
		for _, target := range []struct {
			cell int
			dst  *int
		}{
			{cellSingleBond, &radii.SingleBond},
			{cellDoubleBond, &radii.DoubleBond},
			{cellTripleBond, &radii.TripleBond},
		} {
			*target.dst, err = parseRadius(cells[target.cell])
			if err != nil {
				return fmt.Errorf("element %q: %w", symbol, err)
			}
		}

		element.Covalent = radii
		merged++
	}

	span.SetAttributes(attribute.Int("rows", merged))
	span.AddEvent("merged covalent radii", trace.WithAttributes(
		attribute.Int("elements", table.Len()),
	))
	return nil
}

// parseRadius reads a picometer radius cell, "-" meaning untabulated.
func parseRadius(s string) (int, error) {
	if s == placeholder {
		return periodic.Unknown, nil
	}
	radius, err := strconv.Atoi(s)
	if err != nil {
		return periodic.Unknown, fmt.Errorf("covalent radius %q: %w", s, err)
	}
	return radius, nil
}

func closestSymbol(symbol string, known []string) string {
	best := ""
	bestSim := 0.0
	for _, candidate := range known {
		sim := matchr.JaroWinkler(symbol, candidate, false)
		if sim > bestSim {
			best = candidate
			bestSim = sim
		}
	}
	return best
}
