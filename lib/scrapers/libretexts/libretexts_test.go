package libretexts

import (
	"context"
	"elementdata/lib/periodic"
	"net/http"
	"net/http/httptest"
	"testing"

	_ "embed"

	"github.com/stretchr/testify/require"
)

//go:embed testdata/covalent_radii.html
var covalentRadiiFixture []byte

func fixtureServer(t *testing.T, body []byte) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(body)
	}))
	t.Cleanup(server.Close)
	return server
}

func baseTable() *periodic.Table {
	table := periodic.NewTable()
	for _, symbol := range []string{"H", "V", "Fe", "Nh", "Og"} {
		table.Put(symbol, &periodic.Element{
			Color:      periodic.UnknownColor,
			VanDerWaal: periodic.Unknown,
		})
	}
	return table
}

func TestMergeCovalentRadii(t *testing.T) {
	server := fixtureServer(t, covalentRadiiFixture)
	client := NewClient(ClientOptions{Url: server.URL})

	table := baseTable()
	err := client.MergeCovalentRadii(context.Background(), table)
	require.NoError(t, err)

	// the fixture lists hydrogen twice, the later row wins
	hydrogen, _ := table.Get("H")
	require.Equal(t, &periodic.CovalentRadii{
		SingleBond: 31,
		DoubleBond: periodic.Unknown,
		TripleBond: periodic.Unknown,
	}, hydrogen.Covalent)

	// lowercase "v" resolves to Vanadium
	vanadium, _ := table.Get("V")
	require.Equal(t, &periodic.CovalentRadii{
		SingleBond: 134,
		DoubleBond: 112,
		TripleBond: 106,
	}, vanadium.Covalent)

	// systematic "Uut" resolves to Nh, placeholder cells stay -1
	nihonium, _ := table.Get("Nh")
	require.Equal(t, &periodic.CovalentRadii{
		SingleBond: periodic.Unknown,
		DoubleBond: periodic.Unknown,
		TripleBond: 139,
	}, nihonium.Covalent)

	// not listed by the fixture at all
	oganesson, _ := table.Get("Og")
	require.Nil(t, oganesson.Covalent)
}

func TestMergeCovalentRadiiUnknownSymbol(t *testing.T) {
	server := fixtureServer(t, []byte(
		`<html><body><div id="elm-main-content"><section><table><tbody>
		<tr><td>26</td><td>Fé</td><td>iron</td><td>116</td><td>109</td><td>102</td></tr>
		</tbody></table></section></div></body></html>`,
	))
	client := NewClient(ClientOptions{Url: server.URL})

	table := baseTable()
	err := client.MergeCovalentRadii(context.Background(), table)
	require.ErrorContains(t, err, `"Fé" is not in the periodic table data`)
	require.ErrorContains(t, err, `"Fe"`)
}

func TestMergeCovalentRadiiBadMarkup(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"selector missing", `<html><body><table><tbody></tbody></table></body></html>`},
		{
			"short row",
			`<html><body><div id="elm-main-content"><section><table><tbody>
			<tr><td>1</td><td>H</td><td>hydrogen</td></tr>
			</tbody></table></section></div></body></html>`,
		},
		{
			"non-numeric radius",
			`<html><body><div id="elm-main-content"><section><table><tbody>
			<tr><td>1</td><td>H</td><td>hydrogen</td><td>n/a</td><td>-</td><td>-</td></tr>
			</tbody></table></section></div></body></html>`,
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			server := fixtureServer(t, []byte(test.body))
			client := NewClient(ClientOptions{Url: server.URL})

			err := client.MergeCovalentRadii(context.Background(), baseTable())
			require.Error(t, err)
		})
	}
}

func TestParseRadius(t *testing.T) {
	got, err := parseRadius("-")
	require.NoError(t, err)
	require.Equal(t, periodic.Unknown, got)

	got, err = parseRadius("139")
	require.NoError(t, err)
	require.Equal(t, 139, got)

	_, err = parseRadius("")
	require.Error(t, err)
}
