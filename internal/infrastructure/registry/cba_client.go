package registry

import (
	"context"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"distrito_racing/internal/domain/entities"
	"distrito_racing/internal/usecase/interfaces"

	"github.com/PuerkitoBio/goquery"
)

const defaultCBALookupURL = "https://pilotos.cba.org.br/api/geraConsultaPilotos"

// CBAClient queries the national federation's pilot lookup, which answers
// with an HTML results table rather than a structured payload.
//
// Lookups are best-effort: any transport or parse failure comes back as a
// not-found verification instead of an error.
type CBAClient struct {
	httpClient *http.Client
	baseURL    string
}

var _ interfaces.IPilotRegistry = (*CBAClient)(nil)

func NewCBAClient(baseURL string) *CBAClient {
	if baseURL == "" {
		baseURL = defaultCBALookupURL
	}
	return &CBAClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    baseURL,
	}
}

func (c *CBAClient) VerifyPilot(ctx context.Context, cpf string, year int) (entities.PilotVerification, error) {
	lookupURL, err := url.Parse(c.baseURL)
	if err != nil {
		return entities.PilotVerification{Found: false}, nil
	}
	q := lookupURL.Query()
	q.Set("flt_texto", cpf)
	q.Set("flt_ano", strconv.Itoa(year))
	lookupURL.RawQuery = q.Encode()

	log.Printf("[pilot][cba] lookup start cpf=%s year=%d", maskCPF(cpf), year)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL.String(), nil)
	if err != nil {
		return entities.PilotVerification{Found: false}, nil
	}
	req.Header.Set("Accept", "text/html")
	req.Header.Set("User-Agent", "DistritoRacing/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[pilot][cba] lookup request failed err=%v", err)
		return entities.PilotVerification{Found: false}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[pilot][cba] lookup unexpected status=%d", resp.StatusCode)
		io.Copy(io.Discard, resp.Body)
		return entities.PilotVerification{Found: false}, nil
	}

	return parseLookupHTML(resp.Body, year), nil
}

// parseLookupHTML extracts the first results row. Column layout: photo,
// license, name, pseudonym, category, federation, year, situation.
func parseLookupHTML(body io.Reader, year int) entities.PilotVerification {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		log.Printf("[pilot][cba] html parse failed err=%v", err)
		return entities.PilotVerification{Found: false}
	}

	firstRow := doc.Find("table tbody tr").First()
	if firstRow.Length() == 0 {
		log.Printf("[pilot][cba] no pilot found")
		return entities.PilotVerification{Found: false}
	}

	cells := firstRow.Find("td")
	if cells.Length() < 8 {
		log.Printf("[pilot][cba] unexpected row format cells=%d", cells.Length())
		return entities.PilotVerification{Found: false}
	}

	cellText := func(i int) string {
		return strings.TrimSpace(cells.Eq(i).Text())
	}

	photo, _ := cells.Eq(0).Find("img").Attr("src")
	membershipYear, err := strconv.Atoi(cellText(6))
	if err != nil {
		membershipYear = year
	}
	category := cellText(4)

	v := entities.PilotVerification{
		Found:            true,
		License:          cellText(1),
		Name:             cellText(2),
		Pseudonym:        cellText(3),
		Category:         category,
		Federation:       cellText(5),
		Year:             membershipYear,
		Situation:        cellText(7),
		Photo:            photo,
		IsValidForEvents: entities.IsAcceptedPilotCategory(category),
	}
	log.Printf("[pilot][cba] pilot found name=%s category=%s federation=%s year=%d", v.Name, v.Category, v.Federation, v.Year)

	return v
}

func maskCPF(cpf string) string {
	if len(cpf) < 5 {
		return "***"
	}
	return cpf[:3] + "***" + cpf[len(cpf)-2:]
}
