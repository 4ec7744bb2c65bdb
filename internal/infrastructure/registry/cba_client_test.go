package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const lookupResultHTML = `
<html><body>
<table>
  <tbody>
    <tr>
      <td><img src="https://cba.org.br/fotos/pilot-1.jpg"/></td>
      <td>12345</td>
      <td>AYRTON SENNA DA SILVA</td>
      <td>SENNA</td>
      <td>PGC-A</td>
      <td>FASP</td>
      <td>2026</td>
      <td>REGULAR</td>
    </tr>
    <tr>
      <td></td><td>99999</td><td>OUTRO PILOTO</td><td></td><td>PTD</td><td>FAUB</td><td>2026</td><td>REGULAR</td>
    </tr>
  </tbody>
</table>
</body></html>`

func TestCBAClient_VerifyPilot(t *testing.T) {
	t.Run("pilot found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("flt_texto") != "12345678901" {
				t.Fatalf("expected cpf filter, got %q", r.URL.Query().Get("flt_texto"))
			}
			if r.URL.Query().Get("flt_ano") != "2026" {
				t.Fatalf("expected year filter, got %q", r.URL.Query().Get("flt_ano"))
			}
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte(lookupResultHTML))
		}))
		defer srv.Close()

		c := NewCBAClient(srv.URL)
		v, err := c.VerifyPilot(context.Background(), "12345678901", 2026)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !v.Found {
			t.Fatalf("expected pilot found")
		}
		if v.License != "12345" || v.Name != "AYRTON SENNA DA SILVA" || v.Pseudonym != "SENNA" {
			t.Fatalf("unexpected pilot: %+v", v)
		}
		if v.Category != "PGC-A" || v.Federation != "FASP" || v.Year != 2026 || v.Situation != "REGULAR" {
			t.Fatalf("unexpected pilot: %+v", v)
		}
		if v.Photo != "https://cba.org.br/fotos/pilot-1.jpg" {
			t.Fatalf("expected photo src, got %q", v.Photo)
		}
		if !v.IsValidForEvents {
			t.Fatalf("PGC-A must be valid for events")
		}
	})

	t.Run("unlisted category is not valid for events", func(t *testing.T) {
		html := `<table><tbody><tr>
			<td></td><td>1</td><td>NOME</td><td></td><td>PK</td><td>FAUB</td><td>not-a-year</td><td>REGULAR</td>
		</tr></tbody></table>`
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(html))
		}))
		defer srv.Close()

		c := NewCBAClient(srv.URL)
		v, err := c.VerifyPilot(context.Background(), "12345678901", 2026)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !v.Found || v.IsValidForEvents {
			t.Fatalf("expected found but not valid, got %+v", v)
		}
		if v.Year != 2026 {
			t.Fatalf("expected year fallback to request year, got %d", v.Year)
		}
	})

	t.Run("empty results table", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<table><tbody></tbody></table>`))
		}))
		defer srv.Close()

		c := NewCBAClient(srv.URL)
		v, err := c.VerifyPilot(context.Background(), "12345678901", 2026)
		if err != nil || v.Found {
			t.Fatalf("expected not found without error, got v=%+v err=%v", v, err)
		}
	})

	t.Run("malformed row", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<table><tbody><tr><td>only</td><td>four</td><td>cells</td><td>here</td></tr></tbody></table>`))
		}))
		defer srv.Close()

		c := NewCBAClient(srv.URL)
		v, err := c.VerifyPilot(context.Background(), "12345678901", 2026)
		if err != nil || v.Found {
			t.Fatalf("expected not found without error, got v=%+v err=%v", v, err)
		}
	})

	t.Run("upstream error is not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		c := NewCBAClient(srv.URL)
		v, err := c.VerifyPilot(context.Background(), "12345678901", 2026)
		if err != nil || v.Found {
			t.Fatalf("expected not found without error, got v=%+v err=%v", v, err)
		}
	})

	t.Run("unreachable registry is not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		c := NewCBAClient(srv.URL)
		v, err := c.VerifyPilot(context.Background(), "12345678901", 2026)
		if err != nil || v.Found {
			t.Fatalf("expected not found without error, got v=%+v err=%v", v, err)
		}
	})
}

func TestMaskCPF(t *testing.T) {
	if got := maskCPF("12345678901"); got != "123***01" {
		t.Fatalf("unexpected mask: %q", got)
	}
	if got := maskCPF("123"); got != "***" {
		t.Fatalf("short values must be fully masked, got %q", got)
	}
}
