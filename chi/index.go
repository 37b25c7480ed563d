package chi

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	scrapper "github.com/roman28tc/pricing-scrapper"
)

// handleIndex renders the form and, when a URL was submitted (POST
// form field or GET query parameter), runs the sweep and renders the
// results into the same page.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var rawURL string
	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err == nil {
			rawURL = r.PostFormValue("url")
		}
	} else {
		rawURL = r.URL.Query().Get("url")
	}

	data := pageData{URL: rawURL}
	if rawURL != "" {
		validated, err := validateURL(rawURL)
		if err == nil {
			var results []scrapper.PriceResult
			var pages int
			results, pages, err = s.Scraper.Site(r.Context(), validated)
			if err == nil {
				data.Results = results
				data.Scanned = true
				data.Summary = formatSummary(len(results), pages)
			}
		}
		if err != nil {
			data.Error = scrapper.ErrorMessage(err)
		}
	}

	s.render(w, data)
}

func (s *Server) render(w http.ResponseWriter, data pageData) {
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		s.Logger.Error("render", "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// validateURL accepts what a person would paste into the form: a full
// http(s) URL or a bare host, which gets an https scheme prepended.
func validateURL(value string) (string, error) {
	value = strings.TrimSpace(value)
	parsed, err := url.Parse(value)
	if err != nil || parsed.Scheme == "" {
		parsed, err = url.Parse("https://" + value)
	}
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		return "", scrapper.Errorf(scrapper.EINVALID, "Please provide a valid HTTP or HTTPS URL.")
	}
	return parsed.String(), nil
}

func formatSummary(productCount, pageCount int) string {
	pageWord := "pages"
	if pageCount == 1 {
		pageWord = "page"
	}
	return fmt.Sprintf("%d products have been scrapped from %d %s", productCount, pageCount, pageWord)
}

type pageData struct {
	URL     string
	Error   string
	Summary string
	Results []scrapper.PriceResult
	// Scanned distinguishes "no sweep ran" from "sweep found nothing".
	Scanned bool
}

var pageTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <title>Pricing Scraper</title>
    <style>
      body {
        font-family: system-ui, -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
        max-width: 900px;
        margin: 2rem auto;
        padding: 0 1.5rem;
        line-height: 1.5;
      }
      form {
        display: flex;
        gap: 0.5rem;
        flex-wrap: wrap;
        margin-bottom: 1.5rem;
      }
      input[type=url] {
        flex: 1 1 300px;
        padding: 0.6rem;
        font-size: 1rem;
      }
      button {
        padding: 0.6rem 1.2rem;
        font-size: 1rem;
        cursor: pointer;
      }
      table {
        width: 100%;
        border-collapse: collapse;
      }
      th, td {
        border-bottom: 1px solid #ccc;
        padding: 0.75rem;
        text-align: left;
      }
      th {
        background-color: rgba(0, 0, 0, 0.05);
      }
      tbody tr:nth-child(even) td {
        background-color: rgba(0, 0, 0, 0.03);
      }
      .error {
        color: #d32f2f;
        margin-bottom: 1rem;
      }
      .summary {
        font-weight: 600;
        margin-bottom: 0.75rem;
      }
    </style>
  </head>
  <body>
    <h1>Pricing Scraper</h1>
    <p>Paste the URL of a page that contains products with prices. The scraper will attempt to detect them and list the results.</p>
    <form method="post">
      <input type="url" name="url" value="{{.URL}}" placeholder="https://example.com/products" required>
      <button type="submit">Scrape</button>
    </form>
    {{if .Error}}<div class="error">{{.Error}}</div>{{end}}
    {{if .Summary}}<p class="summary">{{.Summary}}</p>{{end}}
    <table>
      <thead>
        <tr><th>Description</th><th>Price</th></tr>
      </thead>
      <tbody>
        {{range .Results}}<tr><td>{{.Description}}</td><td>{{.Price}}</td></tr>
        {{else}}{{if .Scanned}}<tr><td colspan="2">No prices were detected on the page.</td></tr>{{end}}{{end}}
      </tbody>
    </table>
  </body>
</html>
`))
