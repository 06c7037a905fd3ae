package extract

import (
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rotisserie/eris"

	"github.com/rsilvagit/jobsheet/internal/model"
)

// Card and text-block selectors. Cards are further narrowed by class name.
const (
	cardSelector  = "div[class]"
	blockSelector = "div, span, p"
	cardClassHint = "job"
)

// ParseError reports markup that could not be turned into a document.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Extractor turns a listing page into job records.
type Extractor struct {
	base  *url.URL
	rules []Rule
}

// New creates an Extractor resolving links against baseURL. With no rules
// given, DefaultRules is used.
func New(baseURL string, rules ...Rule) (*Extractor, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, eris.Wrapf(err, "extract: invalid base URL %q", baseURL)
	}
	if !base.IsAbs() {
		return nil, eris.Errorf("extract: base URL %q is not absolute", baseURL)
	}
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	return &Extractor{base: base, rules: rules}, nil
}

// ExtractHTML is Extract over an in-memory page.
func (e *Extractor) ExtractHTML(markup string) ([]model.JobRecord, error) {
	return e.Extract(strings.NewReader(markup))
}

// Extract parses one page and returns a record per job card, in document
// order. A page without cards yields an empty slice.
func (e *Extractor) Extract(r io.Reader) ([]model.JobRecord, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &ParseError{Err: eris.Wrap(err, "parsing HTML")}
	}

	jobs := []model.JobRecord{}
	doc.Find(cardSelector).FilterFunction(isCard).Each(func(i int, s *goquery.Selection) {
		jobs = append(jobs, e.parseCard(s))
	})
	return jobs, nil
}

func isCard(_ int, s *goquery.Selection) bool {
	class, _ := s.Attr("class")
	return strings.Contains(strings.ToLower(class), cardClassHint)
}

func (e *Extractor) parseCard(card *goquery.Selection) model.JobRecord {
	var job model.JobRecord

	if link := card.Find("a[href]").First(); link.Length() > 0 {
		job.Title = visibleText(link)
		href, _ := link.Attr("href")
		job.JobURL = e.resolve(href)
	}

	set := make(map[Field]bool, len(e.rules))
	card.Find(blockSelector).Each(func(_ int, block *goquery.Selection) {
		text := visibleText(block)
		if text == "" {
			return
		}
		lower := strings.ToLower(text)

		for _, rule := range e.rules {
			if set[rule.Field] || !rule.Match(text, lower) {
				continue
			}
			rule.Field.set(&job, rule.Value(text))
			set[rule.Field] = true
		}
	})

	return job
}

func (e *Extractor) resolve(href string) string {
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return ""
	}
	return e.base.ResolveReference(ref).String()
}
