package services

import (
	"context"
	"fmt"
	"log"

	"webstar/email-hunter-api/internal/dto"
	"webstar/email-hunter-api/internal/extractor"
	"webstar/email-hunter-api/internal/handlers"
)

// HuntService runs the email hunt pipeline: web search, page scraping,
// email extraction, and optional AI contact enrichment.
type HuntService struct {
	searchHandler *handlers.WebSearchHandler
	scrapeHandler *handlers.FirecrawlHandler
	enrichHandler *handlers.ContactExtractorHandler
}

// NewHuntService creates a new HuntService instance. The search and scrape
// handlers are required. The enrichment handler may be nil, in which case
// sources are returned without company or contact details.
func NewHuntService(searchHandler *handlers.WebSearchHandler, scrapeHandler *handlers.FirecrawlHandler, enrichHandler *handlers.ContactExtractorHandler) *HuntService {
	return &HuntService{
		searchHandler: searchHandler,
		scrapeHandler: scrapeHandler,
		enrichHandler: enrichHandler,
	}
}

// Hunt processes a hunt request end to end. Scrape failures on individual
// pages are reported per source; only a failed search aborts the hunt.
func (s *HuntService) Hunt(ctx context.Context, request dto.HuntRequest) (*dto.HuntResponse, error) {
	log.Printf("[HuntService] Starting hunt: query=%q, location=%q, max_results=%d",
		request.Query, request.Location, request.MaxResults)

	// 1. Search the web for candidate pages
	searchResponse, err := s.searchHandler.Search(handlers.SearchParams{
		Query:          request.Query,
		Location:       request.Location,
		ExcludeDomains: request.ExcludeDomains,
		MaxResults:     request.MaxResults,
	})
	if err != nil {
		return nil, fmt.Errorf("web search failed: %w", err)
	}

	response := &dto.HuntResponse{
		Success:      true,
		Query:        request.Query,
		Sources:      []dto.HuntSource{},
		Emails:       []string{},
		PagesFetched: searchResponse.PagesFetched,
	}

	// 2. Collect result links to scrape, dropping duplicates
	links, titles := collectLinks(searchResponse.Results)
	if len(links) == 0 {
		log.Printf("[HuntService] No usable links for query %q", request.Query)
		return response, nil
	}

	// 3. Scrape all candidate pages
	pages := s.scrapeHandler.ScrapePages(ctx, links)

	// 4. Extract emails from each scraped page
	sources, emailGroups := buildSources(pages, titles)

	// 5. Enrich successfully scraped pages with contact details
	if s.enrichHandler != nil {
		contactSources := make([]handlers.ContactSource, 0, len(pages))
		for i, page := range pages {
			if !page.Success {
				continue
			}
			contactSources = append(contactSources, handlers.ContactSource{
				URL:     page.URL,
				Title:   titles[i],
				Content: page.Markdown,
			})
		}
		if len(contactSources) > 0 {
			infoMap := s.enrichHandler.ExtractFromSources(ctx, contactSources)
			applyContactInfo(sources, infoMap)
		}
	}

	// 6. Merge emails across all sources
	response.Sources = sources
	response.SourcesScanned = len(sources)
	response.Emails = extractor.MergeEmails(emailGroups...)
	response.Count = len(response.Emails)

	log.Printf("[HuntService] Hunt complete: query=%q, sources=%d, emails=%d",
		request.Query, response.SourcesScanned, response.Count)
	return response, nil
}

// collectLinks pulls the links to scrape out of search results, skipping
// results without a link and duplicate links. The returned titles slice is
// index-aligned with the links.
func collectLinks(results []handlers.SearchResult) ([]string, []string) {
	links := make([]string, 0, len(results))
	titles := make([]string, 0, len(results))
	seen := make(map[string]struct{})

	for _, res := range results {
		if res.Link == "" {
			continue
		}
		if _, dup := seen[res.Link]; dup {
			continue
		}
		seen[res.Link] = struct{}{}
		links = append(links, res.Link)
		titles = append(titles, res.Title)
	}

	return links, titles
}

// buildSources turns scraped pages into hunt sources, running the email
// extractor over each page that produced content. The second return value
// holds each source's emails, index-aligned, for the cross-source merge.
func buildSources(pages []handlers.ScrapedPage, titles []string) ([]dto.HuntSource, [][]string) {
	sources := make([]dto.HuntSource, len(pages))
	emailGroups := make([][]string, len(pages))

	for i, page := range pages {
		source := dto.HuntSource{
			URL:    page.URL,
			Title:  titles[i],
			Emails: []string{},
		}
		if page.Success {
			result := extractor.Extract(page.Markdown)
			source.Emails = result.Emails
			source.Count = result.Count
		} else {
			source.ScrapeError = page.Error
		}
		sources[i] = source
		emailGroups[i] = source.Emails
	}

	return sources, emailGroups
}

// applyContactInfo copies successful enrichment results onto their sources,
// matched by URL. Failed enrichments leave the source untouched.
func applyContactInfo(sources []dto.HuntSource, infoMap map[string]*handlers.ContactInfo) {
	for i := range sources {
		info, ok := infoMap[sources[i].URL]
		if !ok || info == nil || !info.Success {
			continue
		}
		sources[i].Company = info.Company
		sources[i].Contact = info.Contact
		sources[i].ContactRole = info.ContactRole
	}
}
