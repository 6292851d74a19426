package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	unsplashBaseURL = "https://api.unsplash.com"
	searchPerPage   = 10
	maxTripImages   = 3
)

// ImageSearchInterface sources representative photos for a trip. Image
// sourcing is best-effort: implementations log failures and return an empty
// slice instead of an error, so this stage can never abort a pipeline run.
type ImageSearchInterface interface {
	SearchImages(ctx context.Context, query string) []string
}

type UnsplashConfig struct {
	AccessKey string
	BaseURL   string
	Timeout   time.Duration
}

type UnsplashClient struct {
	http      *http.Client
	baseURL   string
	accessKey string
}

func NewUnsplashClient(cfg UnsplashConfig) ImageSearchInterface {
	if cfg.BaseURL == "" {
		cfg.BaseURL = unsplashBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &UnsplashClient{
		http:      &http.Client{Timeout: cfg.Timeout},
		baseURL:   cfg.BaseURL,
		accessKey: cfg.AccessKey,
	}
}

// BuildImageQuery joins the non-empty terms among country, interests and
// travelStyle, in that order, and URL-encodes the result. Empty fields are
// skipped so the query never carries blank tokens.
func BuildImageQuery(country, interests, travelStyle string) string {
	terms := make([]string, 0, 3)
	for _, term := range []string{country, interests, travelStyle} {
		if strings.TrimSpace(term) != "" {
			terms = append(terms, term)
		}
	}
	return url.QueryEscape(strings.Join(terms, " "))
}

type unsplashSearchResponse struct {
	Errors  []string `json:"errors"`
	Results []struct {
		Urls struct {
			Regular string `json:"regular"`
		} `json:"urls"`
	} `json:"results"`
}

// SearchImages returns up to maxTripImages regular-size photo URLs in the
// order the service ranked them. Results without a resolvable URL are
// dropped, never returned as empty placeholders.
func (c *UnsplashClient) SearchImages(ctx context.Context, query string) []string {
	// query is already URL-encoded by BuildImageQuery
	endpoint := fmt.Sprintf("%s/search/photos?query=%s&per_page=%d&client_id=%s",
		c.baseURL, query, searchPerPage, c.accessKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		log.Printf("Failed to build Unsplash request: %v", err)
		return []string{}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("Unsplash request failed: %v", err)
		return []string{}
	}
	defer resp.Body.Close()

	var payload unsplashSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("Failed to decode Unsplash response: %v", err)
		return []string{}
	}

	if len(payload.Errors) > 0 {
		log.Printf("Unsplash API error: %v", payload.Errors)
	}

	results := payload.Results
	if len(results) > maxTripImages {
		results = results[:maxTripImages]
	}

	imageUrls := make([]string, 0, maxTripImages)
	for _, result := range results {
		if result.Urls.Regular == "" {
			continue
		}
		imageUrls = append(imageUrls, result.Urls.Regular)
	}

	return imageUrls
}
