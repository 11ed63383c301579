package pfr

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const ua = "Mozilla/5.0 (compatible; PFRPlayerBot/1.0; +https://example.com/bot)"

var httpCli = &http.Client{Timeout: 30 * time.Second}

func envInt(key string, def int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key))); err == nil {
		return v
	}
	return def
}

func retryConfig() (maxAttempts int, base, maxBackoff, cooldown time.Duration) {
	maxAttempts = envInt("HTTP_MAX_ATTEMPTS", 6)
	base = time.Duration(envInt("HTTP_RETRY_BASE_MS", 400)) * time.Millisecond
	maxBackoff = time.Duration(envInt("HTTP_RETRY_MAX_MS", 6000)) * time.Millisecond
	cooldown = time.Duration(envInt("HTTP_COOLDOWN_MS", 7000)) * time.Millisecond
	return
}

func parseRetryAfter(h string) time.Duration {
	h = strings.TrimSpace(h)
	if h == "" {
		return 0
	}
	if secs, err := strconv.Atoi(h); err == nil {
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(h); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}
	return 0
}

func backoff(attempt int, base, max time.Duration) time.Duration {
	d := base * time.Duration(1<<attempt)
	j := time.Duration(rand.Intn(250)) * time.Millisecond
	if d+j > max {
		return max
	}
	return d + j
}

// getTextWithRetry fetches a URL with UA headers and retries on 429/5xx.
// Respects Retry-After when present.
func getTextWithRetry(ctx context.Context, url string) (string, error) {
	maxAttempts, base, maxBackoff, cooldown := retryConfig()

	for attempt := 0; attempt < maxAttempts; attempt++ {
		req, _ := http.NewRequestWithContext(ctx, "GET", url, nil)
		req.Header.Set("User-Agent", ua)
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")

		resp, err := httpCli.Do(req)
		if err != nil {
			if attempt == maxAttempts-1 {
				return "", err
			}
			time.Sleep(backoff(attempt, base, maxBackoff))
			continue
		}

		if resp.StatusCode == 200 {
			b, e := io.ReadAll(resp.Body)
			resp.Body.Close()
			if e != nil {
				if attempt == maxAttempts-1 {
					return "", e
				}
				time.Sleep(backoff(attempt, base, maxBackoff))
				continue
			}
			return string(b), nil
		}

		resp.Body.Close()
		if resp.StatusCode == 429 {
			sleep := parseRetryAfter(resp.Header.Get("Retry-After"))
			if sleep == 0 {
				sleep = cooldown
			}
			time.Sleep(sleep)
			continue
		}
		if resp.StatusCode >= 500 && resp.StatusCode <= 599 {
			time.Sleep(backoff(attempt, base, maxBackoff))
			continue
		}
		return "", fmt.Errorf("status %d for %s", resp.StatusCode, url)
	}
	return "", fmt.Errorf("exhausted retries for %s", url)
}

// FetchDocument retrieves a profile page and returns a navigable
// document. The source ships some tables inside HTML comments, so the
// comment markers are stripped before parsing.
func FetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	html, err := getTextWithRetry(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	return DocumentFromHTML(html)
}

// DocumentFromHTML builds a document from raw page HTML, uncommenting
// the comment-wrapped table sections first.
func DocumentFromHTML(html string) (*goquery.Document, error) {
	clean := strings.ReplaceAll(html, "<!--", "")
	clean = strings.ReplaceAll(clean, "-->", "")
	return goquery.NewDocumentFromReader(strings.NewReader(clean))
}

// ExternalIDFromURL extracts the source player id from a profile URL,
// e.g. /players/B/BradTo00.htm -> BradTo00.
func ExternalIDFromURL(url string) string {
	trimmed := strings.TrimSuffix(url, "/")
	if i := strings.IndexAny(trimmed, "?#"); i >= 0 {
		trimmed = trimmed[:i]
	}
	parts := strings.Split(trimmed, "/")
	last := parts[len(parts)-1]
	return strings.TrimSuffix(last, ".htm")
}
