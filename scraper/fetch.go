package scraper

import (
	"fmt"

	"github.com/playwright-community/playwright-go"
)

const (
	// The schedule pages localize their times to the browser's zone; pinning
	// the context keeps the scraped text in the zone the converter expects.
	browserTimezone = "America/Los_Angeles"
	browserLocale   = "en-US"

	// Milliseconds to let the schedule rail finish rendering after the
	// network goes idle.
	settleTimeout = 3000
)

// NewBrowser starts Playwright and launches a headless Chromium instance
// shared by all station fetches. Callers own both handles and should close
// the browser before stopping Playwright.
func NewBrowser() (*playwright.Playwright, playwright.Browser, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, nil, fmt.Errorf("error starting Playwright: %v", err)
	}

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		pw.Stop()
		return nil, nil, fmt.Errorf("error launching browser: %v", err)
	}

	return pw, browser, nil
}

// FetchPage renders a station page and returns its HTML after the dynamic
// schedule content has loaded.
func FetchPage(browser playwright.Browser, url string) (string, error) {
	context, err := browser.NewContext(playwright.BrowserNewContextOptions{
		TimezoneId: playwright.String(browserTimezone),
		Locale:     playwright.String(browserLocale),
	})
	if err != nil {
		return "", fmt.Errorf("error creating browser context: %v", err)
	}
	defer context.Close()

	page, err := context.NewPage()
	if err != nil {
		return "", fmt.Errorf("error creating page: %v", err)
	}

	if _, err := page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
	}); err != nil {
		return "", fmt.Errorf("error navigating to %s: %v", url, err)
	}

	page.WaitForTimeout(settleTimeout)

	html, err := page.Content()
	if err != nil {
		return "", fmt.Errorf("error retrieving content for %s: %v", url, err)
	}
	return html, nil
}
